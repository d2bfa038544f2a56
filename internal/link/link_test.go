package link

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"query id first", "https://drive.google.com/uc?id=ABC123&export=download", "ABC123", true},
		{"query id last", "https://drive.google.com/open?id=1a2B3c", "1a2B3c", true},
		{"query id middle", "https://drive.google.com/uc?export=download&id=Zz9&confirm=t", "Zz9", true},
		{"path id", "https://drive.google.com/file/d/XYZ789/view", "XYZ789", true},
		{"path id no tail", "https://drive.google.com/file/d/XYZ789", "XYZ789", true},
		{"path id with query", "https://drive.google.com/file/d/k-_9/view?usp=sharing", "k-_9", true},
		{"query wins over path", "https://drive.google.com/file/d/PATH/view?id=QUERY", "QUERY", true},
		{"query id with fragment", "https://drive.google.com/open?id=ABC#heading", "ABC", true},
		{"path id with fragment", "https://drive.google.com/file/d/XYZ789#top", "XYZ789", true},
		{"fragment only", "https://drive.google.com/uc?id=#frag", "", false},
		{"empty query id", "https://drive.google.com/uc?id=&export=download", "", false},
		{"empty path id", "https://drive.google.com/file/d//view", "", false},
		{"no marker", "https://example.com/some/file.zip", "", false},
		{"empty", "", "", false},
		{"garbage", "not a link at all", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractID(tt.url)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantID, id)
		})
	}
}

func TestDownloadURL(t *testing.T) {
	id, ok := ExtractID("https://drive.google.com/uc?id=ABC123&export=download")
	require.True(t, ok)
	require.Equal(t, "https://drive.google.com/uc?export=download&id=ABC123", DownloadURL("", id))
	require.Equal(t, "http://127.0.0.1:8080/uc?export=download&id=ABC123", DownloadURL("http://127.0.0.1:8080/uc", id))
}

func TestSplitLines(t *testing.T) {
	require.Nil(t, SplitLines(""))
	require.Equal(t, []string{"a", "", "  ", "b"}, SplitLines("a\r\n\n  \nb"))
	require.Equal(t, []string{"a", ""}, SplitLines("a\n"))
}
