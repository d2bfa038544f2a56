package download

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My:File*.txt", "MyFile.txt"},
		{`a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"plain name (1).tar.gz", "plain name (1).tar.gz"},
		{"отчёт 2024.pdf", "отчёт 2024.pdf"},
		{`<>:"/\|?*`, ""},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}

func TestSanitizeFilename_PreservesOrder(t *testing.T) {
	in := "z?y*x:w<v>u|t/s\\r\"q"
	got := SanitizeFilename(in)

	require.Equal(t, "zyxwvutsrq", got)
	require.False(t, strings.ContainsAny(got, IllegalFilenameChars))
}

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"quoted", `attachment; filename="My:File*.txt"`, "My:File*.txt"},
		{"unquoted", `attachment; filename=report.pdf`, "report.pdf"},
		{"percent encoded", `attachment; filename="na%C3%AFve%20file.txt"`, "naïve file.txt"},
		{"rfc 5987", `attachment; filename*=UTF-8''r%C3%A9sum%C3%A9.doc`, "résumé.doc"},
		{"malformed", `attachment; filename="broken name.txt`, "broken name.txt"},
		{"bad escape kept", `attachment; filename="100%.txt"`, "100%.txt"},
		{"bad escape beside valid one", `attachment; filename="50%off%20sale.pdf"`, "50%off sale.pdf"},
		{"trailing percent", `attachment; filename="a%2"`, "a%2"},
		{"rfc 5987 decoded once", `attachment; filename*=UTF-8''100%2525.txt`, "100%25.txt"},
		{"rfc 5987 wins over plain", `attachment; filename="plain.txt"; filename*=UTF-8''%C3%A9t%C3%A9.txt`, "été.txt"},
		{"no filename", `attachment`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilenameFromDisposition(tt.header))
		})
	}
}

func TestOutputFilename(t *testing.T) {
	require.Equal(t, "MyFile.txt", OutputFilename(`attachment; filename="My:File*.txt"`, "ID"))
	require.Equal(t, "Q1W2.file", OutputFilename("", "Q1W2"))
	require.Equal(t, "Q1W2.file", OutputFilename(`attachment; filename="???"`, "Q1W2"))
	require.Equal(t, "Q1W2.file", OutputFilename(`attachment; filename=".."`, "Q1W2"))
}
