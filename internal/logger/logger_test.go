package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Info("File saved", slog.String("path", "/dl/a.txt"))
	log.Warn("Unable to download a file", slog.String("url", "https://drive.google.com/uc?id=X"))

	out := buf.String()
	require.NotContains(t, out, "File saved")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "Unable to download a file")
}

func TestOpenFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")

	for _, msg := range []string{"first run", "second run"} {
		log, closer, err := OpenFile(path, LevelInfo, false)
		require.NoError(t, err)
		log.Info(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(data), "\n"))
	require.Contains(t, string(data), "first run")
	require.Contains(t, string(data), "second run")
}

func TestOpenFile_BadLevel(t *testing.T) {
	_, _, err := OpenFile(filepath.Join(t.TempDir(), "logs.txt"), "loud", false)
	require.Error(t, err)
}
