package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/ytget/gdrive-downloader/internal/model"
)

func sampleBatch() *model.BatchResult {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &model.BatchResult{
		Destination: "/dl",
		Tasks: []*model.DownloadTask{
			{
				URL:        "https://drive.google.com/file/d/XYZ789/view",
				FileID:     "XYZ789",
				Status:     model.TaskStatusCompleted,
				OutputPath: "/dl/XYZ789.file",
				StartedAt:  start,
				FinishedAt: start.Add(1500 * time.Millisecond),
			},
			{
				URL:        "https://drive.google.com/uc?id=GONE",
				FileID:     "GONE",
				Status:     model.TaskStatusError,
				LastError:  "non-200 status: 404",
				StartedAt:  start,
				FinishedAt: start.Add(250 * time.Millisecond),
			},
		},
	}
}

func TestFromBatch(t *testing.T) {
	r := FromBatch(sampleBatch())

	require.Equal(t, "/dl", r.Destination)
	require.Equal(t, 2, r.Total)
	require.Equal(t, 1, r.Succeeded)
	require.Equal(t, 1, r.Failed)
	require.Len(t, r.Items, 2)
	require.Equal(t, "Completed", r.Items[0].Status)
	require.Equal(t, 1.5, r.Items[0].Duration)
	require.Equal(t, "non-200 status: 404", r.Items[1].Error)
	require.Empty(t, r.Items[1].Path)
}

func TestWrite_OmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleBatch()))

	out := buf.String()
	require.Contains(t, out, "destination: /dl")
	require.Contains(t, out, "non-200 status: 404")
	require.NotContains(t, out, "path: \"\"")
	require.Contains(t, out, "path: /dl/XYZ789.file")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, FromBatch(sampleBatch()), decoded)
}

func TestSave(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, Save(fs, "/reports/batch.yml", sampleBatch()))

	data, err := afero.ReadFile(fs, "/reports/batch.yml")
	require.NoError(t, err)
	require.Contains(t, string(data), "succeeded: 1")
}

func TestSave_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	require.Error(t, Save(fs, "/reports/batch.yml", sampleBatch()))
}
