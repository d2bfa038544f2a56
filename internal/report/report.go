// Package report renders a finished batch as a YAML document.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/ytget/gdrive-downloader/internal/model"
	"github.com/ytget/gdrive-downloader/internal/platform"
)

// Report is the serialized form of a batch
type Report struct {
	Destination string `yaml:"destination"`
	Total       int    `yaml:"total"`
	Succeeded   int    `yaml:"succeeded"`
	Failed      int    `yaml:"failed"`
	Items       []Item `yaml:"items"`
}

// Item is one link of the batch
type Item struct {
	URL      string  `yaml:"url"`
	FileID   string  `yaml:"file_id,omitempty"`
	Status   string  `yaml:"status"`
	Path     string  `yaml:"path,omitempty"`
	Error    string  `yaml:"error,omitempty"`
	Duration float64 `yaml:"duration_sec"`
}

// FromBatch builds a report from a batch result, keeping input order
func FromBatch(b *model.BatchResult) Report {
	r := Report{
		Destination: b.Destination,
		Total:       b.Total(),
		Succeeded:   b.Succeeded(),
		Failed:      b.Failed(),
		Items:       make([]Item, 0, len(b.Tasks)),
	}
	for _, t := range b.Tasks {
		r.Items = append(r.Items, Item{
			URL:      t.URL,
			FileID:   t.FileID,
			Status:   t.Status.String(),
			Path:     t.OutputPath,
			Error:    t.LastError,
			Duration: t.Elapsed().Round(time.Millisecond).Seconds(),
		})
	}
	return r
}

// Write encodes the report for b to w
func Write(w io.Writer, b *model.BatchResult) error {
	data, err := yaml.Marshal(FromBatch(b))
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Save writes the report for b to path on fs, replacing any previous file
func Save(fs afero.Fs, path string, b *model.BatchResult) error {
	if err := platform.EnsureDir(fs, filepath.Dir(path)); err != nil {
		return err
	}
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	if err := Write(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
