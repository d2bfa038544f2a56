package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DownloadTask represents a single link being downloaded
type DownloadTask struct {
	ID          string
	Index       int        // position of the link in the batch
	URL         string     // link as supplied by the user
	FileID      string     // Drive identifier, empty if none could be extracted
	Destination string     // destination folder
	Status      TaskStatus // current status
	LastError   string     // failure reason if any
	OutputPath  string     // path of the saved file
	StartedAt   time.Time  // when the task was enqueued
	FinishedAt  time.Time  // when the task reached a terminal state
}

// Apply moves the task to the state carried by ev. Transitions out of a
// terminal state are ignored and reported as false.
func (dt *DownloadTask) Apply(ev StatusEvent) bool {
	if dt.Status.IsFinished() {
		return false
	}
	dt.Status = ev.Status
	if ev.FileID != "" {
		dt.FileID = ev.FileID
	}
	switch ev.Status {
	case TaskStatusCompleted:
		dt.OutputPath = ev.OutputPath
		dt.FinishedAt = ev.At
	case TaskStatusError:
		dt.LastError = ev.Reason
		dt.FinishedAt = ev.At
	}
	return true
}

// Elapsed returns how long the task ran, or zero if it has not finished
func (dt *DownloadTask) Elapsed() time.Duration {
	if dt.FinishedAt.IsZero() || dt.StartedAt.IsZero() {
		return 0
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}

// GetDisplayTitle returns the saved file name, or the trimmed URL before that is known
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.OutputPath != "" {
		return filepath.Base(dt.OutputPath)
	}
	return strings.TrimSpace(dt.URL)
}
