package download

import (
	"context"

	"github.com/ytget/gdrive-downloader/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// SetUpdateCallback registers the observer of status events. It is
	// invoked from the goroutine running DownloadAll, one event at a time.
	SetUpdateCallback(func(model.StatusEvent))

	// DownloadAll downloads every non-blank link into destination and
	// returns once each task reached a terminal status.
	DownloadAll(ctx context.Context, links []string, destination string) *model.BatchResult
}
