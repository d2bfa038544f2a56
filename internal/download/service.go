package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/ytget/gdrive-downloader/internal/link"
	"github.com/ytget/gdrive-downloader/internal/model"
	"github.com/ytget/gdrive-downloader/internal/platform"
)

// ChunkSize is the size of each read from a response body
const ChunkSize = 1024

// Service handles batch download operations
type Service struct {
	fs       afero.Fs
	log      *slog.Logger
	endpoint string
	onUpdate func(model.StatusEvent) // observer of status events
}

// job is the read-only input of one task goroutine
type job struct {
	taskID      string
	index       int
	url         string
	destination string
}

// NewService creates a new download service writing to fs
func NewService(fs afero.Fs, log *slog.Logger) *Service {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		fs:       fs,
		log:      log,
		endpoint: link.DefaultEndpoint,
	}
}

// SetUpdateCallback sets the callback function for status events
func (s *Service) SetUpdateCallback(callback func(model.StatusEvent)) {
	s.onUpdate = callback
}

// SetEndpoint overrides the Drive download endpoint
func (s *Service) SetEndpoint(endpoint string) {
	if endpoint == "" {
		endpoint = link.DefaultEndpoint
	}
	s.endpoint = endpoint
}

// DownloadAll downloads every non-blank link into destination concurrently.
//
// Each task is reported as Downloading when enqueued and then exactly once
// as Completed or Error. Events are applied and forwarded to the observer
// from the calling goroutine only. The batch itself never fails.
func (s *Service) DownloadAll(ctx context.Context, links []string, destination string) *model.BatchResult {
	tasks := newTasks(links, destination)
	result := &model.BatchResult{Destination: destination, Tasks: tasks}
	if len(tasks) == 0 {
		return result
	}

	s.log.Info("Batch started", slog.Int("links", len(tasks)), slog.String("destination", destination))

	sess := openSession()
	defer sess.Close()

	events := make(chan model.StatusEvent, len(tasks))
	var wg sync.WaitGroup

	for _, task := range tasks {
		s.apply(task, model.StatusEvent{
			TaskID: task.ID,
			Index:  task.Index,
			URL:    task.URL,
			Status: model.TaskStatusDownloading,
			At:     task.StartedAt,
		})

		j := job{taskID: task.ID, index: task.Index, url: task.URL, destination: destination}
		wg.Add(1)
		go func() {
			defer wg.Done()
			events <- s.run(ctx, sess.client, j)
		}()
	}

	go func() {
		wg.Wait()
		close(events)
	}()

	for ev := range events {
		s.apply(tasks[ev.Index], ev)
	}

	s.log.Info("Batch finished",
		slog.Int("succeeded", result.Succeeded()),
		slog.Int("failed", result.Failed()),
		slog.String("destination", destination))

	return result
}

// Download fetches a single link into destination and returns the path of
// the saved file. Failures wrap one of the Err* kinds.
func (s *Service) Download(ctx context.Context, client *http.Client, rawURL, destination string) (string, error) {
	id, ok := link.ExtractID(rawURL)
	if !ok {
		return "", ErrNoIdentifier
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link.DownloadURL(s.endpoint, id), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	name := OutputFilename(resp.Header.Get("Content-Disposition"), id)
	path := filepath.Join(destination, name)
	if err := s.save(path, resp.Body); err != nil {
		return "", err
	}

	return path, nil
}

// run executes one task and converts its outcome into a terminal event
func (s *Service) run(ctx context.Context, client *http.Client, j job) (ev model.StatusEvent) {
	ev = model.StatusEvent{TaskID: j.taskID, Index: j.index, URL: j.url}
	ev.FileID, _ = link.ExtractID(j.url)

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Unexpected error during downloading",
				slog.String("url", j.url),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
			ev.Status = model.TaskStatusError
			ev.Reason = fmt.Errorf("%w: %v", ErrUnexpected, r).Error()
		}
		ev.At = time.Now()
	}()

	path, err := s.Download(ctx, client, j.url, j.destination)
	if err != nil {
		s.logFailure(j.url, err)
		ev.Status = model.TaskStatusError
		ev.Reason = err.Error()
		return ev
	}

	s.log.Info("File saved", slog.String("path", path), slog.String("url", j.url))
	ev.Status = model.TaskStatusCompleted
	ev.OutputPath = path
	return ev
}

// save streams body into path in ChunkSize pieces. A partially written file
// is left in place on failure.
func (s *Service) save(path string, body io.Reader) error {
	if err := platform.EnsureDir(s.fs, filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	buf := make([]byte, ChunkSize)
	for {
		n, rerr := body.Read(buf)
		if n > 0 {
			if _, werr := f.Write(buf[:n]); werr != nil {
				f.Close()
				return fmt.Errorf("%w: %v", ErrWrite, werr)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			f.Close()
			return fmt.Errorf("%w: %v", ErrNetwork, rerr)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func (s *Service) logFailure(url string, err error) {
	switch {
	case errors.Is(err, ErrBadStatus):
		s.log.Warn("Unable to download a file", slog.String("url", url), slog.Any("error", err))
	case errors.Is(err, ErrNoIdentifier):
		s.log.Error("Unable to extract file ID from the link", slog.String("url", url))
	case errors.Is(err, ErrWrite):
		s.log.Error("Writing file error", slog.String("url", url), slog.Any("error", err))
	default:
		s.log.Error("HTTP error during downloading", slog.String("url", url), slog.Any("error", err))
	}
}

// apply records ev on task and forwards it to the observer
func (s *Service) apply(task *model.DownloadTask, ev model.StatusEvent) {
	if !task.Apply(ev) {
		s.log.Warn("Dropped transition out of a terminal state",
			slog.String("task", task.ID), slog.String("status", ev.Status.String()))
		return
	}
	s.notifyUpdate(ev)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(ev model.StatusEvent) {
	if s.onUpdate != nil {
		s.onUpdate(ev)
	}
}

// newTasks builds one pending task per non-blank link
func newTasks(links []string, destination string) []*model.DownloadTask {
	now := time.Now()
	tasks := make([]*model.DownloadTask, 0, len(links))
	for _, l := range links {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		tasks = append(tasks, &model.DownloadTask{
			ID:          generateTaskID(),
			Index:       len(tasks),
			URL:         l,
			Destination: destination,
			Status:      model.TaskStatusPending,
			StartedAt:   now,
		})
	}
	return tasks
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
