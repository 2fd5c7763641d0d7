package mediastore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/contre95/mediastore/src/media"
)

// Recorder receives the outcome of every store operation and every change
// observed on disk.
type Recorder interface {
	Observe(operation string, started time.Time, err error)
	FileEvent(event media.FileEvent)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, time.Time, error) {}
func (nopRecorder) FileEvent(media.FileEvent)        {}

// Service is the domain service for the media store feature.
type Service struct {
	store    media.Store
	recorder Recorder

	watcher    Watcher
	stopEvents chan struct{}
	eventsDone chan struct{}
}

// NewService creates a new media store service. recorder may be nil.
func NewService(store media.Store, recorder Recorder) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		store:    store,
		recorder: recorder,
	}
}

// ImportFile copies sourcePath into the category directory and returns
// "category/filename".
func (s *Service) ImportFile(ctx context.Context, sourcePath, category string) (rel string, err error) {
	defer s.observe(ctx, "import", time.Now(), &err, "source", sourcePath, "category", category)

	c, err := media.ParseCategory(category)
	if err != nil {
		return "", err
	}
	return s.store.Import(ctx, sourcePath, c)
}

// ResolveFilePath returns the absolute path of a managed file.
func (s *Service) ResolveFilePath(ctx context.Context, category, filename string) (path string, err error) {
	defer s.observe(ctx, "resolve", time.Now(), &err, "category", category, "filename", filename)
	return s.store.Resolve(ctx, category, filename)
}

// ResolveBasePath returns the media root, creating it if needed.
func (s *Service) ResolveBasePath(ctx context.Context) (path string, err error) {
	defer s.observe(ctx, "base", time.Now(), &err)
	return s.store.Base(ctx)
}

// ListFiles returns the names of the files in a category, in no particular order.
func (s *Service) ListFiles(ctx context.Context, category string) (files []string, err error) {
	defer s.observe(ctx, "list", time.Now(), &err, "category", category)
	return s.store.List(ctx, category)
}

// ListMediaFiles lists a category and pairs every file with the URL built
// by urlFor. Files that vanish before they can be resolved are skipped.
func (s *Service) ListMediaFiles(ctx context.Context, category string, urlFor func(category, filename string) string) ([]media.MediaFile, error) {
	names, err := s.ListFiles(ctx, category)
	if err != nil {
		return nil, err
	}

	files := make([]media.MediaFile, 0, len(names))
	for _, name := range names {
		if _, err := s.store.Resolve(ctx, category, name); err != nil {
			slog.WarnContext(ctx, "Could not resolve listed file, skipping", "category", category, "filename", name, "error", err)
			continue
		}
		files = append(files, media.MediaFile{Filename: name, URL: urlFor(category, name)})
	}
	return files, nil
}

// DeleteFile removes a managed file.
func (s *Service) DeleteFile(ctx context.Context, category, filename string) (err error) {
	defer s.observe(ctx, "delete", time.Now(), &err, "category", category, "filename", filename)
	return s.store.Delete(ctx, category, filename)
}

// Extensions returns the file picker extensions of every category.
func (s *Service) Extensions() map[media.Category][]string {
	exts := make(map[media.Category][]string, len(media.Categories))
	for _, c := range media.Categories {
		exts[c] = c.Extensions()
	}
	return exts
}

// StartWatcher starts w on the media root and consumes events until ctx
// is done or StopWatcher is called. The service owns w from here on: it is
// stopped when starting fails and by StopWatcher otherwise.
func (s *Service) StartWatcher(ctx context.Context, w Watcher, events <-chan media.FileEvent) error {
	root, err := s.ResolveBasePath(ctx)
	if err != nil {
		w.Stop()
		return fmt.Errorf("failed to resolve media root: %w", err)
	}
	if err := w.Start(ctx, root); err != nil {
		w.Stop()
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	s.watcher = w
	s.stopEvents = stop
	s.eventsDone = done

	go func() {
		defer close(done)
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				slog.Info("Media changed on disk", "category", ev.Category, "filename", ev.Filename, "type", ev.Type)
				s.recorder.FileEvent(ev)
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// StopWatcher stops the watcher started by StartWatcher, if any, and waits
// for the event consumer to exit.
func (s *Service) StopWatcher() {
	if s.watcher == nil {
		return
	}
	s.watcher.Stop()
	close(s.stopEvents)
	<-s.eventsDone
	s.watcher = nil
	s.stopEvents = nil
	s.eventsDone = nil
}

func (s *Service) observe(ctx context.Context, operation string, started time.Time, errp *error, args ...any) {
	err := *errp
	s.recorder.Observe(operation, started, err)
	if err != nil {
		slog.ErrorContext(ctx, "Media "+operation+" failed", append(args, "error", err)...)
		return
	}
	slog.DebugContext(ctx, "Media "+operation+" completed", append(args, "duration", time.Since(started).String())...)
}
