package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/contre95/mediastore/src/media"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the media root and its category directories and emits
// an event for every file that changes inside a category directory.
type Watcher struct {
	watcher   *fsnotify.Watcher
	root      string
	mu        sync.Mutex
	running   bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	done      chan struct{}
	eventChan chan<- media.FileEvent
}

// NewWatcher creates a new file system watcher
func NewWatcher(eventChan chan<- media.FileEvent) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:   watcher,
		eventChan: eventChan,
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching root. Category directories that exist now or
// are created later are watched as well.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.root = filepath.Clean(root)
	slog.Info("Starting media watcher", "path", w.root)

	if err := w.watcher.Add(w.root); err != nil {
		return err
	}

	entries, err := os.ReadDir(w.root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			w.addCategory(filepath.Join(w.root, entry.Name()))
		}
	}

	w.mu.Lock()
	w.running = true
	w.mu.Unlock()

	go w.watchLoop(ctx)

	slog.Info("Media watcher started successfully")
	return nil
}

// Stop stops the watcher and waits for its loop to exit. It also releases
// the underlying fsnotify watcher when Start failed or was never called.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		running := w.running
		w.running = false
		w.mu.Unlock()

		slog.Info("Stopping media watcher")
		close(w.stopChan)
		if running {
			<-w.done
		}
		w.watcher.Close()
	})
}

// watchLoop processes file system events
func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Media watcher error", "error", err)

		case <-w.stopChan:
			return

		case <-ctx.Done():
			return
		}
	}
}

// handleEvent processes a single file system event
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	parent := filepath.Dir(path)

	// A new directory directly under the root is a new category.
	if parent == w.root {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.addCategory(path)
			}
		}
		return
	}

	if filepath.Dir(parent) != w.root {
		return
	}

	eventType, ok := eventTypeOf(event.Op)
	if !ok {
		return
	}

	w.emit(media.FileEvent{
		Category:  filepath.Base(parent),
		Filename:  filepath.Base(path),
		Type:      eventType,
		Timestamp: time.Now(),
	})
}

func (w *Watcher) addCategory(dir string) {
	if err := w.watcher.Add(dir); err != nil {
		slog.Warn("Failed to watch category directory", "path", dir, "error", err)
		return
	}
	slog.Debug("Watching category directory", "path", dir)
}

func (w *Watcher) emit(event media.FileEvent) {
	select {
	case w.eventChan <- event:
	default:
		slog.Warn("Event channel full, dropping file event", "category", event.Category, "file", event.Filename)
	}
}

func eventTypeOf(op fsnotify.Op) (media.FileEventType, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return media.FileCreated, true
	case op.Has(fsnotify.Remove):
		return media.FileRemoved, true
	case op.Has(fsnotify.Rename):
		return media.FileRenamed, true
	case op.Has(fsnotify.Write):
		return media.FileModified, true
	}
	return "", false
}
