package media

import (
	"context"
	"time"
)

// RootDirName is the directory under the application data directory that holds all managed media.
const RootDirName = "media"

// RootResolver returns the absolute path of the media root. It must not
// touch the filesystem.
type RootResolver func() (string, error)

// StaticRoot returns a RootResolver that always yields dir.
func StaticRoot(dir string) RootResolver {
	return func() (string, error) {
		return dir, nil
	}
}

// Store manages media files under the media root. The filesystem is the
// only source of truth: nothing is cached between calls.
type Store interface {
	// Import copies sourcePath into the category directory and returns
	// "category/filename". An existing file with the same name is overwritten.
	Import(ctx context.Context, sourcePath string, category Category) (string, error)
	// Resolve returns the absolute path of an existing managed file.
	Resolve(ctx context.Context, category, filename string) (string, error)
	// Base returns the media root, creating it if needed.
	Base(ctx context.Context) (string, error)
	// List returns the names of the plain files inside a category directory.
	// A category directory that does not exist yields an empty list.
	List(ctx context.Context, category string) ([]string, error)
	// Delete removes a single managed file.
	Delete(ctx context.Context, category, filename string) error
}

// MediaFile is a managed file as presented to the host UI.
type MediaFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// FileEventType is the kind of change observed under the media root.
type FileEventType string

const (
	FileCreated  FileEventType = "created"
	FileRemoved  FileEventType = "removed"
	FileModified FileEventType = "modified"
	FileRenamed  FileEventType = "renamed"
)

// FileEvent is a change to a file inside a category directory that was
// observed on disk.
type FileEvent struct {
	Category  string
	Filename  string
	Type      FileEventType
	Timestamp time.Time
}
