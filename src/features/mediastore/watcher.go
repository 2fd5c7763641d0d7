package mediastore

import (
	"context"
)

// Watcher defines the interface for file system watchers over the media root.
type Watcher interface {
	Start(ctx context.Context, root string) error
	Stop()
}
