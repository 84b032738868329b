package watcher

import "context"

// EventHandler processes one newly detected media file.
type EventHandler func(ctx context.Context, path string) error

// Watcher monitors the input directory and dispatches new media
// files to the handler with bounded concurrency.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}
