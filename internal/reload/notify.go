package reload

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/vk/livegrid/internal/ctxlog"
)

// NotifySource wraps a FileSource and only stats the file after fsnotify
// reported an event for it. The first Poll always reads.
type NotifySource struct {
	file    *FileSource
	watcher *fsnotify.Watcher
	dirty   atomic.Bool
}

// NewNotifySource watches the directory holding path, so that editors that
// save by renaming a temporary file are still seen.
func NewNotifySource(path string) (*NotifySource, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	file := NewFileSource(path)
	if err := w.Add(filepath.Dir(file.Path())); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(file.Path()), err)
	}
	n := &NotifySource{file: file, watcher: w}
	n.dirty.Store(true)
	return n, nil
}

// Run consumes watcher events until ctx is done, then closes the watcher.
func (n *NotifySource) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("path", n.file.Path())
	defer n.watcher.Close()

	logger.Debug("Watching scene file.")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-n.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != n.file.Path() {
				continue
			}
			logger.Debug("Scene file event.", "op", ev.Op.String())
			n.dirty.Store(true)
		case err, ok := <-n.watcher.Errors:
			if !ok {
				return nil
			}
			// Events may have been lost, so fall back to one stat.
			logger.Warn("File watcher error.", "error", err)
			n.dirty.Store(true)
		}
	}
}

func (n *NotifySource) Poll() ([]byte, bool, error) {
	if !n.dirty.Swap(false) {
		return nil, false, nil
	}
	text, changed, err := n.file.Poll()
	if err != nil {
		n.dirty.Store(true)
	}
	return text, changed, err
}

// Close stops watching. Run returns once the watcher channels close.
func (n *NotifySource) Close() error {
	return n.watcher.Close()
}
