package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single export file and invokes a callback after changes
// settle. It watches the containing directory rather than the file itself so
// that editors and scp replacing the file atomically keep being seen, and it
// debounces event bursts into one callback.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	base     string
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a watcher for the export file at path.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path %q: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %q: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		watcher:  fsw,
		path:     abs,
		base:     filepath.Base(abs),
		debounce: debounce,
		logger:   logger.With("component", "watch"),
	}, nil
}

// Watch blocks, invoking onChange once per settled burst of changes to the
// watched file, until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != w.base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug("export changed", "event", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-timerCh:
			timer = nil
			timerCh = nil
			w.logger.Info("export settled, regenerating", "path", w.path)
			onChange()
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
