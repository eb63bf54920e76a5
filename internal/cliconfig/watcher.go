package cliconfig

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/corelink/internal/ports"
)

// Watcher observes the daemon's config file and reports edits. Lifecycle
// options are fixed once the driver is set up, so the watcher only warns
// that a restart is required to pick the new values up.
type Watcher struct {
	path     string
	logger   ports.Logger
	debounce time.Duration

	// onChange is invoked after each debounced change. Overridable in tests.
	onChange func(path string)
}

// NewWatcher creates a watcher for the given config file path.
func NewWatcher(path string, logger ports.Logger) *Watcher {
	w := &Watcher{
		path:     path,
		logger:   logger,
		debounce: 500 * time.Millisecond,
	}
	w.onChange = w.warnRestart
	return w
}

// Run watches the config file until ctx is cancelled. It watches the parent
// directory so editors that replace the file via rename are still observed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return err
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			w.onChange(w.path)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) warnRestart(path string) {
	w.logger.Warn("config file changed; restart required to apply new settings",
		ports.String("path", path))
}
