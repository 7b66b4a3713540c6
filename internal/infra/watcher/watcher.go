package watcher

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MegaPintoos/Courses/internal/domain"
)

// DefaultDebounce is the quiet period used when WithDebounce is not given.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls a callback whenever a single file changes on disk. It watches
// the parent directory so editors that save via rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

func New(path string, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is done. Bursts of writes within the debounce window
// produce a single onChange call. Errors returned by onChange are logged and
// do not stop the loop.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return domain.ExecError("watcher.start", w.path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return domain.ExecError("watcher.start", target, err)
	}
	defer fw.Close()

	dir := filepath.Dir(target)
	if err := fw.Add(dir); err != nil {
		return domain.FileError("watcher.add", dir, err)
	}
	w.log.Info("watch.started", "path", target, "debounce", w.debounce.String())

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watch.stopped", "path", target)
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !relevant(ev.Op) {
				continue
			}
			w.log.Debug("watch.event", "path", ev.Name, "op", ev.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch.error", "err", err)

		case <-fire:
			fire = nil
			if err := onChange(ctx); err != nil {
				w.log.Error("watch.callback_failed", "path", target, "err", err)
				continue
			}
			w.log.Debug("watch.callback_done", "path", target)
		}
	}
}

// Remove and chmod are ignored: a missing file cannot be regenerated from.
func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
