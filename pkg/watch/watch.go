// Package watch reloads a single file when it changes on disk
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/gencomp/gencomp-cli/internal/logging"
)

// DefaultDebounce coalesces the burst of events an editor save produces
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc receives the new file content
type ChangeFunc func(content string)

// FileWatcher watches one file. The parent directory is watched rather than
// the file itself so that editors which save by rename are still seen.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange ChangeFunc
	log      *zap.Logger

	mu   sync.Mutex
	last string
}

// Option configures a FileWatcher
type Option func(*FileWatcher)

// WithDebounce overrides DefaultDebounce
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) { w.debounce = d }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(w *FileWatcher) { w.log = l }
}

// New creates a watcher for path. It reads the file once so that callers get
// an error up front when it does not exist.
func New(path string, onChange ChangeFunc, opts ...Option) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	w := &FileWatcher{
		path:     abs,
		debounce: DefaultDebounce,
		onChange: onChange,
		log:      logging.Named("watch"),
		last:     string(data),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Content returns the most recently read content
func (w *FileWatcher) Content() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Path returns the absolute path being watched
func (w *FileWatcher) Path() string {
	return w.path
}

// Run blocks until ctx is cancelled, calling onChange after each debounced change
func (w *FileWatcher) Run(ctx context.Context) error {
	fsW, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsW.Close()

	if err := fsW.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsW.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.reload)

		case err, ok := <-fsW.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", zap.String("path", w.path), zap.Error(err))
		}
	}
}

// reload reads the file and reports it when the content differs from the last read
func (w *FileWatcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// mid-rename; the following create event triggers another reload
		w.log.Debug("reload skipped", zap.String("path", w.path), zap.Error(err))
		return
	}

	content := string(data)
	w.mu.Lock()
	if content == w.last {
		w.mu.Unlock()
		return
	}
	w.last = content
	w.mu.Unlock()

	w.log.Debug("file changed", zap.String("path", w.path), zap.Int("bytes", len(content)))
	if w.onChange != nil {
		w.onChange(content)
	}
}
