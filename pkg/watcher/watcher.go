// Package watcher reports changes to shape files, coalescing the bursts of
// events editors and exporters produce while writing.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher calls a handler once a watched file has been quiet for the
// debounce duration after a change.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	handlers map[string]func(string)
	timers   map[string]*time.Timer
}

// NewFileWatcher creates a file watcher
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.New("creating file watcher failed").Wrap(err)
	}

	return &FileWatcher{
		watcher:  w,
		debounce: debounce,
		handlers: make(map[string]func(string)),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch registers handler for the given files. The directories holding the
// files are watched so files replaced by rename keep being reported.
func (fw *FileWatcher) Watch(files []string, handler func(path string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		path, err := filepath.Abs(file)
		if err != nil {
			return errors.New("resolving watched path failed").
				WithTag("path", file).
				Wrap(err)
		}

		if err := fw.watcher.Add(filepath.Dir(path)); err != nil {
			return errors.New("watching file failed").
				WithTag("path", path).
				Wrap(err)
		}
		fw.handlers[path] = handler
	}
	return nil
}

// Run dispatches change events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				fw.changed(filepath.Clean(event.Name))
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			logs.Warn(errors.New("file watcher error").Wrap(err))
		}
	}
}

func (fw *FileWatcher) changed(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	handler, ok := fw.handlers[path]
	if !ok {
		return
	}

	if timer, ok := fw.timers[path]; ok {
		timer.Stop()
	}
	fw.timers[path] = time.AfterFunc(fw.debounce, func() {
		logs.WithTag("path", path).Debug("watched file changed")
		handler(path)
	})
}

// Close stops the watcher and any pending notifications
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	fw.mu.Unlock()

	return fw.watcher.Close()
}
