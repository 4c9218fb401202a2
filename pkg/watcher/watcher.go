package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single puzzle file and triggers a callback when
// it changes. The parent directory is watched instead of the file itself
// so editors that save by rename keep triggering.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for the given file
func New(path string, debounce time.Duration, onChange func()) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(absPath)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &FileWatcher{
		watcher:  w,
		path:     absPath,
		onChange: onChange,
		debounce: debounce,
	}, nil
}

// Start begins delivering change notifications
func (fw *FileWatcher) Start() {
	go fw.loop()
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Name != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.schedule()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("watcher error", "error", err)
		}
	}
}

// schedule arms the debounce timer, resetting any pending one. Editors
// tend to emit several events per save.
func (fw *FileWatcher) schedule() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.onChange)
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()

	return fw.watcher.Close()
}
