// Package watcher reports debounced changes to a set of input files.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches files for changes. Parent directories are watched so
// that files replaced by editors (write to temp, rename) keep being seen.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	files    map[string]bool
	dirs     map[string]bool
	debounce time.Duration
	timer    *time.Timer
	changes  chan string
	logger   *slog.Logger
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, logger *slog.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: debounce,
		changes:  make(chan string, 1),
		logger:   logger,
	}, nil
}

// Watch adds files to the watch set. The files need not exist yet, their
// directories must.
func (fw *FileWatcher) Watch(files ...string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if !fw.dirs[dir] {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			fw.dirs[dir] = true
		}
		fw.files[absPath] = true
	}

	return nil
}

// Changes delivers the path of the last changed file once the debounce
// interval has passed without further changes. Bursts collapse into one
// value; a receiver that is busy sees at most one pending change.
func (fw *FileWatcher) Changes() <-chan string {
	return fw.changes
}

// Run processes events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.handleFileChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("watcher error", "err", err)
		}
	}
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.files[filepath.Clean(filePath)] {
		return
	}

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		fw.logger.Debug("input changed", "path", filePath)
		select {
		case fw.changes <- filePath:
		default:
		}
	})
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
