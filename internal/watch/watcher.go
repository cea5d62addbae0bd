// Package watch re-checks OSS documents when they change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

// Config contains configuration for the file watcher.
type Config struct {
	// Paths are the files and directories to watch. Directories are watched
	// recursively.
	Paths []string

	// Extensions limits the files reported from watched directories
	// (e.g., ".oss"). Files named directly in Paths are always reported.
	Extensions []string

	// Debounce is the quiet period after the last change before a batch is
	// reported.
	Debounce time.Duration
}

// Watcher reports batches of changed documents.
type Watcher struct {
	watcher  *fsnotify.Watcher
	config   Config
	files    map[string]bool
	roots    []string
	debounce *Debouncer
	log      commonlog.Logger
}

// New creates a watcher and registers every path in config with the
// operating system. Changes made after New returns are not lost even if
// Watch has not started yet.
func New(config Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsw,
		config:   config,
		files:    make(map[string]bool),
		debounce: NewDebouncer(config.Debounce),
		log:      commonlog.GetLogger("oss.watch"),
	}

	for _, path := range config.Paths {
		if err := w.addPath(filepath.Clean(path)); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to watch %q: %w", path, err)
		}
	}

	return w, nil
}

// Watch delivers changed paths to onChange until ctx is cancelled. Batches
// are delivered one at a time on the calling goroutine.
func (w *Watcher) Watch(ctx context.Context, onChange func(paths []string)) error {
	w.log.Infof("watching %s", strings.Join(w.config.Paths, ", "))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			w.handle(event)

		case <-w.debounce.Ready():
			if paths := w.debounce.Drain(); len(paths) > 0 {
				onChange(paths)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// Close releases the operating system resources of the watcher.
func (w *Watcher) Close() error {
	w.debounce.Stop()
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	if event.Has(fsnotify.Create) && w.underRoot(path) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.addDirectory(path); err != nil {
				w.log.Warningf("cannot watch new directory %s: %s", path, err)
			}
			return
		}
	}

	if !w.relevant(event, path) {
		return
	}

	w.log.Debugf("%s %s", event.Op, path)
	w.debounce.Add(path)
}

// relevant reports whether an event should trigger a re-check.
func (w *Watcher) relevant(event fsnotify.Event, path string) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if w.files[path] {
		return true
	}
	return w.underRoot(path) && w.hasValidExtension(path) && !strings.HasPrefix(filepath.Base(path), ".")
}

func (w *Watcher) hasValidExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, validExt := range w.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}

func (w *Watcher) underRoot(path string) bool {
	for _, root := range w.roots {
		rel, err := filepath.Rel(root, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// addPath watches a directory tree, or the directory holding a single file.
// Editors often replace a file on save, which a watch on the file itself
// would not survive.
func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		w.roots = append(w.roots, path)
		return w.addDirectory(path)
	}

	w.files[path] = true
	return w.watcher.Add(filepath.Dir(path))
}

func (w *Watcher) addDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		w.log.Debugf("watching directory %s", path)
		return nil
	})
}
