// Package watch reports changes to sheet files with debouncing, so that an
// editor saving a file in several steps triggers a single reload.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/vk/cellgrid/internal/ctxlog"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 200 * time.Millisecond

// ChangeHandler receives the sorted, de-duplicated paths changed during one
// debounce window. It runs on the watcher's goroutine.
type ChangeHandler func(ctx context.Context, paths []string)

// Watcher watches sheet files and the directories that contain them.
type Watcher struct {
	fs        *fsnotify.Watcher
	debounce  time.Duration
	extension string

	// dirs are roots watched recursively; files are roots watched alone.
	dirs  []string
	files map[string]struct{}
}

// New starts watching paths. A directory is watched recursively, including
// subdirectories created later. A file is watched through its parent
// directory, because editors often replace files by renaming over them, but
// only events for that file are reported.
func New(paths []string, extension string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fs:        fsw,
		debounce:  debounce,
		extension: extension,
		files:     make(map[string]struct{}),
	}
	for _, path := range paths {
		if err := w.addRoot(filepath.Clean(path)); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	if !info.IsDir() {
		w.files[path] = struct{}{}
		return w.fs.Add(filepath.Dir(path))
	}
	w.dirs = append(w.dirs, path)
	_, err = w.addTree(path)
	return err
}

// addTree watches dir and every directory below it. It returns the sheet
// files already present, which may have been written before the watch began.
func (w *Watcher) addTree(dir string) ([]string, error) {
	var existing []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fs.Add(p)
		}
		if filepath.Ext(p) == w.extension {
			existing = append(existing, p)
		}
		return nil
	})
	return existing, err
}

// Run delivers debounced changes to handle until ctx is canceled or Close
// is called. It returns nil in both cases.
func (w *Watcher) Run(ctx context.Context, handle ChangeHandler) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Watcher started.", "debounce", w.debounce)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watcher stopped.")
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && w.underDirRoot(event.Name) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					existing, err := w.addTree(event.Name)
					if err != nil {
						logger.Warn("Failed to watch new directory.", "path", event.Name, "error", err)
					}
					logger.Debug("Watching new directory.", "path", event.Name, "sheet_files", len(existing))
					for _, p := range existing {
						pending[p] = struct{}{}
					}
					if len(existing) > 0 {
						timer.Reset(w.debounce)
					}
					continue
				}
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("File event.", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error.", "error", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			slices.Sort(paths)
			clear(pending)
			logger.Info("Sheet files changed.", slog.Int("count", len(paths)))
			handle(ctx, paths)
		}
	}
}

// relevant keeps content changes to sheet files under a watched root.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != w.extension {
		return false
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if _, ok := w.files[filepath.Clean(event.Name)]; ok {
		return true
	}
	return w.underDirRoot(event.Name)
}

func (w *Watcher) underDirRoot(path string) bool {
	for _, root := range w.dirs {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Close stops watching and releases the underlying resources.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
