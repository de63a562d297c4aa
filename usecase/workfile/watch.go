package workfile

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kompox/pipeops/internal/logging"
)

// DefaultSceneExtensions lists the scene file extensions watched by default.
var DefaultSceneExtensions = []string{".aep", ".ma", ".mb", ".nk", ".hip", ".blend", ".psd", ".max", ".c4d"}

// WatchInput configures Watch.
type WatchInput struct {
	// Dir is the work directory tree to watch.
	Dir string
	// Extensions restricts the files considered scenes. Empty means DefaultSceneExtensions.
	Extensions []string
	// Debounce collapses rapid saves of one file. Zero means 500ms.
	Debounce time.Duration
	// OnUpdate is called after each processed save. Optional.
	OnUpdate func(path string, out *UpdateTaskOutput, err error)
}

// Watch calls UpdateTaskFromPath whenever a scene file under Dir is
// created or written, until ctx is cancelled. New subdirectories are
// watched as they appear.
func (u *UseCase) Watch(ctx context.Context, in *WatchInput) error {
	if in == nil || in.Dir == "" {
		return fmt.Errorf("missing watch directory")
	}
	logger := logging.FromContext(ctx)
	exts := in.Extensions
	if len(exts) == 0 {
		exts = DefaultSceneExtensions
	}
	debounce := in.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, in.Dir); err != nil {
		return err
	}
	logger.Info(ctx, "watching work directory", "dir", in.Dir)

	var (
		mu      sync.Mutex
		pending = map[string]*time.Timer{}
		wg      sync.WaitGroup
	)
	defer func() {
		mu.Lock()
		for p, t := range pending {
			if t.Stop() {
				wg.Done()
			}
			delete(pending, p)
		}
		mu.Unlock()
		wg.Wait()
	}()

	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := pending[path]; ok && t.Stop() {
			wg.Done()
		}
		wg.Add(1)
		var t *time.Timer
		t = time.AfterFunc(debounce, func() {
			defer wg.Done()
			mu.Lock()
			if pending[path] == t {
				delete(pending, path)
			}
			mu.Unlock()
			out, err := u.UpdateTaskFromPath(ctx, &UpdateTaskInput{Path: path})
			if err != nil {
				logger.Error(ctx, "failed to update task from saved scene", "path", path, "error", err)
			}
			if in.OnUpdate != nil {
				in.OnUpdate(path, out, err)
			}
		})
		pending[path] = t
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, ev.Name); err != nil {
						logger.Warn(ctx, "failed to watch new directory", "dir", ev.Name, "error", err)
					}
					continue
				}
			}
			if isScene(ev.Name, exts) {
				schedule(ev.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn(ctx, "watcher error", "error", err)
		}
	}
}

func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && p != root {
			return filepath.SkipDir
		}
		if err := w.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}

func isScene(path string, exts []string) bool {
	base := filepath.Base(path)
	// editors and hosts write temp and backup files next to the scene
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return slices.Contains(exts, strings.ToLower(filepath.Ext(base)))
}
