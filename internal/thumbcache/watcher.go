package thumbcache

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/justyntemme/thumbview/internal/debug"
	"github.com/justyntemme/thumbview/internal/explorer"
)

// Watcher reports thumbnails as they are written into the cache. fsnotify
// is not recursive, so base and shard directories are added as they appear.
// A thumbnail is reported once its file has been quiet for the debounce
// interval, so half-written files are not picked up.
type Watcher struct {
	root     string
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	watching map[string]bool
	onNew    func(keys []string)
	done     chan struct{}
	wg       sync.WaitGroup
	debounce time.Duration
}

// NewWatcher starts watching the cache under root. onNew receives batches
// of flattened keys from the watcher goroutine.
func NewWatcher(root string, debounceMs int, onNew func(keys []string)) (*Watcher, error) {
	if debounceMs <= 0 {
		debounceMs = 200
	}

	dir := ThumbDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:     root,
		watcher:  fw,
		watching: make(map[string]bool),
		onNew:    onNew,
		done:     make(chan struct{}),
		debounce: time.Duration(debounceMs) * time.Millisecond,
	}

	pending := make(map[string]time.Time)
	if err := w.watchTree(dir, pending); err != nil {
		fw.Close()
		return nil, err
	}
	// Thumbnails already on disk were reported by the backend, not generated now
	clear(pending)

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// depth of dir below the thumbnails directory: 0 itself, 1 base, 2 shard
func (w *Watcher) depth(dir string) int {
	rel, err := filepath.Rel(ThumbDir(w.root), dir)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}

// watchTree adds dir and the directories below it down to shard level.
// Thumbnails found in directories that appear after startup are queued in
// pending, since their create events fired before the watch existed.
func (w *Watcher) watchTree(dir string, pending map[string]time.Time) error {
	if err := w.add(dir); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if w.depth(full) <= 2 {
				if err := w.watchTree(full, pending); err != nil {
					debug.Log(debug.WATCH, "Cannot watch %s: %v", full, err)
				}
			}
			continue
		}
		if key, err := explorer.ParseThumbPath(w.root, full); err == nil {
			pending[key.Flatten()] = time.Now()
		}
	}
	return nil
}

func (w *Watcher) add(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watching[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.watching[dir] = true
	debug.Log(debug.WATCH, "Now watching %s", dir)
	return nil
}

func (w *Watcher) run() {
	defer w.wg.Done()

	pending := make(map[string]time.Time) // flattened key -> last event
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				if w.depth(event.Name) <= 2 {
					if err := w.watchTree(event.Name, pending); err != nil {
						debug.Log(debug.WATCH, "Cannot watch %s: %v", event.Name, err)
					}
				}
				continue
			}

			key, err := explorer.ParseThumbPath(w.root, event.Name)
			if err != nil {
				continue
			}
			pending[key.Flatten()] = time.Now()
			debug.Log(debug.WATCH, "FSNotify %s on %s", event.Op, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			debug.Log(debug.WATCH, "FSNotify error: %v", err)

		case <-ticker.C:
			now := time.Now()
			var ready []string
			for key, last := range pending {
				if now.Sub(last) >= w.debounce {
					ready = append(ready, key)
					delete(pending, key)
				}
			}
			if len(ready) > 0 && w.onNew != nil {
				sort.Strings(ready)
				debug.Log(debug.WATCH, "%d new thumbnails", len(ready))
				w.onNew(ready)
			}
		}
	}
}

// Watching returns the number of watched directories.
func (w *Watcher) Watching() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watching)
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
