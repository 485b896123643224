package store

import (
	"sync"

	"github.com/justyntemme/thumbview/internal/debug"
)

// Explorer is the UI state shared by every thumb in the window: thumbnails
// generated while the view is open and the theme flag. Thumbs only read it;
// the cache watcher and the preferences writer update it.
type Explorer struct {
	mu            sync.RWMutex
	newThumbnails map[string]struct{} // flattened thumb keys
	dark          bool
	onChange      func()
}

func NewExplorer(dark bool) *Explorer {
	return &Explorer{
		newThumbnails: make(map[string]struct{}),
		dark:          dark,
	}
}

// OnChange registers fn to run after every state change, e.g. to invalidate
// the window.
func (e *Explorer) OnChange(fn func()) {
	e.mu.Lock()
	e.onChange = fn
	e.mu.Unlock()
}

// AddNewThumbnails records freshly generated thumbnails by flattened key.
func (e *Explorer) AddNewThumbnails(keys ...string) {
	if len(keys) == 0 {
		return
	}
	e.mu.Lock()
	added := 0
	for _, k := range keys {
		if _, ok := e.newThumbnails[k]; !ok {
			e.newThumbnails[k] = struct{}{}
			added++
		}
	}
	fn := e.onChange
	e.mu.Unlock()

	debug.Log(debug.STORE, "Explorer: %d new thumbnails (%d reported)", added, len(keys))
	if added > 0 && fn != nil {
		fn()
	}
}

// HasNewThumbnail reports whether the thumbnail with the flattened key was
// generated while the view was open.
func (e *Explorer) HasNewThumbnail(flatKey string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.newThumbnails[flatKey]
	return ok
}

// NewThumbnailCount returns the size of the freshly generated set.
func (e *Explorer) NewThumbnailCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.newThumbnails)
}

// ResetNewThumbnails empties the freshly generated set, typically after the
// item list was reloaded and reports the thumbnails itself.
func (e *Explorer) ResetNewThumbnails() {
	e.mu.Lock()
	e.newThumbnails = make(map[string]struct{})
	fn := e.onChange
	e.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// IsDark reports whether the dark theme is active.
func (e *Explorer) IsDark() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dark
}

// SetDark switches the theme.
func (e *Explorer) SetDark(dark bool) {
	e.mu.Lock()
	changed := e.dark != dark
	e.dark = dark
	fn := e.onChange
	e.mu.Unlock()
	if changed && fn != nil {
		fn()
	}
}
