package ui

import (
	"container/list"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"gioui.org/op/paint"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/justyntemme/thumbview/internal/debug"
)

// ImageCache keeps decoded thumbnails in memory in front of the files on
// disk. Images are decoded on a background goroutine and scaled down to
// maxPixels on their longest edge; least recently used entries are evicted
// past maxEntries.
type ImageCache struct {
	mu        sync.Mutex
	cache     map[string]*imageEntry // path -> entry
	lru       *list.List             // front = most recent
	maxSize   int
	maxPixels int

	pendingMu sync.Mutex
	pending   map[string]bool // paths queued or loading
	failed    map[string]bool // paths that could not be decoded
	loadChan  chan string
	stopChan  chan struct{}
	stopOnce  sync.Once

	// OnLoad runs on the loader goroutine after a path was cached
	OnLoad func(path string)
}

type imageEntry struct {
	path    string
	img     paint.ImageOp
	size    image.Point // Original dimensions
	element *list.Element
}

// NewImageCache creates a cache and starts its loader.
func NewImageCache(maxEntries, maxPixels int) *ImageCache {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	ic := &ImageCache{
		cache:     make(map[string]*imageEntry),
		lru:       list.New(),
		maxSize:   maxEntries,
		maxPixels: maxPixels,
		pending:   make(map[string]bool),
		failed:    make(map[string]bool),
		loadChan:  make(chan string, 100),
		stopChan:  make(chan struct{}),
	}
	go ic.backgroundLoader()
	return ic
}

// Get returns the cached image for path and its original size.
func (ic *ImageCache) Get(path string) (paint.ImageOp, image.Point, bool) {
	ic.mu.Lock()
	defer ic.mu.Unlock()

	entry, ok := ic.cache[path]
	if !ok {
		return paint.ImageOp{}, image.Point{}, false
	}
	ic.lru.MoveToFront(entry.element)
	return entry.img, entry.size, true
}

// Failed reports whether loading path failed. Failed paths are not retried
// until Forget or Clear.
func (ic *ImageCache) Failed(path string) bool {
	ic.pendingMu.Lock()
	defer ic.pendingMu.Unlock()
	return ic.failed[path]
}

// RequestLoad queues path for loading unless it is cached, queued, or
// known to fail.
func (ic *ImageCache) RequestLoad(path string) {
	ic.mu.Lock()
	_, cached := ic.cache[path]
	ic.mu.Unlock()
	if cached {
		return
	}

	ic.pendingMu.Lock()
	if ic.pending[path] || ic.failed[path] {
		ic.pendingMu.Unlock()
		return
	}
	ic.pending[path] = true
	ic.pendingMu.Unlock()

	select {
	case ic.loadChan <- path:
	default:
		// Queue full; the next frame asks again
		ic.pendingMu.Lock()
		delete(ic.pending, path)
		ic.pendingMu.Unlock()
	}
}

// Forget drops path from the cache and from the failure list, so the next
// request reloads it from disk.
func (ic *ImageCache) Forget(path string) {
	ic.mu.Lock()
	if entry, ok := ic.cache[path]; ok {
		ic.lru.Remove(entry.element)
		delete(ic.cache, path)
	}
	ic.mu.Unlock()

	ic.pendingMu.Lock()
	delete(ic.failed, path)
	ic.pendingMu.Unlock()
}

// Clear removes all entries from the cache.
func (ic *ImageCache) Clear() {
	ic.mu.Lock()
	ic.cache = make(map[string]*imageEntry)
	ic.lru = list.New()
	ic.mu.Unlock()

	ic.pendingMu.Lock()
	ic.pending = make(map[string]bool)
	ic.failed = make(map[string]bool)
	ic.pendingMu.Unlock()

	debug.Log(debug.CACHE, "ImageCache: cleared")
}

// Stop shuts down the background loader.
func (ic *ImageCache) Stop() {
	ic.stopOnce.Do(func() { close(ic.stopChan) })
}

// Size returns the number of cached images.
func (ic *ImageCache) Size() int {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return len(ic.cache)
}

func (ic *ImageCache) backgroundLoader() {
	for {
		select {
		case <-ic.stopChan:
			return
		case path := <-ic.loadChan:
			ic.load(path)
		}
	}
}

func (ic *ImageCache) load(path string) {
	ok := false
	defer func() {
		ic.pendingMu.Lock()
		delete(ic.pending, path)
		if !ok {
			ic.failed[path] = true
		}
		ic.pendingMu.Unlock()
	}()

	img, err := decodeFile(path)
	if err != nil {
		debug.Log(debug.CACHE, "ImageCache: failed to load %s: %v", path, err)
		return
	}

	original := img.Bounds().Size()
	scaled := scaleImage(img, ic.maxPixels)
	ic.put(path, paint.NewImageOp(scaled), original)
	ok = true

	debug.Log(debug.CACHE, "ImageCache: cached %s (original %dx%d, scaled %dx%d)",
		path, original.X, original.Y, scaled.Bounds().Dx(), scaled.Bounds().Dy())

	if ic.OnLoad != nil {
		ic.OnLoad(path)
	}
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// scaleImage fits src within maxPixels on its longest edge.
func scaleImage(src image.Image, maxPixels int) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if maxPixels <= 0 || (width <= maxPixels && height <= maxPixels) {
		return src
	}

	var scale float64
	if width > height {
		scale = float64(maxPixels) / float64(width)
	} else {
		scale = float64(maxPixels) / float64(height)
	}
	newWidth := max(1, int(float64(width)*scale))
	newHeight := max(1, int(float64(height)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func (ic *ImageCache) put(path string, img paint.ImageOp, size image.Point) {
	ic.mu.Lock()
	defer ic.mu.Unlock()

	if entry, ok := ic.cache[path]; ok {
		entry.img = img
		entry.size = size
		ic.lru.MoveToFront(entry.element)
		return
	}

	for ic.lru.Len() >= ic.maxSize {
		oldest := ic.lru.Back()
		if oldest == nil {
			break
		}
		old := oldest.Value.(*imageEntry)
		delete(ic.cache, old.path)
		ic.lru.Remove(oldest)
		debug.Log(debug.CACHE, "ImageCache: evicted %s", old.path)
	}

	entry := &imageEntry{path: path, img: img, size: size}
	entry.element = ic.lru.PushFront(entry)
	ic.cache[path] = entry
}
