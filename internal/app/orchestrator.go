package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/dustin/go-humanize"

	"github.com/justyntemme/thumbview/internal/config"
	"github.com/justyntemme/thumbview/internal/explorer"
	"github.com/justyntemme/thumbview/internal/fs"
	"github.com/justyntemme/thumbview/internal/icons"
	"github.com/justyntemme/thumbview/internal/store"
	"github.com/justyntemme/thumbview/internal/thumb"
	"github.com/justyntemme/thumbview/internal/thumbcache"
	"github.com/justyntemme/thumbview/internal/ui"
)

// Source says where the explorer items come from. ItemsPath wins when both
// are set.
type Source struct {
	ItemsPath string // JSON manifest written by the indexing backend
	Dir       string // Directory listed as non-indexed paths
}

type Orchestrator struct {
	window   *app.Window
	config   *config.Manager
	fs       *fs.System
	store    *store.DB
	explorer *store.Explorer
	images   *ui.ImageCache
	ui       *ui.Renderer
	debug    bool

	cacheRoot string
	source    Source

	mu         sync.Mutex // guards everything below
	state      ui.State
	cacheStats thumbcache.Stats
	gen        int64
}

func NewOrchestrator(debug bool) *Orchestrator {
	return &Orchestrator{
		window: new(app.Window),
		config: config.NewManager(),
		fs:     fs.NewSystem(),
		store:  store.NewDB(),
		debug:  debug,
	}
}

func (o *Orchestrator) Run(src Source) error {
	if o.debug {
		log.Println("Starting thumbview in DEBUG mode")
	}

	if err := o.config.Load(); err != nil {
		log.Printf("Failed to load config: %v", err)
	}
	cfg := o.config.Get()

	o.cacheRoot = cfg.Cache.Root
	if o.cacheRoot == "" {
		o.cacheRoot = thumbcache.DefaultRoot()
	}
	o.source = src
	if o.source.ItemsPath == "" && o.source.Dir == "" {
		o.source.Dir, _ = os.Getwd()
	}

	// Init DB
	configDir, _ := os.UserConfigDir()
	if err := o.store.Open(filepath.Join(configDir, "thumbview", "thumbview.db")); err != nil {
		log.Printf("Failed to open DB: %v", err)
	}
	defer o.store.Close()

	prefs := store.Preferences{
		Dark:      cfg.View.Theme == "dark",
		ThumbSize: cfg.View.Size,
		FixedSize: cfg.View.FixedSize,
	}
	o.explorer = store.NewExplorer(prefs.Dark)
	o.explorer.OnChange(o.window.Invalidate)

	o.images = ui.NewImageCache(cfg.Cache.MaxEntries, cfg.Cache.MaxPixels)
	o.images.OnLoad = func(string) { o.window.Invalidate() }
	defer o.images.Stop()

	resolver := thumb.NewResolver(o.cacheRoot, icons.Default, o.explorer, o.explorer)
	o.ui = ui.NewRenderer(&ui.ThumbRenderer{
		Resolver: resolver,
		Images:   o.images,
		Icons:    icons.Default,
	})
	if err := o.config.ParseError(); err != nil {
		o.ui.ShowError("config.json: " + err.Error())
	}
	o.state = ui.State{
		Title:   o.title(),
		Size:    ui.SizeConfig{Size: prefs.ThumbSize, Fixed: prefs.FixedSize},
		Dark:    prefs.Dark,
		Columns: cfg.View.Columns,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Watch.Enabled {
		w, err := thumbcache.NewWatcher(o.cacheRoot, cfg.Watch.DebounceMs, o.onNewThumbnails)
		if err != nil {
			log.Printf("Failed to watch thumbnail cache: %v", err)
		} else {
			defer w.Close()
		}
	}

	// Start workers
	go o.fs.Start()
	go o.store.Start()
	go o.processEvents(ctx)
	go o.scanCache(ctx)

	o.store.RequestChan <- store.Request{Op: store.FetchSettings}
	o.reload()

	o.window.Option(app.Title("thumbview"), app.Size(unit.Dp(960), unit.Dp(640)))

	// Event loop
	var ops op.Ops
	for {
		switch e := o.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			o.mu.Lock()
			o.state.Status = o.status()
			evt := o.ui.Layout(gtx, &o.state)
			o.mu.Unlock()

			if (o.debug || debugEnabled) && evt.Action != ui.ActionNone {
				debugLog("Action: %d, Size: %+v, Dark: %v", evt.Action, evt.Size, evt.Dark)
			}

			o.handleUIEvent(evt)
			e.Frame(gtx.Ops)
		}
	}
}

func (o *Orchestrator) title() string {
	if o.source.ItemsPath != "" {
		return filepath.Base(o.source.ItemsPath)
	}
	return o.source.Dir
}

// status is the toolbar summary. Caller holds o.mu.
func (o *Orchestrator) status() string {
	s := fmt.Sprintf("%s items", humanize.Comma(int64(len(o.state.Items))))
	if o.cacheStats.Count > 0 {
		s += " · cache: " + o.cacheStats.String()
	}
	if n := o.explorer.NewThumbnailCount(); n > 0 {
		s += fmt.Sprintf(" · %d new", n)
	}
	return s
}

func (o *Orchestrator) handleUIEvent(evt ui.UIEvent) {
	switch evt.Action {
	case ui.ActionToggleTheme:
		o.mu.Lock()
		o.state.Dark = evt.Dark
		o.mu.Unlock()
		o.explorer.SetDark(evt.Dark)
		o.saveSetting(store.KeyTheme, store.ThemeValue(evt.Dark))
	case ui.ActionResize, ui.ActionToggleFixed:
		o.mu.Lock()
		o.state.Size = evt.Size
		o.mu.Unlock()
		o.saveSetting(store.KeyThumbSize, strconv.FormatFloat(float64(evt.Size.Size), 'f', -1, 32))
		o.saveSetting(store.KeyFixedSize, strconv.FormatBool(evt.Size.Fixed))
		o.window.Invalidate()
	case ui.ActionReload:
		o.reload()
	}
}

func (o *Orchestrator) saveSetting(key, value string) {
	o.store.RequestChan <- store.Request{Op: store.SaveSetting, Key: key, Value: value}
}

// reload re-reads the items. The backend reports thumbnails it has made
// since, so the freshly generated set starts over.
func (o *Orchestrator) reload() {
	o.explorer.ResetNewThumbnails()
	o.images.Clear()

	if o.source.ItemsPath != "" {
		items, err := loadManifest(o.source.ItemsPath)
		if err != nil {
			log.Printf("Failed to load items: %v", err)
			o.ui.ShowError("Failed to load items: " + err.Error())
			o.window.Invalidate()
			return
		}
		o.setItems(items)
		return
	}

	o.mu.Lock()
	o.gen++
	gen := o.gen
	o.mu.Unlock()
	o.fs.RequestChan <- fs.Request{Op: fs.FetchDir, Path: o.source.Dir, Gen: gen}
}

func loadManifest(path string) ([]explorer.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return explorer.LoadItems(f)
}

func (o *Orchestrator) setItems(items []explorer.Item) {
	o.mu.Lock()
	o.state.Items = items
	o.mu.Unlock()
	debugLog("Loaded %d items", len(items))
	o.window.Invalidate()
}

// onNewThumbnails runs on the watcher goroutine.
func (o *Orchestrator) onNewThumbnails(keys []string) {
	dir := thumbcache.ThumbDir(o.cacheRoot)
	for _, key := range keys {
		// A rewritten thumbnail must be decoded again
		o.images.Forget(filepath.Join(dir, filepath.FromSlash(key)+explorer.ThumbExt))
	}
	o.ui.ShowToast(fmt.Sprintf("%s new %s", humanize.Comma(int64(len(keys))), plural(len(keys), "thumbnail")), ui.ToastInfo)
	o.explorer.AddNewThumbnails(keys...)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func (o *Orchestrator) scanCache(ctx context.Context) {
	stats, _, err := thumbcache.Scan(ctx, o.cacheRoot)
	if err != nil {
		log.Printf("Thumbnail cache scan failed: %v", err)
		return
	}
	log.Printf("Thumbnail cache %s: %s", o.cacheRoot, stats)

	o.mu.Lock()
	o.cacheStats = stats
	o.mu.Unlock()
	o.window.Invalidate()
}

func (o *Orchestrator) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case resp := <-o.fs.ResponseChan:
			o.handleFSResponse(resp)
		case resp := <-o.store.ResponseChan:
			o.handleStoreResponse(resp)
		}
	}
}

func (o *Orchestrator) handleFSResponse(resp fs.Response) {
	if resp.Err != nil {
		log.Printf("FS Error: %v", resp.Err)
		o.ui.ShowError(resp.Err.Error())
		o.window.Invalidate()
		return
	}

	o.mu.Lock()
	stale := resp.Gen != o.gen
	o.mu.Unlock()
	if stale {
		debugLog("Dropping stale listing of %s (gen %d)", resp.Path, resp.Gen)
		return
	}
	o.setItems(resp.Items)
}

func (o *Orchestrator) handleStoreResponse(resp store.Response) {
	if resp.Err != nil {
		log.Printf("Store Error: %v", resp.Err)
		return
	}

	switch resp.Op {
	case store.FetchSettings:
		o.mu.Lock()
		prefs := store.Preferences{
			Dark:      o.state.Dark,
			ThumbSize: o.state.Size.Size,
			FixedSize: o.state.Size.Fixed,
		}.ApplySettings(resp.Settings)
		o.state.Dark = prefs.Dark
		o.state.Size = ui.SizeConfig{Size: prefs.ThumbSize, Fixed: prefs.FixedSize}
		o.mu.Unlock()
		o.explorer.SetDark(prefs.Dark)
	}
	o.window.Invalidate()
}

func Main(debug bool, src Source) {
	go func() {
		o := NewOrchestrator(debug)
		if err := o.Run(src); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
