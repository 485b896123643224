//go:build debug

// Package debug provides categorized diagnostic logging.
// Build with -tags debug to enable it.
package debug

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Enabled indicates whether debug logging is compiled in
const Enabled = true

// Category names a logging channel
type Category string

const (
	APP   Category = "APP"   // Startup, window loop, preferences
	THUMB Category = "THUMB" // Display-mode selection and source resolution
	ICON  Category = "ICON"  // Bundled icon lookups
	CACHE Category = "CACHE" // Image cache loads and evictions
	STORE Category = "STORE" // Settings database, explorer state
	UI    Category = "UI"    // Layout and drawing
	WATCH Category = "WATCH" // Thumbnail directory watcher and scans
	FS    Category = "FS"    // Directory listings

	// Verbose, off by default
	UI_LAYOUT Category = "UI_LAYOUT"
)

var (
	enabledCategories = map[Category]bool{
		APP:       true,
		THUMB:     true,
		ICON:      true,
		CACHE:     true,
		STORE:     true,
		UI:        true,
		WATCH:     true,
		FS:        true,
		UI_LAYOUT: false,
	}
	categoryMu sync.RWMutex

	logger = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
)

func init() {
	// THUMBVIEW_DEBUG=THUMB,CACHE or THUMBVIEW_DEBUG=all or THUMBVIEW_DEBUG=none
	if env := os.Getenv("THUMBVIEW_DEBUG"); env != "" {
		categoryMu.Lock()
		defer categoryMu.Unlock()

		env = strings.ToUpper(env)
		switch env {
		case "ALL":
			for cat := range enabledCategories {
				enabledCategories[cat] = true
			}
		case "NONE":
			for cat := range enabledCategories {
				enabledCategories[cat] = false
			}
		default:
			for cat := range enabledCategories {
				enabledCategories[cat] = false
			}
			for _, cat := range strings.Split(env, ",") {
				enabledCategories[Category(strings.TrimSpace(cat))] = true
			}
		}
	}
}

// Log writes a message for the category if it is enabled
func Log(cat Category, format string, args ...interface{}) {
	categoryMu.RLock()
	enabled := enabledCategories[cat]
	categoryMu.RUnlock()

	if !enabled {
		return
	}
	logger.Printf("[%s] %s", cat, fmt.Sprintf(format, args...))
}

// Enable turns a category on
func Enable(cat Category) {
	categoryMu.Lock()
	enabledCategories[cat] = true
	categoryMu.Unlock()
}

// Disable turns a category off
func Disable(cat Category) {
	categoryMu.Lock()
	enabledCategories[cat] = false
	categoryMu.Unlock()
}

// IsEnabled reports whether a category is on
func IsEnabled(cat Category) bool {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	return enabledCategories[cat]
}

// EnableAll turns every category on, verbose ones included
func EnableAll() {
	categoryMu.Lock()
	for cat := range enabledCategories {
		enabledCategories[cat] = true
	}
	categoryMu.Unlock()
}
