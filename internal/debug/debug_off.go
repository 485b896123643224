//go:build !debug

// Package debug provides categorized diagnostic logging.
// This is the no-op version for release builds.
package debug

// Enabled indicates whether debug logging is compiled in
const Enabled = false

// Category names a logging channel
type Category string

const (
	APP       Category = "APP"
	THUMB     Category = "THUMB"
	ICON      Category = "ICON"
	CACHE     Category = "CACHE"
	STORE     Category = "STORE"
	UI        Category = "UI"
	WATCH     Category = "WATCH"
	FS        Category = "FS"
	UI_LAYOUT Category = "UI_LAYOUT"
)

// Log is a no-op in release builds
func Log(cat Category, format string, args ...interface{}) {}

// Enable is a no-op in release builds
func Enable(cat Category) {}

// Disable is a no-op in release builds
func Disable(cat Category) {}

// IsEnabled always returns false in release builds
func IsEnabled(cat Category) bool { return false }

// EnableAll is a no-op in release builds
func EnableAll() {}
