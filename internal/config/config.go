package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Config holds all user-configurable settings loaded from config.json
type Config struct {
	Cache CacheConfig `json:"cache"`
	Watch WatchConfig `json:"watch"`
	View  ViewConfig  `json:"view"`
}

// CacheConfig locates the thumbnail cache and sizes the in-memory image cache
type CacheConfig struct {
	Root       string `json:"root"`       // Thumbnail cache root; empty = user cache dir
	MaxEntries int    `json:"maxEntries"` // Decoded images kept in memory
	MaxPixels  int    `json:"maxPixels"`  // Longest edge of a decoded image
}

// WatchConfig holds thumbnail watcher settings
type WatchConfig struct {
	Enabled    bool `json:"enabled"`
	DebounceMs int  `json:"debounceMs"`
}

// ViewConfig holds the defaults of the thumb grid. Preferences saved from
// the window override these.
type ViewConfig struct {
	Theme     string  `json:"theme"` // "light" or "dark"
	Size      float32 `json:"size"`  // Scale factor, or pixels when fixedSize
	FixedSize bool    `json:"fixedSize"`
	Columns   int     `json:"columns"` // 0 = fit to width
}

// Manager handles loading, saving, and accessing configuration
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	parseErr error // Set when the file exists but could not be parsed
}

func NewManager() *Manager {
	return &Manager{
		config: DefaultConfig(),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Root:       "",
			MaxEntries: 256,
			MaxPixels:  256,
		},
		Watch: WatchConfig{
			Enabled:    true,
			DebounceMs: 200,
		},
		View: ViewConfig{
			Theme:     "light",
			Size:      1,
			FixedSize: false,
			Columns:   0,
		},
	}
}

// ConfigPath returns the config file path: ~/.config/thumbview/config.json
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "thumbview", "config.json")
}

// Load reads the configuration from ConfigPath.
func (m *Manager) Load() error {
	return m.LoadFrom(ConfigPath())
}

// LoadFrom reads the configuration from path. A missing file is created
// with defaults; a file that fails to parse leaves the defaults in place
// and is reported by ParseError.
func (m *Manager) LoadFrom(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.path = path
	m.parseErr = nil

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		log.Printf("Config: failed to create directory %s: %v", filepath.Dir(m.path), err)
		return err
	}

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		log.Printf("Config: creating default config at %s", m.path)
		m.config = DefaultConfig()
		return m.saveUnlocked()
	}
	if err != nil {
		log.Printf("Config: failed to read %s: %v", m.path, err)
		return err
	}

	// Start from defaults so keys missing from the file keep their values
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("Config: JSON parse error: %v", err)
		m.parseErr = err
		m.config = DefaultConfig()
		return nil
	}
	cfg.normalize()

	log.Printf("Config: loaded from %s", m.path)
	m.config = cfg
	return nil
}

func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = def.Cache.MaxEntries
	}
	if c.Cache.MaxPixels <= 0 {
		c.Cache.MaxPixels = def.Cache.MaxPixels
	}
	if c.Watch.DebounceMs <= 0 {
		c.Watch.DebounceMs = def.Watch.DebounceMs
	}
	if c.View.Size <= 0 {
		c.View.Size = def.View.Size
	}
	if c.View.Theme != "dark" {
		c.View.Theme = "light"
	}
	if c.View.Columns < 0 {
		c.View.Columns = 0
	}
}

// saveUnlocked saves config without acquiring lock (caller must hold lock)
func (m *Manager) saveUnlocked() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveUnlocked()
}

// Get returns a copy of the current configuration
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return *DefaultConfig()
	}
	return *m.config
}

// ParseError returns the parsing error if config failed to load
func (m *Manager) ParseError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parseErr
}

// IsDarkMode returns true if the configured default theme is dark
func (m *Manager) IsDarkMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.View.Theme == "dark"
}
