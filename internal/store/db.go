// Package store holds the explorer UI state and the persisted view
// preferences.
package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/justyntemme/thumbview/internal/debug"
)

type EventType int

const (
	FetchSettings EventType = iota
	SaveSetting
)

// Setting keys
const (
	KeyTheme     = "theme"      // "dark" | "light"
	KeyThumbSize = "thumb_size" // scale factor or pixel size
	KeyFixedSize = "fixed_size" // "true" | "false"
)

type Request struct {
	Op    EventType
	Key   string
	Value string
}

type Response struct {
	Op       EventType
	Settings map[string]string
	Err      error
}

var ErrNotOpen = errors.New("settings database is not open")

// DB persists view preferences in SQLite. Requests are served by Start on
// its own goroutine; every request answers with the full settings map.
type DB struct {
	conn         *sql.DB
	RequestChan  chan Request
	ResponseChan chan Response
}

func NewDB() *DB {
	return &DB{
		RequestChan:  make(chan Request, 10),
		ResponseChan: make(chan Response, 10),
	}
}

// Open initializes the database connection and schema
func (d *DB) Open(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	// WAL lets the window read while a save is in flight
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return err
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL;"); err != nil {
		db.Close()
		return err
	}

	query := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return err
	}

	d.conn = db
	debug.Log(debug.STORE, "Opened settings DB at %s", dbPath)
	return nil
}

// Start serves requests until RequestChan is closed.
func (d *DB) Start() {
	for req := range d.RequestChan {
		switch req.Op {
		case FetchSettings:
			d.ResponseChan <- d.fetchSettings()
		case SaveSetting:
			d.ResponseChan <- d.saveSetting(req.Key, req.Value)
		}
	}
}

func (d *DB) fetchSettings() Response {
	if d.conn == nil {
		return Response{Op: FetchSettings, Err: ErrNotOpen}
	}
	rows, err := d.conn.Query("SELECT key, value FROM settings")
	if err != nil {
		return Response{Op: FetchSettings, Err: err}
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err == nil {
			settings[key] = value
		}
	}
	return Response{Op: FetchSettings, Settings: settings, Err: rows.Err()}
}

func (d *DB) saveSetting(key, value string) Response {
	if d.conn == nil {
		return Response{Op: SaveSetting, Err: ErrNotOpen}
	}
	_, err := d.conn.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) "+
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
		key, value)
	if err != nil {
		debug.Log(debug.STORE, "Error saving setting %s: %v", key, err)
		return Response{Op: SaveSetting, Err: err}
	}
	resp := d.fetchSettings()
	resp.Op = SaveSetting
	return resp
}

func (d *DB) Close() {
	if d.conn != nil {
		d.conn.Close()
	}
}

// Preferences are the view settings kept across runs.
type Preferences struct {
	Dark      bool
	ThumbSize float32
	FixedSize bool
}

// ApplySettings overlays stored settings on p. Malformed values are ignored.
func (p Preferences) ApplySettings(settings map[string]string) Preferences {
	switch settings[KeyTheme] {
	case "dark":
		p.Dark = true
	case "light":
		p.Dark = false
	}
	if v, err := strconv.ParseFloat(settings[KeyThumbSize], 32); err == nil && v > 0 {
		p.ThumbSize = float32(v)
	}
	if v, err := strconv.ParseBool(settings[KeyFixedSize]); err == nil {
		p.FixedSize = v
	}
	return p
}

// ThemeValue is the stored form of the theme flag.
func ThemeValue(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
