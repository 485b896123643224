package store

import (
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestExplorer_NewThumbnails(t *testing.T) {
	e := NewExplorer(false)
	var changes atomic.Int32
	e.OnChange(func() { changes.Add(1) })

	if e.HasNewThumbnail("webp/a1/XYZ") {
		t.Fatal("empty set reports a thumbnail")
	}

	e.AddNewThumbnails("webp/a1/XYZ", "webp/b2/ABC")
	e.AddNewThumbnails("webp/a1/XYZ") // duplicate, no change
	e.AddNewThumbnails()

	if !e.HasNewThumbnail("webp/a1/XYZ") || !e.HasNewThumbnail("webp/b2/ABC") {
		t.Error("added thumbnails not reported")
	}
	if e.NewThumbnailCount() != 2 {
		t.Errorf("expected 2 new thumbnails, got %d", e.NewThumbnailCount())
	}
	if got := changes.Load(); got != 1 {
		t.Errorf("expected 1 change notification, got %d", got)
	}

	e.ResetNewThumbnails()
	if e.HasNewThumbnail("webp/a1/XYZ") || e.NewThumbnailCount() != 0 {
		t.Error("reset did not clear the set")
	}
}

func TestExplorer_Theme(t *testing.T) {
	e := NewExplorer(true)
	var changes atomic.Int32
	e.OnChange(func() { changes.Add(1) })

	if !e.IsDark() {
		t.Fatal("expected dark theme")
	}
	e.SetDark(true) // no change
	e.SetDark(false)
	if e.IsDark() {
		t.Error("expected light theme")
	}
	if got := changes.Load(); got != 1 {
		t.Errorf("expected 1 change notification, got %d", got)
	}
}

func TestPreferences_ApplySettings(t *testing.T) {
	def := Preferences{ThumbSize: 1}

	testCases := []struct {
		settings map[string]string
		expected Preferences
	}{
		{nil, def},
		{map[string]string{KeyTheme: "dark"}, Preferences{Dark: true, ThumbSize: 1}},
		{map[string]string{KeyThumbSize: "1.5", KeyFixedSize: "false"}, Preferences{ThumbSize: 1.5}},
		{map[string]string{KeyThumbSize: "48", KeyFixedSize: "true"}, Preferences{ThumbSize: 48, FixedSize: true}},
		{map[string]string{KeyThumbSize: "-2", KeyFixedSize: "maybe", KeyTheme: "neon"}, def},
	}

	for _, tc := range testCases {
		if got := def.ApplySettings(tc.settings); got != tc.expected {
			t.Errorf("ApplySettings(%v): expected %+v, got %+v", tc.settings, tc.expected, got)
		}
	}
}

func TestDB_SettingsRoundTrip(t *testing.T) {
	db := NewDB()
	if err := db.Open(filepath.Join(t.TempDir(), "nested", "thumbview.db")); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer db.Close()
	go db.Start()
	defer close(db.RequestChan)

	recv := func() Response {
		t.Helper()
		select {
		case resp := <-db.ResponseChan:
			return resp
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for DB response")
			return Response{}
		}
	}

	db.RequestChan <- Request{Op: FetchSettings}
	if resp := recv(); resp.Err != nil || len(resp.Settings) != 0 {
		t.Fatalf("expected empty settings, got %v (err %v)", resp.Settings, resp.Err)
	}

	db.RequestChan <- Request{Op: SaveSetting, Key: KeyTheme, Value: ThemeValue(true)}
	resp := recv()
	if resp.Err != nil || resp.Op != SaveSetting {
		t.Fatalf("unexpected save response: %+v", resp)
	}
	if resp.Settings[KeyTheme] != "dark" {
		t.Errorf("expected theme=dark, got %q", resp.Settings[KeyTheme])
	}

	// Overwrite keeps a single row
	db.RequestChan <- Request{Op: SaveSetting, Key: KeyTheme, Value: ThemeValue(false)}
	resp = recv()
	if resp.Settings[KeyTheme] != "light" || len(resp.Settings) != 1 {
		t.Errorf("expected single theme=light setting, got %v", resp.Settings)
	}
}

func TestDB_NotOpen(t *testing.T) {
	db := NewDB()
	if resp := db.fetchSettings(); !errors.Is(resp.Err, ErrNotOpen) {
		t.Errorf("expected ErrNotOpen, got %v", resp.Err)
	}
	if resp := db.saveSetting(KeyTheme, "dark"); !errors.Is(resp.Err, ErrNotOpen) {
		t.Errorf("expected ErrNotOpen, got %v", resp.Err)
	}
}
