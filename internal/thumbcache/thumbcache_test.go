package thumbcache

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/justyntemme/thumbview/internal/explorer"
)

func writeThumb(t *testing.T, root string, key explorer.ThumbKey, data string) {
	t.Helper()
	path := key.OSPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create shard dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write thumbnail: %v", err)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeThumb(t, root, explorer.ThumbKey{BaseDirectory: "webp", ShardHex: "a1", CasID: "XYZ"}, "1234")
	writeThumb(t, root, explorer.ThumbKey{BaseDirectory: "webp", ShardHex: "b2", CasID: "ABC"}, "123456")

	// Files that are not thumbnails are ignored
	if err := os.WriteFile(filepath.Join(ThumbDir(root), "webp", "a1", "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(ThumbDir(root), "stray.webp"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, keys, err := Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if stats.Count != 2 || stats.Bytes != 10 {
		t.Errorf("expected 2 thumbnails / 10 bytes, got %+v", stats)
	}
	expected := []string{"webp/a1/XYZ", "webp/b2/ABC"}
	if !reflect.DeepEqual(keys, expected) {
		t.Errorf("expected keys %v, got %v", expected, keys)
	}
	if stats.String() != "2 thumbnails, 10 B" {
		t.Errorf("unexpected stats string %q", stats.String())
	}
}

func TestScan_MissingCache(t *testing.T) {
	stats, keys, err := Scan(context.Background(), filepath.Join(t.TempDir(), "absent"))
	if err != nil || stats.Count != 0 || keys != nil {
		t.Errorf("expected empty result, got %+v %v %v", stats, keys, err)
	}
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeThumb(t, root, explorer.ThumbKey{BaseDirectory: "webp", ShardHex: "a1", CasID: "XYZ"}, "1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Scan(ctx, root); err == nil {
		t.Error("expected error from cancelled scan")
	}
}

func TestWatcher_ReportsNewThumbnails(t *testing.T) {
	root := t.TempDir()
	existing := explorer.ThumbKey{BaseDirectory: "webp", ShardHex: "a1", CasID: "OLD"}
	writeThumb(t, root, existing, "old")

	got := make(chan []string, 10)
	w, err := NewWatcher(root, 50, func(keys []string) { got <- keys })
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}
	defer w.Close()

	if w.Watching() != 3 {
		t.Errorf("expected thumbnails, base and shard dirs watched, got %d", w.Watching())
	}

	// New file in a watched shard, then a brand new shard directory
	writeThumb(t, root, explorer.ThumbKey{BaseDirectory: "webp", ShardHex: "a1", CasID: "NEW"}, "new")
	writeThumb(t, root, explorer.ThumbKey{BaseDirectory: "webp", ShardHex: "c3", CasID: "FRESH"}, "fresh")

	seen := make(map[string]bool)
	deadline := time.After(5 * time.Second)
	for !seen["webp/a1/NEW"] || !seen["webp/c3/FRESH"] {
		select {
		case keys := <-got:
			for _, k := range keys {
				seen[k] = true
			}
		case <-deadline:
			t.Fatalf("timed out, saw %v", seen)
		}
	}
	if seen["webp/a1/OLD"] {
		t.Error("thumbnail present at startup was reported as new")
	}
}
