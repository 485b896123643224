package explorer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestObjectKind_String(t *testing.T) {
	testCases := []struct {
		kind     ObjectKind
		expected string
	}{
		{KindUnknown, "Unknown"},
		{KindFolder, "Folder"},
		{KindImage, "Image"},
		{KindLabel, "Label"},
		{ObjectKind(-1), "Unknown"},
		{ObjectKind(999), "Unknown"},
	}

	for _, tc := range testCases {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("ObjectKind(%d).String(): expected %q, got %q", tc.kind, tc.expected, got)
		}
	}
}

func TestKindFromExtension(t *testing.T) {
	testCases := []struct {
		ext      string
		expected ObjectKind
	}{
		{"png", KindImage},
		{".PNG", KindImage},
		{"go", KindCode},
		{"pdf", KindDocument},
		{"mkv", KindVideo},
		{"", KindUnknown},
		{"nope", KindUnknown},
	}

	for _, tc := range testCases {
		if got := KindFromExtension(tc.ext); got != tc.expected {
			t.Errorf("KindFromExtension(%q): expected %v, got %v", tc.ext, tc.expected, got)
		}
	}
}

func TestThumbKey_FlattenAndParse(t *testing.T) {
	root := t.TempDir()
	key := ThumbKey{BaseDirectory: "webp", ShardHex: "a1", CasID: "XYZ"}

	if got := key.Flatten(); got != "webp/a1/XYZ" {
		t.Errorf("Flatten: expected %q, got %q", "webp/a1/XYZ", got)
	}

	path := key.OSPath(root)
	expected := filepath.Join(root, "thumbnails", "webp", "a1", "XYZ.webp")
	if path != expected {
		t.Errorf("OSPath: expected %q, got %q", expected, path)
	}

	parsed, err := ParseThumbPath(root, path)
	if err != nil {
		t.Fatalf("ParseThumbPath returned error: %v", err)
	}
	if parsed != key {
		t.Errorf("ParseThumbPath: expected %+v, got %+v", key, parsed)
	}
}

func TestParseThumbPath_Rejects(t *testing.T) {
	root := t.TempDir()
	testCases := []string{
		filepath.Join(root, "thumbnails", "webp", "a1"),
		filepath.Join(root, "thumbnails", "webp", "a1", "XYZ.png"),
		filepath.Join(root, "thumbnails", "webp", "a1", ".webp"),
		filepath.Join(root, "thumbnails", "webp", "a1", "b2", "XYZ.webp"),
		filepath.Join(root, "other", "webp", "a1", "XYZ.webp"),
	}

	for _, path := range testCases {
		if _, err := ParseThumbPath(root, path); err == nil {
			t.Errorf("ParseThumbPath(%q): expected error", path)
		}
	}
}

func TestItem_FirstThumbnail(t *testing.T) {
	key := ThumbKey{BaseDirectory: "webp", ShardHex: "a1", CasID: "XYZ"}

	label := Item{Type: TypeLabel, Thumbnails: []ThumbKey{key, {CasID: "other"}}}
	if got := label.FirstThumbnail(); got == nil || *got != key {
		t.Errorf("label FirstThumbnail: expected %+v, got %v", key, got)
	}

	emptyLabel := Item{Type: TypeLabel}
	if got := emptyLabel.FirstThumbnail(); got != nil {
		t.Errorf("empty label FirstThumbnail: expected nil, got %+v", got)
	}

	// A label never reports the single-thumbnail field
	odd := Item{Type: TypeLabel, Thumbnail: &key}
	if got := odd.FirstThumbnail(); got != nil {
		t.Errorf("label with Thumbnail set: expected nil, got %+v", got)
	}

	path := Item{Type: TypePath, Thumbnail: &key}
	if got := path.FirstThumbnail(); got != &key {
		t.Errorf("path FirstThumbnail: expected %+v, got %v", key, got)
	}
}

func TestItem_Key(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	testCases := []struct {
		item     Item
		expected string
	}{
		{Item{Type: TypeLocation, Item: Payload{PubID: &id, ID: 4}}, "Location:6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{Item{Type: TypeNonIndexedPath, Item: Payload{Path: "/tmp/a.png"}}, "NonIndexedPath:/tmp/a.png"},
		{Item{Type: TypeLabel, Item: Payload{ID: 7}}, "Label:7"},
	}

	for _, tc := range testCases {
		if got := tc.item.Key(); got != tc.expected {
			t.Errorf("Key(): expected %q, got %q", tc.expected, got)
		}
	}
}

func TestData(t *testing.T) {
	key := ThumbKey{BaseDirectory: "webp", ShardHex: "a1", CasID: "XYZ"}

	t.Run("label", func(t *testing.T) {
		d := Data(&Item{Type: TypeLabel, Thumbnails: []ThumbKey{key}, Item: Payload{Name: "Trips"}})
		if d.Kind != KindLabel || d.IsDir == nil || *d.IsDir {
			t.Errorf("unexpected label classification: %+v", d)
		}
		if d.CasID != "XYZ" || d.ThumbnailKey == nil || !d.HasLocalThumbnail {
			t.Errorf("label should carry its first thumbnail: %+v", d)
		}
	})

	t.Run("label without thumbnails", func(t *testing.T) {
		d := Data(&Item{Type: TypeLabel})
		if d.HasLocalThumbnail || d.ThumbnailKey != nil || d.CasID != "" {
			t.Errorf("expected no thumbnail data: %+v", d)
		}
	})

	t.Run("path with unknown dir flag", func(t *testing.T) {
		d := Data(&Item{
			Type:      TypePath,
			Thumbnail: &key,
			Item:      Payload{Name: "a", Extension: "png", CasID: "XYZ", Object: &ObjectRef{Kind: KindImage}},
		})
		if d.IsDir != nil {
			t.Errorf("expected nil IsDir, got %v", *d.IsDir)
		}
		if d.Kind != KindImage || d.Extension != "png" || d.HasLocalThumbnail {
			t.Errorf("unexpected path classification: %+v", d)
		}
	})

	t.Run("non-indexed path falls back to extension kind", func(t *testing.T) {
		d := Data(&Item{Type: TypeNonIndexedPath, Item: Payload{Name: "main.go", Extension: ".go", IsDir: Bool(false)}})
		if d.Kind != KindCode || d.Extension != "go" {
			t.Errorf("unexpected non-indexed classification: %+v", d)
		}
	})

	t.Run("object uses first file path", func(t *testing.T) {
		d := Data(&Item{
			Type: TypeObject,
			Item: Payload{Kind: KindDocument, FilePaths: []Payload{{Name: "r", Extension: "pdf", CasID: "c1"}}},
		})
		if d.Kind != KindDocument || d.Extension != "pdf" || d.CasID != "c1" || d.IsDir == nil || *d.IsDir {
			t.Errorf("unexpected object classification: %+v", d)
		}
	})

	t.Run("location", func(t *testing.T) {
		d := Data(&Item{Type: TypeLocation, Item: Payload{Name: "Photos"}})
		if d.Kind != KindFolder || d.IsDir == nil || !*d.IsDir {
			t.Errorf("unexpected location classification: %+v", d)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if d := Data(nil); d.Kind != KindUnknown || d.IsDir != nil {
			t.Errorf("unexpected nil classification: %+v", d)
		}
	})
}

func TestLoadItems(t *testing.T) {
	manifest := `[
		{"type": "Label", "thumbnails": [{"base_directory_str": "webp", "shard_hex": "a1", "cas_id": "XYZ"}], "item": {"id": 1, "name": "Trips"}},
		{"type": "Path", "thumbnail": null, "has_created_thumbnail": false, "item": {"id": 2, "name": "notes", "extension": "txt", "is_dir": null, "object": {"kind": 3}}},
		{"type": "Location", "item": {"id": 3, "pub_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "name": "Photos", "path": "/photos"}}
	]`

	items, err := LoadItems(strings.NewReader(manifest))
	if err != nil {
		t.Fatalf("LoadItems returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	if items[0].Type != TypeLabel || len(items[0].Thumbnails) != 1 || items[0].Thumbnails[0].ShardHex != "a1" {
		t.Errorf("label decoded wrong: %+v", items[0])
	}
	if items[1].Item.IsDir != nil || items[1].Thumbnail != nil || items[1].Item.Object.Kind != KindText {
		t.Errorf("path decoded wrong: %+v", items[1])
	}
	if items[2].Location() == nil || items[2].Item.PubID == nil {
		t.Errorf("location decoded wrong: %+v", items[2])
	}
	if items[1].Location() != nil {
		t.Error("path item should not report a location")
	}
}

func TestLoadItems_Errors(t *testing.T) {
	testCases := []string{
		`not json`,
		`[{"type": "Bogus", "item": {}}]`,
	}

	for _, manifest := range testCases {
		if _, err := LoadItems(strings.NewReader(manifest)); err == nil {
			t.Errorf("LoadItems(%q): expected error", manifest)
		}
	}
}
