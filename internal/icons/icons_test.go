package icons

import "testing"

func TestResolve(t *testing.T) {
	testCases := []struct {
		kind     string
		dark     bool
		ext      string
		isDir    bool
		expected string
	}{
		{"Folder", true, "", true, "Folder"},
		{"Folder", false, "", true, "Folder_Light"},
		{"Image", true, "png", true, "Folder"}, // directory wins over kind
		{"Image", true, "png", false, "Image"},
		{"Image", false, "png", false, "Image_Light"},
		{"Document", true, "pdf", false, "Document_pdf"},
		{"Document", false, "PDF", false, "Document_pdf_Light"},
		{"Code", true, ".go", false, "Code_go"},
		{"Code", true, "", false, "Code"},
		{"Unknown", true, "bin", false, "Document"},
		{"Unknown", false, "", false, "Document_Light"},
		{"Label", true, "", false, "Label"},
	}

	for _, tc := range testCases {
		h := Default.Resolve(tc.kind, tc.dark, tc.ext, tc.isDir)
		if !h.Valid() {
			t.Errorf("Resolve(%q, %v, %q, %v): invalid handle", tc.kind, tc.dark, tc.ext, tc.isDir)
			continue
		}
		if got := Default.Name(h); got != tc.expected {
			t.Errorf("Resolve(%q, %v, %q, %v): expected %q, got %q", tc.kind, tc.dark, tc.ext, tc.isDir, tc.expected, got)
		}
	}
}

func TestLookupAndStyle(t *testing.T) {
	h, ok := Default.Lookup("Folder")
	if !ok {
		t.Fatal("Folder icon not bundled")
	}
	style, ok := Default.Style(h)
	if !ok {
		t.Fatal("no style for Folder")
	}
	if style.Shape != ShapeFolder {
		t.Errorf("expected folder shape, got %d", style.Shape)
	}

	pdf, _ := Default.Lookup("Document_pdf")
	if s, _ := Default.Style(pdf); s.Badge.A == 0 {
		t.Error("Document_pdf should carry a badge colour")
	}

	if _, ok := Default.Lookup("Nope"); ok {
		t.Error("unexpected icon for unknown name")
	}
}

func TestInvalidHandles(t *testing.T) {
	for _, h := range []Handle{0, -1, Handle(1 << 20)} {
		if Default.Name(h) != "" {
			t.Errorf("Name(%d): expected empty", h)
		}
		if _, ok := Default.Style(h); ok {
			t.Errorf("Style(%d): expected not ok", h)
		}
	}
}
