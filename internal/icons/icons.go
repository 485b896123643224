// Package icons is the registry of icons bundled with the application.
// Icons are addressed by name ("Folder", "Image_Light", "Document_pdf")
// and handed out as numeric handles.
package icons

import (
	"image/color"
	"sort"
	"strings"

	"github.com/justyntemme/thumbview/internal/debug"
)

// Handle refers to a bundled icon. The zero Handle refers to nothing.
type Handle int

// Valid reports whether h refers to a bundled icon.
func (h Handle) Valid() bool { return h > 0 }

// Shape selects the glyph drawn for an icon
type Shape int

const (
	ShapeFile Shape = iota
	ShapeFolder
	ShapeTag
)

// Style describes how a bundled icon is drawn.
type Style struct {
	Shape  Shape
	Body   color.NRGBA // Fill
	Accent color.NRGBA // Border, tab and folded corner
	Badge  color.NRGBA // Extension badge, transparent when none
}

const lightSuffix = "_Light"

type family struct {
	name   string
	shape  Shape
	accent color.NRGBA
}

var (
	colBlue   = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
	colGreen  = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
	colRed    = color.NRGBA{R: 244, G: 67, B: 54, A: 255}
	colPurple = color.NRGBA{R: 130, G: 80, B: 160, A: 255}
	colOrange = color.NRGBA{R: 228, G: 77, B: 38, A: 255}
	colAmber  = color.NRGBA{R: 255, G: 179, B: 0, A: 255}
	colTeal   = color.NRGBA{R: 0, G: 150, B: 136, A: 255}
	colGray   = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	colSlate  = color.NRGBA{R: 96, G: 125, B: 139, A: 255}
	colGoBlue = color.NRGBA{R: 0, G: 173, B: 216, A: 255}
	colJSYel  = color.NRGBA{R: 247, G: 223, B: 30, A: 255}
	colRust   = color.NRGBA{R: 222, G: 165, B: 132, A: 255}
	colPyBlue = color.NRGBA{R: 55, G: 118, B: 171, A: 255}
)

var families = []family{
	{"Folder", ShapeFolder, colBlue},
	{"Document", ShapeFile, colBlue},
	{"Text", ShapeFile, colGray},
	{"Package", ShapeFile, colAmber},
	{"Image", ShapeFile, colGreen},
	{"Screenshot", ShapeFile, colGreen},
	{"Album", ShapeFolder, colGreen},
	{"Audio", ShapeFile, colPurple},
	{"Video", ShapeFile, colRed},
	{"Archive", ShapeFile, colAmber},
	{"Executable", ShapeFile, colSlate},
	{"Alias", ShapeFile, colSlate},
	{"Encrypted", ShapeFile, colRed},
	{"Key", ShapeFile, colAmber},
	{"Link", ShapeFile, colBlue},
	{"Widget", ShapeFile, colTeal},
	{"Collection", ShapeFolder, colTeal},
	{"Font", ShapeFile, colGray},
	{"Mesh", ShapeFile, colTeal},
	{"Code", ShapeFile, colOrange},
	{"Database", ShapeFile, colSlate},
	{"Book", ShapeFile, colOrange},
	{"Config", ShapeFile, colPurple},
	{"Dotfile", ShapeFile, colGray},
	{"Label", ShapeTag, colPurple},
	{"Tag", ShapeTag, colPurple},
}

// Extension-specific variants, keyed "<Kind>_<ext>".
var extensionBadges = map[string]color.NRGBA{
	"Document_pdf":  colRed,
	"Document_doc":  colBlue,
	"Document_docx": colBlue,
	"Document_xls":  colGreen,
	"Document_xlsx": colGreen,
	"Document_ppt":  colOrange,
	"Code_go":       colGoBlue,
	"Code_js":       colJSYel,
	"Code_ts":       colPyBlue,
	"Code_rs":       colRust,
	"Code_py":       colPyBlue,
	"Code_html":     colOrange,
	"Code_css":      colBlue,
	"Image_svg":     colAmber,
	"Image_gif":     colPurple,
	"Config_json":   colPurple,
	"Config_yaml":   colRed,
}

// Registry maps icon names to handles and styles.
type Registry struct {
	names  []string // handle-1 -> name
	styles []Style
	byName map[string]Handle
}

// Default is the registry of icons shipped with the application.
var Default = newDefault()

func newDefault() *Registry {
	r := &Registry{byName: make(map[string]Handle)}
	for _, f := range families {
		r.add(f.name, Style{Shape: f.shape, Body: darkBody(f.accent), Accent: f.accent})
		r.add(f.name+lightSuffix, Style{Shape: f.shape, Body: lightBody(f.accent), Accent: f.accent})
	}
	names := make([]string, 0, len(extensionBadges))
	for name := range extensionBadges {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kind := name[:strings.IndexByte(name, '_')]
		dark, _ := r.Style(r.byName[kind])
		light, _ := r.Style(r.byName[kind+lightSuffix])
		dark.Badge = extensionBadges[name]
		light.Badge = extensionBadges[name]
		r.add(name, dark)
		r.add(name+lightSuffix, light)
	}
	return r
}

func (r *Registry) add(name string, s Style) {
	r.names = append(r.names, name)
	r.styles = append(r.styles, s)
	r.byName[name] = Handle(len(r.names))
}

// Lookup returns the handle for a bundled icon name.
func (r *Registry) Lookup(name string) (Handle, bool) {
	h, ok := r.byName[name]
	return h, ok
}

// Name returns the icon name for a handle, or "" when the handle is unknown.
func (r *Registry) Name(h Handle) string {
	if !h.Valid() || int(h) > len(r.names) {
		return ""
	}
	return r.names[h-1]
}

// Style returns how to draw the icon behind h.
func (r *Registry) Style(h Handle) (Style, bool) {
	if !h.Valid() || int(h) > len(r.styles) {
		return Style{}, false
	}
	return r.styles[h-1], true
}

// Resolve picks the icon for a file. Directories always get the folder
// icon. Otherwise the most specific bundled icon wins: kind plus extension,
// then kind, then the generic document.
func (r *Registry) Resolve(kind string, dark bool, ext string, isDir bool) Handle {
	if isDir {
		if dark {
			return r.byName["Folder"]
		}
		return r.byName["Folder"+lightSuffix]
	}

	document := "Document"
	specific := ""
	if ext != "" {
		specific = kind + "_" + strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	if !dark {
		kind += lightSuffix
		document += lightSuffix
		if specific != "" {
			specific += lightSuffix
		}
	}

	if h, ok := r.byName[specific]; ok && specific != "" {
		return h
	}
	if h, ok := r.byName[kind]; ok {
		return h
	}
	debug.Log(debug.ICON, "no icon for kind %q ext %q, using %s", kind, ext, document)
	return r.byName[document]
}

func darkBody(accent color.NRGBA) color.NRGBA {
	return color.NRGBA{R: accent.R / 4, G: accent.G / 4, B: accent.B / 4, A: 255}
}

func lightBody(accent color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(min(255, int(accent.R)+180)),
		G: uint8(min(255, int(accent.G)+180)),
		B: uint8(min(255, int(accent.B)+180)),
		A: 255,
	}
}
