package ui

import "image/color"

var (
	colWhite     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colBlack     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colGray      = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	colLightGray = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colSidebar   = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	colAccent    = color.NRGBA{R: 66, G: 133, B: 244, A: 255}

	// Dark theme
	colDarkBg      = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	colDarkToolbar = color.NRGBA{R: 45, G: 45, B: 45, A: 255}
	colDarkText    = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
)

type palette struct {
	bg, toolbar, text, muted color.NRGBA
}

func paletteFor(dark bool) palette {
	if dark {
		return palette{bg: colDarkBg, toolbar: colDarkToolbar, text: colDarkText, muted: colLightGray}
	}
	return palette{bg: colWhite, toolbar: colSidebar, text: colBlack, muted: colGray}
}
