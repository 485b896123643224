package ui

import (
	"image"
	"image/color"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/justyntemme/thumbview/internal/icons"
)

// drawIcon paints a bundled icon into a size x size square at the origin.
func drawIcon(ops *op.Ops, style icons.Style, size int) {
	switch style.Shape {
	case icons.ShapeFolder:
		drawFolderIcon(ops, size, style)
	case icons.ShapeTag:
		drawTagIcon(ops, size, style)
	default:
		drawFileIcon(ops, size, style)
	}
}

func fillRect(ops *op.Ops, c color.NRGBA, x0, y0, x1, y1 int) {
	paint.FillShape(ops, c, clip.Rect{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}.Op())
}

// strokeRect draws a border of width w inside the rectangle.
func strokeRect(ops *op.Ops, c color.NRGBA, x, y, width, height, w int) {
	fillRect(ops, c, x, y, x+width, y+w)               // Top
	fillRect(ops, c, x, y+height-w, x+width, y+height) // Bottom
	fillRect(ops, c, x, y, x+w, y+height)              // Left
	fillRect(ops, c, x+width-w, y, x+width, y+height)  // Right
}

func borderWidth(size int) int {
	return max(1, size/32)
}

func drawFolderIcon(ops *op.Ops, size int, style icons.Style) {
	s := float32(size)

	bodyX := int(s * 0.12)
	bodyY := int(s * 0.28)
	bodyW := int(s * 0.76)
	bodyH := int(s * 0.58)
	bw := borderWidth(size)

	fillRect(ops, style.Body, bodyX, bodyY, bodyX+bodyW, bodyY+bodyH)
	strokeRect(ops, style.Accent, bodyX, bodyY, bodyW, bodyH, bw)

	// Tab
	tabW := int(s * 0.30)
	tabH := int(s * 0.12)
	fillRect(ops, style.Accent, bodyX, bodyY-tabH, bodyX+tabW, bodyY+bw)

	if style.Badge.A > 0 {
		drawBadge(ops, size, style.Badge)
	}
}

func drawFileIcon(ops *op.Ops, size int, style icons.Style) {
	s := float32(size)

	fileX := int(s * 0.22)
	fileY := int(s * 0.08)
	fileW := int(s * 0.56)
	fileH := int(s * 0.78)
	bw := borderWidth(size)

	fillRect(ops, style.Body, fileX, fileY, fileX+fileW, fileY+fileH)
	strokeRect(ops, style.Accent, fileX, fileY, fileW, fileH, bw)

	// Folded corner
	corner := int(s * 0.12)
	fillRect(ops, style.Accent, fileX+fileW-corner, fileY, fileX+fileW, fileY+corner)

	if style.Badge.A > 0 {
		drawBadge(ops, size, style.Badge)
	}
}

func drawTagIcon(ops *op.Ops, size int, style icons.Style) {
	s := float32(size)

	tagX := int(s * 0.14)
	tagY := int(s * 0.30)
	tagW := int(s * 0.56)
	tagH := int(s * 0.40)

	fillRect(ops, style.Accent, tagX, tagY, tagX+tagW, tagY+tagH)

	// Pointed end, approximated by narrowing steps
	steps := max(1, int(s*0.18))
	for i := 0; i < steps; i++ {
		inset := tagH * i / (2 * steps)
		fillRect(ops, style.Accent, tagX+tagW+i, tagY+inset, tagX+tagW+i+1, tagY+tagH-inset)
	}

	// Hole
	hole := max(2, int(s*0.08))
	hx := tagX + int(s*0.08)
	hy := tagY + tagH/2 - hole/2
	fillRect(ops, style.Body, hx, hy, hx+hole, hy+hole)
}

func drawBadge(ops *op.Ops, size int, c color.NRGBA) {
	s := float32(size)
	boxW := int(s * 0.44)
	boxH := int(s * 0.22)
	boxX := int(s*0.5) - boxW/2
	boxY := int(s * 0.50)
	fillRect(ops, c, boxX, boxY, boxX+boxW, boxY+boxH)
}
