package ui

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/justyntemme/thumbview/internal/debug"
	"github.com/justyntemme/thumbview/internal/explorer"
	"github.com/justyntemme/thumbview/internal/icons"
	"github.com/justyntemme/thumbview/internal/thumb"
)

const (
	frameScale = 80 // dp of the thumb frame at Size 1
	imageScale = 70 // dp of the picture inside it
)

// SizeConfig sizes a thumb. Size is a scale factor, or a literal size in dp
// when Fixed is set.
type SizeConfig struct {
	Size  float32
	Fixed bool
}

// DefaultSize is a thumb at scale 1.
var DefaultSize = SizeConfig{Size: 1}

func (c SizeConfig) normalized() SizeConfig {
	if c.Size <= 0 {
		c.Size = 1
	}
	return c
}

// Frame is the side of the box a thumb occupies.
func (c SizeConfig) Frame() unit.Dp {
	c = c.normalized()
	if c.Fixed {
		return unit.Dp(c.Size)
	}
	return unit.Dp(frameScale * c.Size)
}

// Picture is the side of the image or icon inside the frame.
func (c SizeConfig) Picture() unit.Dp {
	c = c.normalized()
	if c.Fixed {
		return unit.Dp(c.Size)
	}
	return unit.Dp(imageScale * c.Size)
}

// FileThumb is the per-item state of a thumb. The mode and source are
// recomputed only when the item, its freshly generated status or the theme
// change.
type FileThumb struct {
	valid    bool
	itemKey  string
	reported bool // item's own has-thumbnail flag
	newThumb bool
	dark     bool
	res      thumb.Resolution
}

// Update brings the thumb in line with item and returns its resolution.
func (ft *FileThumb) Update(r *thumb.Resolver, item *explorer.Item) thumb.Resolution {
	key := item.Key()
	reported := item.HasLocalThumbnail
	newThumb := r.IsNewThumbnail(item)
	dark := r.Dark()

	if ft.valid && ft.itemKey == key && ft.reported == reported && ft.newThumb == newThumb && ft.dark == dark {
		return ft.res
	}

	// Mode settles before the source is resolved
	data := r.ItemData(item)
	mode := thumb.SelectMode(item.Location() != nil, data.HasLocalThumbnail)
	ft.res = r.ResolveSource(mode, data)

	ft.valid = true
	ft.itemKey, ft.reported, ft.newThumb, ft.dark = key, reported, newThumb, dark
	debug.Log(debug.THUMB, "%s: mode=%v source=%v", key, ft.res.Mode, ft.res.Source)
	return ft.res
}

// Resolution returns the last resolution computed by Update.
func (ft *FileThumb) Resolution() thumb.Resolution {
	return ft.res
}

// ThumbRenderer draws file thumbs. It is shared by every thumb in a view.
type ThumbRenderer struct {
	Resolver *thumb.Resolver
	Images   *ImageCache
	Icons    *icons.Registry
}

// Layout draws item in a square frame sized by size. With nothing to show
// the frame stays empty.
func (tr *ThumbRenderer) Layout(gtx layout.Context, ft *FileThumb, item *explorer.Item, size SizeConfig) layout.Dimensions {
	frame := gtx.Dp(size.Frame())
	picture := gtx.Dp(size.Picture())
	dims := layout.Dimensions{Size: image.Pt(frame, frame)}

	res := ft.Update(tr.Resolver, item)
	if res.Source == nil {
		return dims
	}

	// Center the picture in the frame
	inset := (frame - picture) / 2
	defer op.Offset(image.Pt(inset, inset)).Push(gtx.Ops).Pop()

	switch res.Source.Kind {
	case thumb.SourceBundledIcon:
		tr.layoutIcon(gtx, res.Source.Icon, picture)
	case thumb.SourceFileURI:
		tr.layoutFile(gtx, res.Source.URI, picture)
	}
	return dims
}

func (tr *ThumbRenderer) layoutIcon(gtx layout.Context, h icons.Handle, size int) {
	reg := tr.Icons
	if reg == nil {
		reg = icons.Default
	}
	style, ok := reg.Style(h)
	if !ok {
		debug.Log(debug.UI, "no style for icon handle %d", h)
		return
	}
	drawIcon(gtx.Ops, style, size)
}

func (tr *ThumbRenderer) layoutFile(gtx layout.Context, uri string, size int) {
	if tr.Images == nil {
		return
	}
	path, err := thumb.FilePath(uri)
	if err != nil {
		debug.Log(debug.UI, "bad thumbnail URI %q: %v", uri, err)
		return
	}

	img, _, ok := tr.Images.Get(path)
	if !ok {
		// Empty until the loader has it; failures stay empty
		tr.Images.RequestLoad(path)
		return
	}

	gtx.Constraints = layout.Exact(image.Pt(size, size))
	widget.Image{
		Src:      img,
		Fit:      widget.Contain,
		Position: layout.Center,
	}.Layout(gtx)
}
