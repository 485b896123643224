package thumb

import (
	"github.com/justyntemme/thumbview/internal/debug"
	"github.com/justyntemme/thumbview/internal/explorer"
	"github.com/justyntemme/thumbview/internal/icons"
)

// IconResolver maps a file description to a bundled icon.
type IconResolver interface {
	Resolve(kind string, dark bool, ext string, isDir bool) icons.Handle
}

// ThumbnailSet reports thumbnails generated since the item list was loaded,
// by flattened key.
type ThumbnailSet interface {
	HasNewThumbnail(flatKey string) bool
}

// Theme reports the active colour scheme.
type Theme interface {
	IsDark() bool
}

// Resolution is the outcome of picturing one item.
type Resolution struct {
	Mode   Mode
	Source *Source // nil: draw nothing
	// Demoted is set when a thumbnail was selected but the item lacked
	// the cas id or key to address it.
	Demoted bool
}

// Resolver pictures explorer items. NewThumbnails and Theme may be nil.
type Resolver struct {
	CacheRoot     string
	Icons         IconResolver
	NewThumbnails ThumbnailSet
	Theme         Theme
}

// NewResolver creates a resolver over the thumbnail cache at root.
func NewResolver(root string, iconResolver IconResolver, newThumbs ThumbnailSet, theme Theme) *Resolver {
	return &Resolver{
		CacheRoot:     root,
		Icons:         iconResolver,
		NewThumbnails: newThumbs,
		Theme:         theme,
	}
}

// ItemData classifies it and folds in thumbnails generated since the
// backend last described the item.
func (r *Resolver) ItemData(it *explorer.Item) explorer.ItemData {
	data := explorer.Data(it)
	if !data.HasLocalThumbnail {
		data.HasLocalThumbnail = r.IsNewThumbnail(it)
	}
	return data
}

// IsNewThumbnail reports whether the item's thumbnail appeared in the
// freshly generated set.
func (r *Resolver) IsNewThumbnail(it *explorer.Item) bool {
	if r.NewThumbnails == nil || it == nil {
		return false
	}
	key := it.FirstThumbnail()
	return key != nil && r.NewThumbnails.HasNewThumbnail(key.Flatten())
}

// Resolve selects the display mode for it and resolves its source.
func (r *Resolver) Resolve(it *explorer.Item) Resolution {
	data := r.ItemData(it)
	hasLocation := it != nil && it.Location() != nil
	return r.ResolveSource(SelectMode(hasLocation, data.HasLocalThumbnail), data)
}

// ResolveSource maps an already selected mode to a source. A thumbnail
// without cas id or key falls back to the icon.
func (r *Resolver) ResolveSource(mode Mode, data explorer.ItemData) Resolution {
	dark := r.Dark()

	switch mode {
	case ModeThumbnail:
		if data.CasID != "" && data.ThumbnailKey != nil {
			return Resolution{Mode: ModeThumbnail, Source: FileURI(ThumbnailURL(r.CacheRoot, *data.ThumbnailKey))}
		}
		debug.Log(debug.THUMB, "%q: thumbnail without cas id or key, using icon", data.Name)
		res := r.ResolveSource(ModeIcon, data)
		res.Demoted = true
		return res

	case ModeLocation:
		return Resolution{Mode: ModeLocation, Source: r.icon("Folder", dark, data.Extension, true)}

	default:
		if data.IsDir == nil {
			debug.Log(debug.THUMB, "%q: directory flag unknown, drawing nothing", data.Name)
			return Resolution{Mode: ModeIcon}
		}
		return Resolution{Mode: ModeIcon, Source: r.icon(data.Kind.String(), dark, data.Extension, *data.IsDir)}
	}
}

func (r *Resolver) icon(kind string, dark bool, ext string, isDir bool) *Source {
	if r.Icons == nil {
		return nil
	}
	h := r.Icons.Resolve(kind, dark, ext, isDir)
	if !h.Valid() {
		debug.Log(debug.THUMB, "no bundled icon for kind %q ext %q", kind, ext)
		return nil
	}
	return BundledIcon(h)
}

// Dark reports whether icons resolve for the dark theme.
func (r *Resolver) Dark() bool {
	return r.Theme != nil && r.Theme.IsDark()
}
