package explorer

import "strings"

// ItemData is the flattened view of an item used to pick its visual.
type ItemData struct {
	Name              string
	Kind              ObjectKind
	IsDir             *bool // nil when the backend does not know
	Extension         string
	CasID             string
	ThumbnailKey      *ThumbKey
	HasLocalThumbnail bool
}

// Data classifies an item.
func Data(it *Item) ItemData {
	var d ItemData
	if it == nil {
		return d
	}
	p := it.Item

	switch it.Type {
	case TypePath:
		d.Name, d.Extension, d.IsDir, d.CasID = p.Name, p.Extension, p.IsDir, p.CasID
		if p.Object != nil {
			d.Kind = p.Object.Kind
		}
		d.ThumbnailKey = it.Thumbnail
		d.HasLocalThumbnail = it.HasLocalThumbnail

	case TypeObject:
		d.Kind = p.Kind
		d.IsDir = Bool(false)
		d.CasID = p.CasID
		if len(p.FilePaths) > 0 {
			fp := p.FilePaths[0]
			d.Name, d.Extension = fp.Name, fp.Extension
			if fp.IsDir != nil {
				d.IsDir = fp.IsDir
			}
			if d.CasID == "" {
				d.CasID = fp.CasID
			}
		}
		d.ThumbnailKey = it.Thumbnail
		d.HasLocalThumbnail = it.HasLocalThumbnail

	case TypeNonIndexedPath:
		d.Name, d.Extension, d.IsDir, d.CasID = p.Name, p.Extension, p.IsDir, p.CasID
		d.Kind = p.Kind
		if d.Kind == KindUnknown && d.Extension != "" {
			d.Kind = KindFromExtension(d.Extension)
		}
		d.ThumbnailKey = it.Thumbnail
		d.HasLocalThumbnail = it.HasLocalThumbnail

	case TypeLocation:
		d.Name = p.Name
		d.Kind = KindFolder
		d.IsDir = Bool(true)

	case TypeSpacedropPeer:
		d.Name = p.Name
		d.IsDir = Bool(false)

	case TypeLabel:
		d.Name = p.Name
		d.Kind = KindLabel
		d.IsDir = Bool(false)
		if key := it.FirstThumbnail(); key != nil {
			d.ThumbnailKey = key
			d.CasID = key.CasID
			d.HasLocalThumbnail = true
		}
	}

	d.Extension = strings.TrimPrefix(d.Extension, ".")
	return d
}
