// Package thumb decides how an explorer item is pictured and resolves the
// resource to draw: a rendered thumbnail from the cache, the folder icon of
// a location, or a bundled type icon.
package thumb

// Mode is the kind of visual chosen for an item.
type Mode int

const (
	ModeIcon Mode = iota
	ModeThumbnail
	ModeLocation
)

func (m Mode) String() string {
	switch m {
	case ModeThumbnail:
		return "thumbnail"
	case ModeLocation:
		return "location"
	default:
		return "icon"
	}
}

// SelectMode picks the display mode. A location always shows as a location;
// otherwise a thumbnail that exists locally beats the type icon.
func SelectMode(hasLocation, hasLocalThumbnail bool) Mode {
	switch {
	case hasLocation:
		return ModeLocation
	case hasLocalThumbnail:
		return ModeThumbnail
	default:
		return ModeIcon
	}
}
