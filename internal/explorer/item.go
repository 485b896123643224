// Package explorer models the entries shown by the file explorer as the
// indexing backend delivers them.
package explorer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
)

// ItemType tags the variant of an Item.
type ItemType string

const (
	TypePath           ItemType = "Path"
	TypeObject         ItemType = "Object"
	TypeNonIndexedPath ItemType = "NonIndexedPath"
	TypeLocation       ItemType = "Location"
	TypeSpacedropPeer  ItemType = "SpacedropPeer"
	TypeLabel          ItemType = "Label"
)

// ObjectRef is the indexed object a file path points at.
type ObjectRef struct {
	ID   int64      `json:"id,omitempty"`
	Kind ObjectKind `json:"kind"`
}

// Payload is the variant body of an Item. Which fields are set depends on
// the item type.
type Payload struct {
	ID               int64      `json:"id,omitempty"`
	PubID            *uuid.UUID `json:"pub_id,omitempty"`
	Name             string     `json:"name,omitempty"`
	Extension        string     `json:"extension,omitempty"`
	Kind             ObjectKind `json:"kind,omitempty"`
	IsDir            *bool      `json:"is_dir"`
	CasID            string     `json:"cas_id,omitempty"`
	Path             string     `json:"path,omitempty"`
	MaterializedPath string     `json:"materialized_path,omitempty"`
	Object           *ObjectRef `json:"object,omitempty"`
	FilePaths        []Payload  `json:"file_paths,omitempty"`
}

// Item is one entry of an explorer view: a file, an object, a location, a
// peer or a label. It is read-only to the view.
type Item struct {
	Type              ItemType   `json:"type"`
	Thumbnail         *ThumbKey  `json:"thumbnail,omitempty"`
	Thumbnails        []ThumbKey `json:"thumbnails,omitempty"`
	HasLocalThumbnail bool       `json:"has_created_thumbnail,omitempty"`
	Item              Payload    `json:"item"`
}

// Key identifies the item across renders.
func (it *Item) Key() string {
	switch {
	case it.Item.PubID != nil:
		return string(it.Type) + ":" + it.Item.PubID.String()
	case it.Item.Path != "":
		return string(it.Type) + ":" + it.Item.Path
	default:
		return string(it.Type) + ":" + strconv.FormatInt(it.Item.ID, 10)
	}
}

// FirstThumbnail returns the thumbnail key shown for the item, or nil.
// Labels show the first of their thumbnails.
func (it *Item) FirstThumbnail() *ThumbKey {
	if it.Type == TypeLabel {
		if len(it.Thumbnails) == 0 {
			return nil
		}
		return &it.Thumbnails[0]
	}
	return it.Thumbnail
}

// Location returns the location payload when the item is a location.
func (it *Item) Location() *Payload {
	if it.Type != TypeLocation {
		return nil
	}
	return &it.Item
}

func (it *Item) validate() error {
	switch it.Type {
	case TypePath, TypeObject, TypeNonIndexedPath, TypeLocation, TypeSpacedropPeer, TypeLabel:
		return nil
	default:
		return fmt.Errorf("unknown explorer item type %q", it.Type)
	}
}

// LoadItems decodes a JSON array of explorer items.
func LoadItems(r io.Reader) ([]Item, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode explorer items: %w", err)
	}
	for i := range items {
		if err := items[i].validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return items, nil
}

// Bool returns a pointer to v, for building items with a known directory flag.
func Bool(v bool) *bool { return &v }
