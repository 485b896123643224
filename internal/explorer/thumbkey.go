package explorer

import (
	"errors"
	"path/filepath"
	"strings"
)

// ThumbDirName is the directory under the cache root holding thumbnails.
const ThumbDirName = "thumbnails"

// ThumbExt is the file extension of every cached thumbnail.
const ThumbExt = ".webp"

var ErrNotThumbPath = errors.New("not a thumbnail path")

// ThumbKey locates a cached thumbnail: base directory, shard bucket and the
// content address of the file it was rendered from.
type ThumbKey struct {
	BaseDirectory string `json:"base_directory_str"`
	ShardHex      string `json:"shard_hex"`
	CasID         string `json:"cas_id"`
}

// Flatten returns the comparable string form of the key.
func (k ThumbKey) Flatten() string {
	return k.BaseDirectory + "/" + k.ShardHex + "/" + k.CasID
}

// OSPath returns where the thumbnail for k lives on disk under root.
func (k ThumbKey) OSPath(root string) string {
	return filepath.Join(root, ThumbDirName, k.BaseDirectory, k.ShardHex, k.CasID+ThumbExt)
}

// ParseThumbPath recovers the key of a thumbnail file located under root.
func ParseThumbPath(root, path string) (ThumbKey, error) {
	rel, err := filepath.Rel(filepath.Join(root, ThumbDirName), path)
	if err != nil {
		return ThumbKey{}, err
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 3 || parts[0] == ".." {
		return ThumbKey{}, ErrNotThumbPath
	}
	name := parts[2]
	if !strings.HasSuffix(name, ThumbExt) || len(name) == len(ThumbExt) {
		return ThumbKey{}, ErrNotThumbPath
	}
	return ThumbKey{
		BaseDirectory: parts[0],
		ShardHex:      parts[1],
		CasID:         strings.TrimSuffix(name, ThumbExt),
	}, nil
}
