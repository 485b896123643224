package thumb

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/justyntemme/thumbview/internal/explorer"
	"github.com/justyntemme/thumbview/internal/icons"
)

// SourceKind tags a Source.
type SourceKind int

const (
	SourceBundledIcon SourceKind = iota + 1
	SourceFileURI
)

// Source is the resource a thumb draws: either a bundled icon or a local
// file addressed by URI.
type Source struct {
	Kind SourceKind
	Icon icons.Handle // SourceBundledIcon
	URI  string       // SourceFileURI
}

// BundledIcon returns a source for a bundled icon.
func BundledIcon(h icons.Handle) *Source {
	return &Source{Kind: SourceBundledIcon, Icon: h}
}

// FileURI returns a source for a local file URI.
func FileURI(uri string) *Source {
	return &Source{Kind: SourceFileURI, URI: uri}
}

// Equal reports whether two sources (either may be nil) refer to the same
// resource.
func (s *Source) Equal(o *Source) bool {
	if s == nil || o == nil {
		return s == o
	}
	return *s == *o
}

func (s *Source) String() string {
	switch {
	case s == nil:
		return "<none>"
	case s.Kind == SourceBundledIcon:
		return "icon:" + icons.Default.Name(s.Icon)
	default:
		return s.URI
	}
}

var ErrNotFileURI = errors.New("not a file URI")

// ThumbnailURL builds the URI of the cached thumbnail for key under the
// cache root. Every key segment is escaped as a URI component.
func ThumbnailURL(root string, key explorer.ThumbKey) string {
	var b strings.Builder
	b.WriteString("file://")
	b.WriteString(strings.TrimSuffix(filepath.ToSlash(root), "/"))
	b.WriteString("/" + explorer.ThumbDirName + "/")
	b.WriteString(escapeComponent(key.BaseDirectory))
	b.WriteByte('/')
	b.WriteString(escapeComponent(key.ShardHex))
	b.WriteByte('/')
	b.WriteString(escapeComponent(key.CasID))
	b.WriteString(explorer.ThumbExt)
	return b.String()
}

// FilePath converts a file URI back to a local path.
func FilePath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", ErrNotFileURI
	}
	return filepath.FromSlash(u.Path), nil
}

const upperhex = "0123456789ABCDEF"

// escapeComponent escapes everything except the characters a URI component
// may carry verbatim: A-Z a-z 0-9 - _ . ! ~ * ' ( )
func escapeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isComponentSafe(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(buf)
}

func isComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
