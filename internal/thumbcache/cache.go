// Package thumbcache is the view's side of the on-disk thumbnail cache:
// where it lives, what it holds, and which thumbnails appear while the
// explorer is open. Thumbnails are generated elsewhere; nothing here writes
// them.
package thumbcache

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"

	"github.com/justyntemme/thumbview/internal/debug"
	"github.com/justyntemme/thumbview/internal/explorer"
)

// DefaultRoot returns the cache root used when the config names none.
func DefaultRoot() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "thumbview")
}

// ThumbDir returns the thumbnails directory under root.
func ThumbDir(root string) string {
	return filepath.Join(root, explorer.ThumbDirName)
}

// Stats summarizes the cache contents.
type Stats struct {
	Count int64
	Bytes int64
}

func (s Stats) String() string {
	return fmt.Sprintf("%s thumbnails, %s", humanize.Comma(s.Count), humanize.Bytes(uint64(s.Bytes)))
}

// Scan walks the cache under root and returns its stats and the flattened
// keys of every thumbnail found, sorted. A missing cache is empty, not an
// error.
func Scan(ctx context.Context, root string) (Stats, []string, error) {
	dir := ThumbDir(root)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return Stats{}, nil, nil
	}

	var (
		count, size atomic.Int64
		keys        []string
		keysMu      sync.Mutex
	)

	conf := &fastwalk.Config{Follow: false}
	err := fastwalk.Walk(conf, dir, func(fullPath string, d iofs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			debug.Log(debug.WATCH, "Scan: skipping %s: %v", fullPath, walkErr)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), explorer.ThumbExt) {
			return nil
		}

		key, err := explorer.ParseThumbPath(root, fullPath)
		if err != nil {
			return nil // stray file at the wrong depth
		}
		info, err := fastwalk.StatDirEntry(fullPath, d)
		if err != nil {
			return nil
		}

		count.Add(1)
		size.Add(info.Size())
		keysMu.Lock()
		keys = append(keys, key.Flatten())
		keysMu.Unlock()
		return nil
	})
	if err != nil {
		return Stats{}, nil, err
	}

	sort.Strings(keys)
	stats := Stats{Count: count.Load(), Bytes: size.Load()}
	debug.Log(debug.WATCH, "Scan %s: %s", dir, stats)
	return stats, keys, nil
}
