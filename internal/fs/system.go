// Package fs lists directories that the indexing backend has not seen, as
// non-indexed explorer items.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/justyntemme/thumbview/internal/debug"
	"github.com/justyntemme/thumbview/internal/explorer"
)

type OpType int

const (
	FetchDir OpType = iota
)

type Request struct {
	Op   OpType
	Path string
	Gen  int64 // Generation counter to track stale requests
}

type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

type Response struct {
	Op      OpType
	Path    string
	Entries []Entry
	Items   []explorer.Item
	Err     error
	Gen     int64 // Generation counter from request
}

type System struct {
	RequestChan  chan Request
	ResponseChan chan Response
}

func NewSystem() *System {
	return &System{
		RequestChan:  make(chan Request, 10),
		ResponseChan: make(chan Response, 10),
	}
}

func (s *System) Start() {
	for req := range s.RequestChan {
		debug.Log(debug.FS, "Request: op=%d path=%q gen=%d", req.Op, req.Path, req.Gen)

		switch req.Op {
		case FetchDir:
			resp := FetchDirectory(req.Path)
			resp.Gen = req.Gen
			debug.Log(debug.FS, "FetchDir response: path=%q entries=%d gen=%d err=%v",
				resp.Path, len(resp.Entries), resp.Gen, resp.Err)
			s.ResponseChan <- resp
		}
	}
}

// FetchDirectory reads the direct children of path. Directories sort
// before files, then by name.
func FetchDirectory(path string) Response {
	entries, err := readDir(path)
	if err != nil {
		return Response{Op: FetchDir, Path: path, Err: err}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	items := make([]explorer.Item, len(entries))
	for i, e := range entries {
		items[i] = ToItem(e)
	}
	return Response{Op: FetchDir, Path: path, Entries: entries, Items: items}
}

// ToItem turns a directory entry into a non-indexed path item. Non-indexed
// files never have a thumbnail in the cache.
func ToItem(e Entry) explorer.Item {
	p := explorer.Payload{
		Name:  e.Name,
		Path:  e.Path,
		IsDir: explorer.Bool(e.IsDir),
	}
	if e.IsDir {
		p.Kind = explorer.KindFolder
	} else {
		p.Extension = strings.TrimPrefix(filepath.Ext(e.Name), ".")
		p.Kind = explorer.KindFromExtension(p.Extension)
	}
	return explorer.Item{Type: explorer.TypeNonIndexedPath, Item: p}
}

func readDir(path string) ([]Entry, error) {
	debug.Log(debug.FS, "fetchDir: reading %q", path)

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	var result []Entry
	var mu sync.Mutex

	conf := &fastwalk.Config{
		Follow: true, // Follow symlinks to get target info
	}

	pathLen := len(path)

	err := fastwalk.Walk(conf, path, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			debug.Log(debug.FS, "fetchDir: walk error at %q: %v", fullPath, err)
			return nil // Skip errors, continue walking
		}

		if fullPath == path {
			return nil
		}

		// Only direct children
		relStart := pathLen
		if relStart < len(fullPath) && (fullPath[relStart] == '/' || fullPath[relStart] == '\\') {
			relStart++
		}
		if strings.ContainsAny(fullPath[relStart:], "/\\") {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		info, err := fastwalk.StatDirEntry(fullPath, d)
		if err != nil {
			// Broken symlink
			info, err = os.Lstat(fullPath)
			if err != nil {
				debug.Log(debug.FS, "fetchDir: skipping %q: stat error: %v", d.Name(), err)
				return nil
			}
		}

		mu.Lock()
		result = append(result, Entry{
			Name:    d.Name(),
			Path:    fullPath,
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		mu.Unlock()

		if d.IsDir() {
			return fastwalk.SkipDir
		}
		return nil
	})
	if err != nil {
		debug.Log(debug.FS, "fetchDir: walk error: %v", err)
		return nil, err
	}
	return result, nil
}
