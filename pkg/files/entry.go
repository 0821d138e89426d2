package files

import (
	"path/filepath"
	"strings"
	"time"
)

// Entry is a single item of a directory listing. Entries are value
// objects recreated on every listing and never mutated.
type Entry struct {
	Path string
	Dir  bool

	Size    int64
	ModTime time.Time
}

// Name returns the final path component of the entry.
func (e Entry) Name() string {
	return filepath.Base(strings.TrimSuffix(e.Path, string(filepath.Separator)))
}

// Listing is the materialized view of one directory at a point in
// time. It is replaced atomically on each successful re-list.
type Listing struct {
	Dir     string
	Entries []Entry
}
