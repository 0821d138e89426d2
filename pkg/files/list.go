package files

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
)

// List enumerates dir through the store and returns a filtered,
// ordered listing. An empty listing and a failed read are distinct
// outcomes: a read error is returned as such and never collapsed into
// an empty result.
//
// When showHidden is false, entries whose name starts with a dot are
// excluded. The pseudo-entries "." and ".." are never included.
func List(ctx context.Context, store Store, dir string, showHidden bool) (*Listing, error) {
	children, err := store.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if name == "" || name == "." || name == ".." {
			continue
		}
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		entry := Entry{
			Path: filepath.Join(dir, name),
			Dir:  child.IsDir(),
		}
		if info, infoErr := child.Info(); infoErr == nil && info != nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
		}
		entries = append(entries, entry)
	}
	sortEntries(entries)
	return &Listing{Dir: dir, Entries: entries}, nil
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		// Directories first
		if entries[i].Dir && !entries[j].Dir {
			return true
		} else if !entries[i].Dir && entries[j].Dir {
			return false
		}
		// Then sort by name
		return entries[i].Name() < entries[j].Name()
	})
}
