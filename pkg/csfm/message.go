package csfm

import "github.com/csdesktop/csfm/pkg/files"

// Message is a single user intent or internal result applied to the
// reducer. The reducer consumes exactly one message at a time.
type Message interface{ isMessage() }

// PathTyped stores raw address-bar input without validating or
// re-listing.
type PathTyped struct{ Text string }

// PathSubmitted navigates to the pending typed path.
type PathSubmitted struct{}

// GoUp navigates to the parent of the current directory. At the root
// it stays at the root.
type GoUp struct{}

// EntryActivated is a double-click/enter on a listing entry:
// directories are entered, files are opened.
type EntryActivated struct{ Entry files.Entry }

// OpenEntry hands a path to the OS default-application launcher.
type OpenEntry struct{ Path string }

// DeleteEntry asks for confirmation and deletes the entry.
// Recursive selects directory removal including all contents.
type DeleteEntry struct {
	Path      string
	Recursive bool
}

// BookmarkSelected jumps to the configured bookmark at Index.
type BookmarkSelected struct{ Index int }

// ToggleSidebar flips sidebar visibility.
type ToggleSidebar struct{}

// ToggleHidden flips hidden-file visibility and re-lists.
type ToggleHidden struct{}

// listingLoaded carries the outcome of an asynchronous directory read.
type listingLoaded struct {
	seq     uint64
	dir     string
	listing *files.Listing
	err     error
}

// refreshNeeded re-lists the current directory, e.g. after a delete.
type refreshNeeded struct{}

func (PathTyped) isMessage()        {}
func (PathSubmitted) isMessage()    {}
func (GoUp) isMessage()             {}
func (EntryActivated) isMessage()   {}
func (OpenEntry) isMessage()        {}
func (DeleteEntry) isMessage()      {}
func (BookmarkSelected) isMessage() {}
func (ToggleSidebar) isMessage()    {}
func (ToggleHidden) isMessage()     {}
func (listingLoaded) isMessage()    {}
func (refreshNeeded) isMessage()    {}
