package csfm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/csdesktop/csfm/pkg/csfm/settings"
	"github.com/csdesktop/csfm/pkg/files"
	"github.com/csdesktop/csfm/pkg/fsutils"
)

// Confirmer asks the user a yes/no question. Implementations must
// never report an implicit yes when the dialog itself fails.
type Confirmer interface {
	Ask(question string) bool
}

// Notifier surfaces a non-fatal message to the user.
type Notifier interface {
	Notify(message string)
}

// Launcher opens a path with the OS default application, detached.
type Launcher interface {
	Open(path string) error
}

// Command is a blocking side effect produced by the reducer. Commands
// run off the reducer goroutine; a non-nil result must be re-applied
// to the reducer on its goroutine, in completion order.
type Command func() Message

var osGetwd = os.Getwd

// Core owns the navigation state: the current working directory, its
// listing, the pending typed path and the sidebar/hidden flags. All
// mutations go through Apply, one message at a time.
type Core struct {
	store   files.Store
	cfg     settings.Config
	confirm Confirmer
	notify  Notifier
	launch  Launcher

	currentPath string
	pendingPath string
	listing     *files.Listing
	sidebarOpen bool
	showHidden  bool

	// seq identifies the most recent navigation; listing results
	// carrying an older seq are dropped.
	seq uint64
}

func NewCore(store files.Store, cfg settings.Config, confirm Confirmer, notify Notifier, launch Launcher) *Core {
	wd, err := osGetwd()
	if err != nil {
		wd = string(filepath.Separator)
	}
	return &Core{
		store:       store,
		cfg:         cfg,
		confirm:     confirm,
		notify:      notify,
		launch:      launch,
		currentPath: wd,
		pendingPath: wd,
		listing:     &files.Listing{Dir: wd},
		sidebarOpen: true,
		showHidden:  cfg.ShowHiddenFiles,
	}
}

func (c *Core) CurrentPath() string            { return c.currentPath }
func (c *Core) PendingPath() string            { return c.pendingPath }
func (c *Core) Listing() *files.Listing        { return c.listing }
func (c *Core) SidebarVisible() bool           { return c.sidebarOpen }
func (c *Core) ShowHidden() bool               { return c.showHidden }
func (c *Core) Theme() string                  { return c.cfg.Theme }
func (c *Core) Bookmarks() []settings.Bookmark { return c.cfg.Bookmarks }

// Start returns the command loading the initial listing.
func (c *Core) Start() Command {
	return c.navigate()
}

// Apply mutates the state for one message and returns the side effect
// it requires, if any.
func (c *Core) Apply(msg Message) Command {
	switch m := msg.(type) {
	case PathTyped:
		c.pendingPath = m.Text
	case PathSubmitted:
		return c.navigate()
	case GoUp:
		c.pendingPath = parentOf(c.currentPath)
		return c.navigate()
	case EntryActivated:
		if m.Entry.Dir {
			c.pendingPath = m.Entry.Path
			return c.navigate()
		}
		return c.openCommand(m.Entry.Path)
	case OpenEntry:
		return c.openCommand(m.Path)
	case BookmarkSelected:
		if m.Index < 0 || m.Index >= len(c.cfg.Bookmarks) {
			return nil
		}
		c.pendingPath = c.cfg.Bookmarks[m.Index].Path
		return c.navigate()
	case DeleteEntry:
		return c.deleteCommand(m.Path, m.Recursive)
	case ToggleSidebar:
		c.sidebarOpen = !c.sidebarOpen
	case ToggleHidden:
		c.showHidden = !c.showHidden
		c.pendingPath = c.currentPath
		return c.navigate()
	case refreshNeeded:
		c.pendingPath = c.currentPath
		return c.navigate()
	case listingLoaded:
		c.applyListing(m)
	}
	return nil
}

func (c *Core) navigate() Command {
	c.seq++
	seq := c.seq
	dir := fsutils.ExpandHome(c.pendingPath)
	showHidden := c.showHidden
	store := c.store
	return func() Message {
		listing, err := files.List(context.Background(), store, dir, showHidden)
		return listingLoaded{seq: seq, dir: dir, listing: listing, err: err}
	}
}

func (c *Core) applyListing(m listingLoaded) {
	if m.seq != c.seq {
		// A newer navigation superseded this read.
		return
	}
	if m.err != nil {
		c.notify.Notify(fmt.Sprintf("Cannot read %s: %v", m.dir, m.err))
		// The last-known-good path stays authoritative so the
		// address bar never shows a path whose listing is not
		// on screen.
		c.pendingPath = c.currentPath
		return
	}
	c.currentPath = m.listing.Dir
	c.pendingPath = m.listing.Dir
	c.listing = m.listing
}

func parentOf(p string) string {
	if p == "" {
		return string(filepath.Separator)
	}
	return filepath.Dir(p)
}
