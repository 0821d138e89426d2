package csfm

import (
	"context"
	"fmt"

	"github.com/csdesktop/csfm/pkg/files"
	"github.com/csdesktop/csfm/pkg/fsutils"
	"github.com/csdesktop/csfm/pkg/gitutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// browser renders the core state and forwards user intents to it.
type browser struct {
	*tview.Flex
	app  *tview.Application
	core *Core

	styles    Styles
	pathInput *tview.InputField
	sidebar   *tview.List
	table     *tview.Table
	preview   *previewer
	mainRow   *tview.Flex

	// rendered is the listing the table currently shows; the table
	// is only rebuilt when the core's listing was replaced.
	rendered *files.Listing
}

func newBrowser(app *tview.Application, core *Core) *browser {
	b := &browser{
		app:    app,
		core:   core,
		styles: stylesForTheme(core.Theme()),
	}

	b.pathInput = tview.NewInputField().
		SetLabel(" Path: ").
		SetFieldWidth(0)
	b.pathInput.SetChangedFunc(func(text string) {
		b.core.Apply(PathTyped{Text: text})
	})
	b.pathInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			b.dispatch(PathSubmitted{})
		}
	})

	toggleButton := tview.NewButton("≡").SetSelectedFunc(func() {
		b.dispatch(ToggleSidebar{})
	})
	upButton := tview.NewButton("Up").SetSelectedFunc(func() {
		b.dispatch(GoUp{})
	})

	topBar := tview.NewFlex().
		AddItem(toggleButton, 3, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(upButton, 4, 0, false).
		AddItem(b.pathInput, 0, 1, true)

	b.sidebar = tview.NewList().ShowSecondaryText(true)
	b.sidebar.SetBorder(true)
	b.sidebar.SetTitle(" Places ")
	for i, bookmark := range core.Bookmarks() {
		index := i
		var shortcut rune
		if i < 9 {
			shortcut = '1' + rune(i)
		}
		b.sidebar.AddItem(bookmark.Title, bookmark.Path, shortcut, func() {
			b.dispatch(BookmarkSelected{Index: index})
		})
	}

	b.table = tview.NewTable()
	b.table.SetBorder(true)
	b.table.SetFixed(1, 0)
	b.table.SetSelectable(true, false)
	b.table.SetSelectedFunc(func(row, _ int) {
		if entry, ok := b.entryAt(row); ok {
			b.dispatch(EntryActivated{Entry: entry})
		}
	})
	b.table.SetSelectionChangedFunc(func(row, _ int) {
		if entry, ok := b.entryAt(row); ok {
			b.preview.Preview(&entry)
		} else {
			b.preview.Preview(nil)
		}
	})
	b.table.SetInputCapture(b.tableInputCapture)

	b.preview = newPreviewer(app, b.styles.PreviewStyle)

	b.mainRow = tview.NewFlex()
	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topBar, 1, 0, false).
		AddItem(b.mainRow, 0, 1, true)

	b.render()
	b.runCommand(core.Start())
	return b
}

func (b *browser) tableInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.dispatch(GoUp{})
		return nil
	case tcell.KeyDelete, tcell.KeyF8:
		if entry, ok := b.selectedEntry(); ok {
			b.dispatch(DeleteEntry{Path: entry.Path, Recursive: entry.Dir})
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case '.':
			b.dispatch(ToggleHidden{})
			return nil
		case 'b':
			b.dispatch(ToggleSidebar{})
			return nil
		}
	}
	return event
}

// dispatch applies one message to the core and redraws. Commands run
// off the UI goroutine; their results come back through
// QueueUpdateDraw so state is mutated from one context only.
func (b *browser) dispatch(msg Message) {
	cmd := b.core.Apply(msg)
	b.render()
	b.runCommand(cmd)
}

func (b *browser) runCommand(cmd Command) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if msg == nil {
			return
		}
		b.app.QueueUpdateDraw(func() {
			b.dispatch(msg)
		})
	}()
}

func (b *browser) render() {
	if b.pathInput.GetText() != b.core.PendingPath() {
		b.pathInput.SetText(b.core.PendingPath())
	}
	b.layoutMain()
	b.renderTable()
}

func (b *browser) layoutMain() {
	b.mainRow.Clear()
	if b.core.SidebarVisible() {
		b.mainRow.AddItem(b.sidebar, 24, 0, false)
	}
	b.mainRow.AddItem(b.table, 0, 2, true)
	b.mainRow.AddItem(b.preview, 0, 1, false)
}

func (b *browser) renderTable() {
	listing := b.core.Listing()
	if listing == b.rendered {
		return
	}
	b.rendered = listing

	b.table.Clear()
	b.table.SetTitle(fmt.Sprintf(" %s ", listing.Dir))
	b.table.SetCell(0, 0, tview.NewTableCell("Name").
		SetTextColor(b.styles.TableHeaderColor).SetExpansion(1).SetSelectable(false))
	b.table.SetCell(0, 1, tview.NewTableCell("Size").
		SetTextColor(b.styles.TableHeaderColor).SetAlign(tview.AlignRight).SetSelectable(false))
	b.table.SetCell(0, 2, tview.NewTableCell("Modified").
		SetTextColor(b.styles.TableHeaderColor).SetAlign(tview.AlignRight).SetSelectable(false))

	for i, entry := range listing.Entries {
		row := i + 1
		name := entry.Name()
		color := b.styles.FileColor
		if entry.Dir {
			name = "📁" + name
			color = b.styles.DirColor
		}
		nameCell := tview.NewTableCell(" " + name).SetTextColor(color).SetReference(entry)
		b.table.SetCell(row, 0, nameCell)
		if !entry.Dir {
			b.table.SetCell(row, 1, tview.NewTableCell(fsutils.SizeText(entry.Size)).
				SetAlign(tview.AlignRight).SetTextColor(color))
			b.table.SetCell(row, 2, tview.NewTableCell(entry.ModTime.Format("2006-01-02 15:04")).
				SetAlign(tview.AlignRight).SetTextColor(color))
		}
	}

	if len(listing.Entries) > 0 {
		b.table.Select(1, 0)
		if entry, ok := b.entryAt(1); ok {
			b.preview.Preview(&entry)
		}
	} else {
		b.preview.Preview(nil)
	}

	b.loadGitStatuses(listing)
}

func (b *browser) entryAt(row int) (files.Entry, bool) {
	cell := b.table.GetCell(row, 0)
	if cell == nil {
		return files.Entry{}, false
	}
	entry, ok := cell.GetReference().(files.Entry)
	return entry, ok
}

func (b *browser) selectedEntry() (files.Entry, bool) {
	row, _ := b.table.GetSelection()
	return b.entryAt(row)
}

func (b *browser) loadGitStatuses(listing *files.Listing) {
	go func() {
		statuses, err := gitutils.DirStatuses(context.Background(), listing.Dir)
		if err != nil || len(statuses) == 0 {
			return
		}
		b.app.QueueUpdateDraw(func() {
			if b.core.Listing() != listing {
				// The listing was replaced while statuses loaded.
				return
			}
			b.applyGitStatuses(statuses)
		})
	}()
}

func (b *browser) applyGitStatuses(statuses map[string]gitutils.Status) {
	for row := 1; row < b.table.GetRowCount(); row++ {
		entry, ok := b.entryAt(row)
		if !ok {
			continue
		}
		cell := b.table.GetCell(row, 0)
		switch statuses[entry.Path] {
		case gitutils.StatusModified:
			cell.SetTextColor(b.styles.ModifiedColor)
		case gitutils.StatusUntracked:
			cell.SetTextColor(b.styles.UntrackedColor)
		case gitutils.StatusAdded:
			cell.SetTextColor(b.styles.AddedColor)
		}
	}
}
