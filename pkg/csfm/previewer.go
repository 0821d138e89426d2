package csfm

import (
	"bytes"
	"io"
	"os"

	"github.com/csdesktop/csfm/pkg/chroma2tcell"
	"github.com/csdesktop/csfm/pkg/files"
	"github.com/rivo/tview"
)

const previewLimit = 64 * 1024

var osOpen = os.Open

type previewer struct {
	*tview.TextView
	app   *tview.Application
	style string

	// currentPath guards against a slow read for a previously
	// selected entry overwriting a newer preview.
	currentPath string
}

func newPreviewer(app *tview.Application, styleName string) *previewer {
	tv := tview.NewTextView()
	tv.SetWrap(false)
	tv.SetDynamicColors(true)
	tv.SetBorder(true)
	tv.SetTitle(" Preview ")
	return &previewer{TextView: tv, app: app, style: styleName}
}

func (p *previewer) Preview(entry *files.Entry) {
	if entry == nil {
		p.currentPath = ""
		p.SetText("")
		return
	}
	if entry.Dir {
		p.currentPath = entry.Path
		p.SetText("📁 " + entry.Name())
		return
	}
	path := entry.Path
	name := entry.Name()
	p.currentPath = path
	go func() {
		text := loadPreviewText(path, name, p.style)
		p.app.QueueUpdateDraw(func() {
			if p.currentPath != path {
				return
			}
			p.SetText(text)
			p.ScrollToBeginning()
		})
	}()
}

func loadPreviewText(path, name, style string) string {
	f, err := osOpen(path)
	if err != nil {
		return "[red]" + tview.Escape(err.Error()) + "[-]"
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(io.LimitReader(f, previewLimit))
	if err != nil {
		return "[red]" + tview.Escape(err.Error()) + "[-]"
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "[gray](binary file)[-]"
	}
	colored, err := chroma2tcell.ColorizeFile(name, string(data), style)
	if err != nil {
		return tview.Escape(string(data))
	}
	return colored
}
