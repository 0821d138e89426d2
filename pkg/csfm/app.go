package csfm

import (
	"fmt"

	"github.com/csdesktop/csfm/pkg/csfm/settings"
	"github.com/csdesktop/csfm/pkg/files/osfile"
	"github.com/csdesktop/csfm/pkg/launcher"
	"github.com/csdesktop/csfm/pkg/zenity"
	"github.com/rivo/tview"
)

func Main() {
	app := tview.NewApplication()
	SetupApp(app)
	err := app.Run()
	if err != nil {
		fmt.Print(err)
	}
}

var loadSettings = settings.Load

func SetupApp(app *tview.Application) {
	cfg, err := loadSettings()
	dialogs := zenity.Dialogs{}
	if err != nil {
		go dialogs.Notify(fmt.Sprintf("Configuration warning: %v", err))
	}
	core := NewCore(osfile.NewStore(), cfg, dialogs, dialogs, launcher.Launcher{})
	app.EnableMouse(true)
	app.SetRoot(newBrowser(app, core), true)
}
