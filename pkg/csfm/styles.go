package csfm

import "github.com/gdamore/tcell/v2"

// Styles holds the palette derived from the configured theme name.
type Styles struct {
	DirColor         tcell.Color
	FileColor        tcell.Color
	TableHeaderColor tcell.Color

	ModifiedColor  tcell.Color
	UntrackedColor tcell.Color
	AddedColor     tcell.Color

	// PreviewStyle is the chroma style used by the previewer.
	PreviewStyle string
}

var themes = map[string]Styles{
	"gruvbox-dark": {
		DirColor:         tcell.ColorCornflowerBlue,
		FileColor:        tcell.ColorWhiteSmoke,
		TableHeaderColor: tcell.ColorWhiteSmoke,
		ModifiedColor:    tcell.ColorOrange,
		UntrackedColor:   tcell.ColorGreen,
		AddedColor:       tcell.ColorYellowGreen,
		PreviewStyle:     "gruvbox",
	},
	"dracula": {
		DirColor:         tcell.ColorMediumPurple,
		FileColor:        tcell.ColorWhite,
		TableHeaderColor: tcell.ColorWhite,
		ModifiedColor:    tcell.ColorOrange,
		UntrackedColor:   tcell.ColorGreen,
		AddedColor:       tcell.ColorYellowGreen,
		PreviewStyle:     "dracula",
	},
}

const defaultTheme = "gruvbox-dark"

func stylesForTheme(name string) Styles {
	if s, ok := themes[name]; ok {
		return s
	}
	return themes[defaultTheme]
}
