// Package chroma2tcell turns chroma token streams into tview color
// tagged text.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var getStyle = styles.Get

// Colorize renders text with tview [color] tags using the named
// chroma style. A nil lexer falls back to plain-text tokenization.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}
	style := getStyle(styleName)
	if style == nil {
		style = styles.Fallback
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		if entry.IsZero() || !entry.Colour.IsSet() {
			sb.WriteString(token.Value)
			continue
		}
		sb.WriteString("[")
		sb.WriteString(entry.Colour.String()) // hex form, understood by tview
		sb.WriteString("]")
		sb.WriteString(token.Value)
		sb.WriteString("[-]")
	}
	return sb.String(), nil
}

// ColorizeFile picks a lexer by file name and colorizes text with it.
func ColorizeFile(fileName, text, styleName string) (string, error) {
	return Colorize(text, styleName, lexers.Match(fileName))
}
