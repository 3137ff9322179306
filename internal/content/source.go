// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/content/source.go
// Summary: Syntax-highlighted source files as effect base content.
// Usage: FromSource("main.go", data, w, h, "") colors tokens with the default style.
// Notes: Language detection goes through enry first; Chroma's own analysers
// are the fallback.

package content

import (
	"log"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texelfx/internal/effects"
)

// DefaultStyle is the Chroma style used when none is configured.
const DefaultStyle = "catppuccin-mocha"

// Language reports the detected language name for a file, or "" if unknown.
func Language(path string, data []byte) string {
	return enry.GetLanguage(filepath.Base(path), data)
}

// FromSource tokenizes data and lays it out with per-token colors. Unknown
// style names resolve to Chroma's fallback style.
func FromSource(path string, data []byte, width, height int, styleName string) effects.Grid {
	style := chromaStyle(styleName)
	base := baseStyle(style)
	text := string(data)

	lexer := chroma.Coalesce(lexerFor(path, data))
	iter, err := lexer.Tokenise(nil, text)
	if err != nil {
		log.Printf("Content: tokenise %s failed: %v", path, err)
		return FromText(text, width, height, base)
	}

	runes := make([]styledRune, 0, len(data))
	for tok := iter(); tok != chroma.EOF; tok = iter() {
		st := tokenStyle(style.Get(tok.Type), base)
		for _, r := range tok.Value {
			runes = append(runes, styledRune{r: r, style: st})
		}
	}
	return layout(runes, width, height, base)
}

func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = DefaultStyle
	}
	return styles.Get(name)
}

func lexerFor(path string, data []byte) chroma.Lexer {
	if lang := Language(path, data); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if path != "" {
		if l := lexers.Match(filepath.Base(path)); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(string(data)); l != nil {
		return l
	}
	return lexers.Fallback
}

func baseStyle(style *chroma.Style) tcell.Style {
	entry := style.Get(chroma.Background)
	st := tcell.StyleDefault
	if entry.Colour.IsSet() {
		st = st.Foreground(chromaColor(entry.Colour))
	}
	if entry.Background.IsSet() {
		st = st.Background(chromaColor(entry.Background))
	}
	return st
}

func tokenStyle(entry chroma.StyleEntry, base tcell.Style) tcell.Style {
	st := base
	if entry.Colour.IsSet() {
		st = st.Foreground(chromaColor(entry.Colour))
	}
	if entry.Background.IsSet() {
		st = st.Background(chromaColor(entry.Background))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

func chromaColor(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}
