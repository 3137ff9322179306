// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestFromTextLayout(t *testing.T) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	g := FromText("ab\tc\nsecond line that is long\nthird\nfourth", 10, 3, style)

	want := "ab  c\nsecond lin\nthird"
	if got := g.String(); got != want {
		t.Fatalf("grid = %q, want %q", got, want)
	}
	if g.Cell(9, 2).Style != style {
		t.Fatalf("padding cells should carry the fill style")
	}
}

func TestFromTextWideRunes(t *testing.T) {
	g := FromText("a世b", 4, 1, tcell.StyleDefault)
	if g.Cell(1, 0).Ch != '世' {
		t.Fatalf("wide rune not placed at x=1: %q", g.Cell(1, 0).Ch)
	}
	if g.Cell(2, 0).Ch != 0 {
		t.Fatalf("wide rune continuation should be zero, got %q", g.Cell(2, 0).Ch)
	}
	if g.Cell(3, 0).Ch != 'b' {
		t.Fatalf("rune after wide rune at x=3, got %q", g.Cell(3, 0).Ch)
	}

	// A wide rune that would straddle the edge is dropped.
	g = FromText("abc世", 4, 1, tcell.StyleDefault)
	if g.Cell(3, 0).Ch != ' ' {
		t.Fatalf("straddling wide rune should be clipped, got %q", g.Cell(3, 0).Ch)
	}
}

func TestFromTextCarriageReturn(t *testing.T) {
	g := FromText("hello\rHE\r\nok", 8, 2, tcell.StyleDefault)
	if got := g.String(); got != "HEllo\nok" {
		t.Fatalf("grid = %q", got)
	}
}

func TestStripEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"sgr", "\x1b[1;31mred\x1b[0m", "red"},
		{"osc bel", "\x1b]0;title\x07text", "text"},
		{"osc st", "\x1b]0;title\x1b\\text", "text"},
		{"dcs", "\x1bPq#0;2;0;0;0\x1b\\done", "done"},
		{"charset", "\x1b(Bascii", "ascii"},
		{"backspace", "abc\bd", "abd"},
		{"crlf", "a\r\nb", "a\r\nb"},
		{"bell", "x\x07y", "xy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripEscapes(tt.in); got != tt.want {
				t.Fatalf("StripEscapes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLanguageDetection(t *testing.T) {
	if got := Language("main.go", []byte("package main\n")); got != "Go" {
		t.Fatalf("Language(main.go) = %q, want Go", got)
	}
	if got := Language("script.py", []byte("import os\n")); got != "Python" {
		t.Fatalf("Language(script.py) = %q, want Python", got)
	}
}

func TestFromSourceColorsTokens(t *testing.T) {
	src := []byte("package main\n\nfunc main() {}\n")
	g := FromSource("main.go", src, 20, 3, "")

	if !strings.HasPrefix(g.String(), "package main") {
		t.Fatalf("unexpected layout %q", g.String())
	}
	base := baseStyle(chromaStyle(""))
	_, baseBg, _ := base.Decompose()
	if _, bg, _ := g.Cell(19, 2).Style.Decompose(); bg != baseBg {
		t.Fatalf("fill cells should use the style background")
	}

	kwFg, _, _ := g.Cell(0, 0).Style.Decompose()
	identFg, _, _ := g.Cell(8, 0).Style.Decompose()
	if kwFg == identFg {
		t.Fatalf("keyword and identifier share a color: %v", kwFg)
	}
}

func TestFromSourceUnknownStyle(t *testing.T) {
	g := FromSource("notes.txt", []byte("just text"), 12, 1, "no-such-style")
	if g.String() != "just text" {
		t.Fatalf("grid = %q", g.String())
	}
}

func TestFromCommandEmpty(t *testing.T) {
	if _, err := FromCommand(context.Background(), nil, 10, 2, tcell.StyleDefault); !errors.Is(err, ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand, got %v", err)
	}
}

func TestFromCommandCapturesOutput(t *testing.T) {
	if _, err := exec.LookPath("printf"); err != nil {
		t.Skip("printf not available")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g, err := FromCommand(ctx, []string{"printf", `\033[32mgreen\033[0m\nplain\n`}, 12, 3, tcell.StyleDefault)
	if err != nil {
		t.Fatalf("FromCommand: %v", err)
	}
	if got := g.String(); got != "green\nplain\n" {
		t.Fatalf("grid = %q", got)
	}
}

func TestFromCommandCancelled(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	g, err := FromCommand(ctx, []string{"sleep", "5"}, 8, 2, tcell.StyleDefault)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if g == nil || len(g) != 2 {
		t.Fatalf("partial grid should still be returned")
	}
}
