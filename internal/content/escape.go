// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/content/escape.go
// Summary: Removes terminal control sequences from captured output.

package content

import "strings"

type escState int

const (
	escGround escState = iota
	escEscape
	escCSI
	escOSC
	escOSCEscape
	escString
	escStringEscape
	escCharset
)

// StripEscapes drops CSI, OSC, DCS and charset sequences and keeps printable
// text plus newline, carriage return and tab. Backspace removes the previous
// rune on the current line.
func StripEscapes(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	line := make([]rune, 0, 80)
	flush := func() {
		sb.WriteString(string(line))
		line = line[:0]
	}

	state := escGround
	for _, r := range s {
		switch state {
		case escGround:
			switch {
			case r == '\x1b':
				state = escEscape
			case r == '\n' || r == '\r':
				flush()
				sb.WriteRune(r)
			case r == '\b':
				if len(line) > 0 {
					line = line[:len(line)-1]
				}
			case r == '\t' || r >= ' ' && r != 0x7f:
				line = append(line, r)
			}
		case escEscape:
			switch r {
			case '[':
				state = escCSI
			case ']':
				state = escOSC
			case 'P', 'X', '^', '_':
				state = escString
			case '(', ')', '*', '+':
				state = escCharset
			default:
				state = escGround
			}
		case escCSI:
			if r >= '@' && r <= '~' {
				state = escGround
			}
		case escOSC:
			switch r {
			case '\x07':
				state = escGround
			case '\x1b':
				state = escOSCEscape
			}
		case escOSCEscape:
			// ST is ESC \; anything else still ends the string.
			state = escGround
		case escString:
			if r == '\x1b' {
				state = escStringEscape
			}
		case escStringEscape:
			if r == '\\' {
				state = escGround
			} else {
				state = escString
			}
		case escCharset:
			state = escGround
		}
	}
	flush()
	return sb.String()
}
