// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/crypt.go
// Summary: Crypt shader scrambling letters and digits into braille glyphs.
// Usage: Runs like a dissolve; "decrypt" is the mirrored variant that resolves
// scrambled text back into the original characters.
// Notes: Glyph choice and onset are hashed from (seed, x, y), never from a shared RNG.

package effects

import (
	"fmt"
	"time"
	"unicode"
)

// Braille patterns U+2801..U+28FF (skip U+2800 blank).
const (
	brailleBase  = 0x2801
	brailleCount = 0x28FF - brailleBase + 1
)

// cryptSalt separates glyph selection from the onset threshold.
const cryptSalt uint64 = 0xb7a1_11e0

func applyCrypt(ctx shaderContext, pos Position, cell Cell) Cell {
	if !unicode.IsLetter(cell.Ch) && !unicode.IsDigit(cell.Ch) {
		return cell
	}
	if ctx.alpha <= cellUnit(ctx.seed, pos.X, pos.Y) {
		return cell
	}
	cell.Ch = rune(brailleBase + cellOffset(ctx.seed^cryptSalt, pos.X, pos.Y, brailleCount-1))
	return cell
}

// NewCrypt scrambles alphanumeric cells in a stable random order.
func NewCrypt(d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("crypt", d, false); err != nil {
		return nil, err
	}
	return newShaderEffect("crypt", shader{kind: shaderCrypt}, NewEffectTimer(d, easing)), nil
}

// NewDecrypt starts fully scrambled and resolves back to the original text.
func NewDecrypt(d time.Duration, easing EasingFunc) (*Effect, error) {
	if err := validateDuration("decrypt", d, false); err != nil {
		return nil, err
	}
	return newShaderEffect("decrypt", shader{kind: shaderCrypt}, NewEffectTimer(d, easing).Mirrored()), nil
}

func init() {
	Register("crypt", func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("crypt: %w", err)
		}
		return NewCrypt(d, easing)
	})
	Register("decrypt", func(cfg EffectConfig) (*Effect, error) {
		d, easing, err := timing(cfg)
		if err != nil {
			return nil, fmt.Errorf("decrypt: %w", err)
		}
		return NewDecrypt(d, easing)
	})
}
