// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timer.go
// Summary: Tick-driven effect timer converting elapsed time into eased progress.
// Usage: Each effect owns one timer and advances it by the host's frame delta.

package effects

import "time"

// EffectTimer tracks how far an effect has run. It is a value type; the
// Reversed and Mirrored transforms return modified copies.
type EffectTimer struct {
	total    time.Duration
	elapsed  time.Duration
	easing   EasingFunc
	reversed bool
	mirrored bool
}

// NewEffectTimer creates a timer for the given duration. A nil easing means linear.
func NewEffectTimer(total time.Duration, easing EasingFunc) EffectTimer {
	if easing == nil {
		easing = EaseLinear
	}
	if total < 0 {
		total = 0
	}
	return EffectTimer{total: total, easing: easing}
}

// Duration returns the configured total duration.
func (t EffectTimer) Duration() time.Duration { return t.total }

// Elapsed returns the accumulated time.
func (t EffectTimer) Elapsed() time.Duration { return t.elapsed }

// Advance adds delta to the elapsed time. Negative deltas are ignored.
func (t *EffectTimer) Advance(delta time.Duration) {
	if delta <= 0 {
		return
	}
	t.elapsed += delta
}

// Ratio returns the raw, un-eased completion fraction clamped to [0,1].
// A zero-length timer reports 1 once any time has been applied.
func (t EffectTimer) Ratio() float32 {
	if t.total <= 0 {
		if t.elapsed > 0 {
			return 1
		}
		return 0
	}
	if t.elapsed >= t.total {
		return 1
	}
	return float32(float64(t.elapsed) / float64(t.total))
}

// Progress returns the eased progress. Mirroring runs time backwards before
// easing; reversing flips the eased output.
func (t EffectTimer) Progress() float32 {
	r := t.Ratio()
	if t.mirrored {
		r = 1 - r
	}
	easing := t.easing
	if easing == nil {
		easing = EaseLinear
	}
	p := easing(r)
	if t.reversed {
		p = 1 - p
	}
	return p
}

// Done reports whether the elapsed time has covered the total duration.
// Easing overshoot has no influence on completion.
func (t EffectTimer) Done() bool {
	return t.Ratio() >= 1
}

// Reversed returns a copy whose progress output is flipped.
func (t EffectTimer) Reversed() EffectTimer {
	t.reversed = !t.reversed
	return t
}

// Mirrored returns a copy whose time runs from the end towards the start.
func (t EffectTimer) Mirrored() EffectTimer {
	t.mirrored = !t.mirrored
	return t
}

// IsReversed reports whether the output is flipped.
func (t EffectTimer) IsReversed() bool { return t.reversed }

// IsMirrored reports whether time runs backwards.
func (t EffectTimer) IsMirrored() bool { return t.mirrored }

// Reset returns a copy with no elapsed time.
func (t EffectTimer) Reset() EffectTimer {
	t.elapsed = 0
	return t
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
