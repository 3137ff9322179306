// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Easing functions shared by every effect timer.
// Usage: Pick an EasingFunc by value or resolve one from config with ParseEasing.
// Notes: Elastic, back and bounce curves overshoot [0,1]; callers clamp at the point of use.

package effects

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// EasingFunc defines an easing function that maps progress [0,1] to an eased value.
// The result is usually in [0,1] but overshooting curves may leave that range.
type EasingFunc func(progress float32) float32

// fromTween adapts a gween tween curve (t, begin, change, duration) to a unit easing.
func fromTween(fn ease.TweenFunc) EasingFunc {
	return func(t float32) float32 {
		if t <= 0 {
			return fn(0, 0, 1, 1)
		}
		if t >= 1 {
			return fn(1, 0, 1, 1)
		}
		return fn(t, 0, 1, 1)
	}
}

// Common easing functions
var (
	// EaseLinear - No easing, constant speed
	EaseLinear EasingFunc = func(t float32) float32 { return t }

	// EaseSmoothstep - Smooth S-curve
	// Accelerates at start, decelerates at end
	EaseSmoothstep EasingFunc = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseSmootherstep - Even smoother S-curve with zero derivatives at 0 and 1
	EaseSmootherstep EasingFunc = func(t float32) float32 {
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	}

	// EaseInQuad - Quadratic ease-in (slow start, accelerating)
	EaseInQuad EasingFunc = func(t float32) float32 {
		return t * t
	}

	// EaseOutQuad - Quadratic ease-out (fast start, decelerating)
	EaseOutQuad EasingFunc = func(t float32) float32 {
		return t * (2.0 - t)
	}

	// EaseInOutQuad - Quadratic ease-in-out
	EaseInOutQuad EasingFunc = func(t float32) float32 {
		if t < 0.5 {
			return 2.0 * t * t
		}
		return -1.0 + (4.0-2.0*t)*t
	}

	// EaseInCubic - Cubic ease-in (slower start)
	EaseInCubic EasingFunc = func(t float32) float32 {
		return t * t * t
	}

	// EaseOutCubic - Cubic ease-out
	EaseOutCubic EasingFunc = func(t float32) float32 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}

	// EaseInOutCubic - Cubic ease-in-out
	EaseInOutCubic EasingFunc = func(t float32) float32 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}

	EaseInQuart    = fromTween(ease.InQuart)
	EaseOutQuart   = fromTween(ease.OutQuart)
	EaseInOutQuart = fromTween(ease.InOutQuart)
	EaseInQuint    = fromTween(ease.InQuint)
	EaseOutQuint   = fromTween(ease.OutQuint)
	EaseInOutQuint = fromTween(ease.InOutQuint)
	EaseInSine     = fromTween(ease.InSine)
	EaseOutSine    = fromTween(ease.OutSine)
	EaseInOutSine  = fromTween(ease.InOutSine)
	EaseInExpo     = fromTween(ease.InExpo)
	EaseOutExpo    = fromTween(ease.OutExpo)
	EaseInOutExpo  = fromTween(ease.InOutExpo)
	EaseInCirc     = fromTween(ease.InCirc)
	EaseOutCirc    = fromTween(ease.OutCirc)
	EaseInOutCirc  = fromTween(ease.InOutCirc)

	// Overshooting families. Values outside [0,1] are intentional.
	EaseInElastic    = fromTween(ease.InElastic)
	EaseOutElastic   = fromTween(ease.OutElastic)
	EaseInOutElastic = fromTween(ease.InOutElastic)
	EaseInBack       = fromTween(ease.InBack)
	EaseOutBack      = fromTween(ease.OutBack)
	EaseInOutBack    = fromTween(ease.InOutBack)
	EaseInBounce     = fromTween(ease.InBounce)
	EaseOutBounce    = fromTween(ease.OutBounce)
	EaseInOutBounce  = fromTween(ease.InOutBounce)
)

var easingNames = map[string]EasingFunc{
	"linear":         EaseLinear,
	"smoothstep":     EaseSmoothstep,
	"smootherstep":   EaseSmootherstep,
	"in_quad":        EaseInQuad,
	"out_quad":       EaseOutQuad,
	"in_out_quad":    EaseInOutQuad,
	"in_cubic":       EaseInCubic,
	"out_cubic":      EaseOutCubic,
	"in_out_cubic":   EaseInOutCubic,
	"in_quart":       EaseInQuart,
	"out_quart":      EaseOutQuart,
	"in_out_quart":   EaseInOutQuart,
	"in_quint":       EaseInQuint,
	"out_quint":      EaseOutQuint,
	"in_out_quint":   EaseInOutQuint,
	"in_sine":        EaseInSine,
	"out_sine":       EaseOutSine,
	"in_out_sine":    EaseInOutSine,
	"in_expo":        EaseInExpo,
	"out_expo":       EaseOutExpo,
	"in_out_expo":    EaseInOutExpo,
	"in_circ":        EaseInCirc,
	"out_circ":       EaseOutCirc,
	"in_out_circ":    EaseInOutCirc,
	"in_elastic":     EaseInElastic,
	"out_elastic":    EaseOutElastic,
	"in_out_elastic": EaseInOutElastic,
	"in_back":        EaseInBack,
	"out_back":       EaseOutBack,
	"in_out_back":    EaseInOutBack,
	"in_bounce":      EaseInBounce,
	"out_bounce":     EaseOutBounce,
	"in_out_bounce":  EaseInOutBounce,
}

// ParseEasing resolves a config name such as "in_out_cubic" or "OutElastic".
// Dashes, spaces and camel case are accepted.
func ParseEasing(name string) (EasingFunc, bool) {
	fn, ok := easingNames[normalizeEasingName(name)]
	return fn, ok
}

// EasingNames lists every name ParseEasing accepts in canonical form.
func EasingNames() []string {
	names := make([]string, 0, len(easingNames))
	for name := range easingNames {
		names = append(names, name)
	}
	return names
}

func normalizeEasingName(name string) string {
	var sb strings.Builder
	for i, r := range strings.TrimSpace(name) {
		switch {
		case r == '-' || r == ' ':
			sb.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteRune(r)
		}
	}
	return strings.ReplaceAll(sb.String(), "__", "_")
}
