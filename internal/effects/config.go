// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/config.go
// Summary: Builds effect trees from JSON-compatible configuration maps.
// Usage: BuildEffect(cfg) resolves "effect" through the registry and applies decorators.
// Notes: Optional keys fall back to defaults; malformed values are errors.

package effects

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// EffectConfig holds the parameters of one effect as decoded from JSON.
type EffectConfig map[string]interface{}

// BuildEffect builds the effect described by cfg. The "effect" key names a
// registered factory, or "sequence"/"parallel" with a "children" list.
func BuildEffect(cfg EffectConfig) (*Effect, error) {
	id, _ := cfg["effect"].(string)
	if id == "" {
		return nil, fmt.Errorf("effects: missing \"effect\" key: %w", ErrInvalidParameter)
	}
	return CreateEffect(id, cfg)
}

// CreateEffect builds a registered effect (or a composite) and applies the
// decorator keys filter, pattern, color_space, area, seed and name.
func CreateEffect(id string, cfg EffectConfig) (*Effect, error) {
	var (
		eff *Effect
		err error
	)
	switch id {
	case "sequence", "parallel":
		eff, err = buildComposite(id, cfg)
	default:
		factory, ok := Lookup(id)
		if !ok {
			return nil, fmt.Errorf("effects: unknown effect %q", id)
		}
		eff, err = factory(cfg)
	}
	if err != nil {
		return nil, err
	}
	return applyDecorators(eff, cfg)
}

func buildComposite(id string, cfg EffectConfig) (*Effect, error) {
	raw, ok := cfg["children"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: children must be a list: %w", id, ErrNoChildren)
	}
	children := make([]*Effect, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: child %d is %T, want object: %w", id, i, item, ErrInvalidParameter)
		}
		child, err := BuildEffect(EffectConfig(m))
		if err != nil {
			return nil, fmt.Errorf("%s: child %d: %w", id, i, err)
		}
		children = append(children, child)
	}
	if id == "sequence" {
		return Sequence(children...)
	}
	return Parallel(children...)
}

func applyDecorators(eff *Effect, cfg EffectConfig) (*Effect, error) {
	if raw, ok := cfg["filter"]; ok {
		f, err := parseFilter(raw)
		if err != nil {
			return nil, err
		}
		eff = eff.WithFilter(f)
	}
	if raw, ok := cfg["pattern"]; ok {
		p, err := parsePattern(raw)
		if err != nil {
			return nil, err
		}
		eff = eff.WithPattern(p)
	}
	csName, err := stringOrDefault(cfg, "color_space", "")
	if err != nil {
		return nil, err
	}
	if csName != "" {
		cs, ok := ParseColorSpace(csName)
		if !ok {
			return nil, fmt.Errorf("effects: color space %q: %w", csName, ErrInvalidParameter)
		}
		eff = eff.WithColorSpace(cs)
	}
	if raw, ok := cfg["area"]; ok {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("effects: area must be an object, got %T: %w", raw, ErrInvalidParameter)
		}
		area, err := parseRect(m)
		if err != nil {
			return nil, err
		}
		eff = eff.WithArea(area)
	}
	if raw, ok := cfg["seed"]; ok {
		seed, err := parseSeed(raw)
		if err != nil {
			return nil, err
		}
		eff = eff.WithSeed(seed)
	}
	name, err := stringOrDefault(cfg, "name", "")
	if err != nil {
		return nil, err
	}
	if name != "" {
		eff = eff.WithName(name)
	}
	return eff, nil
}

func parseFilter(raw interface{}) (CellFilter, error) {
	var (
		kind string
		m    map[string]interface{}
	)
	switch v := raw.(type) {
	case string:
		kind = v
	case map[string]interface{}:
		m = v
		var err error
		if kind, err = stringOrDefault(v, "type", ""); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("effects: filter %T: %w", raw, ErrInvalidParameter)
	}
	margin := func() (Margin, error) {
		h, err := parseIntOrDefault(m, "horizontal", 1)
		if err != nil {
			return Margin{}, err
		}
		v, err := parseIntOrDefault(m, "vertical", 1)
		return Margin{Horizontal: h, Vertical: v}, err
	}
	list := func(key string) ([]CellFilter, error) {
		items, ok := m[key].([]interface{})
		if !ok {
			return nil, fmt.Errorf("effects: filter %q: %s must be a list: %w", kind, key, ErrInvalidParameter)
		}
		out := make([]CellFilter, 0, len(items))
		for _, item := range items {
			f, err := parseFilter(item)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
		return out, nil
	}
	switch strings.ToLower(kind) {
	case "all":
		return AllCells(), nil
	case "text":
		return TextCells(), nil
	case "fg", "fg_color":
		c, err := requireColor(m, "color")
		if err != nil {
			return nil, err
		}
		return FgColor(c), nil
	case "bg", "bg_color":
		c, err := requireColor(m, "color")
		if err != nil {
			return nil, err
		}
		return BgColor(c), nil
	case "inner", "outer":
		mg, err := margin()
		if err != nil {
			return nil, err
		}
		if strings.ToLower(kind) == "inner" {
			return Inner(mg), nil
		}
		return Outer(mg), nil
	case "area":
		r, err := parseRect(m)
		if err != nil {
			return nil, err
		}
		return InsideArea(r), nil
	case "not":
		inner, err := parseFilter(m["filter"])
		if err != nil {
			return nil, err
		}
		return inner.Not(), nil
	case "all_of", "any_of", "none_of":
		filters, err := list("filters")
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(kind) {
		case "all_of":
			return AllOf(filters...), nil
		case "any_of":
			return AnyOf(filters...), nil
		default:
			return NoneOf(filters...), nil
		}
	}
	return nil, fmt.Errorf("effects: unknown filter %q: %w", kind, ErrInvalidParameter)
}

func parsePattern(raw interface{}) (Pattern, error) {
	var (
		kind string
		m    map[string]interface{}
	)
	switch v := raw.(type) {
	case string:
		kind = v
	case map[string]interface{}:
		m = v
		var err error
		if kind, err = stringOrDefault(v, "type", ""); err != nil {
			return Pattern{}, err
		}
	default:
		return Pattern{}, fmt.Errorf("effects: pattern %T: %w", raw, ErrInvalidParameter)
	}
	g, err := parseFloatOrDefault(m, "gradient", 0)
	if err != nil {
		return Pattern{}, err
	}
	gradient := float32(g)
	switch strings.ToLower(kind) {
	case "identity", "":
		return IdentityPattern(), nil
	case "sweep":
		dir, err := directionOrDefault(m, "direction", LeftToRight)
		if err != nil {
			return Pattern{}, err
		}
		return SweepPattern(dir, gradient), nil
	case "radial":
		cx, err := parseFloatOrDefault(m, "center_x", 0.5)
		if err != nil {
			return Pattern{}, err
		}
		cy, err := parseFloatOrDefault(m, "center_y", 0.5)
		if err != nil {
			return Pattern{}, err
		}
		return RadialPattern(float32(cx), float32(cy), gradient), nil
	case "diagonal":
		dir := TopLeftToBottomRight
		name, err := stringOrDefault(m, "direction", "")
		if err != nil {
			return Pattern{}, err
		}
		if name != "" {
			parsed, ok := ParseDiagonalDirection(name)
			if !ok {
				return Pattern{}, fmt.Errorf("effects: diagonal direction %q: %w", name, ErrInvalidParameter)
			}
			dir = parsed
		}
		return DiagonalPattern(dir, gradient), nil
	}
	return Pattern{}, fmt.Errorf("effects: unknown pattern %q: %w", kind, ErrInvalidParameter)
}

// timing reads the required duration_ms and the optional easing (linear by default).
func timing(cfg EffectConfig) (time.Duration, EasingFunc, error) {
	d, err := requireDuration(cfg, "duration_ms")
	if err != nil {
		return 0, nil, err
	}
	easing, err := easingOrDefault(cfg, "easing", EaseLinear)
	if err != nil {
		return 0, nil, err
	}
	return d, easing, nil
}

// ParseColor accepts "#rrggbb", tcell color names ("red", "darkslategray") and "default".
func ParseColor(value string) (tcell.Color, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return tcell.ColorDefault, false
	}
	if strings.EqualFold(value, "default") {
		return tcell.ColorDefault, true
	}
	if strings.HasPrefix(value, "#") {
		c, err := colorful.Hex(value)
		if err != nil {
			return tcell.ColorDefault, false
		}
		return fromColorful(c), true
	}
	if c := tcell.GetColor(strings.ToLower(value)); c != tcell.ColorDefault {
		return c, true
	}
	return tcell.ColorDefault, false
}

func parseColorOrDefault(cfg map[string]interface{}, key string, fallback tcell.Color) (tcell.Color, error) {
	if cfg == nil {
		return fallback, nil
	}
	raw, ok := cfg[key]
	if !ok {
		return fallback, nil
	}
	str, ok := raw.(string)
	if !ok {
		return fallback, fmt.Errorf("effects: %s: color must be a string, got %T: %w", key, raw, ErrInvalidParameter)
	}
	c, ok := ParseColor(str)
	if !ok {
		return fallback, fmt.Errorf("effects: %s: bad color %q: %w", key, str, ErrInvalidParameter)
	}
	return c, nil
}

func requireColor(cfg map[string]interface{}, key string) (tcell.Color, error) {
	if _, ok := cfg[key]; !ok {
		return tcell.ColorDefault, fmt.Errorf("effects: missing %q: %w", key, ErrInvalidParameter)
	}
	return parseColorOrDefault(cfg, key, tcell.ColorDefault)
}

func parseStyle(cfg map[string]interface{}, key string) (tcell.Style, error) {
	style := tcell.StyleDefault
	raw, ok := cfg[key]
	if !ok {
		return style, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return style, fmt.Errorf("effects: %s: style must be an object, got %T: %w", key, raw, ErrInvalidParameter)
	}
	fg, err := parseColorOrDefault(m, "fg", tcell.ColorDefault)
	if err != nil {
		return style, err
	}
	bg, err := parseColorOrDefault(m, "bg", tcell.ColorDefault)
	if err != nil {
		return style, err
	}
	return style.Foreground(fg).Background(bg), nil
}

// The helpers below fall back only when the key is absent. A key that is
// present with the wrong type or an unparsable value is an error.

func stringOrDefault(cfg map[string]interface{}, key, fallback string) (string, error) {
	raw, ok := cfg[key]
	if !ok {
		return fallback, nil
	}
	str, ok := raw.(string)
	if !ok {
		return fallback, fmt.Errorf("effects: %s: want a string, got %T: %w", key, raw, ErrInvalidParameter)
	}
	return str, nil
}

func boolOrDefault(cfg map[string]interface{}, key string, fallback bool) (bool, error) {
	raw, ok := cfg[key]
	if !ok {
		return fallback, nil
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed, nil
		}
	}
	return fallback, fmt.Errorf("effects: %s: want a boolean, got %v: %w", key, raw, ErrInvalidParameter)
}

func parseFloatOrDefault(cfg map[string]interface{}, key string, fallback float64) (float64, error) {
	raw, ok := cfg[key]
	if !ok {
		return fallback, nil
	}
	f, ok := toFloat(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback, fmt.Errorf("effects: %s: want a number, got %v: %w", key, raw, ErrInvalidParameter)
	}
	return f, nil
}

func parseIntOrDefault(cfg map[string]interface{}, key string, fallback int) (int, error) {
	raw, ok := cfg[key]
	if !ok {
		return fallback, nil
	}
	i, ok := toInt(raw)
	if !ok {
		return fallback, fmt.Errorf("effects: %s: want an integer, got %v: %w", key, raw, ErrInvalidParameter)
	}
	return int(i), nil
}

func parseDurationOrDefault(cfg map[string]interface{}, key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := cfg[key]
	if !ok {
		return fallback, nil
	}
	if ms, ok := toInt(raw); ok {
		return time.Duration(ms) * time.Millisecond, nil
	}
	if ms, ok := toFloat(raw); ok && !math.IsNaN(ms) && !math.IsInf(ms, 0) {
		return time.Duration(ms * float64(time.Millisecond)), nil
	}
	return fallback, fmt.Errorf("effects: %s: want milliseconds, got %v: %w", key, raw, ErrInvalidDuration)
}

func requireDuration(cfg map[string]interface{}, key string) (time.Duration, error) {
	if _, ok := cfg[key]; !ok {
		return 0, fmt.Errorf("effects: missing %q: %w", key, ErrInvalidDuration)
	}
	return parseDurationOrDefault(cfg, key, 0)
}

// parseSeed accepts non-negative integers without going through float64, so
// seeds above 2^53 survive when the decoder keeps json.Number.
func parseSeed(raw interface{}) (uint64, error) {
	switch v := raw.(type) {
	case uint64:
		return v, nil
	case json.Number:
		if seed, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return seed, nil
		}
	case string:
		if seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64); err == nil {
			return seed, nil
		}
	default:
		if i, ok := toInt(v); ok && i >= 0 {
			return uint64(i), nil
		}
	}
	return 0, fmt.Errorf("effects: seed %v: want a non-negative integer: %w", raw, ErrInvalidParameter)
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// toInt accepts integer types, integral floats and integer strings.
func toInt(raw interface{}) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return 0, false
		}
		return int64(v), true
	case float32:
		return toInt(float64(v))
	case json.Number:
		i, err := v.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return i, err == nil
	}
	return 0, false
}

func easingOrDefault(cfg map[string]interface{}, key string, fallback EasingFunc) (EasingFunc, error) {
	name, err := stringOrDefault(cfg, key, "")
	if err != nil || name == "" {
		return fallback, err
	}
	fn, ok := ParseEasing(name)
	if !ok {
		return nil, fmt.Errorf("effects: unknown easing %q: %w", name, ErrInvalidParameter)
	}
	return fn, nil
}

func directionOrDefault(cfg map[string]interface{}, key string, fallback Direction) (Direction, error) {
	name, err := stringOrDefault(cfg, key, "")
	if err != nil || name == "" {
		return fallback, err
	}
	dir, ok := ParseDirection(name)
	if !ok {
		return fallback, fmt.Errorf("effects: unknown direction %q: %w", name, ErrInvalidParameter)
	}
	return dir, nil
}

func parseRect(m map[string]interface{}) (Rect, error) {
	var r Rect
	for _, field := range []struct {
		key string
		dst *int
	}{
		{"x", &r.X}, {"y", &r.Y}, {"width", &r.Width}, {"height", &r.Height},
	} {
		v, err := parseIntOrDefault(m, field.key, 0)
		if err != nil {
			return Rect{}, err
		}
		*field.dst = v
	}
	return r, nil
}
