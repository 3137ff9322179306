package effects

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func decodeConfig(t *testing.T, raw string) EffectConfig {
	t.Helper()
	var cfg EffectConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return cfg
}

func TestRegistryHasEveryShader(t *testing.T) {
	ids := map[string]bool{}
	for _, id := range RegisteredIDs() {
		ids[id] = true
	}
	for _, want := range []string{
		"fade", "fade_to", "fade_from", "dissolve", "dissolve_to", "coalesce",
		"sweep_in", "sweep_out", "slide_in", "slide_out", "paint", "expand",
		"sleep", "crypt", "decrypt", "rainbow",
	} {
		if !ids[want] {
			t.Fatalf("effect %q is not registered", want)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()
	Register("fade", nil)
}

func TestBuildEffectFromConfig(t *testing.T) {
	cfg := decodeConfig(t, `{
		"effect": "sequence",
		"name": "intro",
		"color_space": "rgb",
		"children": [
			{"effect": "coalesce", "duration_ms": 200, "easing": "out_quad", "seed": 11},
			{"effect": "sleep", "duration_ms": 100},
			{"effect": "sweep_out", "duration_ms": 300, "direction": "rtl", "color": "#102030", "gradient": 2,
			 "pattern": {"type": "radial"}, "filter": {"type": "inner", "horizontal": 1, "vertical": 0}}
		]
	}`)
	eff, err := BuildEffect(cfg)
	if err != nil {
		t.Fatalf("BuildEffect: %v", err)
	}
	if eff.Name() != "intro" || eff.Children() != 3 {
		t.Fatalf("got %q with %d children", eff.Name(), eff.Children())
	}
	if eff.Duration() != 600*time.Millisecond {
		t.Fatalf("duration = %v", eff.Duration())
	}
	if eff.children[0].seed != 11 {
		t.Fatalf("child seed = %d", eff.children[0].seed)
	}
	if eff.children[2].ColorSpace() != ColorSpaceRGB {
		t.Fatalf("color space should propagate to children")
	}
	if eff.children[2].pattern == nil || eff.children[2].filter == nil {
		t.Fatalf("child decorators missing")
	}
	if eff.children[2].shader.sweep.color != rgb(0x10, 0x20, 0x30) {
		t.Fatalf("sweep color = %v", eff.children[2].shader.sweep.color)
	}

	grid := textGrid("abcd")
	for !eff.Done() {
		eff.Process(50*time.Millisecond, grid, grid.Bounds())
	}
}

func TestBuildEffectErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"missing effect", `{"duration_ms": 10}`, ErrInvalidParameter},
		{"missing duration", `{"effect": "dissolve"}`, ErrInvalidDuration},
		{"bad easing", `{"effect": "dissolve", "duration_ms": 10, "easing": "wobbly"}`, ErrInvalidParameter},
		{"bad color", `{"effect": "sweep_in", "duration_ms": 10, "color": "not-a-color"}`, ErrInvalidParameter},
		{"missing color", `{"effect": "slide_out", "duration_ms": 10}`, ErrInvalidParameter},
		{"bad direction", `{"effect": "sweep_in", "duration_ms": 10, "color": "red", "direction": "sideways"}`, ErrInvalidParameter},
		{"empty children", `{"effect": "parallel", "children": []}`, ErrNoChildren},
		{"no children", `{"effect": "sequence"}`, ErrNoChildren},
		{"bad filter", `{"effect": "sleep", "duration_ms": 10, "filter": "odd"}`, ErrInvalidParameter},
		{"bad pattern", `{"effect": "sleep", "duration_ms": 10, "pattern": {"type": "spiral"}}`, ErrInvalidParameter},
		{"bad color space", `{"effect": "sleep", "duration_ms": 10, "color_space": "lab"}`, ErrInvalidParameter},
		{"negative duration", `{"effect": "fade_to", "duration_ms": -5, "fg": "white"}`, ErrInvalidDuration},
	}
	for _, tt := range tests {
		_, err := BuildEffect(decodeConfig(t, tt.raw))
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
	if _, err := CreateEffect("nope", EffectConfig{}); err == nil {
		t.Fatalf("unknown effect should fail")
	}
}

func TestBuildEffectRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"duration with unit", `{"effect": "dissolve", "duration_ms": "1s"}`, ErrInvalidDuration},
		{"duration object", `{"effect": "dissolve", "duration_ms": {"ms": 10}}`, ErrInvalidDuration},
		{"text gradient", `{"effect": "sweep_in", "duration_ms": 10, "color": "red", "gradient": "wide"}`, ErrInvalidParameter},
		{"text randomness", `{"effect": "sweep_in", "duration_ms": 10, "color": "red", "randomness": "lots"}`, ErrInvalidParameter},
		{"numeric color space", `{"effect": "sleep", "duration_ms": 10, "color_space": 7}`, ErrInvalidParameter},
		{"string area", `{"effect": "sleep", "duration_ms": 10, "area": "top"}`, ErrInvalidParameter},
		{"fractional area", `{"effect": "sleep", "duration_ms": 10, "area": {"x": 1.5}}`, ErrInvalidParameter},
		{"numeric name", `{"effect": "sleep", "duration_ms": 10, "name": 3}`, ErrInvalidParameter},
		{"numeric easing", `{"effect": "dissolve", "duration_ms": 10, "easing": 2}`, ErrInvalidParameter},
		{"text margin", `{"effect": "sleep", "duration_ms": 10, "filter": {"type": "inner", "horizontal": "two"}}`, ErrInvalidParameter},
		{"combinator without list", `{"effect": "sleep", "duration_ms": 10, "filter": {"type": "any_of", "filters": "text"}}`, ErrInvalidParameter},
		{"text pattern gradient", `{"effect": "sleep", "duration_ms": 10, "pattern": {"type": "radial", "gradient": "soft"}}`, ErrInvalidParameter},
		{"numeric diagonal", `{"effect": "sleep", "duration_ms": 10, "pattern": {"type": "diagonal", "direction": 1}}`, ErrInvalidParameter},
		{"string style", `{"effect": "dissolve_to", "duration_ms": 10, "style": "red"}`, ErrInvalidParameter},
		{"text turns", `{"effect": "rainbow", "duration_ms": 10, "turns": "many"}`, ErrInvalidParameter},
		{"numeric axis", `{"effect": "expand", "duration_ms": 10, "axis": 0}`, ErrInvalidParameter},
		{"text gradual", `{"effect": "paint", "duration_ms": 10, "fg": "red", "gradual": "maybe"}`, ErrInvalidParameter},
		{"numeric fade target", `{"effect": "fade", "duration_ms": 10, "from": "red", "to": "blue", "target": 1}`, ErrInvalidParameter},
		{"negative seed", `{"effect": "dissolve", "duration_ms": 10, "seed": -1}`, ErrInvalidParameter},
		{"fractional seed", `{"effect": "dissolve", "duration_ms": 10, "seed": 1.5}`, ErrInvalidParameter},
	}
	for _, tt := range tests {
		_, err := BuildEffect(decodeConfig(t, tt.raw))
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestBuildEffectAcceptsNumberStrings(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`{"effect": "dissolve", "duration_ms": 250, "seed": 18446744073709551615}`))
	dec.UseNumber()
	var cfg EffectConfig
	if err := dec.Decode(&cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	eff, err := BuildEffect(cfg)
	if err != nil {
		t.Fatalf("BuildEffect: %v", err)
	}
	if eff.Duration() != 250*time.Millisecond {
		t.Fatalf("duration = %v", eff.Duration())
	}
	if eff.seed != math.MaxUint64 {
		t.Fatalf("seed = %d, want %d", eff.seed, uint64(math.MaxUint64))
	}

	eff, err = BuildEffect(EffectConfig{"effect": "dissolve", "duration_ms": "120", "seed": "9007199254740993"})
	if err != nil {
		t.Fatalf("BuildEffect: %v", err)
	}
	if eff.Duration() != 120*time.Millisecond || eff.seed != 9007199254740993 {
		t.Fatalf("got duration %v seed %d", eff.Duration(), eff.seed)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want tcell.Color
		ok   bool
	}{
		{"#ff0000", rgb(255, 0, 0), true},
		{"red", tcell.ColorRed, true},
		{"Default", tcell.ColorDefault, true},
		{"", tcell.ColorDefault, false},
		{"#zzz", tcell.ColorDefault, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("ParseColor(%q) = %v, %v", tt.in, got, ok)
		}
	}
}

func TestFilterConfigCombinators(t *testing.T) {
	f, err := parseFilter(map[string]interface{}{
		"type": "all_of",
		"filters": []interface{}{
			"text",
			map[string]interface{}{"type": "not", "filter": map[string]interface{}{"type": "fg", "color": "blue"}},
		},
	})
	if err != nil {
		t.Fatalf("parseFilter: %v", err)
	}
	area := NewRect(0, 0, 2, 1)
	if !f.Matches(Position{}, Cell{Ch: 'x', Style: tcell.StyleDefault.Foreground(tcell.ColorRed)}, area) {
		t.Fatalf("red text should match")
	}
	if f.Matches(Position{}, Cell{Ch: 'x', Style: tcell.StyleDefault.Foreground(tcell.ColorBlue)}, area) {
		t.Fatalf("blue text should be excluded")
	}
}
