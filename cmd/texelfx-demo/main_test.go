// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelfx/config"
	"github.com/framegrace/texelfx/internal/content"
	"github.com/framegrace/texelfx/internal/effects"
)

func testConfig() config.Config {
	return config.Config{
		"demo": map[string]interface{}{"preset": "hold"},
		"presets": map[string]interface{}{
			"hold":   map[string]interface{}{"effect": "sleep", "duration_ms": 50},
			"vanish": map[string]interface{}{"effect": "dissolve", "duration_ms": 64},
			"broken": map[string]interface{}{"effect": "no_such_effect"},
		},
	}
}

func textLoader(text string) loader {
	return func(width, height int) (effects.Grid, error) {
		return content.FromText(text, width, height, tcell.StyleDefault), nil
	}
}

func TestHeadlessPrintsFinalFrame(t *testing.T) {
	d, err := newDemo(testConfig(), demoOptions{Preset: "vanish", Load: textLoader("hello")})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	var out bytes.Buffer
	if err := runHeadless(d, 8, 2, 100, &out); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if got := out.String(); got != "\n\n" {
		t.Fatalf("dissolved output = %q", got)
	}
	if d.manager.IsRunning() {
		t.Fatalf("effect should have retired")
	}
}

func TestHeadlessStopsAtFrameLimit(t *testing.T) {
	d, err := newDemo(testConfig(), demoOptions{Preset: "vanish", Load: textLoader("hello")})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	var out bytes.Buffer
	if err := runHeadless(d, 8, 1, 1, &out); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if !d.manager.IsRunning() {
		t.Fatalf("one frame should not finish a 64ms dissolve")
	}
}

func TestSleepPresetKeepsContent(t *testing.T) {
	d, err := newDemo(testConfig(), demoOptions{Preset: "hold", Load: textLoader("hello")})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	var out bytes.Buffer
	if err := runHeadless(d, 8, 1, 10, &out); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if got := out.String(); got != "hello\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, err := newDemo(testConfig(), demoOptions{Preset: "missing"}); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
	if _, err := newDemo(testConfig(), demoOptions{Preset: "broken"}); err == nil {
		t.Fatalf("expected error for preset with unknown effect")
	}
}

func TestNextWrapsAndReportsBuildErrors(t *testing.T) {
	d, err := newDemo(testConfig(), demoOptions{Preset: "hold"})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	// Sorted names: broken, hold, vanish.
	if err := d.next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if d.PresetName() != "vanish" {
		t.Fatalf("preset = %q, want vanish", d.PresetName())
	}
	if err := d.next(); err == nil {
		t.Fatalf("expected build error for broken preset")
	}
	if d.PresetName() != "vanish" {
		t.Fatalf("failed switch should keep the current preset, got %q", d.PresetName())
	}
	if d.manager.Size() != 1 {
		t.Fatalf("replays share one slot, size = %d", d.manager.Size())
	}
}

func TestDemoColorSpaceApplied(t *testing.T) {
	d, err := newDemo(testConfig(), demoOptions{Preset: "hold", ColorSpace: "rgb"})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	if d.effect.ColorSpace() != effects.ColorSpaceRGB {
		t.Fatalf("color space = %v, want rgb", d.effect.ColorSpace())
	}
	if d.effect.Name() != "hold" {
		t.Fatalf("effect name = %q, want preset name", d.effect.Name())
	}
}

func TestBannerCentered(t *testing.T) {
	text := banner(60, 10)
	lines := strings.Split(text, "\n")
	if len(lines) != 2+len(bannerLines) {
		t.Fatalf("lines = %d", len(lines))
	}
	if strings.TrimSpace(lines[2]) != "texelfx" || !strings.HasPrefix(lines[2], "                          ") {
		t.Fatalf("title not centered: %q", lines[2])
	}
}

func TestRunScreenQuits(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	d, err := newDemo(testConfig(), demoOptions{Preset: "hold", Load: textLoader("hi")})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}

	go func() {
		time.Sleep(100 * time.Millisecond)
		screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	}()

	frames, _, err := runScreen(screen, d)
	if err != nil {
		t.Fatalf("runScreen: %v", err)
	}
	if frames == 0 {
		t.Fatalf("expected at least one frame")
	}
	if r, _, _, _ := screen.GetContent(1, 0); r != 'i' {
		t.Fatalf("screen content at 1,0 = %q, want 'i'", r)
	}
}

func TestListCatalog(t *testing.T) {
	var out bytes.Buffer
	printCatalog(&out, testConfig())
	got := out.String()
	for _, want := range []string{"hold", "vanish", "fade_to", "sequence"} {
		if !strings.Contains(got, want) {
			t.Fatalf("catalog missing %q:\n%s", want, got)
		}
	}
}

func TestEffectFileBecomesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wipe.yaml")
	body := "effect: dissolve\nduration_ms: 32\nseed: 3\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tree, err := config.LoadEffectFile(path)
	if err != nil {
		t.Fatalf("LoadEffectFile: %v", err)
	}
	cfg := testConfig().WithPreset("wipe", tree)

	d, err := newDemo(cfg, demoOptions{Preset: "wipe", Load: textLoader("abc")})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	if d.effect.Duration() != 32*time.Millisecond {
		t.Fatalf("duration = %v", d.effect.Duration())
	}
	var out bytes.Buffer
	if err := runHeadless(d, 4, 1, 10, &out); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if out.String() != "\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestSpeedScalesEffectTime(t *testing.T) {
	cfg := testConfig()
	cfg["demo"] = map[string]interface{}{"speed": 2.0}
	d, err := newDemo(cfg, demoOptions{Preset: "vanish", Load: textLoader("abc")})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	if err := d.resize(4, 1); err != nil {
		t.Fatalf("resize: %v", err)
	}
	d.step(16 * time.Millisecond)
	d.step(16 * time.Millisecond)
	if d.manager.IsRunning() {
		t.Fatalf("two 16ms steps at double speed should finish a 64ms dissolve")
	}

	cfg["demo"] = map[string]interface{}{"speed": -1}
	d, err = newDemo(cfg, demoOptions{Preset: "vanish"})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	if d.speed != 1 {
		t.Fatalf("speed = %g, want fallback 1", d.speed)
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := config.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	d, err := newDemo(testConfig(), demoOptions{Preset: "vanish", Load: textLoader("x")})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	if err := d.save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := config.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	sys := config.System()
	if got := sys.GetString("demo", "preset", ""); got != "vanish" {
		t.Fatalf("demo.preset = %q, want vanish", got)
	}
	if _, ok := sys.Preset("vanish"); !ok {
		t.Fatalf("in-memory preset should be written with the default")
	}
	if got := sys.GetString("demo", "style", ""); got != "catppuccin-mocha" {
		t.Fatalf("save dropped existing keys, style = %q", got)
	}

	path, err := config.Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	body := `{"demo": {"speed": 2, "loop": true, "loop_pause_ms": 250},
		"presets": {"vanish": {"effect": "dissolve", "duration_ms": 500}}}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := d.reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if d.PresetName() != "vanish" || d.effect.Duration() != 500*time.Millisecond {
		t.Fatalf("reload kept %q (%v)", d.PresetName(), d.effect.Duration())
	}
	if d.speed != 2 || !d.loop || d.loopPause != 250*time.Millisecond {
		t.Fatalf("settings not reloaded: speed %g loop %v pause %v", d.speed, d.loop, d.loopPause)
	}

	if err := os.WriteFile(path, []byte(`{"presets": {"vanish": {"effect": "no_such_effect"}}}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := d.reload(); err == nil {
		t.Fatalf("expected a build error from the broken preset")
	}
	if d.effect.Duration() != 500*time.Millisecond {
		t.Fatalf("failed reload should keep the playing preset")
	}
}

func TestReloadKeepsOverlayPreset(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := config.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	tree := map[string]interface{}{"effect": "sleep", "duration_ms": 40}
	overlay := func(c config.Config) config.Config { return c.WithPreset("local", tree) }
	d, err := newDemo(overlay(config.System()), demoOptions{Preset: "local", Overlay: overlay})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}
	if err := d.reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if d.PresetName() != "local" {
		t.Fatalf("preset = %q after reload, want local", d.PresetName())
	}
}

func TestRunScreenLoopsPreset(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 1)

	cfg := testConfig()
	cfg["demo"] = map[string]interface{}{"loop": true, "loop_pause_ms": 10}
	d, err := newDemo(cfg, demoOptions{Preset: "vanish", Load: textLoader("hi")})
	if err != nil {
		t.Fatalf("newDemo: %v", err)
	}

	go func() {
		time.Sleep(400 * time.Millisecond)
		screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	}()

	frames, _, err := runScreen(screen, d)
	if err != nil {
		t.Fatalf("runScreen: %v", err)
	}
	// One 64ms dissolve takes about five frames.
	if frames <= 8 {
		t.Fatalf("frames = %d, expected the preset to replay", frames)
	}
}

func TestBlitWideRuneContinuation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 1)

	frame := effects.NewGrid(4, 1)
	frame.SetCell(0, 0, effects.Cell{Ch: '世'})
	frame.SetCell(1, 0, effects.Cell{Ch: 0})
	frame.SetCell(2, 0, effects.Cell{Ch: 'x'})
	frame.SetCell(3, 0, effects.Cell{Ch: 0})
	blit(screen, frame)

	if r, _, _, _ := screen.GetContent(0, 0); r != '世' {
		t.Fatalf("wide rune = %q", r)
	}
	if r, _, _, _ := screen.GetContent(3, 0); r != ' ' {
		t.Fatalf("orphaned continuation cell = %q, want blank", r)
	}
}
