// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelfx-demo/demo.go
// Summary: Preset selection and per-frame composition for the demo.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelfx/config"
	"github.com/framegrace/texelfx/internal/content"
	"github.com/framegrace/texelfx/internal/effects"
)

const (
	presetKey      = "preset"
	commandTimeout = 5 * time.Second
)

var bannerStyle = tcell.StyleDefault.
	Foreground(tcell.NewHexColor(0xcdd6f4)).
	Background(tcell.NewHexColor(0x1e1e2e))

// loader renders the base content for a given grid size.
type loader func(width, height int) (effects.Grid, error)

type demoOptions struct {
	Preset     string
	ColorSpace string
	Load       loader
	// Overlay is applied to every config the demo reloads, so presets that
	// came from the command line survive a reload.
	Overlay func(config.Config) config.Config
}

// demo owns the effect being played and the grids it is drawn on. The base
// grid is restored into the frame grid before every step, so effects always
// transform the pristine content.
type demo struct {
	cfg        config.Config
	presets    []string
	index      int
	colorSpace string
	effect     *effects.Effect
	manager    *effects.Manager
	load       loader
	overlay    func(config.Config) config.Config
	base       effects.Grid
	frame      effects.Grid

	speed     float64
	loop      bool
	loopPause time.Duration
}

func newDemo(cfg config.Config, opts demoOptions) (*demo, error) {
	presets := cfg.PresetNames()
	index := -1
	for i, name := range presets {
		if name == opts.Preset {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("unknown preset %q (have %s)", opts.Preset, strings.Join(presets, ", "))
	}
	load := opts.Load
	if load == nil {
		load = newLoader("", nil, "")
	}
	d := &demo{
		cfg:        cfg,
		presets:    presets,
		colorSpace: opts.ColorSpace,
		manager:    effects.NewManager(),
		load:       load,
		overlay:    opts.Overlay,
	}
	d.applySettings(cfg)
	if err := d.selectPreset(index); err != nil {
		return nil, err
	}
	return d, nil
}

// applySettings reads the playback keys of the demo section.
func (d *demo) applySettings(cfg config.Config) {
	d.speed = cfg.GetFloat("demo", "speed", 1)
	if d.speed <= 0 {
		log.Printf("Demo: ignoring non-positive speed %g", d.speed)
		d.speed = 1
	}
	d.loop = cfg.GetBool("demo", "loop", false)
	d.loopPause = cfg.GetDuration("demo", "loop_pause_ms", time.Second)
	if d.loopPause < 0 {
		d.loopPause = 0
	}
}

// PresetName reports the preset currently playing.
func (d *demo) PresetName() string {
	return d.presets[d.index]
}

func (d *demo) selectPreset(index int) error {
	name := d.presets[index]
	tree, ok := d.cfg.Preset(name)
	if !ok {
		return fmt.Errorf("preset %q is not an effect tree", name)
	}
	if _, ok := tree["color_space"]; !ok && d.colorSpace != "" {
		tree["color_space"] = d.colorSpace
	}
	if _, ok := tree["name"]; !ok {
		tree["name"] = name
	}
	eff, err := effects.BuildEffect(effects.EffectConfig(tree))
	if err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	d.index = index
	d.effect = eff
	log.Printf("Demo: playing preset %q (%v)", name, eff.Duration())
	d.replay()
	return nil
}

// replay restarts the current preset from the beginning.
func (d *demo) replay() {
	d.manager.AddUniqueEffect(presetKey, d.effect.Clone())
}

// next advances to the following preset, wrapping around.
func (d *demo) next() error {
	return d.selectPreset((d.index + 1) % len(d.presets))
}

// reload re-reads texelfx.json and restarts the current preset, or the first
// one if it is gone. On error the demo keeps playing the old config.
func (d *demo) reload() error {
	if err := config.Reload(); err != nil {
		return err
	}
	cfg := config.System()
	if d.overlay != nil {
		cfg = d.overlay(cfg)
	}
	presets := cfg.PresetNames()
	if len(presets) == 0 {
		return errors.New("reloaded config has no presets")
	}
	index := 0
	current := d.PresetName()
	for i, name := range presets {
		if name == current {
			index = i
			break
		}
	}
	oldCfg, oldPresets := d.cfg, d.presets
	d.cfg, d.presets = cfg, presets
	if err := d.selectPreset(index); err != nil {
		d.cfg, d.presets = oldCfg, oldPresets
		return err
	}
	d.applySettings(cfg)
	log.Printf("Demo: reloaded config, %d presets", len(presets))
	return nil
}

// save stores the current preset as demo.preset in texelfx.json. A preset
// that only exists in memory (loaded with -effect) is written along with it.
func (d *demo) save() error {
	name := d.PresetName()
	cfg := config.Clone(config.System())
	if cfg == nil {
		cfg = make(config.Config)
	}
	if _, ok := cfg.Preset(name); !ok {
		if tree, ok := d.cfg.Preset(name); ok {
			cfg = cfg.WithPreset(name, tree)
		}
	}
	section := cfg.Section("demo")
	if section == nil {
		section = make(config.Section)
		cfg["demo"] = section
	}
	section["preset"] = name
	config.SetSystem(cfg)
	if err := config.SaveSystem(); err != nil {
		return err
	}
	log.Printf("Demo: saved %q as the default preset", name)
	return nil
}

func (d *demo) resize(width, height int) error {
	base, err := d.load(width, height)
	if err != nil {
		return err
	}
	d.base = base
	d.frame = effects.NewGrid(width, height)
	return nil
}

// step composes one frame: base content with the running effects applied.
func (d *demo) step(delta time.Duration) effects.Grid {
	if d.frame == nil {
		return nil
	}
	d.frame.CopyFrom(d.base)
	delta = time.Duration(float64(delta) * d.speed)
	d.manager.ProcessEffects(delta, d.frame, d.frame.Bounds())
	return d.frame
}

func newLoader(file string, argv []string, styleName string) loader {
	switch {
	case file != "":
		var data []byte
		return func(width, height int) (effects.Grid, error) {
			if data == nil {
				raw, err := os.ReadFile(file)
				if err != nil {
					return nil, fmt.Errorf("read %s: %w", file, err)
				}
				data = raw
			}
			return content.FromSource(file, data, width, height, styleName), nil
		}
	case len(argv) > 0:
		return func(width, height int) (effects.Grid, error) {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()
			grid, err := content.FromCommand(ctx, argv, width, height, bannerStyle)
			if errors.Is(err, context.DeadlineExceeded) {
				log.Printf("Demo: %q still running after %v, showing partial output", argv[0], commandTimeout)
				return grid, nil
			}
			return grid, err
		}
	default:
		return func(width, height int) (effects.Grid, error) {
			return content.FromText(banner(width, height), width, height, bannerStyle), nil
		}
	}
}

var bannerLines = []string{
	"texelfx",
	"",
	"Effects over a terminal cell grid.",
	"Fades, dissolves, sweeps, slides, paints, crypt and rainbow.",
	"",
	"space  replay    n  next    r  reload    s  save    q  quit",
}

// banner centers bannerLines in a width x height area.
func banner(width, height int) string {
	top := (height - len(bannerLines)) / 2
	if top < 0 {
		top = 0
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", top))
	for i, line := range bannerLines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if pad := (width - len(line)) / 2; pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(line)
	}
	return sb.String()
}
