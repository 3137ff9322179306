// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelfx-demo/main.go
// Summary: Plays configured effect presets over text, source files or command output.
// Usage: texelfx-demo -preset showcase -file main.go
//        texelfx-demo -effect intro.yaml -exec "ls -l"
// Notes: Falls back to a fixed-step headless run when stdout is not a terminal.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelfx/config"
	"github.com/framegrace/texelfx/internal/effects"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("texelfx-demo", flag.ContinueOnError)

	preset := fs.String("preset", "", "Preset to play (default: demo.preset from config)")
	effectFile := fs.String("effect", "", "YAML or JSON effect tree to play instead of a preset")
	file := fs.String("file", "", "Source file to show under the effect")
	execCmd := fs.String("exec", "", "Command whose output is shown under the effect")
	logPath := fs.String("log", "", "Log file (default: demo.log_file from config, discard when empty)")
	headless := fs.Bool("headless", false, "Run fixed 16ms steps and print the final grid")
	frames := fs.Int("frames", 0, "Steps for headless mode (default: demo.frames from config)")
	list := fs.Bool("list", false, "List presets and registered effects, then exit")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	cfg := config.System()
	if err := config.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	closeLog, err := setupLogging(firstNonEmpty(*logPath, cfg.GetString("demo", "log_file", "")))
	if err != nil {
		return err
	}
	defer closeLog()

	var overlay func(config.Config) config.Config
	if *effectFile != "" {
		tree, err := config.LoadEffectFile(*effectFile)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(*effectFile), filepath.Ext(*effectFile))
		overlay = func(c config.Config) config.Config { return c.WithPreset(name, tree) }
		cfg = overlay(cfg)
		*preset = name
	}

	if *list {
		printCatalog(stdout, cfg)
		return nil
	}

	opts := demoOptions{
		Preset:     firstNonEmpty(*preset, cfg.GetString("demo", "preset", "showcase")),
		ColorSpace: cfg.GetString("demo", "color_space", ""),
		Load:       newLoader(*file, strings.Fields(*execCmd), cfg.GetString("demo", "style", "")),
		Overlay:    overlay,
	}
	d, err := newDemo(cfg, opts)
	if err != nil {
		return err
	}

	if *frames <= 0 {
		*frames = cfg.GetInt("demo", "frames", 240)
	}

	stdoutFd := int(os.Stdout.Fd())
	if *headless || !term.IsTerminal(stdoutFd) {
		w, h := defaultWidth, defaultHeight
		if term.IsTerminal(stdoutFd) {
			if tw, th, err := term.GetSize(stdoutFd); err == nil && tw > 0 && th > 0 {
				w, h = tw, th
			}
		}
		return runHeadless(d, w, h, *frames, stdout)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	count, elapsed, err := runScreen(screen, d)
	screen.Fini()
	if err != nil {
		return err
	}
	log.Printf("Demo: rendered %d frames in %v", count, elapsed)
	return nil
}

func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

func printCatalog(w io.Writer, cfg config.Config) {
	fmt.Fprintln(w, "Presets:")
	for _, name := range cfg.PresetNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, "Effects:")
	for _, id := range effects.RegisteredIDs() {
		fmt.Fprintf(w, "  %s\n", id)
	}
	fmt.Fprintln(w, "  sequence\n  parallel")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
