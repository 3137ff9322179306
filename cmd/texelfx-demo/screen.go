// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelfx-demo/screen.go
// Summary: Interactive tcell frame loop.

package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelfx/internal/effects"
)

// runScreen drives the demo until q, Esc or Ctrl-C. Frames are drawn when the
// effect manager asks for one and on resize, so an idle demo does no work. It
// returns the number of frames drawn and the time spent.
func runScreen(screen tcell.Screen, d *demo) (int, time.Duration, error) {
	w, h := screen.Size()
	if err := d.resize(w, h); err != nil {
		return 0, 0, err
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	refresh := make(chan struct{}, 1)
	d.manager.AttachRenderChannel(refresh)
	defer d.manager.AttachRenderChannel(nil)

	replay := make(chan struct{}, 1)
	var loopTimer *time.Timer
	defer func() {
		if loopTimer != nil {
			loopTimer.Stop()
		}
	}()

	var frames int
	start := time.Now()
	last := start
	running := false
	draw := func() {
		now := time.Now()
		delta := now.Sub(last)
		if !running {
			// Idle time before a replay is not effect time.
			delta = 0
		}
		last = now
		blit(screen, d.step(delta))
		frames++
		running = d.manager.IsRunning()
		if !running && d.loop && loopTimer == nil {
			loopTimer = time.AfterFunc(d.loopPause, func() {
				select {
				case replay <- struct{}{}:
				default:
				}
			})
		}
	}
	draw()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := screen.Size()
				if err := d.resize(w, h); err != nil {
					return frames, time.Since(start), err
				}
				screen.Sync()
				draw()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return frames, time.Since(start), nil
				case ev.Rune() == ' ':
					d.replay()
				case ev.Rune() == 'n':
					if err := d.next(); err != nil {
						log.Printf("Demo: %v", err)
					}
				case ev.Rune() == 'r':
					if err := d.reload(); err != nil {
						log.Printf("Demo: reload failed: %v", err)
					}
				case ev.Rune() == 's':
					if err := d.save(); err != nil {
						log.Printf("Demo: save failed: %v", err)
					}
				}
			}
		case <-refresh:
			draw()
		case <-replay:
			loopTimer = nil
			if !d.manager.IsRunning() {
				d.replay()
			}
		}
	}
}

func blit(screen tcell.Screen, frame effects.Grid) {
	w, h := screen.Size()
	for y := 0; y < len(frame) && y < h; y++ {
		for x := 0; x < len(frame[y]) && x < w; x++ {
			cell := frame[y][x]
			if cell.Ch == 0 {
				if x > 0 && runewidth.RuneWidth(frame[y][x-1].Ch) == 2 {
					// Right half of a wide rune.
					continue
				}
				// The wide rune was replaced by a narrow glyph.
				screen.SetContent(x, y, ' ', nil, cell.Style)
				continue
			}
			screen.SetContent(x, y, cell.Ch, nil, cell.Style)
		}
	}
	screen.Show()
}
