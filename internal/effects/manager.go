// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/manager.go
// Summary: Scheduler advancing every active effect once per frame and retiring finished ones.
// Usage: Hosts call ProcessEffects from their render loop after drawing the base frame.
// Notes: Effects run strictly in insertion order; later effects may overwrite
// cells written by earlier ones in the same tick. Only the frame timer is
// shared with another goroutine.

package effects

import (
	"log"
	"sync"
	"time"
)

// FrameInterval is the delay before a coalesced frame request is delivered.
const FrameInterval = 16 * time.Millisecond

type managedEffect struct {
	key    string
	effect *Effect
}

type Manager struct {
	effects    []managedEffect
	renderCh   chan<- struct{}
	frameMu    sync.Mutex
	frameTimer *time.Timer
}

func NewManager() *Manager {
	return &Manager{effects: make([]managedEffect, 0)}
}

// AttachRenderChannel makes the manager request frames on ch while effects run.
func (m *Manager) AttachRenderChannel(ch chan<- struct{}) {
	m.frameMu.Lock()
	m.renderCh = ch
	if m.frameTimer != nil {
		m.frameTimer.Stop()
		m.frameTimer = nil
	}
	m.frameMu.Unlock()
}

// AddEffect appends e to the active list. Nil effects are ignored.
func (m *Manager) AddEffect(e *Effect) {
	if e == nil {
		return
	}
	m.effects = append(m.effects, managedEffect{effect: e})
	m.requestFrame()
}

// AddUniqueEffect adds e under key, replacing in place any running effect
// registered with the same key.
func (m *Manager) AddUniqueEffect(key string, e *Effect) {
	if e == nil {
		return
	}
	if key == "" {
		m.AddEffect(e)
		return
	}
	for i := range m.effects {
		if m.effects[i].key == key {
			log.Printf("Manager: replacing effect %q (%s)", key, m.effects[i].effect.Name())
			m.effects[i].effect = e
			m.requestFrame()
			return
		}
	}
	m.effects = append(m.effects, managedEffect{key: key, effect: e})
	m.requestFrame()
}

// ProcessEffects advances every active effect by delta in insertion order and
// drops the ones that finished during this call.
func (m *Manager) ProcessEffects(delta time.Duration, buf Buffer, area Rect) {
	if m == nil || len(m.effects) == 0 {
		return
	}
	if delta < 0 {
		delta = 0
	}
	kept := m.effects[:0]
	for _, me := range m.effects {
		me.effect.Process(delta, buf, area)
		if !me.effect.Done() {
			kept = append(kept, me)
		}
	}
	for i := len(kept); i < len(m.effects); i++ {
		m.effects[i] = managedEffect{}
	}
	m.effects = kept
	if len(m.effects) > 0 {
		m.requestFrame()
	}
}

// IsRunning reports whether any effect is still active.
func (m *Manager) IsRunning() bool {
	return m != nil && len(m.effects) > 0
}

// Size returns the number of active effects.
func (m *Manager) Size() int {
	if m == nil {
		return 0
	}
	return len(m.effects)
}

// Clear drops every active effect and cancels a pending frame request.
func (m *Manager) Clear() {
	for i := range m.effects {
		m.effects[i] = managedEffect{}
	}
	m.effects = m.effects[:0]
	m.frameMu.Lock()
	if m.frameTimer != nil {
		m.frameTimer.Stop()
		m.frameTimer = nil
	}
	m.frameMu.Unlock()
}

func (m *Manager) requestFrame() {
	m.frameMu.Lock()
	defer m.frameMu.Unlock()
	if m.renderCh == nil || m.frameTimer != nil {
		return
	}
	ch := m.renderCh
	var timer *time.Timer
	timer = time.AfterFunc(FrameInterval, func() {
		m.frameMu.Lock()
		if m.frameTimer != timer {
			// Cancelled by Clear or a new render channel after it fired.
			m.frameMu.Unlock()
			return
		}
		m.frameTimer = nil
		m.frameMu.Unlock()
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	m.frameTimer = timer
}
