// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/effect.go
// Summary: The executable effect unit: timing, spatial scoping and a shader or child list.
// Usage: Build with a constructor, decorate with the With* methods, then call
// Process once per frame until Done reports true.
// Notes: With* methods return configured copies and never mutate the receiver.
// A finished effect is never resurrected; Clone it to replay.

package effects

import "time"

type effectKind int

const (
	effectShader effectKind = iota
	effectSequence
	effectParallel
)

// Effect is a shader-backed or composite animation.
type Effect struct {
	kind  effectKind
	name  string
	timer EffectTimer

	shader   shader
	children []*Effect
	current  int

	filter     CellFilter
	filterSet  bool
	pattern    *Pattern
	patternSet bool
	space      ColorSpace
	spaceSet   bool
	area       *Rect
	seed       uint64
	seedSet    bool
}

func newShaderEffect(name string, s shader, timer EffectTimer) *Effect {
	return &Effect{
		kind:   effectShader,
		name:   name,
		shader: s,
		timer:  timer,
		space:  ColorSpaceHSL,
		seed:   DefaultSeed,
	}
}

// Name returns the effect's label, by default the constructor's effect ID.
func (e *Effect) Name() string { return e.name }

// Timer returns a copy of the effect's timer. Composites report a zero timer.
func (e *Effect) Timer() EffectTimer { return e.timer }

// Area returns the area override, if any.
func (e *Effect) Area() (Rect, bool) {
	if e.area == nil {
		return Rect{}, false
	}
	return *e.area, true
}

// ColorSpace returns the space used to blend colors.
func (e *Effect) ColorSpace() ColorSpace { return e.space }

// Duration returns the nominal running time: the timer duration, the sum of a
// sequence's children, or the longest child of a parallel.
func (e *Effect) Duration() time.Duration {
	switch e.kind {
	case effectSequence:
		var total time.Duration
		for _, c := range e.children {
			total += c.Duration()
		}
		return total
	case effectParallel:
		var longest time.Duration
		for _, c := range e.children {
			longest = max(longest, c.Duration())
		}
		return longest
	default:
		return e.timer.Duration()
	}
}

// Done reports whether the effect has finished. Shader effects finish when the
// raw timer ratio reaches 1, regardless of easing overshoot.
func (e *Effect) Done() bool {
	switch e.kind {
	case effectSequence:
		return e.current >= len(e.children)
	case effectParallel:
		for _, c := range e.children {
			if !c.Done() {
				return false
			}
		}
		return true
	default:
		return e.timer.Done()
	}
}

// Process advances the effect by delta and applies it to buf inside area (or
// the effect's own area override). Negative deltas count as zero and a done
// effect is left untouched.
func (e *Effect) Process(delta time.Duration, buf Buffer, area Rect) {
	if e == nil || e.Done() {
		return
	}
	if delta < 0 {
		delta = 0
	}
	if e.area != nil {
		area = *e.area
	}
	switch e.kind {
	case effectSequence:
		e.processSequence(delta, buf, area)
	case effectParallel:
		e.processParallel(delta, buf, area)
	default:
		e.processShader(delta, buf, area)
	}
}

func (e *Effect) processShader(delta time.Duration, buf Buffer, area Rect) {
	e.timer.Advance(delta)
	target := area.Intersect(buf.Bounds())
	if target.Empty() || e.shader.kind == shaderSleep {
		return
	}
	global := clamp01(e.timer.Progress())
	ctx := shaderContext{
		alpha:  global,
		global: global,
		area:   area,
		space:  e.space,
		seed:   e.seed,
	}
	for y := target.Y; y < target.Bottom(); y++ {
		for x := target.X; x < target.Right(); x++ {
			pos := Position{X: x, Y: y}
			cell := buf.Cell(x, y)
			if !e.filter.Matches(pos, cell, area) {
				continue
			}
			if e.pattern != nil {
				ctx.alpha = clamp01(e.pattern.MapAlpha(global, pos, area))
			}
			if out := e.shader.apply(ctx, pos, cell); out != cell {
				buf.SetCell(x, y, out)
			}
		}
	}
}

// WithFilter returns a copy restricted to cells accepted by f.
func (e *Effect) WithFilter(f CellFilter) *Effect {
	c := e.copy()
	c.setFilter(f, true)
	return c
}

// WithPattern returns a copy whose per-cell alpha is shaped by p.
func (e *Effect) WithPattern(p Pattern) *Effect {
	c := e.copy()
	c.setPattern(p, true)
	return c
}

// WithColorSpace returns a copy blending colors in cs.
func (e *Effect) WithColorSpace(cs ColorSpace) *Effect {
	c := e.copy()
	c.setColorSpace(cs, true)
	return c
}

// WithArea returns a copy that always targets r instead of the area passed to Process.
func (e *Effect) WithArea(r Rect) *Effect {
	c := e.copy()
	c.area = &r
	return c
}

// WithSeed returns a copy using seed for per-cell randomness.
func (e *Effect) WithSeed(seed uint64) *Effect {
	c := e.copy()
	c.setSeed(seed, true)
	return c
}

// WithName returns a copy labelled name.
func (e *Effect) WithName(name string) *Effect {
	c := e.copy()
	c.name = name
	return c
}

// Clone returns a fresh, unstarted copy with the same configuration.
func (e *Effect) Clone() *Effect {
	c := e.copy()
	c.reset()
	return c
}

// copy deep-copies the effect including its running state.
func (e *Effect) copy() *Effect {
	c := *e
	if e.pattern != nil {
		p := *e.pattern
		c.pattern = &p
	}
	if e.area != nil {
		r := *e.area
		c.area = &r
	}
	if e.children != nil {
		c.children = make([]*Effect, len(e.children))
		for i, child := range e.children {
			c.children[i] = child.copy()
		}
	}
	return &c
}

func (e *Effect) reset() {
	e.timer = e.timer.Reset()
	e.current = 0
	for _, child := range e.children {
		child.reset()
	}
}

// The setters below record explicit settings and let composite children that
// have none of their own inherit the composite's value.

func (e *Effect) setFilter(f CellFilter, explicit bool) {
	if !explicit && e.filterSet {
		return
	}
	e.filter = f
	e.filterSet = explicit
	for _, child := range e.children {
		child.setFilter(f, false)
	}
}

func (e *Effect) setPattern(p Pattern, explicit bool) {
	if !explicit && e.patternSet {
		return
	}
	e.pattern = &p
	e.patternSet = explicit
	for _, child := range e.children {
		child.setPattern(p, false)
	}
}

func (e *Effect) setColorSpace(cs ColorSpace, explicit bool) {
	if !explicit && e.spaceSet {
		return
	}
	e.space = cs
	e.spaceSet = explicit
	for _, child := range e.children {
		child.setColorSpace(cs, false)
	}
}

func (e *Effect) setSeed(seed uint64, explicit bool) {
	if !explicit && e.seedSet {
		return
	}
	e.seed = seed
	e.seedSet = explicit
	for _, child := range e.children {
		child.setSeed(seed, false)
	}
}
