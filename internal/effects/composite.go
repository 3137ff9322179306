// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/composite.go
// Summary: Sequence and parallel combinators over child effects.
// Notes: Composites own copies of their children. A sequence advances exactly
// one child per tick so a frame's delta is never split across two children.

package effects

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoChildren is returned when a composite is built without children.
var ErrNoChildren = errors.New("effects: composite needs at least one child")

// Sequence runs children one after another.
func Sequence(children ...*Effect) (*Effect, error) {
	return newComposite("sequence", effectSequence, children)
}

// Parallel runs children simultaneously and finishes with the longest one.
func Parallel(children ...*Effect) (*Effect, error) {
	return newComposite("parallel", effectParallel, children)
}

func newComposite(name string, kind effectKind, children []*Effect) (*Effect, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoChildren)
	}
	owned := make([]*Effect, len(children))
	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("%s: child %d is nil: %w", name, i, ErrInvalidParameter)
		}
		owned[i] = child.copy()
	}
	return &Effect{
		kind:     kind,
		name:     name,
		children: owned,
		space:    ColorSpaceHSL,
		seed:     DefaultSeed,
	}, nil
}

// Children returns the number of direct children.
func (e *Effect) Children() int { return len(e.children) }

func (e *Effect) processSequence(delta time.Duration, buf Buffer, area Rect) {
	for e.current < len(e.children) && e.children[e.current].Done() {
		e.current++
	}
	if e.current >= len(e.children) {
		return
	}
	child := e.children[e.current]
	child.Process(delta, buf, area)
	if child.Done() {
		e.current++
	}
}

func (e *Effect) processParallel(delta time.Duration, buf Buffer, area Rect) {
	for _, child := range e.children {
		if !child.Done() {
			child.Process(delta, buf, area)
		}
	}
}
