// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import "github.com/cpmech/gosl/chk"

// DerivativeFunc computes the time derivative of a State's value as a pure
// function of the current DataProvider.
type DerivativeFunc func(DataProvider) []float64

// State is a continuous variable integrated by the ODE solver. Its
// initial_condition is required at construction (see DESIGN.md for the
// resolution of spec.md's open question on this point).
type State struct {
	Handle           Handle
	shape            Shape
	slice            Slice
	derivativeFunc   DerivativeFunc
	initialCondition []float64
	name             string
}

// NewState declares a new State under parent with the given shape,
// derivative function and initial condition. shape defaults to Scalar when
// nil. Panics if shape is invalid or initialCondition's length does not
// match shape's size: both are construction-time programmer errors, not
// runtime conditions.
func NewState(parent Parent, name string, shape Shape, deriv DerivativeFunc, initialCondition []float64) *State {
	if shape == nil {
		shape = Scalar
	}
	shape.validate()
	sys := parent.root()
	if len(initialCondition) != shape.Size() {
		chk.Panic("state %q: initial_condition has length %d, want %d (shape %v)", name, len(initialCondition), shape.Size(), []int(shape))
	}
	h, slice := sys.registry.allocateState(shape.Size())
	ic := make([]float64, len(initialCondition))
	copy(ic, initialCondition)
	st := &State{
		Handle:           h,
		shape:            shape,
		slice:            slice,
		derivativeFunc:   deriv,
		initialCondition: ic,
		name:             name,
	}
	sys.states = append(sys.states, st)
	return st
}

// Name returns the State's declared name.
func (s *State) Name() string { return s.name }

// Shape returns the State's declared shape.
func (s *State) Shape() Shape { return s.shape }

// Slice returns the State's [start, end) range into the flat state vector.
func (s *State) Slice() Slice { return s.slice }
