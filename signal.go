// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import "github.com/cpmech/gosl/fun"

// ValueFunc computes an algebraic Signal's value as a pure function of the
// current DataProvider.
type ValueFunc func(DataProvider) []float64

// Signal is an algebraic (non-state) output: either a constant array or a
// pure function of a DataProvider, modeled as a tagged variant (Design
// Note: "Callable values").
type Signal struct {
	Handle Handle
	shape  Shape
	slice  Slice
	name   string

	constant []float64 // non-nil iff this Signal is Const
	fn       ValueFunc // non-nil iff this Signal is Computed

	// set only when this Signal is also registered as a system-level
	// input (see InputSignal).
	inputHandle *Handle
	inputSlice  Slice
}

// NewSignal declares a computed Signal under parent: its value is produced
// by fn at every evaluation. shape defaults to Scalar when nil.
func NewSignal(parent Parent, name string, shape Shape, fn ValueFunc) *Signal {
	return newSignal(parent, name, shape, nil, fn)
}

// NewConstantSignal declares a Signal whose value never changes.
func NewConstantSignal(parent Parent, name string, shape Shape, value []float64) *Signal {
	return newSignal(parent, name, shape, value, nil)
}

func newSignal(parent Parent, name string, shape Shape, constant []float64, fn ValueFunc) *Signal {
	if shape == nil {
		shape = Scalar
	}
	shape.validate()
	sys := parent.root()
	h, slice := sys.registry.allocateSignal(shape.Size())
	var c []float64
	if constant != nil {
		c = make([]float64, len(constant))
		copy(c, constant)
	}
	sig := &Signal{
		Handle:   h,
		shape:    shape,
		slice:    slice,
		name:     name,
		constant: c,
		fn:       fn,
	}
	sys.signals = append(sys.signals, sig)
	return sig
}

// Name returns the Signal's declared name.
func (s *Signal) Name() string { return s.name }

// Shape returns the Signal's declared shape.
func (s *Signal) Shape() Shape { return s.shape }

// Slice returns the Signal's [start, end) range into the flat signal
// vector.
func (s *Signal) Slice() Slice { return s.slice }

// IsInput reports whether this Signal is also registered as a system-level
// input via InputSignal.
func (s *Signal) IsInput() bool { return s.inputHandle != nil }

// evaluate produces the Signal's raw value: either the stored constant or
// a call to fn. It does not coerce shape or touch memoization state; that
// is the Evaluator's job.
func (s *Signal) evaluate(data DataProvider) []float64 {
	if s.fn != nil {
		return s.fn(data)
	}
	return s.constant
}

// InputSignal registers an existing Signal as a system-level input,
// additionally allocating it an input_index/input_slice into the flat
// input vector.
func InputSignal(sig *Signal, sys *System) *Signal {
	if sig.inputHandle != nil {
		return sig
	}
	h, slice := sys.registry.allocateInput(sig.shape.Size())
	sig.inputHandle = &h
	sig.inputSlice = slice
	sys.inputs = append(sys.inputs, sig)
	return sig
}

// InputHandle returns the Signal's input Handle, or the zero Handle and
// false if it is not an InputSignal.
func (s *Signal) InputHandle() (Handle, bool) {
	if s.inputHandle == nil {
		return Handle{}, false
	}
	return *s.inputHandle, true
}

// InputSlice returns the Signal's [start, end) range into the flat input
// vector. Only valid when IsInput() is true.
func (s *Signal) InputSlice() Slice { return s.inputSlice }

// NewFuncSignal declares a scalar computed Signal whose value at every
// evaluation is f.F(time, nil), adapting a gosl/fun.Func the way the
// teacher's elements wire a time-dependent load or gravity function (e.g.
// ele/solid.Beam.Gfcn/Qt) into a per-step scalar value.
func NewFuncSignal(parent Parent, name string, f fun.Func) *Signal {
	return NewSignal(parent, name, Scalar, func(data DataProvider) []float64 {
		return []float64{f.F(data.Time(), nil)}
	})
}
