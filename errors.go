// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import "github.com/cpmech/gosl/chk"

// ShapeMismatchError is returned when a declared shape differs from a
// produced or connected shape.
type ShapeMismatchError struct {
	Handle   Handle
	Expected Shape
	Got      Shape
	msg      error
}

func (e *ShapeMismatchError) Error() string { return e.msg.Error() }

func newShapeMismatch(h Handle, expected, got Shape) *ShapeMismatchError {
	return &ShapeMismatchError{
		Handle:   h,
		Expected: expected,
		Got:      got,
		msg:      chk.Err("%v: shape mismatch: expected %v, got %v", h, expected, got),
	}
}

// MultipleSignalsError is returned when a Port is connected to two
// conflicting source Signals.
type MultipleSignalsError struct {
	Port Handle
	msg  error
}

func (e *MultipleSignalsError) Error() string { return e.msg.Error() }

func newMultipleSignals(port Handle) *MultipleSignalsError {
	return &MultipleSignalsError{
		Port: port,
		msg:  chk.Err("%v: already connected to a different source", port),
	}
}

// PortNotConnectedError is returned when evaluation reaches a Port with no
// resolvable source Signal.
type PortNotConnectedError struct {
	Port Handle
	msg  error
}

func (e *PortNotConnectedError) Error() string { return e.msg.Error() }

func newPortNotConnected(port Handle) *PortNotConnectedError {
	return &PortNotConnectedError{
		Port: port,
		msg:  chk.Err("%v: port is not connected to any signal", port),
	}
}

// AlgebraicLoopError is returned when a cyclic signal dependency is
// encountered during evaluation.
type AlgebraicLoopError struct {
	Signal Handle
	msg    error
}

func (e *AlgebraicLoopError) Error() string { return e.msg.Error() }

func newAlgebraicLoop(signal Handle) *AlgebraicLoopError {
	return &AlgebraicLoopError{
		Signal: signal,
		msg:    chk.Err("%v: algebraic loop detected while evaluating signal", signal),
	}
}

// IntegratorFailedError wraps a message surfaced verbatim from the
// pluggable integrator.
type IntegratorFailedError struct {
	Message string
}

func (e *IntegratorFailedError) Error() string { return e.Message }

// RootFindFailedError wraps a message surfaced verbatim from the pluggable
// root-finder.
type RootFindFailedError struct {
	Message string
}

func (e *RootFindFailedError) Error() string { return e.Message }
