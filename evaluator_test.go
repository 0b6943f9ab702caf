// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestEvaluatorSignalMemoization(tst *testing.T) {

	chk.PrintTitle("evaluator01")

	sys := NewSystem()
	calls := 0
	sig := NewSignal(sys, "s", Scalar, func(DataProvider) []float64 {
		calls++
		return []float64{7}
	})

	eval := NewEvaluator(sys, 0, nil, nil)
	v1, err := eval.SignalValue(sig)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	v2, err := eval.SignalValue(sig)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "v1", 1e-15, v1, []float64{7})
	chk.Vector(tst, "v2", 1e-15, v2, []float64{7})
	chk.IntAssert(calls, 1)
}

func TestEvaluatorAlgebraicLoop(tst *testing.T) {

	chk.PrintTitle("evaluator02")

	sys := NewSystem()
	var a, b *Signal
	a = NewSignal(sys, "a", Scalar, func(data DataProvider) []float64 {
		return data.Signal(b)
	})
	b = NewSignal(sys, "b", Scalar, func(data DataProvider) []float64 {
		return data.Signal(a)
	})

	eval := NewEvaluator(sys, 0, nil, nil)
	_, err := eval.SignalValue(a)
	if _, ok := err.(*AlgebraicLoopError); !ok {
		tst.Fatalf("expected *AlgebraicLoopError, got %v", err)
	}
}

func TestEvaluatorInputPreload(tst *testing.T) {

	chk.PrintTitle("evaluator03")

	sys := NewSystem()
	calls := 0
	sig := NewSignal(sys, "u", Scalar, func(DataProvider) []float64 {
		calls++
		return []float64{-1}
	})
	InputSignal(sig, sys)

	eval := NewEvaluator(sys, 0, nil, []float64{3.5})
	v, err := eval.SignalValue(sig)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "v", 1e-15, v, []float64{3.5})
	chk.IntAssert(calls, 0)
}

func TestEvaluatorStateDerivative(tst *testing.T) {

	chk.PrintTitle("evaluator04")

	sys := NewSystem()
	st := NewState(sys, "x", Scalar, func(data DataProvider) []float64 {
		x := data.State(st)
		return []float64{-x[0]}
	}, []float64{2})

	eval := NewEvaluator(sys, 0, sys.InitialState(), nil)
	deriv, err := eval.StateDerivative(st)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "deriv", 1e-15, deriv, []float64{-2})
}

func TestEvaluatorOutputsVector(tst *testing.T) {

	chk.PrintTitle("evaluator05")

	sys := NewSystem()
	sig := NewConstantSignal(sys, "k", Scalar, []float64{9})
	src := NewSourcePort(sys, "src", sig)
	OutputPort(src, sys)

	eval := NewEvaluator(sys, 0, nil, nil)
	out, err := eval.OutputsVector()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "out", 1e-15, out, []float64{9})
}
