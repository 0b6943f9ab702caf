// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPortConnectResolvesToSameSignal(tst *testing.T) {

	chk.PrintTitle("port01")

	sys := NewSystem()
	sig := NewConstantSignal(sys, "k", Scalar, []float64{42})
	src := NewSourcePort(sys, "src", sig)
	p := NewPort(sys, "p", Scalar)
	q := NewPort(sys, "q", Scalar)

	if err := p.Connect(src); err != nil {
		tst.Fatalf("p.Connect(src) failed: %v", err)
	}
	if err := q.Connect(p); err != nil {
		tst.Fatalf("q.Connect(p) failed: %v", err)
	}

	pSig, err := p.Signal()
	if err != nil {
		tst.Fatalf("p.Signal() failed: %v", err)
	}
	qSig, err := q.Signal()
	if err != nil {
		tst.Fatalf("q.Signal() failed: %v", err)
	}
	if pSig != sig || qSig != sig {
		tst.Fatalf("expected both ports to resolve to sig, got %v and %v", pSig, qSig)
	}
}

func TestPortConnectShapeMismatch(tst *testing.T) {

	chk.PrintTitle("port02")

	sys := NewSystem()
	p := NewPort(sys, "p", Scalar)
	q := NewPort(sys, "q", Shape{3})

	err := p.Connect(q)
	if _, ok := err.(*ShapeMismatchError); !ok {
		tst.Fatalf("expected *ShapeMismatchError, got %v", err)
	}
}

func TestPortConnectMultipleSignals(tst *testing.T) {

	chk.PrintTitle("port03")

	sys := NewSystem()
	sig1 := NewConstantSignal(sys, "a", Scalar, []float64{1})
	sig2 := NewConstantSignal(sys, "b", Scalar, []float64{2})
	src1 := NewSourcePort(sys, "src1", sig1)
	src2 := NewSourcePort(sys, "src2", sig2)
	p := NewPort(sys, "p", Scalar)

	if err := p.Connect(src1); err != nil {
		tst.Fatalf("first connect failed: %v", err)
	}
	err := p.Connect(src2)
	if _, ok := err.(*MultipleSignalsError); !ok {
		tst.Fatalf("expected *MultipleSignalsError, got %v", err)
	}
}

func TestPortNotConnected(tst *testing.T) {

	chk.PrintTitle("port04")

	sys := NewSystem()
	p := NewPort(sys, "p", Scalar)
	_, err := p.Signal()
	if _, ok := err.(*PortNotConnectedError); !ok {
		tst.Fatalf("expected *PortNotConnectedError, got %v", err)
	}
}
