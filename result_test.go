// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestResultAppendAndGrow(tst *testing.T) {

	chk.PrintTitle("result01")

	sys := NewSystem()
	st := NewState(sys, "x", Scalar, nil, []float64{0})
	_ = st

	r := NewResult(sys)
	n := resultInitialCapacity + 5
	for i := 0; i < n; i++ {
		r.Append(float64(i), nil, []float64{float64(i)}, nil, nil, nil)
	}
	chk.IntAssert(r.Count(), n)
	times := r.Time()
	chk.IntAssert(len(times), n)
	for i := 0; i < n; i++ {
		chk.Scalar(tst, "t", 1e-15, times[i], float64(i))
	}
}

func TestResultStateColumnProjection(tst *testing.T) {

	chk.PrintTitle("result02")

	sys := NewSystem()
	a := NewState(sys, "a", Scalar, nil, []float64{0})
	b := NewState(sys, "b", Shape{2}, nil, []float64{0, 0})

	r := NewResult(sys)
	r.Append(0, nil, []float64{1, 2, 3}, nil, nil, nil)
	r.Append(1, nil, []float64{4, 5, 6}, nil, nil, nil)

	aCol := r.StateColumn(a)
	chk.Vector(tst, "a[0]", 1e-15, aCol[0], []float64{1})
	chk.Vector(tst, "a[1]", 1e-15, aCol[1], []float64{4})

	bCol := r.StateColumn(b)
	chk.Vector(tst, "b[0]", 1e-15, bCol[0], []float64{2, 3})
	chk.Vector(tst, "b[1]", 1e-15, bCol[1], []float64{5, 6})
}
