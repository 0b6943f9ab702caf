// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestRegistrySlicesAreContiguous(tst *testing.T) {

	chk.PrintTitle("registry01")

	sys := NewSystem()
	a := NewState(sys, "a", Scalar, nil, []float64{0})
	b := NewState(sys, "b", Shape{3}, nil, []float64{0, 0, 0})
	c := NewState(sys, "c", Scalar, nil, []float64{0})

	chk.IntAssert(a.Slice().Start, 0)
	chk.IntAssert(a.Slice().Size, 1)
	chk.IntAssert(b.Slice().Start, 1)
	chk.IntAssert(b.Slice().Size, 3)
	chk.IntAssert(c.Slice().Start, 4)
	chk.IntAssert(c.Slice().Size, 1)
	chk.IntAssert(sys.NumStates(), 5)
}

func TestRegistryHandlesAreUnique(tst *testing.T) {

	chk.PrintTitle("registry02")

	sys := NewSystem()
	s1 := NewSignal(sys, "s1", Scalar, func(DataProvider) []float64 { return []float64{0} })
	s2 := NewSignal(sys, "s2", Scalar, func(DataProvider) []float64 { return []float64{0} })

	if s1.Handle == s2.Handle {
		tst.Fatalf("expected distinct handles, got %v and %v", s1.Handle, s2.Handle)
	}
	chk.IntAssert(s1.Handle.Index, 0)
	chk.IntAssert(s2.Handle.Index, 1)
}

func TestRegistryBlockAllocationForwardsToSystem(tst *testing.T) {

	chk.PrintTitle("registry03")

	sys := NewSystem()
	blk := NewBlock(sys, "motor")
	st := NewState(blk, "speed", Scalar, nil, []float64{0})

	chk.IntAssert(st.Slice().Start, 0)
	chk.IntAssert(sys.NumStates(), 1)
	if blk.Parent() != Parent(sys) {
		tst.Fatalf("expected block's parent to be the system")
	}
}
