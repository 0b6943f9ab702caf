// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestShapeSize(tst *testing.T) {

	chk.PrintTitle("shape01")

	chk.IntAssert(Scalar.Size(), 1)
	chk.IntAssert(Shape{3}.Size(), 3)
	chk.IntAssert(Shape{2, 3}.Size(), 6)
}

func TestShapeEqual(tst *testing.T) {

	chk.PrintTitle("shape02")

	a, b, c := Shape{3}, Shape{3}, Shape{2, 3}
	if !a.Equal(b) {
		tst.Fatalf("expected Shape{3} to equal Shape{3}")
	}
	if a.Equal(c) {
		tst.Fatalf("expected Shape{3} to differ from Shape{2,3}")
	}
}

func TestShapeCoerceMismatch(tst *testing.T) {

	chk.PrintTitle("shape03")

	h := Handle{KindSignal, 0}
	_, err := Shape{3}.coerce(h, []float64{1, 2})
	if err == nil {
		tst.Fatalf("expected a ShapeMismatchError")
	}
	if _, ok := err.(*ShapeMismatchError); !ok {
		tst.Fatalf("expected *ShapeMismatchError, got %T", err)
	}
}
