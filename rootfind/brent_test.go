// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootfind

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestBrentSquareRootOfTwo(tst *testing.T) {

	chk.PrintTitle("brent01")

	f := func(x float64) float64 { return x*x - 2 }
	root, err := Brent(f, 0, 2, DefaultOptions())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "root", 1e-9, root, math.Sqrt2)
}

func TestBrentNoBracket(tst *testing.T) {

	chk.PrintTitle("brent02")

	f := func(x float64) float64 { return x*x + 1 }
	_, err := Brent(f, 0, 2, DefaultOptions())
	if err == nil {
		tst.Fatalf("expected an error when f(a) and f(b) do not bracket a root")
	}
}

func TestBrentExactEndpoint(tst *testing.T) {

	chk.PrintTitle("brent03")

	f := func(x float64) float64 { return x - 1 }
	root, err := Brent(f, 1, 5, DefaultOptions())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "root", 1e-15, root, 1)
}
