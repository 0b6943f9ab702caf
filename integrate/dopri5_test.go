// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestDormandPrince54ExponentialDecay(tst *testing.T) {

	chk.PrintTitle("dopri5_01")

	rhs := func(t float64, y []float64) []float64 {
		return []float64{-y[0]}
	}
	integrator, err := NewDormandPrince54(rhs, 0, []float64{1}, 1, DefaultOptions())
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}
	for integrator.T() < 1 {
		if err := integrator.Step(); err != nil {
			tst.Fatalf("step failed: %v", err)
		}
	}
	got := integrator.Y()[0]
	want := math.Exp(-1)
	chk.Scalar(tst, "y(1)", 1e-5, got, want)
}

func TestDormandPrince54DenseOutput(tst *testing.T) {

	chk.PrintTitle("dopri5_02")

	rhs := func(t float64, y []float64) []float64 {
		return []float64{1} // dy/dt = 1 => y(t) = t + y0
	}
	integrator, err := NewDormandPrince54(rhs, 0, []float64{0}, 1, DefaultOptions())
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}
	if err := integrator.Step(); err != nil {
		tst.Fatalf("step failed: %v", err)
	}
	interp, err := integrator.DenseOutput()
	if err != nil {
		tst.Fatalf("dense output failed: %v", err)
	}
	mid := integrator.T() / 2
	y := interp(mid)
	chk.Scalar(tst, "y(mid)", 1e-9, y[0], mid)
}

func TestIntegrateRegistryDefaults(tst *testing.T) {

	chk.PrintTitle("dopri5_03")

	factory := Get("dopri5")
	if factory == nil {
		tst.Fatalf("expected a registered dopri5 factory")
	}
}
