// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestZeroCrossTriggeredEither(tst *testing.T) {

	chk.PrintTitle("event01")

	sys := NewSystem()
	ev := NewZeroCrossEventSource(sys, "e", nil, DirEither, 0)

	if !ev.triggered(1, -1) {
		tst.Fatalf("expected a sign change from + to - to trigger under DirEither")
	}
	if !ev.triggered(-1, 1) {
		tst.Fatalf("expected a sign change from - to + to trigger under DirEither")
	}
	if ev.triggered(1, 2) {
		tst.Fatalf("expected no trigger when sign does not change")
	}
}

func TestZeroCrossTriggeredDirectional(tst *testing.T) {

	chk.PrintTitle("event02")

	sys := NewSystem()
	neg := NewZeroCrossEventSource(sys, "neg", nil, DirNegative, 0)
	pos := NewZeroCrossEventSource(sys, "pos", nil, DirPositive, 0)

	if !neg.triggered(1, -1) {
		tst.Fatalf("expected DirNegative to trigger on a + -> - crossing")
	}
	if neg.triggered(-1, 1) {
		tst.Fatalf("expected DirNegative not to trigger on a - -> + crossing")
	}
	if !pos.triggered(-1, 1) {
		tst.Fatalf("expected DirPositive to trigger on a - -> + crossing")
	}
	if pos.triggered(1, -1) {
		tst.Fatalf("expected DirPositive not to trigger on a + -> - crossing")
	}
}

func TestZeroCrossTolerance(tst *testing.T) {

	chk.PrintTitle("event03")

	sys := NewSystem()
	ev := NewZeroCrossEventSource(sys, "e", nil, DirEither, 0.1)

	if ev.sign(0.05) != 0 {
		tst.Fatalf("expected a value within tolerance to have sign 0")
	}
	if ev.sign(0.2) != 1 {
		tst.Fatalf("expected a value beyond tolerance to keep its sign")
	}
}

func TestClockFiresIn(tst *testing.T) {

	chk.PrintTitle("event04")

	sys := NewSystem()
	clk := NewClock(sys, "clk", 0, 1, nil)

	fires := clk.firesIn(0, 3.5)
	chk.Vector(tst, "fires", 1e-15, fires, []float64{1, 2, 3})

	fires = clk.firesIn(1, 1)
	if len(fires) != 0 {
		tst.Fatalf("expected no fires on an empty (t, t] interval, got %v", fires)
	}
}

func TestClockRespectsEndTime(tst *testing.T) {

	chk.PrintTitle("event05")

	sys := NewSystem()
	end := 2.5
	clk := NewClock(sys, "clk", 0, 1, &end)

	fires := clk.firesIn(0, 10)
	chk.Vector(tst, "fires", 1e-15, fires, []float64{1, 2})
}
