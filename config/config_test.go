// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

func TestScenarioSaveLoadRoundTrip(tst *testing.T) {

	chk.PrintTitle("config01")

	s := &Scenario{
		Desc:              "bouncing ball sweep",
		StartTime:         0,
		EndTime:           5,
		Integrator:        "dopri5",
		IntegratorRTol:    1e-6,
		IntegratorATol:    1e-9,
		RootFinder:        "brent",
		RootFinderXTol:    1e-10,
		RootFinderMaxIter: 100,
		Overrides:         map[string]float64{"restitution": 0.8},
	}

	path := filepath.Join(tst.TempDir(), "scenario.json")
	if err := s.Save(path); err != nil {
		tst.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if got.Desc != s.Desc || got.Integrator != s.Integrator || got.RootFinder != s.RootFinder {
		tst.Fatalf("round-tripped scenario differs: got %+v, want %+v", got, s)
	}
	chk.Scalar(tst, "end_time", 1e-15, got.EndTime, s.EndTime)
	chk.Scalar(tst, "overrides[restitution]", 1e-15, got.Overrides["restitution"], 0.8)
}

func TestRandomOverridesWithinBounds(tst *testing.T) {

	chk.PrintTitle("config02")

	vars := rnd.Variables{
		{Key: "angle", Min: 10, Max: 30},
	}
	out, err := RandomOverrides(vars)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	v, ok := out["angle"]
	if !ok {
		tst.Fatalf("expected an override for key %q", "angle")
	}
	if v < 10 || v > 30 {
		tst.Fatalf("expected sampled value within [10, 30], got %v", v)
	}
}
