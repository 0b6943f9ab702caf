// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dynosim runs a bouncing-ball demonstration System from a JSON
// scenario file, following gofem's cmd/main.go flag-parsing and
// panic-recovery idiom (minus MPI, which has no place in a single-process
// block-diagram simulator; see DESIGN.md).
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/dynosim"
	"github.com/cpmech/dynosim/config"
	"github.com/cpmech/dynosim/integrate"
	"github.com/cpmech/dynosim/rootfind"
)

func main() {

	verbose := true

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	defer utl.DoProf(false)()

	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a scenario filename. Ex.: bounce.json\n")
	}

	io.PfWhite("\nDynosim -- hybrid block-diagram simulator\n\n")
	io.Pf("Copyright 2026 The Dynosim Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	scn, err := config.Load(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	verbose = scn.Verbose

	integFactory := integrate.Get(scn.Integrator)
	if integFactory == nil {
		chk.Panic("unknown integrator %q\n", scn.Integrator)
	}
	rootFinder := rootfind.Get(scn.RootFinder)
	if rootFinder == nil {
		chk.Panic("unknown root finder %q\n", scn.RootFinder)
	}

	height := overrideOr(scn.Overrides, "height", 1.0)
	gravity := overrideOr(scn.Overrides, "gravity", 9.8)
	restitution := overrideOr(scn.Overrides, "restitution", 0.8)

	sys := dynosim.NewSystem()
	var h, v *dynosim.State
	h = dynosim.NewState(sys, "h", dynosim.Scalar, func(data dynosim.DataProvider) []float64 {
		return data.State(v)
	}, []float64{height})
	v = dynosim.NewState(sys, "v", dynosim.Scalar, func(data dynosim.DataProvider) []float64 {
		return []float64{-gravity}
	}, []float64{0})

	bounce := dynosim.NewZeroCrossEventSource(sys, "bounce", func(data dynosim.DataProvider) float64 {
		return data.State(h)[0]
	}, dynosim.DirNegative, 0)
	bounce.AddListener(func(data dynosim.DataProvider) {
		vNow := data.State(v)[0]
		data.SetState(v, []float64{-restitution * vNow})
	})

	integOpts := integrate.DefaultOptions()
	if scn.IntegratorRTol > 0 {
		integOpts.RTol = scn.IntegratorRTol
	}
	if scn.IntegratorATol > 0 {
		integOpts.ATol = scn.IntegratorATol
	}
	if scn.IntegratorMaxStp > 0 {
		integOpts.MaxStep = scn.IntegratorMaxStp
	}
	rootOpts := rootfind.DefaultOptions()
	if scn.RootFinderXTol > 0 {
		rootOpts.XTol = scn.RootFinderXTol
	}
	if scn.RootFinderMaxIter > 0 {
		rootOpts.MaxIter = scn.RootFinderMaxIter
	}

	sim, err := dynosim.NewSimulator(sys, scn.StartTime, nil, integFactory, integOpts, rootFinder, rootOpts)
	if err != nil {
		chk.Panic("cannot construct simulator: %v\n", err)
	}
	sim.Verbose = verbose

	if err := sim.RunUntil(scn.EndTime); err != nil {
		chk.Panic("run failed: %v\n", err)
	}

	io.Pf("\nfinal time   = %v\n", sim.Time())
	io.Pf("final state  = %v\n", sim.State())
	io.Pf("samples      = %d\n", sim.Result().Count())
}

func overrideOr(overrides map[string]float64, key string, fallback float64) float64 {
	if v, ok := overrides[key]; ok {
		return v
	}
	return fallback
}
