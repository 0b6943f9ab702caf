// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// goslRadau5 adapts github.com/cpmech/gosl/ode.ODE's "Radau5" method to
// the Integrator interface, grounded on cpmech/gofem's
// ana.ColumnFluidPressure use of ode.ODE.Init/.Solve. It is offered as an
// alternative to the package's default DormandPrince54 for callers whose
// subsystems are stiffer than an explicit method comfortably handles.
//
// gosl's ode.ODE does not expose a dense-output polynomial, so
// DenseOutput here falls back to linear interpolation between the
// accepted step's endpoints; callers that rely heavily on precise event
// localization should prefer the default integrator.
type goslRadau5 struct {
	sol ode.ODE
	f   RHS

	t      float64
	y      []float64
	tBound float64
	h      float64

	t0, t1 float64
	y0, y1 []float64
}

// NewGoslRadau5 constructs an Integrator backed by gosl/ode's Radau5
// implicit Runge-Kutta method.
func NewGoslRadau5(f RHS, t0 float64, y0 []float64, tBound float64, opts Options) (Integrator, error) {
	n := len(y0)
	g := &goslRadau5{
		f:      f,
		t:      t0,
		y:      append([]float64(nil), y0...),
		tBound: tBound,
		h:      initialStep(t0, tBound, opts),
	}
	fcn := func(fOut []float64, dT, T float64, xi []float64, args ...interface{}) error {
		copy(fOut, f(T, xi))
		return nil
	}
	const silent = true
	g.sol.Init("Radau5", n, fcn, nil, nil, nil, silent)
	return g, nil
}

func (g *goslRadau5) T() float64   { return g.t }
func (g *goslRadau5) Y() []float64 { return append([]float64(nil), g.y...) }

// Step advances one step of size min(h, tBound-t) using gosl/ode's fixed-
// step Radau5 solve.
func (g *goslRadau5) Step() error {
	h := g.h
	if remaining := g.tBound - g.t; h > remaining {
		h = remaining
	}
	if h <= 0 {
		return chk.Err("cannot step beyond t_bound = %v (t = %v)", g.tBound, g.t)
	}
	y := append([]float64(nil), g.y...)
	const fixedStep = true
	err := g.sol.Solve(y, g.t, g.t+h, h, fixedStep)
	if err != nil {
		return chk.Err("gosl/ode Radau5 failed: %v", err)
	}
	g.t0, g.y0 = g.t, append([]float64(nil), g.y...)
	g.t = g.t + h
	g.y = y
	g.t1, g.y1 = g.t, append([]float64(nil), y...)
	return nil
}

// DenseOutput returns a linear interpolant over the last accepted step.
func (g *goslRadau5) DenseOutput() (Interpolator, error) {
	if g.y0 == nil {
		return nil, chk.Err("dense output requested before any step was accepted")
	}
	t0, t1, y0, y1 := g.t0, g.t1, g.y0, g.y1
	span := t1 - t0
	return func(tau float64) []float64 {
		theta := (tau - t0) / span
		out := make([]float64, len(y0))
		for i := range out {
			out[i] = y0[i] + theta*(y1[i]-y0[i])
		}
		return out
	}, nil
}
