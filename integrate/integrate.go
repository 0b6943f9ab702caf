// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate defines the pluggable ODE-integrator boundary used by
// the Simulator, plus a default embedded Runge-Kutta implementation.
package integrate

import "github.com/cpmech/gosl/chk"

// RHS is the right-hand side of dy/dt = f(t, y).
type RHS func(t float64, y []float64) []float64

// Interpolator is a dense-output callable valid on the last accepted
// step's [t, tNew] interval.
type Interpolator func(tau float64) []float64

// Integrator is the capability interface the Simulator drives: construct,
// step, read t/y, and optionally obtain a dense interpolant over the last
// step.
type Integrator interface {
	// Step advances the internal t and y by one step, returning a
	// non-nil error (its message is surfaced verbatim by the Simulator)
	// if the step failed.
	Step() error

	// T returns the current time after the last Step.
	T() float64

	// Y returns the current state after the last Step.
	Y() []float64

	// DenseOutput returns an interpolant valid on the interval covered
	// by the last accepted Step.
	DenseOutput() (Interpolator, error)
}

// Options carries tolerances and limits common to every integrator.
type Options struct {
	RTol    float64 // relative tolerance
	ATol    float64 // absolute tolerance
	MaxStep float64 // maximum step size; 0 means unbounded
}

// DefaultOptions returns the package's default tolerances, matching the
// defaults used throughout the simulation guide scenarios.
func DefaultOptions() Options {
	return Options{RTol: 1e-6, ATol: 1e-9}
}

// Factory constructs an Integrator for f on [t0, tBound], starting at y0.
type Factory func(f RHS, t0 float64, y0 []float64, tBound float64, opts Options) (Integrator, error)

var factories = make(map[string]Factory)

// Register adds a named Factory to the package registry, mirroring
// cpmech/gofem's ele.SetAllocator idiom. Panics if the name is already
// registered.
func Register(name string, factory Factory) {
	if _, ok := factories[name]; ok {
		chk.Panic("cannot register integrator %q because it is already registered", name)
	}
	factories[name] = factory
}

// Get returns the named Factory, panicking if it is unknown.
func Get(name string) Factory {
	factory, ok := factories[name]
	if !ok {
		chk.Panic("cannot find integrator named %q", name)
	}
	return factory
}

func init() {
	Register("dopri5", NewDormandPrince54)
	Register("radau5", NewGoslRadau5)
}
