// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rootfind defines the pluggable bracketing-root-finder boundary
// used by the Simulator to localize events in time, plus a default
// Brent's-method implementation.
package rootfind

import "github.com/cpmech/gosl/chk"

// Options carries the tolerance and iteration limit for a root search.
type Options struct {
	XTol    float64 // absolute tolerance on the bracket width
	MaxIter int     // maximum number of iterations
}

// DefaultOptions returns the package's default tolerance/iteration limit.
func DefaultOptions() Options {
	return Options{XTol: 1e-10, MaxIter: 100}
}

// RootFinder finds a root of f within [a, b], where f(a) and f(b) have
// opposite signs.
type RootFinder func(f func(float64) float64, a, b float64, opts Options) (float64, error)

var finders = make(map[string]RootFinder)

// Register adds a named RootFinder to the package registry, mirroring
// cpmech/gofem's ele.SetAllocator idiom. Panics if the name is already
// registered.
func Register(name string, finder RootFinder) {
	if _, ok := finders[name]; ok {
		chk.Panic("cannot register root-finder %q because it is already registered", name)
	}
	finders[name] = finder
}

// Get returns the named RootFinder, panicking if it is unknown.
func Get(name string) RootFinder {
	finder, ok := finders[name]
	if !ok {
		chk.Panic("cannot find root-finder named %q", name)
	}
	return finder
}

func init() {
	Register("brent", Brent)
}
