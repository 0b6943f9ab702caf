// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rootfind

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Brent is the package's default RootFinder: the classical
// bisection/secant/inverse-quadratic-interpolation hybrid of Brent
// (1973). No bracketing root-finder is visible in the retrieved corpus's
// gosl/num usage (only finite-difference derivative checks and NlSolver),
// so this is a hand-built implementation against math only; see
// DESIGN.md.
func Brent(f func(float64) float64, a, b float64, opts Options) (float64, error) {
	if opts.XTol <= 0 {
		opts.XTol = DefaultOptions().XTol
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = DefaultOptions().MaxIter
	}

	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if sameSign(fa, fb) {
		return 0, chk.Err("brent: f(a)=%v and f(b)=%v do not bracket a root", fa, fb)
	}

	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	mflag := true
	var d float64

	for iter := 0; iter < opts.MaxIter; iter++ {
		if fb == 0 || math.Abs(b-a) < opts.XTol {
			return b, nil
		}

		var s float64
		if fa != fc && fb != fc {
			// inverse quadratic interpolation
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// secant method
			s = b - fb*(b-a)/(fb-fa)
		}

		cond1 := !between(s, (3*a+b)/4, b)
		cond2 := mflag && math.Abs(s-b) >= math.Abs(b-c)/2
		cond3 := !mflag && math.Abs(s-b) >= math.Abs(c-d)/2
		cond4 := mflag && math.Abs(b-c) < opts.XTol
		cond5 := !mflag && math.Abs(c-d) < opts.XTol
		if cond1 || cond2 || cond3 || cond4 || cond5 {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs := f(s)
		d, c, fc = c, b, fb

		if sameSign(fa, fs) {
			a, fa = s, fs
		} else {
			b, fb = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}
	return b, chk.Err("brent: failed to converge to within xtol=%v after %d iterations", opts.XTol, opts.MaxIter)
}

func sameSign(x, y float64) bool {
	return (x > 0 && y > 0) || (x < 0 && y < 0)
}

func between(x, lo, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return x >= lo && x <= hi
}
