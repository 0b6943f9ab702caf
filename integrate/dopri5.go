// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Dormand-Prince 5(4) Butcher tableau (Dormand & Prince, 1980), the
// classical explicit embedded pair also known as ode45/RK45. No
// embedded-Runge-Kutta-with-dense-output implementation is visible
// anywhere in the retrieved corpus (see DESIGN.md), so the coefficients
// below are entered by hand from that published tableau.
var (
	dp5c = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}

	dp5a = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}

	dp5b5 = [7]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}
	dp5b4 = [7]float64{5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40}
)

const (
	dp5Safety  = 0.9
	dp5MinFac  = 0.2
	dp5MaxFac  = 5.0
	dp5ErrOrd  = 5.0 // local error is O(h^5): exponent uses 1/(ErrOrd)
	dp5MaxIter = 1000
)

// dormandPrince54 is the package's default Integrator: an explicit
// embedded Runge-Kutta 5(4) solver with adaptive step-size control driven
// by a weighted-RMS error norm, and a cubic Hermite dense-output
// interpolant over the last accepted step.
type dormandPrince54 struct {
	f      RHS
	tBound float64
	opts   Options

	t float64
	y []float64

	// the last accepted step's interval and data, for DenseOutput.
	t0, t1 float64
	y0, y1 []float64
	f0, f1 []float64

	h float64 // current trial step size
}

// NewDormandPrince54 constructs the package's default Integrator.
func NewDormandPrince54(f RHS, t0 float64, y0 []float64, tBound float64, opts Options) (Integrator, error) {
	if opts.RTol <= 0 {
		opts.RTol = DefaultOptions().RTol
	}
	if opts.ATol <= 0 {
		opts.ATol = DefaultOptions().ATol
	}
	y := make([]float64, len(y0))
	la.VecCopy(y, 1, y0)
	d := &dormandPrince54{
		f:      f,
		tBound: tBound,
		opts:   opts,
		t:      t0,
		y:      y,
		h:      initialStep(t0, tBound, opts),
	}
	return d, nil
}

func initialStep(t0, tBound float64, opts Options) float64 {
	span := math.Abs(tBound - t0)
	h := span / 100
	if opts.MaxStep > 0 && h > opts.MaxStep {
		h = opts.MaxStep
	}
	if h <= 0 {
		h = 1e-6
	}
	return h
}

func (d *dormandPrince54) T() float64   { return d.t }
func (d *dormandPrince54) Y() []float64 { return append([]float64(nil), d.y...) }

// Step advances (t, y) by one adaptively-sized step, never overshooting
// tBound.
func (d *dormandPrince54) Step() error {
	if d.t >= d.tBound {
		return chk.Err("cannot step beyond t_bound = %v (t = %v)", d.tBound, d.t)
	}
	n := len(d.y)
	stage := make([][]float64, 7)

	for iter := 0; iter < dp5MaxIter; iter++ {
		h := d.h
		if remaining := d.tBound - d.t; h > remaining {
			h = remaining
		}
		if d.opts.MaxStep > 0 && h > d.opts.MaxStep {
			h = d.opts.MaxStep
		}
		if h <= 0 {
			return chk.Err("step size collapsed to zero at t = %v", d.t)
		}

		for s := 0; s < 7; s++ {
			yi := make([]float64, n)
			la.VecCopy(yi, 1, d.y)
			for j := 0; j < s; j++ {
				aij := dp5a[s][j]
				if aij == 0 {
					continue
				}
				for k := 0; k < n; k++ {
					yi[k] += h * aij * stage[j][k]
				}
			}
			stage[s] = d.f(d.t+dp5c[s]*h, yi)
		}

		y5 := make([]float64, n)
		y4 := make([]float64, n)
		la.VecCopy(y5, 1, d.y)
		la.VecCopy(y4, 1, d.y)
		for s := 0; s < 7; s++ {
			for k := 0; k < n; k++ {
				y5[k] += h * dp5b5[s] * stage[s][k]
				y4[k] += h * dp5b4[s] * stage[s][k]
			}
		}

		errNorm := weightedErrorNorm(y5, y4, d.y, d.opts)
		if errNorm <= 1 {
			d.t0, d.y0, d.f0 = d.t, append([]float64(nil), d.y...), stage[0]
			d.t = d.t + h
			d.y = y5
			d.t1, d.y1, d.f1 = d.t, append([]float64(nil), d.y...), d.f(d.t, y5)
			d.h = scaleStep(h, errNorm)
			return nil
		}
		d.h = scaleStep(h, errNorm)
	}
	return chk.Err("step-size control failed to converge after %d attempts at t = %v", dp5MaxIter, d.t)
}

func weightedErrorNorm(y5, y4, yPrev []float64, opts Options) float64 {
	sum := 0.0
	for i := range y5 {
		scale := opts.ATol + opts.RTol*math.Max(math.Abs(y5[i]), math.Abs(yPrev[i]))
		e := (y5[i] - y4[i]) / scale
		sum += e * e
	}
	return math.Sqrt(sum / float64(len(y5)))
}

func scaleStep(h, errNorm float64) float64 {
	if errNorm == 0 {
		errNorm = 1e-12
	}
	fac := dp5Safety * math.Pow(errNorm, -1.0/dp5ErrOrd)
	if fac < dp5MinFac {
		fac = dp5MinFac
	}
	if fac > dp5MaxFac {
		fac = dp5MaxFac
	}
	return h * fac
}

// DenseOutput returns a cubic Hermite interpolant built from the last
// accepted step's endpoints and derivatives there: the "free" interpolant
// classically paired with Dormand-Prince when no higher-order dense
// output polynomial is computed (see DESIGN.md for the accuracy
// trade-off).
func (d *dormandPrince54) DenseOutput() (Interpolator, error) {
	if d.y0 == nil {
		return nil, chk.Err("dense output requested before any step was accepted")
	}
	t0, t1 := d.t0, d.t1
	y0, y1 := d.y0, d.y1
	f0, f1 := d.f0, d.f1
	h := t1 - t0
	n := len(y0)
	return func(tau float64) []float64 {
		theta := (tau - t0) / h
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			h00 := 2*theta*theta*theta - 3*theta*theta + 1
			h10 := theta*theta*theta - 2*theta*theta + theta
			h01 := -2*theta*theta*theta + 3*theta*theta
			h11 := theta*theta*theta - theta*theta
			out[i] = h00*y0[i] + h10*h*f0[i] + h01*y1[i] + h11*h*f1[i]
		}
		return out
	}, nil
}
