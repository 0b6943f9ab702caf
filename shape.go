// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import "github.com/cpmech/gosl/chk"

// Shape is a tuple of positive integer dimensions. A nil or empty Shape
// denotes a scalar (size 1), matching §6's "shape defaults to scalar".
type Shape []int

// Scalar is the shape of a scalar quantity.
var Scalar = Shape{}

// Size returns the product of the shape's dimensions.
func (s Shape) Size() int {
	size := 1
	for _, d := range s {
		size *= d
	}
	return size
}

// validate panics if any dimension is not a positive integer.
func (s Shape) validate() {
	for _, d := range s {
		if d <= 0 {
			chk.Panic("shape dimensions must be positive (shape = %v is incorrect)", []int(s))
		}
	}
}

// Equal reports whether two shapes have identical dimensions.
func (s Shape) Equal(other Shape) bool {
	if s.Size() != other.Size() {
		return false
	}
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// coerce returns v reshaped to s, or a *ShapeMismatchError if v's length
// does not equal s.Size(). The returned slice aliases v.
func (s Shape) coerce(h Handle, v []float64) ([]float64, error) {
	if len(v) != s.Size() {
		return nil, newShapeMismatch(h, s, Shape{len(v)})
	}
	return v, nil
}
