// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import "github.com/cpmech/gosl/chk"

// Registry assigns dense, monotonically increasing indices/slices to
// states, signals, events, inputs and outputs as they are declared, and
// opaque Handles to ports and blocks. It never deallocates: entities live
// and die with the System that owns the Registry.
type Registry struct {
	numStates  int
	numSignals int
	numEvents  int
	numInputs  int
	numOutputs int
	numPorts   int
	numBlocks  int
}

// Slice is a contiguous, half-open range [Start, Start+Size) into a flat
// vector.
type Slice struct {
	Start int
	Size  int
}

// End returns Start+Size.
func (s Slice) End() int { return s.Start + s.Size }

// allocateState bumps the state counter by size and returns the
// pre-bump offset together with the assigned Handle.
func (r *Registry) allocateState(size int) (Handle, Slice) {
	if size <= 0 {
		chk.Panic("state size must be positive (size = %d is incorrect)", size)
	}
	start := r.numStates
	r.numStates += size
	return Handle{KindState, start}, Slice{start, size}
}

// allocateSignal bumps the signal counter by size.
func (r *Registry) allocateSignal(size int) (Handle, Slice) {
	if size <= 0 {
		chk.Panic("signal size must be positive (size = %d is incorrect)", size)
	}
	start := r.numSignals
	r.numSignals += size
	return Handle{KindSignal, start}, Slice{start, size}
}

// allocateEvent bumps the (scalar) event counter by one.
func (r *Registry) allocateEvent() Handle {
	idx := r.numEvents
	r.numEvents++
	return Handle{KindEvent, idx}
}

// allocateInput bumps the input counter by size.
func (r *Registry) allocateInput(size int) (Handle, Slice) {
	if size <= 0 {
		chk.Panic("input size must be positive (size = %d is incorrect)", size)
	}
	start := r.numInputs
	r.numInputs += size
	return Handle{KindInput, start}, Slice{start, size}
}

// allocateOutput bumps the output counter by size.
func (r *Registry) allocateOutput(size int) (Handle, Slice) {
	if size <= 0 {
		chk.Panic("output size must be positive (size = %d is incorrect)", size)
	}
	start := r.numOutputs
	r.numOutputs += size
	return Handle{KindOutput, start}, Slice{start, size}
}

// allocatePort hands out a purely-cosmetic Handle for a Port; ports own no
// flat-vector storage.
func (r *Registry) allocatePort() Handle {
	idx := r.numPorts
	r.numPorts++
	return Handle{KindPort, idx}
}

// allocateBlock hands out a purely-cosmetic Handle for a Block.
func (r *Registry) allocateBlock() Handle {
	idx := r.numBlocks
	r.numBlocks++
	return Handle{KindBlock, idx}
}

// NumStates returns the current length of the flat state vector.
func (r *Registry) NumStates() int { return r.numStates }

// NumSignals returns the current length of the flat signal vector.
func (r *Registry) NumSignals() int { return r.numSignals }

// NumEvents returns the current length of the flat event-value vector.
func (r *Registry) NumEvents() int { return r.numEvents }

// NumInputs returns the current length of the flat input vector.
func (r *Registry) NumInputs() int { return r.numInputs }

// NumOutputs returns the current length of the flat output vector.
func (r *Registry) NumOutputs() int { return r.numOutputs }
