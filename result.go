// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import "github.com/cpmech/gosl/la"

// resultInitialCapacity and resultGrowthIncrement match the original
// implementation's fixed row counts (16 rows, growing by 16 on overflow):
// additive, not doubling.
const (
	resultInitialCapacity = 16
	resultGrowthIncrement = 16
)

// Result is an append-only, additively-resizing store of (t, inputs,
// state, signals, events, outputs) tuples, one row per accepted
// simulation sample.
type Result struct {
	system   *System
	capacity int
	count    int

	t       []float64
	inputs  [][]float64
	state   [][]float64
	signals [][]float64
	events  [][]float64
	outputs [][]float64
}

// NewResult allocates an empty Result sized for system.
func NewResult(system *System) *Result {
	r := &Result{system: system, capacity: resultInitialCapacity}
	r.allocate(r.capacity)
	return r
}

func (r *Result) allocate(capacity int) {
	r.t = make([]float64, capacity)
	r.inputs = la.MatAlloc(capacity, r.system.NumInputs())
	r.state = la.MatAlloc(capacity, r.system.NumStates())
	r.signals = la.MatAlloc(capacity, r.system.NumSignals())
	r.events = la.MatAlloc(capacity, r.system.NumEvents())
	r.outputs = la.MatAlloc(capacity, r.system.NumOutputs())
}

// grow extends every column's storage by resultGrowthIncrement rows,
// preserving existing content.
func (r *Result) grow() {
	newCapacity := r.capacity + resultGrowthIncrement
	old := *r
	r.allocate(newCapacity)
	copy(r.t, old.t[:old.count])
	for i := 0; i < old.count; i++ {
		la.VecCopy(r.inputs[i], 1, old.inputs[i])
		la.VecCopy(r.state[i], 1, old.state[i])
		la.VecCopy(r.signals[i], 1, old.signals[i])
		la.VecCopy(r.events[i], 1, old.events[i])
		la.VecCopy(r.outputs[i], 1, old.outputs[i])
	}
	r.capacity = newCapacity
	r.count = old.count
}

// Append adds one sample to the Result, growing storage first if full.
func (r *Result) Append(t float64, inputs, state, signals, events, outputs []float64) {
	if r.count >= r.capacity {
		r.grow()
	}
	i := r.count
	r.t[i] = t
	la.VecCopy(r.inputs[i], 1, inputs)
	la.VecCopy(r.state[i], 1, state)
	la.VecCopy(r.signals[i], 1, signals)
	la.VecCopy(r.events[i], 1, events)
	la.VecCopy(r.outputs[i], 1, outputs)
	r.count++
}

// Count returns the number of samples recorded so far.
func (r *Result) Count() int { return r.count }

// Time returns the read-only [0, Count()) slice of recorded times.
func (r *Result) Time() []float64 { return r.t[:r.count] }

// Inputs returns the read-only [0, Count()) slice of recorded input rows.
func (r *Result) Inputs() [][]float64 { return r.inputs[:r.count] }

// State returns the read-only [0, Count()) slice of recorded state rows.
func (r *Result) State() [][]float64 { return r.state[:r.count] }

// Signals returns the read-only [0, Count()) slice of recorded signal
// rows.
func (r *Result) Signals() [][]float64 { return r.signals[:r.count] }

// Events returns the read-only [0, Count()) slice of recorded event-value
// rows.
func (r *Result) Events() [][]float64 { return r.events[:r.count] }

// Outputs returns the read-only [0, Count()) slice of recorded output
// rows.
func (r *Result) Outputs() [][]float64 { return r.outputs[:r.count] }

// Signal projects the recorded signal column for sig across every sample:
// row i holds sig's value (flattened) at sample i.
func (r *Result) Signal(sig *Signal) [][]float64 {
	return project(r.signals[:r.count], sig.slice)
}

// Port projects the recorded output column for port across every sample.
// Only valid when port.IsOutput().
func (r *Result) Port(port *Port) [][]float64 {
	return project(r.outputs[:r.count], port.outputSlice)
}

// StateColumn projects the recorded state column for st across every sample.
func (r *Result) StateColumn(st *State) [][]float64 {
	return project(r.state[:r.count], st.slice)
}

func project(rows [][]float64, s Slice) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = row[s.Start:s.End()]
	}
	return out
}
