// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import "github.com/cpmech/gosl/chk"

// DataProvider gives user-supplied value, derivative, event and listener
// functions read access to the state of the simulation at a fixed instant
// (time(), states[State], inputs[Port|Signal]). During event-handler
// dispatch it additionally allows writing through to States.
//
// Accessing a Port with no resolvable source, or re-entering evaluation of
// a Signal that is already being evaluated, panics with the corresponding
// typed error; the Evaluator recovers these at its public-method boundary
// and returns them as ordinary errors, matching the package's convention
// of chk.Panic for invariant violations caught by a boundary recover (see
// e.g. cpmech/gofem's main.go).
type DataProvider struct {
	time    float64
	eval    *Evaluator
	updater *stateUpdater // non-nil only while dispatching an event listener
}

// Time returns the current simulation time.
func (d DataProvider) Time() float64 { return d.time }

// State returns the current value of st, reshaped to its declared shape.
func (d DataProvider) State(st *State) []float64 {
	if d.updater != nil {
		return d.updater.get(st)
	}
	return d.eval.stateValue(st)
}

// SetState overwrites st's slice of the working state buffer with value.
// Only valid from within an event listener; panics otherwise.
func (d DataProvider) SetState(st *State, value []float64) {
	if d.updater == nil {
		chk.Panic("%v: state may only be assigned from within an event listener", st.Handle)
	}
	d.updater.set(st, value)
}

// Port resolves p to its source Signal and returns that Signal's current
// value, reshaped to p's declared shape.
func (d DataProvider) Port(p *Port) []float64 {
	v, err := d.eval.portValue(p)
	if err != nil {
		panic(err)
	}
	return v
}

// Signal returns sig's current value, computing it on demand.
func (d DataProvider) Signal(sig *Signal) []float64 {
	v, err := d.eval.signalValue(sig)
	if err != nil {
		panic(err)
	}
	return v
}

// stateUpdater is the sole writer of the new state during event-handler
// dispatch: a working copy of current_state that listeners read and write
// through State handles, in registration order.
type stateUpdater struct {
	working []float64
}

func newStateUpdater(initial []float64) *stateUpdater {
	working := make([]float64, len(initial))
	copy(working, initial)
	return &stateUpdater{working: working}
}

func (u *stateUpdater) get(st *State) []float64 {
	return append([]float64(nil), u.working[st.slice.Start:st.slice.End()]...)
}

func (u *stateUpdater) set(st *State, value []float64) {
	coerced, err := st.shape.coerce(st.Handle, value)
	if err != nil {
		panic(err)
	}
	copy(u.working[st.slice.Start:st.slice.End()], coerced)
}
