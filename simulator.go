// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import (
	"bytes"
	"encoding/gob"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dynosim/integrate"
	"github.com/cpmech/dynosim/rootfind"
)

// epsilonAdvance is the infinitesimal jitter added past a localized event
// time so that the next sample's event sign differs strictly from the one
// recorded just before the event, matching the "chosen so sign(event_value)
// flips strictly" requirement.
const epsilonAdvance = 1e-9

// Simulator drives a System forward in time: adaptive integration between
// events, zero-crossing and clock detection, bracketed localization, and
// listener-driven discrete state jumps, recording every accepted sample
// into a Result.
type Simulator struct {
	system *System

	integratorFactory integrate.Factory
	integratorOptions integrate.Options
	rootFinder        rootfind.RootFinder
	rootFinderOptions rootfind.Options

	currentTime  float64
	currentState []float64
	lastEvent    []float64

	result *Result

	// Verbose gates gosl/io-styled colored trace lines emitted from Step;
	// it has no effect on Result.
	Verbose bool
}

// NewSimulator constructs a Simulator for system, starting at startTime
// with the given initial state (if nil, the System's assembled initial
// condition is used). It builds a first Evaluator at the start time,
// appends the initial sample to the Result, and records the initial event
// values.
func NewSimulator(system *System, startTime float64, initialState []float64, integratorFactory integrate.Factory, integratorOptions integrate.Options, rootFinder rootfind.RootFinder, rootFinderOptions rootfind.Options) (*Simulator, error) {
	if initialState == nil {
		initialState = system.InitialState()
	}
	s := &Simulator{
		system:            system,
		integratorFactory: integratorFactory,
		integratorOptions: integratorOptions,
		rootFinder:        rootFinder,
		rootFinderOptions: rootFinderOptions,
		currentTime:       startTime,
		currentState:      append([]float64(nil), initialState...),
		result:            NewResult(system),
	}
	if err := s.recordSample(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// Time returns the current simulation time.
func (s *Simulator) Time() float64 { return s.currentTime }

// State returns a copy of the current state vector.
func (s *Simulator) State() []float64 { return append([]float64(nil), s.currentState...) }

// Result returns the Simulator's append-only sample buffer.
func (s *Simulator) Result() *Result { return s.result }

// recordSample builds an Evaluator at (currentTime, currentState), computes
// every vector, appends a sample to the Result, and records event values
// into s.lastEvent. If inputs is non-nil it is threaded through to the
// Evaluator per the input-vector preload contract.
func (s *Simulator) recordSample(inputs []float64) (err error) {
	eval := NewEvaluator(s.system, s.currentTime, s.currentState, inputs)
	stateVec := append([]float64(nil), s.currentState...)
	signalsVec, err := eval.SignalsVector()
	if err != nil {
		return err
	}
	eventsVec, err := eval.EventValuesVector()
	if err != nil {
		return err
	}
	inputsVec, err := eval.InputsVector()
	if err != nil {
		return err
	}
	outputsVec, err := eval.OutputsVector()
	if err != nil {
		return err
	}
	s.result.Append(s.currentTime, inputsVec, stateVec, signalsVec, eventsVec, outputsVec)
	s.lastEvent = append([]float64(nil), eventsVec...)
	if s.Verbose {
		io.Pforan("accepted sample: t=%v\n", s.currentTime)
	}
	return nil
}

// pendingEvent bundles a triggered event with its localized root time,
// used to pick the first event to process within a Step.
type pendingEvent struct {
	index int
	event Event
	time  float64
}

// Step performs one atomic advance of the simulation, as described by the
// package's numbered Step algorithm: integrate one step, detect and
// localize the earliest triggered event (if any), dispatch its listeners,
// and record the resulting sample. tBound caps the integrator so a run
// never overshoots the requested horizon.
func (s *Simulator) Step(tBound float64) error {
	t0 := s.currentTime
	y0 := s.currentState

	rhs := func(t float64, y []float64) []float64 {
		eval := NewEvaluator(s.system, t, y, nil)
		deriv, err := eval.StateDerivativeVector()
		if err != nil {
			panic(err)
		}
		return deriv
	}

	integrator, err := s.stepIntegrator(rhs, t0, y0, tBound)
	if err != nil {
		return err
	}

	tNew := integrator.T()
	yNew := integrator.Y()

	newEval := NewEvaluator(s.system, tNew, yNew, nil)
	newEventValues, err := newEval.EventValuesVector()
	if err != nil {
		return err
	}

	pending, err := s.detectEvents(t0, tNew, s.lastEvent, newEventValues, integrator)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		s.currentTime = tNew
		s.currentState = yNew
		if s.Verbose {
			io.Pforan("step accepted with no events: t=%v -> %v\n", t0, tNew)
		}
		return s.recordSample(nil)
	}

	first := pending[0]
	for _, p := range pending[1:] {
		if p.time < first.time || (p.time == first.time && p.index < first.index) {
			first = p
		}
	}

	interp, interpErr := integrator.DenseOutput()
	if interpErr != nil {
		return interpErr
	}

	eventTime := first.time + epsilonAdvance
	if eventTime > tNew {
		eventTime = tNew
	}
	eventState := interp(eventTime)

	if s.Verbose {
		io.Pfred("event triggered: index=%d t=%v\n", first.index, first.time)
	}

	updater := newStateUpdater(eventState)
	listenerData := DataProvider{time: eventTime, eval: NewEvaluator(s.system, eventTime, eventState, nil), updater: updater}
	if err := dispatchListeners(first.event, listenerData); err != nil {
		return err
	}

	s.currentTime = eventTime
	s.currentState = updater.working
	return s.recordSample(nil)
}

// dispatchListeners invokes every listener registered on ev, in
// registration order, recovering a typed error from a panicking listener
// (e.g. a ShapeMismatch raised by SetState) and returning it instead of
// propagating the panic past Step's boundary, per the package's
// chk.Panic/recover convention.
func dispatchListeners(ev Event, data DataProvider) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()
	for _, l := range ev.Listeners() {
		l(data)
	}
	return nil
}

// stepIntegrator constructs an integrator for rhs and advances it by
// exactly one step, translating an integrator-reported failure into an
// IntegratorFailedError. rhs panics with an evaluation-time error (e.g.
// AlgebraicLoop) when the derivative cannot be computed; since that panic
// may cross several frames of integrator-internal looping before this
// call returns, it is recovered here and returned as the original typed
// error rather than wrapped, matching the package's error-kind contract.
func (s *Simulator) stepIntegrator(rhs integrate.RHS, t0 float64, y0 []float64, tBound float64) (result integrate.Integrator, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				result, err = nil, rerr
				return
			}
			panic(r)
		}
	}()
	integrator, ferr := s.integratorFactory(rhs, t0, y0, tBound, s.integratorOptions)
	if ferr != nil {
		return nil, &IntegratorFailedError{Message: ferr.Error()}
	}
	if serr := integrator.Step(); serr != nil {
		return nil, &IntegratorFailedError{Message: serr.Error()}
	}
	return integrator, nil
}

// detectEvents computes the triggered set E (step 4), folds in clock fires
// in (t0, tNew] (step 5), and localizes each zero-crossing event's root via
// the pluggable root-finder (step 7), returning one pendingEvent per
// triggered event.
func (s *Simulator) detectEvents(t0, tNew float64, prevValues, newValues []float64, integrator integrate.Integrator) ([]pendingEvent, error) {
	var pending []pendingEvent
	events := s.system.Events()

	var interp integrate.Interpolator
	needInterp := false
	for i, ev := range events {
		if z, ok := ev.(*ZeroCrossEventSource); ok {
			if z.triggered(prevValues[i], newValues[i]) {
				needInterp = true
				break
			}
		}
	}
	if needInterp {
		var err error
		interp, err = integrator.DenseOutput()
		if err != nil {
			return nil, err
		}
	}

	for i, ev := range events {
		switch z := ev.(type) {
		case *ZeroCrossEventSource:
			if !z.triggered(prevValues[i], newValues[i]) {
				continue
			}
			root, err := s.localizeRoot(z, t0, tNew, interp)
			if err != nil {
				return nil, err
			}
			pending = append(pending, pendingEvent{index: i, event: ev, time: root})
		case *Clock:
			for _, fireTime := range z.firesIn(t0, tNew) {
				pending = append(pending, pendingEvent{index: i, event: ev, time: fireTime})
				if s.Verbose {
					io.Pfyel("clock fired: index=%d t=%v\n", i, fireTime)
				}
			}
		}
	}
	return pending, nil
}

// localizeRoot brackets and finds the time in [t0, tNew] at which z's
// event_function crosses zero, via the pluggable root-finder driven
// through the dense-output interpolant.
func (s *Simulator) localizeRoot(z *ZeroCrossEventSource, t0, tNew float64, interp integrate.Interpolator) (float64, error) {
	g := func(tau float64) float64 {
		y := interp(tau)
		eval := NewEvaluator(s.system, tau, y, nil)
		v, err := eval.EventValue(z)
		if err != nil {
			panic(err)
		}
		return v
	}
	return s.findRoot(g, t0, tNew)
}

// findRoot recovers a panic raised from within g (an AlgebraicLoop or
// similar evaluation-time error) and returns it as the original typed
// error, matching the package's evaluation-error-propagation convention.
// A failure reported by the root-finder itself is returned as a
// RootFindFailedError.
func (s *Simulator) findRoot(g func(float64) float64, a, b float64) (root float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()
	root, err = s.rootFinder(g, a, b, s.rootFinderOptions)
	if err != nil {
		return 0, &RootFindFailedError{Message: err.Error()}
	}
	return root, nil
}

// RunUntil repeatedly calls Step, bounding the integrator at tBound each
// time, until current_time >= tBound or a Step returns an error.
func (s *Simulator) RunUntil(tBound float64) error {
	for s.currentTime < tBound {
		if err := s.Step(tBound); err != nil {
			return err
		}
	}
	return nil
}

// snapshot is the gob-serializable payload round-tripped by
// Snapshot/RestoreSnapshot. The corpus shows the call shape of
// Encode(value)/Decode(&value) throughout ele.Element implementations but
// never the construction of the encoder/decoder value itself, so this is
// built directly against encoding/gob rather than guessed gosl/utl
// constructors (see DESIGN.md).
type snapshot struct {
	Time      float64
	State     []float64
	LastEvent []float64
}

// Snapshot serializes (current_time, current_state, last_event_values)
// into an opaque byte slice suitable for later RestoreSnapshot.
func (s *Simulator) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	snap := snapshot{Time: s.currentTime, State: s.currentState, LastEvent: s.lastEvent}
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(snap); err != nil {
		return nil, chk.Err("snapshot encoding failed: %v", err)
	}
	return buf.Bytes(), nil
}

// RestoreSnapshot replaces the Simulator's (current_time, current_state,
// last_event_values) with the contents of data, as produced by a prior
// Snapshot call against a System with the same shape.
func (s *Simulator) RestoreSnapshot(data []byte) error {
	var snap snapshot
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&snap); err != nil {
		return chk.Err("snapshot decoding failed: %v", err)
	}
	if len(snap.State) != s.system.NumStates() {
		chk.Panic("snapshot state length %d does not match system num_states %d", len(snap.State), s.system.NumStates())
	}
	s.currentTime = snap.Time
	s.currentState = snap.State
	s.lastEvent = snap.LastEvent
	return nil
}
