// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

// Evaluator is a single-shot oracle for the instantaneous values of every
// derived quantity of a System at a fixed (time, state, optional inputs).
// It lazily evaluates and memoizes; evaluating a Signal that re-enters its
// own evaluation is reported as AlgebraicLoop rather than silently
// recursing forever.
type Evaluator struct {
	system *System
	time   float64
	state  []float64

	stateDerivative []float64
	validDerivative []bool

	signals      []float64
	validSignal  []bool
	evaluating   []bool // signal currently on the evaluation stack
	evalStack    []Handle

	eventValues []float64
	validEvent  []bool
}

// NewEvaluator constructs an Evaluator for system at the given time and
// state. If inputs is non-nil, every InputSignal is preloaded into the
// signal vector and marked valid before any evaluation takes place, and
// its value function is never invoked (§4.C "Input vector handling").
func NewEvaluator(system *System, time float64, state []float64, inputs []float64) *Evaluator {
	e := &Evaluator{
		system:          system,
		time:            time,
		state:           state,
		stateDerivative: make([]float64, system.NumStates()),
		validDerivative: make([]bool, system.NumStates()),
		signals:         make([]float64, system.NumSignals()),
		validSignal:     make([]bool, system.NumSignals()),
		evaluating:      make([]bool, system.NumSignals()),
		eventValues:     make([]float64, system.NumEvents()),
		validEvent:      make([]bool, system.NumEvents()),
	}
	if inputs != nil {
		for _, sig := range system.inputs {
			copy(e.signals[sig.slice.Start:sig.slice.End()], inputs[sig.inputSlice.Start:sig.inputSlice.End()])
			e.markSignalRange(sig.slice)
		}
	}
	return e
}

func (e *Evaluator) markSignalRange(s Slice) {
	for i := s.Start; i < s.End(); i++ {
		e.validSignal[i] = true
	}
}

// Time returns the instant this Evaluator was constructed for.
func (e *Evaluator) Time() float64 { return e.time }

// dataProvider builds the read-only DataProvider user functions receive.
func (e *Evaluator) dataProvider() DataProvider {
	return DataProvider{time: e.time, eval: e}
}

// stateValue returns a read-only view of st's slice of the state vector,
// reshaped.
func (e *Evaluator) stateValue(st *State) []float64 {
	v, err := st.shape.coerce(st.Handle, e.state[st.slice.Start:st.slice.End()])
	if err != nil {
		panic(err)
	}
	return v
}

// StateValue is the public, error-returning form of stateValue: state
// access never actually fails once the Evaluator is constructed with a
// correctly sized state vector, so it never returns a non-nil error, but
// the signature is kept consistent with the package's other accessors.
func (e *Evaluator) StateValue(st *State) ([]float64, error) {
	return e.stateValue(st), nil
}

// portValue resolves port to its source Signal and returns that Signal's
// value.
func (e *Evaluator) portValue(port *Port) ([]float64, error) {
	sig, err := port.Signal()
	if err != nil {
		return nil, err
	}
	return e.signalValue(sig)
}

// PortValue resolves port to its source Signal, then evaluates it.
func (e *Evaluator) PortValue(port *Port) ([]float64, error) {
	return e.portValue(port)
}

// signalValue returns the memoized value of sig if present, otherwise
// begins evaluation, detecting algebraic loops.
func (e *Evaluator) signalValue(sig *Signal) (val []float64, err error) {
	idx := sig.Handle.Index
	if e.validSignal[idx] {
		return sig.shape.coerce(sig.Handle, e.signals[sig.slice.Start:sig.slice.End()])
	}
	if e.evaluating[idx] {
		return nil, newAlgebraicLoop(sig.Handle)
	}

	e.evaluating[idx] = true
	e.evalStack = append(e.evalStack, sig.Handle)
	defer func() {
		e.evaluating[idx] = false
		e.evalStack = e.evalStack[:len(e.evalStack)-1]
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()

	raw := sig.evaluate(e.dataProvider())
	coerced, cerr := sig.shape.coerce(sig.Handle, raw)
	if cerr != nil {
		return nil, cerr
	}
	copy(e.signals[sig.slice.Start:sig.slice.End()], coerced)
	e.validSignal[idx] = true
	return append([]float64(nil), coerced...), nil
}

// SignalValue returns the memoized value if present; otherwise begins
// evaluation.
func (e *Evaluator) SignalValue(sig *Signal) ([]float64, error) {
	return e.signalValue(sig)
}

// StateDerivative returns the memoized derivative or computes it.
func (e *Evaluator) StateDerivative(st *State) (deriv []float64, err error) {
	idx := st.slice.Start
	if e.validDerivative[idx] {
		return st.shape.coerce(st.Handle, e.stateDerivative[st.slice.Start:st.slice.End()])
	}
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()
	raw := st.derivativeFunc(e.dataProvider())
	coerced, cerr := st.shape.coerce(st.Handle, raw)
	if cerr != nil {
		return nil, cerr
	}
	copy(e.stateDerivative[st.slice.Start:st.slice.End()], coerced)
	for i := st.slice.Start; i < st.slice.End(); i++ {
		e.validDerivative[i] = true
	}
	return append([]float64(nil), coerced...), nil
}

// EventValue returns the memoized event value or computes it.
func (e *Evaluator) EventValue(ev Event) (val float64, err error) {
	idx := ev.EventHandle().Index
	if e.validEvent[idx] {
		return e.eventValues[idx], nil
	}
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()
	v := ev.evalValue(e.dataProvider())
	e.eventValues[idx] = v
	e.validEvent[idx] = true
	return v, nil
}

// StateDerivativeVector triggers evaluation of every State's derivative
// and returns the dense vector.
func (e *Evaluator) StateDerivativeVector() ([]float64, error) {
	for _, st := range e.system.states {
		if _, err := e.StateDerivative(st); err != nil {
			return nil, err
		}
	}
	return append([]float64(nil), e.stateDerivative...), nil
}

// SignalsVector triggers evaluation of every Signal and returns the dense
// vector.
func (e *Evaluator) SignalsVector() ([]float64, error) {
	for _, sig := range e.system.signals {
		if _, err := e.signalValue(sig); err != nil {
			return nil, err
		}
	}
	return append([]float64(nil), e.signals...), nil
}

// EventValuesVector triggers evaluation of every event and returns the
// dense vector.
func (e *Evaluator) EventValuesVector() ([]float64, error) {
	for _, ev := range e.system.events {
		if _, err := e.EventValue(ev); err != nil {
			return nil, err
		}
	}
	return append([]float64(nil), e.eventValues...), nil
}

// InputsVector triggers evaluation, through signalValue, of every
// InputSignal, and returns the dense input vector. It walks system.inputs
// rather than copying the raw supplied input vector, so an InputSignal
// still evaluates via its value function when no input vector was supplied
// at construction.
func (e *Evaluator) InputsVector() ([]float64, error) {
	out := make([]float64, e.system.NumInputs())
	for _, sig := range e.system.inputs {
		v, err := e.signalValue(sig)
		if err != nil {
			return nil, err
		}
		copy(out[sig.inputSlice.Start:sig.inputSlice.End()], v)
	}
	return out, nil
}

// OutputsVector triggers evaluation of every OutputPort and returns the
// dense output vector.
func (e *Evaluator) OutputsVector() ([]float64, error) {
	out := make([]float64, e.system.NumOutputs())
	for _, port := range e.system.outputs {
		v, err := e.portValue(port)
		if err != nil {
			return nil, err
		}
		copy(out[port.outputSlice.Start:port.outputSlice.End()], v)
	}
	return out, nil
}
