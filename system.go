// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynosim simulates hierarchical, hybrid continuous/discrete
// dynamical systems expressed as block diagrams: a System of nested
// Blocks holding States, Signals, Ports and event sources, integrated
// forward in time by a Simulator that detects and localizes events and
// records a time series of every observable quantity.
package dynosim

// System is the root container of a model. It owns every entity declared
// against it exclusively; entities are indexed immutably at construction
// and destroyed only with the System. No new entities may be registered
// once a Simulator has been built against the System.
type System struct {
	registry Registry

	states  []*State
	signals []*Signal
	events  []Event
	inputs  []*Signal // the subset of signals that are also InputSignals
	outputs []*Port   // the subset of ports that are also OutputPorts
}

// NewSystem creates an empty System.
func NewSystem() *System {
	return &System{}
}

func (s *System) root() *System { return s }

// NumStates returns the length of the flat state vector.
func (s *System) NumStates() int { return s.registry.NumStates() }

// NumSignals returns the length of the flat signal vector.
func (s *System) NumSignals() int { return s.registry.NumSignals() }

// NumEvents returns the length of the flat event-value vector.
func (s *System) NumEvents() int { return s.registry.NumEvents() }

// NumInputs returns the length of the flat input vector.
func (s *System) NumInputs() int { return s.registry.NumInputs() }

// NumOutputs returns the length of the flat output vector.
func (s *System) NumOutputs() int { return s.registry.NumOutputs() }

// States returns every State declared against the System, in index order.
func (s *System) States() []*State { return s.states }

// Signals returns every Signal declared against the System, in index order.
func (s *System) Signals() []*Signal { return s.signals }

// Events returns every event source declared against the System, in index
// order.
func (s *System) Events() []Event { return s.events }

// Inputs returns every InputSignal's underlying Signal, in input-index
// order.
func (s *System) Inputs() []*Signal { return s.inputs }

// Outputs returns every OutputPort, in output-index order.
func (s *System) Outputs() []*Port { return s.outputs }

// InitialState assembles the initial state vector as the concatenation of
// every State's initial_condition in index order.
func (s *System) InitialState() []float64 {
	y0 := make([]float64, s.NumStates())
	for _, st := range s.states {
		copy(y0[st.slice.Start:st.slice.End()], st.initialCondition)
	}
	return y0
}
