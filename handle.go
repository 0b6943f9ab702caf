// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

import "github.com/cpmech/gosl/io"

// Kind identifies the category of entity an opaque Handle refers to.
type Kind int

// entity kinds tracked by the Registry.
const (
	KindState Kind = iota
	KindSignal
	KindEvent
	KindInput
	KindOutput
	KindPort
	KindBlock
)

// String returns a short name for the kind, e.g. "state".
func (k Kind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindSignal:
		return "signal"
	case KindEvent:
		return "event"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	case KindPort:
		return "port"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Handle tags an entity with its kind and an index instead of relying on
// object identity as a map key. For states, signals, inputs and outputs the
// index is the entity's start offset in its flat vector; for events, ports
// and blocks it is a registration-order counter.
type Handle struct {
	Kind  Kind
	Index int
}

// String renders the handle as e.g. "state#3".
func (h Handle) String() string {
	return io.Sf("%s#%d", h.Kind, h.Index)
}
