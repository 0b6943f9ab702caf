// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

// Port is a shaped connection endpoint. Each Port resolves to exactly one
// Signal, either directly (a source Signal was assigned) or transitively
// by following a chain of Port-to-Port connections. Connection is modeled
// as a single-target redirect pointer with path compression, giving O(1)
// amortized, deterministic resolution.
type Port struct {
	Handle Handle
	shape  Shape
	name   string

	source   *Signal // set when this Port is a direct source
	redirect *Port   // set when this Port forwards to another Port

	// set only when this Port is also registered as a system-level
	// output (see OutputPort).
	outputHandle *Handle
	outputSlice  Slice
}

// NewPort declares an unconnected Port under parent. shape defaults to
// Scalar when nil.
func NewPort(parent Parent, name string, shape Shape) *Port {
	if shape == nil {
		shape = Scalar
	}
	shape.validate()
	sys := parent.root()
	return &Port{
		Handle: sys.registry.allocatePort(),
		shape:  shape,
		name:   name,
	}
}

// NewSourcePort declares a Port directly backed by source, a convenience
// for the common case of exposing a Block's internal Signal at its
// boundary.
func NewSourcePort(parent Parent, name string, source *Signal) *Port {
	p := NewPort(parent, name, source.shape)
	p.source = source
	return p
}

// Name returns the Port's declared name.
func (p *Port) Name() string { return p.name }

// Shape returns the Port's declared shape.
func (p *Port) Shape() Shape { return p.shape }

// Connect binds p to other: reading either Port thereafter resolves to the
// same source Signal. Requires p and other to have equal shape. Connecting
// a Port that already transitively resolves to a Signal different from
// other's is MultipleSignals.
func (p *Port) Connect(other *Port) error {
	if !p.shape.Equal(other.shape) {
		return newShapeMismatch(p.Handle, p.shape, other.shape)
	}
	pSig, pOK := p.resolvedSignal()
	oSig, oOK := other.resolvedSignal()
	switch {
	case pOK && oOK:
		if pSig != oSig {
			return newMultipleSignals(p.Handle)
		}
		// already resolve to the same signal; nothing to do.
		return nil
	case pOK && !oOK:
		other.redirectTo(p)
		return nil
	case !pOK && oOK:
		p.redirectTo(other)
		return nil
	default:
		// neither resolves yet: redirect p to other: other may still be
		// connected later and p will follow via path compression.
		p.redirectTo(other)
		return nil
	}
}

// redirectTo makes p forward to target, keeping the union small (a linked
// chain rather than a tree) since Ports have at most one outgoing edge.
func (p *Port) redirectTo(target *Port) {
	p.redirect = target
}

// resolvedSignal walks the redirect chain (with path compression) and
// reports the Signal it terminates in, if any.
func (p *Port) resolvedSignal() (*Signal, bool) {
	if p.source != nil {
		return p.source, true
	}
	if p.redirect == nil {
		return nil, false
	}
	sig, ok := p.redirect.resolvedSignal()
	if ok {
		// path compression: point directly at the resolved source so
		// future lookups are O(1).
		p.redirect = nil
		p.source = sig
	}
	return sig, ok
}

// Signal resolves the Port to its source Signal, failing with
// PortNotConnected if none can be found.
func (p *Port) Signal() (*Signal, error) {
	sig, ok := p.resolvedSignal()
	if !ok {
		return nil, newPortNotConnected(p.Handle)
	}
	return sig, nil
}

// OutputPort registers an existing Port as a system-level output,
// additionally allocating it an output_index/output_slice into the flat
// output vector.
func OutputPort(port *Port, sys *System) *Port {
	if port.outputHandle != nil {
		return port
	}
	h, slice := sys.registry.allocateOutput(port.shape.Size())
	port.outputHandle = &h
	port.outputSlice = slice
	sys.outputs = append(sys.outputs, port)
	return port
}

// IsOutput reports whether this Port is also registered as a system-level
// output via OutputPort.
func (p *Port) IsOutput() bool { return p.outputHandle != nil }

// OutputSlice returns the Port's [start, end) range into the flat output
// vector. Only valid when IsOutput() is true.
func (p *Port) OutputSlice() Slice { return p.outputSlice }
