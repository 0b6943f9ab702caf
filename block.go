// Copyright 2026 The Dynosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynosim

// Parent is implemented by both *System and *Block. Every entity
// constructor takes a Parent as its first argument; allocation is always
// routed to the root System's Registry, since Blocks are pure naming/
// grouping constructs that own no storage (Design Note: "Hierarchical
// blocks but flat storage").
type Parent interface {
	root() *System
}

// Block is a named hierarchical container grouping States, Signals, Ports
// and event sources. Blocks do not own storage; all allocation calls made
// through a Block are forwarded to the root System.
type Block struct {
	Handle Handle
	name   string
	parent Parent
	sys    *System
}

// NewBlock creates a new named Block under parent.
func NewBlock(parent Parent, name string) *Block {
	sys := parent.root()
	return &Block{
		Handle: sys.registry.allocateBlock(),
		name:   name,
		parent: parent,
		sys:    sys,
	}
}

// Name returns the Block's declared name.
func (b *Block) Name() string { return b.name }

// Parent returns the Block's parent container (a *System or *Block).
func (b *Block) Parent() Parent { return b.parent }

func (b *Block) root() *System { return b.sys }
