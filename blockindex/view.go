// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockindex defines the read-only view every difficulty
// adjustment algorithm walks backwards over. It owns no storage and
// performs no I/O: it is an interface plus a minimal in-memory
// implementation for tests.
package blockindex

import "github.com/marscoin-project/consensus/pow"

// View is a read-only node in the header chain. Implementations must be
// safe to read concurrently; nothing in this package or its callers ever
// mutates a View after it is published.
type View interface {
	// Height returns the node's height. Genesis is height 0.
	Height() int32

	// Time returns the node's block timestamp, in seconds.
	Time() int64

	// NBits returns the node's compact-encoded target.
	NBits() pow.CompactBits

	// Prev returns the node's parent, or nil at genesis.
	Prev() View
}

// WalkBack returns the ancestor n blocks behind v, or nil if the chain runs
// out before reaching it. WalkBack(0) returns v itself.
func WalkBack(v View, n int32) View {
	for ; n > 0 && v != nil; n-- {
		v = v.Prev()
	}
	return v
}

// Node is a minimal in-memory View, used by tests and by any caller that
// doesn't already have its own header-chain representation to adapt.
type Node struct {
	height int32
	time   int64
	nbits  pow.CompactBits
	prev   *Node
}

// NewNode constructs a Node whose parent is prev (nil for a genesis node).
// Chain.Append builds a linked sequence without passing prev by hand.
func NewNode(height int32, timestamp int64, nbits pow.CompactBits, prev *Node) *Node {
	return &Node{height: height, time: timestamp, nbits: nbits, prev: prev}
}

// Height implements View.
func (n *Node) Height() int32 { return n.height }

// Time implements View.
func (n *Node) Time() int64 { return n.time }

// NBits implements View.
func (n *Node) NBits() pow.CompactBits { return n.nbits }

// Prev implements View. It returns a nil View (not a non-nil interface
// wrapping a nil *Node) at genesis, so callers can compare against nil
// directly.
func (n *Node) Prev() View {
	if n.prev == nil {
		return nil
	}
	return n.prev
}

// Chain is an append-only, in-memory sequence of Nodes, built from genesis
// upward for tests that want to construct a block-time/nBits history without hand
// wiring every Prev pointer.
type Chain struct {
	tip *Node
}

// NewChain returns an empty Chain.
func NewChain() *Chain {
	return &Chain{}
}

// Append adds a new tip at height len(chain) with the given timestamp and
// nBits, linked to the previous tip, and returns the new tip.
func (c *Chain) Append(timestamp int64, nbits pow.CompactBits) *Node {
	height := int32(0)
	if c.tip != nil {
		height = c.tip.height + 1
	}
	n := NewNode(height, timestamp, nbits, c.tip)
	c.tip = n
	return n
}

// Tip returns the chain's current tip, or nil if the chain is empty.
func (c *Chain) Tip() *Node {
	return c.tip
}
