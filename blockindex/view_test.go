// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockindex

import "testing"

func TestChainAppendAndWalkBack(t *testing.T) {
	c := NewChain()
	for i := 0; i < 10; i++ {
		c.Append(int64(1000+i*123), 0x1e0ffff0)
	}
	tip := c.Tip()
	if tip.Height() != 9 {
		t.Fatalf("tip height = %d, want 9", tip.Height())
	}

	ancestor := WalkBack(tip, 9)
	if ancestor == nil || ancestor.Height() != 0 {
		t.Fatalf("WalkBack(tip, 9) should reach genesis, got %v", ancestor)
	}

	if got := WalkBack(tip, 0); got.Height() != tip.Height() {
		t.Fatalf("WalkBack(tip, 0) should return tip itself")
	}

	if got := WalkBack(tip, 100); got != nil {
		t.Fatalf("WalkBack past genesis should return nil, got height %d", got.Height())
	}
}

func TestGenesisPrevIsNil(t *testing.T) {
	genesis := NewNode(0, 0, 0x1e0ffff0, nil)
	if genesis.Prev() != nil {
		t.Fatal("genesis.Prev() must be nil")
	}
}
