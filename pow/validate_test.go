// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2009-2014 The Bitcoin developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

func mainnetPowLimit() *BigTarget {
	limit := NewBigTarget()
	limit.SetCompact(0x1e0ffff0)
	return limit
}

func TestCheckProofOfWorkRejectsInvalidEncodings(t *testing.T) {
	powLimit := mainnetPowLimit()
	var zeroHash chainhash.Hash

	tests := []struct {
		name  string
		nbits CompactBits
	}{
		{"negative", 0x01800001},
		{"zero target", 0},
		{"overflowing exponent", 0xff123456},
		{"easier than powLimit", 0x1f00ffff},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if CheckProofOfWork(&zeroHash, test.nbits, powLimit) {
				t.Errorf("expected CheckProofOfWork(%08x) to fail", test.nbits)
			}
		})
	}
}

func TestCheckProofOfWorkHashComparison(t *testing.T) {
	powLimit := mainnetPowLimit()

	// A hash of all zero bytes is less than any positive target.
	var zeroHash chainhash.Hash
	if !CheckProofOfWork(&zeroHash, 0x1e0ffff0, powLimit) {
		t.Fatal("an all-zero hash must satisfy any positive target")
	}

	// A hash of all 0xff bytes exceeds any target at or below powLimit.
	var maxHash chainhash.Hash
	for i := range maxHash {
		maxHash[i] = 0xff
	}
	if CheckProofOfWork(&maxHash, 0x1e0ffff0, powLimit) {
		t.Fatal("an all-ff hash must not satisfy powLimit")
	}
}

// TestMonotoneBlockProof pins the universal property: easier target (larger
// number) implies less work, for two targets at or below powLimit.
func TestMonotoneBlockProof(t *testing.T) {
	powLimit := mainnetPowLimit()

	harder := GetBlockProof(0x1c00ffff, powLimit) // smaller target -> more work
	easier := GetBlockProof(0x1e0ffff0, powLimit) // powLimit itself -> least work

	if harder.Cmp(easier) <= 0 {
		t.Fatalf("expected harder target's proof (%s) to exceed easier target's proof (%s)",
			harder.Hex(), easier.Hex())
	}
}

func TestGetBlockProofInvalidIsZero(t *testing.T) {
	powLimit := mainnetPowLimit()
	if proof := GetBlockProof(0, powLimit); !proof.IsZero() {
		t.Fatalf("expected zero-target proof to be zero, got %s", proof.Hex())
	}
	if proof := GetBlockProof(0xff123456, powLimit); !proof.IsZero() {
		t.Fatalf("expected overflowing nbits to contribute zero work, got %s", proof.Hex())
	}
}
