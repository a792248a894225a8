// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2009-2014 The Bitcoin developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// CheckProofOfWork reports whether hash, interpreted as a little-endian
// 256-bit unsigned integer, meets the target encoded by nbits. It fails
// closed: any malformed compact encoding (negative, zero, overflowing, or
// easier than powLimit) is treated as proof-of-work failure, never a panic
// or error — this function is the consensus-critical boundary every header
// validator calls, and it must never be able to throw.
func CheckProofOfWork(hash *chainhash.Hash, nbits CompactBits, powLimit *BigTarget) bool {
	target := NewBigTarget()
	negative, overflow := target.SetCompact(nbits)
	if negative || target.IsZero() || overflow || target.Cmp(powLimit) > 0 {
		return false
	}
	return FromHash(hash).Cmp(target) <= 0
}

// GetBlockProof returns the amount of work represented by nbits: an
// approximation of 2^256 / (target+1) computed without ever representing
// 2^256 directly, as (~target / (target+1)) + 1. Any nbits that would fail
// CheckProofOfWork's range check (negative, zero, overflowing, or easier
// than powLimit) contributes zero work.
func GetBlockProof(nbits CompactBits, powLimit *BigTarget) *BigTarget {
	target := NewBigTarget()
	negative, overflow := target.SetCompact(nbits)
	if negative || overflow || target.IsZero() || target.Cmp(powLimit) > 0 {
		return NewBigTarget()
	}

	denom := target.Clone().AddUint64(1)
	quotient := target.Not().Div(denom)
	return quotient.AddUint64(1)
}
