// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pow implements the 256-bit target arithmetic and proof-of-work
// validation core shared by every difficulty adjustment algorithm.
package pow

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"
)

// CompactBits is the 32-bit base-256 scientific encoding of a PoW target.
// Two CompactBits values are consensus-equal iff they decode to the same
// BigTarget.
type CompactBits = uint32

// BigTarget is an unsigned 256-bit integer representing a PoW target or an
// accumulated work value. It is backed by a fixed four-word uint256.Int
// rather than math/big's arbitrary precision type: every value this core
// handles is bounded to 256 bits by construction (mainnet's powLimit,
// 0x1e0ffff0, is a 236-bit value, and the legacy retarget's bits() > 235
// guard keeps its multiply inside 256 bits), so there is no need to pay for
// heap-allocated, variable-length big integers.
type BigTarget struct {
	n uint256.Int
}

// NewBigTarget returns a BigTarget initialized to zero.
func NewBigTarget() *BigTarget {
	return &BigTarget{}
}

// NewBigTargetFromUint64 returns a BigTarget initialized to v.
func NewBigTargetFromUint64(v uint64) *BigTarget {
	t := &BigTarget{}
	t.n.SetUint64(v)
	return t
}

// FromHash interprets a block hash as a little-endian 256-bit unsigned
// integer, matching the chainhash/wire convention that a hash's bytes are
// stored reversed relative to their big-endian numeric value.
func FromHash(h *chainhash.Hash) *BigTarget {
	var be [chainhash.HashSize]byte
	for i, b := range h {
		be[chainhash.HashSize-1-i] = b
	}
	t := &BigTarget{}
	t.n.SetBytes32(be[:])
	return t
}

// Clone returns an independent copy of t.
func (t *BigTarget) Clone() *BigTarget {
	c := &BigTarget{}
	c.n.Set(&t.n)
	return c
}

// Set sets t to other and returns t.
func (t *BigTarget) Set(other *BigTarget) *BigTarget {
	t.n.Set(&other.n)
	return t
}

// IsZero reports whether t is the zero value.
func (t *BigTarget) IsZero() bool {
	return t.n.IsZero()
}

// Cmp compares t and other, returning -1, 0, or 1 as t is less than, equal
// to, or greater than other.
func (t *BigTarget) Cmp(other *BigTarget) int {
	return t.n.Cmp(&other.n)
}

// BitLen returns the position of the highest set bit plus one (the spec's
// bits()), or 0 if t is zero.
func (t *BigTarget) BitLen() int {
	return t.n.BitLen()
}

// Lsh performs a logical left shift by n bits in place, discarding any bits
// shifted out past bit 255. It returns t.
func (t *BigTarget) Lsh(n uint) *BigTarget {
	if n >= 256 {
		t.n.Clear()
		return t
	}
	t.n.Lsh(&t.n, n)
	return t
}

// Rsh performs a logical right shift by n bits in place. It returns t.
func (t *BigTarget) Rsh(n uint) *BigTarget {
	if n >= 256 {
		t.n.Clear()
		return t
	}
	t.n.Rsh(&t.n, n)
	return t
}

// MulUint32 multiplies t by m in place. It returns t.
func (t *BigTarget) MulUint32(m uint32) *BigTarget {
	var factor uint256.Int
	factor.SetUint64(uint64(m))
	t.n.Mul(&t.n, &factor)
	return t
}

// MulUint64 multiplies t by m in place. It returns t.
func (t *BigTarget) MulUint64(m uint64) *BigTarget {
	var factor uint256.Int
	factor.SetUint64(m)
	t.n.Mul(&t.n, &factor)
	return t
}

// Mul multiplies t by other in place. It returns t.
func (t *BigTarget) Mul(other *BigTarget) *BigTarget {
	t.n.Mul(&t.n, &other.n)
	return t
}

// DivUint64 performs truncating integer division of t by d in place. It
// returns t. Dividing by zero sets t to zero, matching uint256's EVM-style
// semantics; callers are expected never to pass a zero divisor.
func (t *BigTarget) DivUint64(d uint64) *BigTarget {
	var divisor uint256.Int
	divisor.SetUint64(d)
	t.n.Div(&t.n, &divisor)
	return t
}

// Div performs truncating integer division of t by other in place. It
// returns t. Dividing by zero sets t to zero; callers are expected never to
// pass a zero divisor.
func (t *BigTarget) Div(other *BigTarget) *BigTarget {
	t.n.Div(&t.n, &other.n)
	return t
}

// AddUint64 adds d to t in place. It returns t.
func (t *BigTarget) AddUint64(d uint64) *BigTarget {
	var addend uint256.Int
	addend.SetUint64(d)
	t.n.Add(&t.n, &addend)
	return t
}

// Add adds other to t in place. It returns t.
func (t *BigTarget) Add(other *BigTarget) *BigTarget {
	t.n.Add(&t.n, &other.n)
	return t
}

// Uint64 returns the low 64 bits of t, modulo 2^64.
func (t *BigTarget) Uint64() uint64 {
	return t.n.Uint64()
}

// Not returns the bitwise complement of t as a new BigTarget (~t mod 2^256).
func (t *BigTarget) Not() *BigTarget {
	r := &BigTarget{}
	r.n.Not(&t.n)
	return r
}

// Hex renders t as a zero-padded 64-character big-endian hex string.
func (t *BigTarget) Hex() string {
	b := t.n.Bytes32()
	return hex.EncodeToString(b[:])
}

// SetCompact decodes a compact (base-256 scientific notation) target into t.
// It reports whether the encoding's sign bit was set on a non-zero mantissa
// (negative) and whether the exponent/mantissa combination is too large to
// represent faithfully (overflow). Per spec, this mirrors Bitcoin's
// arith_uint256::SetCompact: shifts past bit 255 are silently discarded,
// and the overflow flag is the same heuristic Bitcoin Core uses rather than
// a precise post-hoc overflow check.
func (t *BigTarget) SetCompact(word CompactBits) (negative, overflow bool) {
	size := word >> 24
	mantissa := word & 0x007fffff
	signBit := word & 0x00800000

	var m uint256.Int
	m.SetUint64(uint64(mantissa))
	if size <= 3 {
		t.n.Rsh(&m, uint(8*(3-size)))
	} else {
		t.n.Lsh(&m, uint(8*(size-3)))
	}

	negative = signBit != 0 && mantissa != 0
	overflow = mantissa != 0 &&
		(size > 34 ||
			(mantissa > 0xff && size > 33) ||
			(mantissa > 0xffff && size > 32))
	return negative, overflow
}

// Compact encodes t into its normalized compact (base-256 scientific
// notation) form. The inverse of SetCompact for any t that round-trips
// (i.e. t <= powLimit for some network's powLimit, per the consensus
// round-trip property).
func (t *BigTarget) Compact() CompactBits {
	if t.IsZero() {
		return 0
	}

	exponent := uint32((t.BitLen() + 7) / 8)

	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(t.n.Uint64())
		mantissa <<= 8 * (3 - exponent)
	} else {
		var shifted uint256.Int
		shifted.Rsh(&t.n, uint(8*(exponent-3)))
		mantissa = uint32(shifted.Uint64())
	}

	// The mantissa's high bit doubles as the encoding's sign bit; if it is
	// set here the value would be misread as negative, so push one more
	// byte into the exponent instead.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	return exponent<<24 | mantissa
}
