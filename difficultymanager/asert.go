// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficultymanager

import (
	"github.com/pkg/errors"

	"github.com/marscoin-project/consensus/blockindex"
	"github.com/marscoin-project/consensus/chaincfg"
	"github.com/marscoin-project/consensus/pow"
)

// asertMagnitudeGuard is the pre-assertion bound on |time_diff -
// spacing*height_diff|: 2^47, chosen so the fixed-point exponent
// computation below cannot overflow an int64 even before the chain has
// reached the ASERT anchor height by any plausible margin.
const asertMagnitudeGuard = int64(1) << 47

// floorShr performs an arithmetic (sign-preserving), floor-rounding right
// shift. Go's >> on a signed integer already has this behavior, but ASERT's
// correctness depends on it so exactly that every port of this algorithm
// must get right; naming it makes the requirement explicit rather than
// relying on an easily-missed language guarantee.
func floorShr(x int64, n uint) int64 {
	return x >> n
}

// walkToASERTAnchor returns the ancestor of tip at exactly anchorHeight, or
// nil if tip's ancestor chain doesn't reach that far back (or never passes
// through it — tip itself is below anchorHeight).
func walkToASERTAnchor(tip blockindex.View, anchorHeight int32) blockindex.View {
	node := tip
	for node != nil && node.Height() > anchorHeight {
		node = node.Prev()
	}
	if node == nil || node.Height() != anchorHeight {
		return nil
	}
	return node
}

// asertFactorCoeffA, asertFactorCoeffB, and asertFactorCoeffC are the three
// coefficients of the fixed-point cubic approximation to
// 2^(frac/65536)*65536, accurate to within 0.013% over frac in [0, 65535].
const (
	asertFactorCoeffA = 195766423245049
	asertFactorCoeffB = 971821376
	asertFactorCoeffC = 5127
	asertFactorRound  = uint64(1) << 47
)

// asertFactor computes the cubic approximation's integer factor for a given
// fractional exponent. At frac = 65535 the products plus the rounding term
// sum to a full 64-bit value, with no headroom left in a uint64 —
// BigTarget's 256-bit width (already depended on for every other target
// computation in this package) absorbs that without reaching for a second
// big-integer type just for this one polynomial.
func asertFactor(frac uint16) uint32 {
	f := uint64(frac)
	f2 := f * f
	f3 := f2 * f

	sum := pow.NewBigTargetFromUint64(f).MulUint64(asertFactorCoeffA)
	sum.Add(pow.NewBigTargetFromUint64(f2).MulUint64(asertFactorCoeffB))
	sum.Add(pow.NewBigTargetFromUint64(f3).MulUint64(asertFactorCoeffC))
	sum.AddUint64(asertFactorRound)
	sum.Rsh(48)
	sum.AddUint64(65536)

	return uint32(sum.Uint64())
}

// asertNextWork implements ASERT: a direct exponential function of how far
// ahead of or behind its ideal schedule the tip is, anchored at a single
// fixed reference block rather than any sliding window.
func asertNextWork(tip blockindex.View, params *chaincfg.Params) pow.CompactBits {
	if tip == nil {
		return params.PowLimit.Compact()
	}

	anchor := walkToASERTAnchor(tip, params.ASERTAnchorHeight)
	if anchor == nil {
		return params.PowLimit.Compact()
	}

	timeDiff := tip.Time() - anchor.Time()
	heightDiff := int64(tip.Height()) - int64(anchor.Height())

	spacing := params.ASERTSpacing
	halfLife := params.ASERTHalfLife

	magnitude := timeDiff - spacing*heightDiff
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude >= asertMagnitudeGuard {
		panic(errors.New("asert: |time_diff - spacing*height_diff| exceeds the safety margin"))
	}

	exponent := ((timeDiff - spacing*(heightDiff+1)) * 65536) / halfLife

	shifts := floorShr(exponent, 16)
	frac := uint16(exponent & 0xFFFF)

	refTarget := pow.NewBigTarget()
	refTarget.SetCompact(anchor.NBits())

	next := refTarget.MulUint32(asertFactor(frac))

	shifts -= 16
	switch {
	case shifts <= 0:
		next.Rsh(uint(-shifts))
	default:
		shiftedLeft := next.Clone().Lsh(uint(shifts))
		shiftedBack := shiftedLeft.Clone().Rsh(uint(shifts))
		if shiftedBack.Cmp(next) != 0 {
			next = params.PowLimit.Clone()
		} else {
			next = shiftedLeft
		}
	}

	if next.IsZero() {
		next = pow.NewBigTargetFromUint64(1)
	} else if next.Cmp(params.PowLimit) > 0 {
		next = params.PowLimit.Clone()
	}

	return next.Compact()
}
