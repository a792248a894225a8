// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficultymanager

import (
	"github.com/marscoin-project/consensus/chaincfg"
	"github.com/marscoin-project/consensus/pow"
)

// PermittedDifficultyTransition is the header-validation sanity check a
// caller runs independently of GetNextWorkRequired: given a height and the
// nBits the previous and candidate headers actually carry, does the jump
// between them fall inside the range this network's retarget cadence could
// have produced? It does not recompute the DAA's chosen algorithm; it only
// bounds how far any algorithm is allowed to move difficulty in one step.
func PermittedDifficultyTransition(params *chaincfg.Params, height int32, oldNBits, newNBits pow.CompactBits) bool {
	if params.AllowMinDifficultyBlocks {
		return true
	}

	interval := params.DifficultyAdjustmentInterval()
	if int64(height)%interval != 0 {
		return oldNBits == newNBits
	}

	oldTarget := pow.NewBigTarget()
	oldTarget.SetCompact(oldNBits)

	largest := oldTarget.Clone().MulUint64(uint64(params.PowTargetTimespan * 4)).DivUint64(uint64(params.PowTargetTimespan))
	smallest := oldTarget.Clone().MulUint64(uint64(params.PowTargetTimespan)).DivUint64(uint64(params.PowTargetTimespan * 4))

	if largest.Cmp(params.PowLimit) > 0 {
		largest.Set(params.PowLimit)
	}
	if smallest.Cmp(params.PowLimit) > 0 {
		smallest.Set(params.PowLimit)
	}

	largest = roundThroughCompact(largest)
	smallest = roundThroughCompact(smallest)

	observed := pow.NewBigTarget()
	negative, overflow := observed.SetCompact(newNBits)
	if negative || overflow {
		return false
	}

	return observed.Cmp(smallest) >= 0 && observed.Cmp(largest) <= 0
}

// roundThroughCompact normalizes a target the way every DAA output already
// is, so the bounds permitted_difficulty_transition compares against use
// the same precision as the value being checked.
func roundThroughCompact(t *pow.BigTarget) *pow.BigTarget {
	out := pow.NewBigTarget()
	out.SetCompact(t.Compact())
	return out
}
