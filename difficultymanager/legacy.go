// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2009-2014 The Bitcoin developers
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

// legacyBaselineSpacing and legacyBaselineTimespan are V1's pre-ForkOne
// nominal values, inherited unchanged from the Litecoin-style retarget this
// chain started from: 2.5-minute spacing over a 3.5-day window. ChainParams
// only carries the post-ForkTwo sol-cadence values (PowTargetSpacing,
// PowTargetTimespan), so V1 keeps its own pre-fork constants here rather
// than growing Params with fields no other algorithm reads.
const (
	legacyBaselineSpacing  int64 = 150
	legacyBaselineTimespan int64 = 302400
)

// legacyV1 implements the pre-ASERT, pre-DGW retarget: a classic
// Bitcoin/Litecoin-style windowed retarget whose nominal spacing and
// timespan change twice, at ForkOneHeight and ForkTwoHeight, on the way to
// the sol-cadence values every later algorithm uses directly.
func legacyV1(tip blockindex.View, candidate CandidateHeader, params *chaincfg.Params) pow.CompactBits {
	if tip == nil {
		return params.PowLimit.Compact()
	}

	height := tip.Height() + 1

	spacing := legacyBaselineSpacing
	timespan := legacyBaselineTimespan
	if height >= params.ForkOneHeight {
		timespan = params.PowTargetTimespan
	}
	if height >= params.ForkTwoHeight {
		timespan = params.PowTargetTimespan
		spacing = params.PowTargetSpacing
	}
	interval := timespan / spacing

	if int64(height)%interval != 0 {
		if params.AllowMinDifficultyBlocks {
			if candidate.Time > tip.Time()+spacing*2 {
				return params.PowLimit.Compact()
			}

			powLimitCompact := params.PowLimit.Compact()
			node := tip
			for node.Prev() != nil && int64(node.Height())%interval != 0 && node.NBits() == powLimitCompact {
				node = node.Prev()
			}
			return node.NBits()
		}
		return tip.NBits()
	}

	blocksToGoBack := interval
	if int64(height) == interval {
		blocksToGoBack = interval - 1
	}

	first := blockindex.WalkBack(tip, int32(blocksToGoBack))
	if first == nil {
		panic(errors.New("legacyV1: walked back past genesis on a retarget boundary"))
	}

	actual := tip.Time() - first.Time()
	if actual < timespan/4 {
		actual = timespan / 4
	}
	if actual > timespan*4 {
		actual = timespan * 4
	}

	target := pow.NewBigTarget()
	target.SetCompact(tip.NBits())

	shifted := target.BitLen() > 235
	if shifted {
		target.Rsh(1)
	}
	target.MulUint64(uint64(actual))
	target.DivUint64(uint64(timespan))
	if shifted {
		target.Lsh(1)
	}

	if target.Cmp(params.PowLimit) > 0 {
		target.Set(params.PowLimit)
	}

	return target.Compact()
}
