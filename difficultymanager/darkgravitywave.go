// Copyright (c) 2014 Evan Duffield
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficultymanager

import (
	"math/big"

	"github.com/marscoin-project/consensus/blockindex"
	"github.com/marscoin-project/consensus/chaincfg"
	"github.com/marscoin-project/consensus/pow"
)

// marsMinuteSpacing is the fixed Mars-minute cadence both DarkGravityWave
// variants schedule against. It is independent of params: DGW predates the
// sol-cadence ChainParams fields and was never wired to read them.
const marsMinuteSpacing = 123

const (
	dgw2PastBlocksMin = 14
	dgw2PastBlocksMax = 140
	dgw3Window        = 24
)

// compactToBig and bigToCompact mirror btcd's arith_uint256 <-> nBits
// conversion, but over math/big rather than pow.BigTarget: DarkGravityWave's
// running averages need a *signed* intermediate (the recurrence can dip
// below zero mid-computation before settling back positive), which
// holiman/uint256's unsigned representation cannot hold. math/big is the
// only arbitrary-precision signed integer in the stack, so the two DGW
// algorithms in this file are the one place in this module that reach for
// it instead of BigTarget.
func compactToBig(compact pow.CompactBits) *big.Int {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	if isNegative && bn.Sign() != 0 {
		bn.Neg(bn)
	}
	return bn
}

func bigToCompact(n *big.Int) pow.CompactBits {
	if n.Sign() == 0 {
		return 0
	}

	abs := new(big.Int).Abs(n)
	exponent := uint((abs.BitLen() + 7) / 8)

	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(abs.Uint64())
		mantissa <<= 8 * (3 - exponent)
	} else {
		shifted := new(big.Int).Rsh(abs, 8*(exponent-3))
		mantissa = uint32(shifted.Uint64())
	}

	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent)<<24 | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// darkGravityWave2 implements DarkGravity v2: a recurrence average of the
// targets of the most recent 14 blocks, retargeted against a "smart" block
// time that blends a 14-block recurrence average of the gaps with the plain
// mean gap over the whole window of up to 140 blocks.
func darkGravityWave2(tip blockindex.View, params *chaincfg.Params) pow.CompactBits {
	if tip == nil || tip.Height() == 0 || tip.Height() < dgw2PastBlocksMin {
		return params.PowLimit.Compact()
	}

	var avgDifficulty *big.Int
	var blockTimeAvg, blockTimeAvgPrev int64
	var sum2, count2 int64
	count := int64(0)

	node := tip
	for i := int64(1); node != nil && node.Height() > 0 && i <= dgw2PastBlocksMax; i++ {
		count++

		if count <= dgw2PastBlocksMin {
			cur := compactToBig(node.NBits())
			if count == 1 {
				avgDifficulty = cur
			} else {
				step := new(big.Int).Sub(cur, avgDifficulty)
				step.Div(step, big.NewInt(count))
				avgDifficulty = step.Add(step, avgDifficulty)
			}
		}

		gap := node.Prev().Time() - node.Time()
		if count <= dgw2PastBlocksMin {
			if count == 1 {
				blockTimeAvg = gap
			} else {
				blockTimeAvg = ((gap - blockTimeAvgPrev) / count) + blockTimeAvgPrev
			}
			blockTimeAvgPrev = blockTimeAvg
		}
		sum2 += gap
		count2++

		node = node.Prev()
	}

	smart := 0.7*float64(blockTimeAvg) + 0.3*(float64(sum2)/float64(count2))
	if smart < 1 {
		smart = 1
	}
	shift := float64(marsMinuteSpacing) / smart
	actualSpan := (float64(count) * float64(marsMinuteSpacing)) / shift
	targetSpan := float64(count) * float64(marsMinuteSpacing)

	if actualSpan < targetSpan/3 {
		actualSpan = targetSpan / 3
	}
	if actualSpan > targetSpan*3 {
		actualSpan = targetSpan * 3
	}

	target := new(big.Int).Set(avgDifficulty)
	target.Mul(target, big.NewInt(int64(actualSpan)))
	target.Div(target, big.NewInt(int64(targetSpan)))

	return clampAndEncode(target, params.PowLimit)
}

// darkGravityWave3 implements DarkGravity v3: a fixed 24-block weighted
// average with a simpler, unclamped-smart-time elapsed-time computation
// than v2.
func darkGravityWave3(tip blockindex.View, params *chaincfg.Params) pow.CompactBits {
	if tip == nil || tip.Height() == 0 || tip.Height() < dgw3Window {
		return params.PowLimit.Compact()
	}

	var avg *big.Int
	var actualTimespan int64
	count := int64(0)

	node := tip
	for i := int64(1); node != nil && node.Height() > 0 && i <= dgw3Window; i++ {
		count++

		cur := compactToBig(node.NBits())
		if count == 1 {
			avg = cur
		} else {
			weighted := new(big.Int).Mul(avg, big.NewInt(count))
			weighted.Add(weighted, cur)
			avg = weighted.Div(weighted, big.NewInt(count+1))
		}

		actualTimespan += node.Prev().Time() - node.Time()

		node = node.Prev()
	}

	targetSpan := count * marsMinuteSpacing
	if actualTimespan < targetSpan/3 {
		actualTimespan = targetSpan / 3
	}
	if actualTimespan > targetSpan*3 {
		actualTimespan = targetSpan * 3
	}

	target := new(big.Int).Mul(avg, big.NewInt(actualTimespan))
	target.Div(target, big.NewInt(targetSpan))

	return clampAndEncode(target, params.PowLimit)
}

// clampAndEncode clamps a DGW-computed target (possibly non-positive, a
// byproduct of the signed recurrence) into [1, powLimit] and re-encodes it
// through BigTarget so every algorithm's output passes through the same
// compact normalization. The floor at 1 rather than 0 mirrors ASERT's own
// explicit zero-guard (spec.md §4.D step 9): every DAA's output must keep
// 0 < decode(n) <= pow_limit.
func clampAndEncode(target *big.Int, powLimit *pow.BigTarget) pow.CompactBits {
	if target.Sign() <= 0 {
		target.SetInt64(1)
	}

	powLimitBig := compactToBig(powLimit.Compact())
	if target.Cmp(powLimitBig) > 0 {
		target = powLimitBig
	}

	out := pow.NewBigTarget()
	out.SetCompact(bigToCompact(target))
	return out.Compact()
}
