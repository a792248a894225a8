// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/marscoin-project/consensus/pow"

// TestNetParams returns Marscoin's original testnet chain parameters. It
// carries the same DAA fork heights as mainnet (the testnet's purpose is to
// exercise the same dispatch table against low-stakes blocks, not a
// different one) but enables the min-difficulty escape hatch.
func TestNetParams() *Params {
	powLimit := pow.NewBigTarget()
	powLimit.SetCompact(0x1e0ffff0)

	return &Params{
		Name:                     "test",
		Net:                      NetworkMagic{0xfa, 0xaf, 0xde, 0xed},
		DNSSeeds:                 []string{"testnet-seed.marscoin.org"},
		PowLimit:                 powLimit,
		PowTargetSpacing:         123,
		PowTargetTimespan:        88775,
		AllowMinDifficultyBlocks: true,
		NoRetargeting:            false,
		ASERTAnchorHeight:        2999999,
		ASERTHalfLife:            7200,
		ASERTSpacing:             123,
		ForkOneHeight:            14260,
		ForkTwoHeight:            70000,
		DGW2Height:               120000,
		DGW3Height:               126000,
		ASERTHeight:              2999999,
	}
}

// TestNet4Params returns Marscoin's second-generation testnet chain
// parameters: a fresh chain with the DAA bands compressed much closer to
// genesis so the later algorithms can be exercised without mining hundreds
// of thousands of blocks.
func TestNet4Params() *Params {
	powLimit := pow.NewBigTarget()
	powLimit.SetCompact(0x1e0ffff0)

	return &Params{
		Name:                     "testnet4",
		Net:                      NetworkMagic{0xfc, 0xc1, 0xb7, 0xdc},
		DNSSeeds:                 []string{"testnet4-seed.marscoin.org"},
		PowLimit:                 powLimit,
		PowTargetSpacing:         123,
		PowTargetTimespan:        88775,
		AllowMinDifficultyBlocks: true,
		NoRetargeting:            false,
		ASERTAnchorHeight:        3000,
		ASERTHalfLife:            7200,
		ASERTSpacing:             123,
		ForkOneHeight:            0,
		ForkTwoHeight:            0,
		DGW2Height:               100,
		DGW3Height:               200,
		ASERTHeight:              3000,
	}
}
