// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/marscoin-project/consensus/pow"

// MainNetParams returns Marscoin's mainnet chain parameters.
func MainNetParams() *Params {
	powLimit := pow.NewBigTarget()
	powLimit.SetCompact(0x1e0ffff0)

	return &Params{
		Name:                     "main",
		Net:                      NetworkMagic{0xfb, 0xc0, 0xb6, 0xdb},
		DNSSeeds:                 []string{"seed.marscoin.org"},
		PowLimit:                 powLimit,
		PowTargetSpacing:         123,
		PowTargetTimespan:        88775,
		AllowMinDifficultyBlocks: false,
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
