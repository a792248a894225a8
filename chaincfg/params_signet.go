// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/marscoin-project/consensus/pow"

// defaultSignetChallenge is the canonical signet challenge script used when
// SigNetOptions.Challenge is omitted.
var defaultSignetChallenge = []byte{
	0x51, 0x21, 0x02, 0x6d, 0x65, 0x72, 0x73, 0x63, 0x6f, 0x69, 0x6e, 0x2d,
	0x73, 0x69, 0x67, 0x6e, 0x65, 0x74, 0x51, 0xae,
}

// SigNetOptions configures SigNetParams. A nil Challenge falls back to
// defaultSignetChallenge; a nil Seeds falls back to no DNS seeds.
type SigNetOptions struct {
	Challenge []byte
	Seeds     []string
}

// SigNetParams returns Marscoin's signet chain parameters. Signet is the
// one network whose magic is computed rather than hard-coded: it is the
// first 4 bytes of SHA256d(challenge script), so custom signets (a
// different Challenge) get their own, non-colliding magic for free.
func SigNetParams(opts SigNetOptions) *Params {
	challenge := opts.Challenge
	if challenge == nil {
		challenge = defaultSignetChallenge
	}

	powLimit := pow.NewBigTarget()
	powLimit.SetCompact(0x1e0ffff0)

	return &Params{
		Name:                     "signet",
		Net:                      signetMagicFromChallenge(challenge),
		DNSSeeds:                 opts.Seeds,
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
