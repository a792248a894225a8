// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/marscoin-project/consensus/pow"

// RegTestOptions configures RegTestParams. FastPrune and VersionBits are
// carried through to the returned Params verbatim (spec.md §6); the DAA
// and PoW core never read them. ActivationOverrides lets a test harness
// move any of the buried fork heights without hand-rolling a whole new
// Params literal.
type RegTestOptions struct {
	FastPrune           bool
	ActivationOverrides map[string]int32
	VersionBits         map[string]VBitsParams
}

// Buried-deployment names recognized in RegTestOptions.ActivationOverrides.
const (
	DeploymentForkOne = "forkone"
	DeploymentForkTwo = "forktwo"
	DeploymentDGW2    = "dgw2"
	DeploymentDGW3    = "dgw3"
	DeploymentASERT   = "asert"
)

// RegTestParams returns Marscoin's regression-test chain parameters. By
// default NoRetargeting is set, so GetNextWorkRequired always returns the
// tip's own nBits unchanged (spec.md §4.D) — this is regtest's defining
// property, not something ActivationOverrides can turn off.
func RegTestParams(opts RegTestOptions) *Params {
	powLimit := pow.NewBigTarget()
	powLimit.SetCompact(0x207fffff)

	p := &Params{
		Name:                     "regtest",
		Net:                      NetworkMagic{0xfa, 0xbf, 0xb5, 0xda},
		DNSSeeds:                 nil,
		PowLimit:                 powLimit,
		PowTargetSpacing:         123,
		PowTargetTimespan:        88775,
		AllowMinDifficultyBlocks: true,
		NoRetargeting:            true,
		ASERTAnchorHeight:        2000,
		ASERTHalfLife:            7200,
		ASERTSpacing:             123,
		ForkOneHeight:            0,
		ForkTwoHeight:            0,
		DGW2Height:               0,
		DGW3Height:               0,
		ASERTHeight:              2000,
		FastPrune:                opts.FastPrune,
		VersionBits:              opts.VersionBits,
	}

	for name, height := range opts.ActivationOverrides {
		switch name {
		case DeploymentForkOne:
			p.ForkOneHeight = height
		case DeploymentForkTwo:
			p.ForkTwoHeight = height
		case DeploymentDGW2:
			p.DGW2Height = height
		case DeploymentDGW3:
			p.DGW3Height = height
		case DeploymentASERT:
			p.ASERTHeight = height
			p.ASERTAnchorHeight = height
		}
	}

	return p
}
