// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficultymanager is the height-gated dispatcher over the four
// successive difficulty adjustment algorithms: legacy V1, DarkGravityWave
// v2, DarkGravityWave v3, and ASERT. Callers hand it a tip and a candidate
// header; it hands back the compact target the candidate must meet.
package difficultymanager

import (
	"github.com/marscoin-project/consensus/blockindex"
	"github.com/marscoin-project/consensus/chaincfg"
	"github.com/marscoin-project/consensus/pow"
)

// CandidateHeader carries the fields a DAA needs from the block being
// built on top of tip, without requiring a full BlockIndexView for a node
// that, by definition, isn't linked into the chain yet.
type CandidateHeader struct {
	Time int64
}

// GetNextWorkRequired selects and runs exactly one difficulty adjustment
// algorithm for the block one past tip, per the dispatcher's height bands.
// tip may be nil, meaning the candidate is the genesis block itself.
func GetNextWorkRequired(tip blockindex.View, candidate CandidateHeader, params *chaincfg.Params) pow.CompactBits {
	if params.NoRetargeting {
		if tip == nil {
			return params.PowLimit.Compact()
		}
		return tip.NBits()
	}

	var height int32
	if tip != nil {
		height = tip.Height() + 1
	}

	switch {
	case height >= params.ASERTHeight:
		return asertNextWork(tip, params)
	case height >= params.DGW3Height:
		return darkGravityWave3(tip, params)
	case height >= params.DGW2Height:
		return darkGravityWave2(tip, params)
	default:
		return legacyV1(tip, candidate, params)
	}
}
