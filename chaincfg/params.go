// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2014-2019 The Marscoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the immutable per-network chain parameters the
// difficulty adjustment algorithms and proof-of-work validator read from.
package chaincfg

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/marscoin-project/consensus/pow"
)

// ChainType identifies one of the five network variants.
type ChainType int

// The recognized network variants.
const (
	Main ChainType = iota
	TestNet
	TestNet4
	RegTest
	SigNet
)

// NetworkMagic is the 4-byte magic prefix a network's peers exchange at the
// start of every message. It is the only thing network_for_magic needs to
// tell networks apart.
type NetworkMagic [4]byte

// VBitsParams mirrors a single BIP0009-style consensus deployment: a bit
// number plus the start/expire window during which miners signal for it.
// The DAA/PoW core never reads these; RegTest simply stores whatever the
// caller constructed it with, per spec.md §6's "per-deployment version-bits
// parameters" requirement.
type VBitsParams struct {
	BitNumber  uint8
	StartTime  int64
	ExpireTime int64
}

// Params is the immutable per-network chain-parameter record. Only the
// fields the DAA and PoW validator consume are load-bearing; the rest
// (Name, Net, DNSSeeds) round out a faithful record the way every chain
// params table in the pack does, without being exercised by the consensus
// math itself.
type Params struct {
	Name     string
	Net      NetworkMagic
	DNSSeeds []string

	// PowLimit is the easiest (numerically largest) target any block on
	// this network may meet.
	PowLimit *pow.BigTarget

	// PowTargetSpacing is the nominal number of seconds between blocks.
	PowTargetSpacing int64

	// PowTargetTimespan is the nominal retarget window in seconds.
	PowTargetTimespan int64

	// AllowMinDifficultyBlocks is the testnet escape hatch: if a block's
	// timestamp falls too far behind schedule, mining at powLimit is
	// permitted outside the normal retarget cadence.
	AllowMinDifficultyBlocks bool

	// NoRetargeting disables the DAA entirely (regtest): every block
	// simply repeats its parent's nBits.
	NoRetargeting bool

	// ASERTAnchorHeight is the fixed height of the ASERT anchor block.
	ASERTAnchorHeight int32

	// ASERTHalfLife is, in seconds, the time by which being ahead of or
	// behind schedule halves or doubles difficulty under ASERT.
	ASERTHalfLife int64

	// ASERTSpacing is the nominal spacing ASERT schedules against. It is
	// tracked separately from PowTargetSpacing because a network could in
	// principle activate ASERT at a different cadence than its legacy
	// retarget used, though every network defined here keeps them equal.
	ASERTSpacing int64

	// ForkOneHeight and ForkTwoHeight are the V1 algorithm's sol-day
	// retarget forks (spec.md §4.D).
	ForkOneHeight int32
	ForkTwoHeight int32

	// DGW2Height, DGW3Height, and ASERTHeight are the DAA dispatcher's
	// height bands (spec.md §4.D's dispatch table).
	DGW2Height  int32
	DGW3Height  int32
	ASERTHeight int32

	// FastPrune and VersionBits are regtest-only knobs the DAA/PoW core
	// never reads; they exist so RegTest's constructor signature matches
	// spec.md §6 in full.
	FastPrune   bool
	VersionBits map[string]VBitsParams
}

// DifficultyAdjustmentInterval returns the number of blocks between
// retargets at the network's sol-cadence PowTargetSpacing and
// PowTargetTimespan (the post-ForkTwo values; V1's pre-fork baseline is not
// reflected here).
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return p.PowTargetTimespan / p.PowTargetSpacing
}

// NetworkForMagic looks up the ChainType whose magic bytes match magic.
func NetworkForMagic(magic NetworkMagic) (ChainType, bool) {
	for _, n := range []struct {
		chain  ChainType
		params func() *Params
	}{
		{Main, MainNetParams},
		{TestNet, TestNetParams},
		{TestNet4, TestNet4Params},
		{RegTest, func() *Params { return RegTestParams(RegTestOptions{}) }},
		{SigNet, func() *Params { return SigNetParams(SigNetOptions{}) }},
	} {
		if n.params().Net == magic {
			return n.chain, true
		}
	}
	return 0, false
}

// signetMagicFromChallenge derives a signet's message-start magic as the
// first 4 bytes of SHA256d(challenge), per spec.md §6.
func signetMagicFromChallenge(challenge []byte) NetworkMagic {
	var magic NetworkMagic
	copy(magic[:], chainhash.DoubleHashB(challenge))
	return magic
}
