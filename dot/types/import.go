// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// BlockOrigin is the origin of a block being imported.
type BlockOrigin byte

const (
	// Genesis block built into the client.
	Genesis BlockOrigin = iota
	// NetworkInitialSync is a block that is part of the initial sync with the network.
	NetworkInitialSync
	// NetworkBroadcast is a block that was broadcasted by the network.
	NetworkBroadcast
	// ConsensusBroadcast is a block that was broadcasted by the consensus engine.
	ConsensusBroadcast
	// Own is a block that was built and imported by this node.
	Own
	// File is a block that was imported from a file.
	File
)

func (o BlockOrigin) String() string {
	switch o {
	case Genesis:
		return "Genesis"
	case NetworkInitialSync:
		return "NetworkInitialSync"
	case NetworkBroadcast:
		return "NetworkBroadcast"
	case ConsensusBroadcast:
		return "ConsensusBroadcast"
	case Own:
		return "Own"
	case File:
		return "File"
	default:
		return "Unknown"
	}
}

// ForkChoiceStrategy is the fork choice rule to apply when importing a block.
type ForkChoiceStrategy byte

const (
	// LongestChain makes the imported block the new best block
	// if it is on the longest chain.
	LongestChain ForkChoiceStrategy = iota
)

// BlockImportParams holds everything the block importer needs to import a block.
// Header is the pre-seal header: PostDigests must be appended to
// its digest to obtain the header as it was sealed.
type BlockImportParams struct {
	Origin        BlockOrigin
	Header        Header
	Justification []byte
	PostDigests   []DigestItem
	Body          *Body
	Finalized     bool
	ForkChoice    ForkChoiceStrategy
}

// SealedHeader returns a copy of the header with the post digests appended.
func (p *BlockImportParams) SealedHeader() *Header {
	sealed := p.Header.DeepCopy()
	for _, item := range p.PostDigests {
		sealed.Digest.Push(item)
	}
	return sealed
}
