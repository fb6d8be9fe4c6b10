// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"context"
	"time"

	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/lib/common"
)

// BlockState is the interface to the chain used to select the head to build on.
type BlockState interface {
	BestBlockHeader() (*types.Header, error)
}

// AuthorityFetcher returns the BABE authority set in effect at a block.
type AuthorityFetcher interface {
	Authorities(blockHash common.Hash) (types.Authorities, error)
}

// RuntimeAPI is the interface to the runtime BABE API.
type RuntimeAPI interface {
	AuthorityFetcher
	BabeConfiguration(blockHash common.Hash) (*types.BabeConfiguration, error)
}

// ProposerFactory creates block proposers on top of a parent header.
type ProposerFactory interface {
	InitProposer(parent *types.Header, authorities types.Authorities) (Proposer, error)
}

// Proposer builds a block body and an unsealed header.
// It should return before maxDuration has elapsed or ctx is canceled.
type Proposer interface {
	Propose(ctx context.Context, inherents *types.InherentData,
		maxDuration time.Duration) (*types.Block, error)
}

// BlockImporter imports blocks into the chain.
type BlockImporter interface {
	ImportBlock(params *types.BlockImportParams) error
}

// SyncOracle reports the node's network synchronisation status.
type SyncOracle interface {
	IsOffline() bool
}

// EquivocationTracker records which header each authority signed for a slot.
type EquivocationTracker interface {
	// CheckEquivocation returns a proof if the signer already signed a different
	// header for the slot, and records the header otherwise.
	CheckEquivocation(slotNow, slot uint64, header *types.Header,
		signer types.AuthorityID) (*types.BabeEquivocationProof, error)
}

// InherentChecker checks the inherents contained in a block body.
type InherentChecker interface {
	CheckInherents(block *types.Block, parent common.Hash, inherents *types.InherentData) error
}
