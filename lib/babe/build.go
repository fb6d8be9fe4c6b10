// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"context"
	"fmt"
	"sync"

	ethmetrics "github.com/ethereum/go-ethereum/metrics"

	"github.com/ChainSafe/gossamer-babe/dot/types"
)

const (
	buildBlockTimer  = "gossamer/proposer/block/constructed"
	buildBlockErrors = "gossamer/proposer/block/constructed/errors"
)

var enableMetrics sync.Once

type proposal struct {
	block *types.Block
	err   error
}

// propose runs the proposer, giving up when the slot ends.
func (b *Service) propose(ctx context.Context, proposer Proposer, slot SlotInfo) (*types.Block, error) {
	// is necessary to enable ethmetrics to be possible register values
	enableMetrics.Do(func() { ethmetrics.Enabled = true })

	remaining := b.slotClock.remaining(slot)
	if remaining == 0 {
		ethmetrics.GetOrRegisterCounter(buildBlockErrors, nil).Inc(1)
		return nil, fmt.Errorf("%w: no time left in slot %d", errProposalTimedOut, slot.Number)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := b.clock.Now()
	results := make(chan proposal, 1)
	go func() {
		block, err := proposer.Propose(ctx, slot.InherentData.Clone(), remaining)
		results <- proposal{block: block, err: err}
	}()

	timer := b.clock.Timer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		ethmetrics.GetOrRegisterCounter(buildBlockErrors, nil).Inc(1)
		return nil, fmt.Errorf("%w: slot %d proposal exceeded %s",
			errProposalTimedOut, slot.Number, remaining)
	case result := <-results:
		if result.err != nil {
			ethmetrics.GetOrRegisterCounter(buildBlockErrors, nil).Inc(1)
			return nil, fmt.Errorf("proposing block for slot %d: %w", slot.Number, result.err)
		}
		if result.block == nil {
			ethmetrics.GetOrRegisterCounter(buildBlockErrors, nil).Inc(1)
			return nil, fmt.Errorf("%w: slot %d", errNilProposal, slot.Number)
		}

		ethmetrics.GetOrRegisterTimer(buildBlockTimer, nil).Update(b.clock.Now().Sub(start))
		logger.Tracef("proposed block with parent %s for %s",
			result.block.Header.ParentHash, slot)
		return result.block, nil
	}
}

// seal signs the proposed header and returns the import parameters for it.
func (b *Service) seal(block *types.Block, slot uint64, claim *SlotClaim) (*types.BlockImportParams, error) {
	header := block.Header.DeepCopy()

	message, err := sealSigningMessage(slot, header.Hash(), claim.Proof)
	if err != nil {
		return nil, err
	}

	signature, err := b.keypair.Sign(message)
	if err != nil {
		return nil, fmt.Errorf("signing seal for slot %d: %w", slot, err)
	}

	seal := &BabeSeal{
		VrfOutput:  claim.Output,
		VrfProof:   claim.Proof,
		Signature:  signature,
		Signer:     b.keypair.Public().Encode(),
		SlotNumber: slot,
	}

	encoded, err := b.sealCodec.Encode(seal)
	if err != nil {
		return nil, err
	}

	body := make(types.Body, len(block.Body))
	copy(body, block.Body)

	return &types.BlockImportParams{
		Origin:      types.Own,
		Header:      *header,
		PostDigests: []types.DigestItem{NewSealDigest(encoded)},
		Body:        &body,
		Finalized:   false,
		ForkChoice:  types.LongestChain,
	}, nil
}
