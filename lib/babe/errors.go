// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-babe/dot/types"
)

var (
	// ErrUnsealed is returned when the last digest item of a header is missing
	// or is not a BABE seal
	ErrUnsealed = errors.New("header is unsealed")

	// ErrAuthorNotFound is returned when the producer of a block isn't in the authority set
	ErrAuthorNotFound = errors.New("block producer is not in authority set")

	// ErrBadSignature is returned when a seal signature is invalid
	ErrBadSignature = errors.New("could not verify signature")

	// ErrVRFVerificationFailed is returned when the VRF proof of a seal is invalid
	ErrVRFVerificationFailed = errors.New("could not verify slot claim VRF proof")

	// ErrNotLeaderForSlot is returned when the vrf output of a seal is over the threshold
	ErrNotLeaderForSlot = errors.New("vrf output over threshold")

	// ErrProducerEquivocated is returned when a block producer has produced conflicting blocks
	ErrProducerEquivocated = errors.New("block producer equivocated")

	// ErrTooFarInFuture is returned when a header slot is ahead of the local slot
	ErrTooFarInFuture = errors.New("rejected: too far in the future")

	// ErrSealDecode is returned when a seal cannot be decoded
	ErrSealDecode = errors.New("cannot decode babe seal")

	// ErrSealRoundTrip is returned when a seal does not decode back to itself after encoding
	ErrSealRoundTrip = errors.New("babe seal does not survive an encoding round trip")

	// ErrClientImport is returned when importing an authored block fails
	ErrClientImport = errors.New("client import failed")

	// ErrThresholdOneIsZero is returned when the denominator given to ThresholdFromRatio is zero
	ErrThresholdOneIsZero = errors.New("denominator cannot be 0")

	// ErrThresholdAboveOne is returned when the ratio given to ThresholdFromRatio is above one
	ErrThresholdAboveOne = errors.New("threshold ratio cannot be greater than 1")

	// ErrNotAuthority is returned when trying to perform authority functions when not an authority
	ErrNotAuthority = errors.New("node is not an authority")

	errNilBlockState       = errors.New("cannot have nil BlockState")
	errNilAuthorityFetcher = errors.New("cannot have nil AuthorityFetcher")
	errNilProposerFactory  = errors.New("cannot have nil ProposerFactory")
	errNilBlockImporter    = errors.New("cannot have nil BlockImporter")
	errNilSyncOracle       = errors.New("cannot have nil SyncOracle")
	errNilTracker          = errors.New("cannot have nil EquivocationTracker")
	errInvalidSlotDuration = errors.New("slot duration must be at least one millisecond")
	errServicePaused       = errors.New("service paused")
	errProposalTimedOut    = errors.New("block production took too long")
	errSlotElapsed         = errors.New("slot elapsed during block production")
	errNilProposal         = errors.New("proposer returned no block")
	errChainReorged        = errors.New("chain head changed during block production")
)

// EquivocationError is returned when a header is signed by an authority
// that already signed a different header for the same slot.
type EquivocationError struct {
	Proof *types.BabeEquivocationProof
}

func (e *EquivocationError) Error() string {
	return fmt.Sprintf("%s: slot author %s produced headers %s and %s in slot %d",
		ErrProducerEquivocated, e.Proof.Offender,
		e.Proof.FirstHeader.Hash(), e.Proof.SecondHeader.Hash(), e.Proof.Slot)
}

// Unwrap returns ErrProducerEquivocated
func (*EquivocationError) Unwrap() error {
	return ErrProducerEquivocated
}
