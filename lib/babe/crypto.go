// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/lib/crypto/sr25519"
)

var babeVRFPrefix = []byte("substrate-babe-vrf")

// SlotClaim is the VRF output and proof proving a slot was won.
type SlotClaim struct {
	Output [sr25519.VRFOutputLength]byte
	Proof  [sr25519.VRFProofLength]byte
}

// claimSlot returns a claim if the keypair is an authority and its VRF output
// for the slot is below the per authority threshold. It returns nil
// with no error if the slot cannot be claimed.
func claimSlot(params TranscriptParams, slot uint64, authorities types.Authorities,
	keypair *sr25519.Keypair, threshold uint64) (*SlotClaim, error) {
	if !authorities.Contains(keypair.Public().Encode()) {
		return nil, nil
	}

	out, proof, err := keypair.VrfSign(makeTranscript(params, slot))
	if err != nil {
		return nil, fmt.Errorf("vrf signing slot %d: %w", slot, err)
	}

	ok, err := checkThreshold(params, slot, out, keypair.Public(),
		perAuthorityThreshold(threshold, len(authorities)))
	if err != nil {
		return nil, err
	}

	logger.Tracef("claimSlot pub=%s slot=%d output=0x%x claimed=%t",
		keypair.Public().Hex(), slot, out, ok)

	if !ok {
		return nil, nil
	}

	return &SlotClaim{Output: out, Proof: proof}, nil
}

// checkThreshold returns true if the VRF output, interpreted as a little endian
// uint64, is strictly below the per authority threshold.
func checkThreshold(params TranscriptParams, slot uint64,
	output [sr25519.VRFOutputLength]byte, pub *sr25519.PublicKey,
	threshold uint64) (bool, error) {
	inout, err := sr25519.AttachInput(output, pub, makeTranscript(params, slot))
	if err != nil {
		return false, fmt.Errorf("attaching sr25519 input: %w", err)
	}

	const size = 8
	res, err := inout.MakeBytes(size, babeVRFPrefix)
	if err != nil {
		return false, fmt.Errorf("making sr25519 bytes: %w", err)
	}

	return binary.LittleEndian.Uint64(res) < threshold, nil
}

func perAuthorityThreshold(threshold uint64, authorityCount int) uint64 {
	if authorityCount == 0 {
		return 0
	}
	return threshold / uint64(authorityCount)
}

// ThresholdFromRatio returns the uint64 threshold giving the probability
// numerator/denominator that a VRF output falls below it.
func ThresholdFromRatio(numerator, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, ErrThresholdOneIsZero
	}

	if numerator > denominator {
		return 0, fmt.Errorf("%w: %d/%d", ErrThresholdAboveOne, numerator, denominator)
	}

	if numerator == denominator {
		return math.MaxUint64, nil
	}

	threshold := new(big.Int).SetUint64(math.MaxUint64)
	threshold.Mul(threshold, new(big.Int).SetUint64(numerator))
	threshold.Div(threshold, new(big.Int).SetUint64(denominator))
	return threshold.Uint64(), nil
}
