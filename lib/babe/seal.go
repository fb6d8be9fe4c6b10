// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/lib/common"
	"github.com/ChainSafe/gossamer-babe/lib/crypto/sr25519"
)

// sealLength is the length of a SCALE encoded BabeSeal.
const sealLength = sr25519.VRFOutputLength + sr25519.VRFProofLength +
	sr25519.SignatureLength + sr25519.PublicKeyLength + 8

// BabeSeal is the proof attached to a block that its author won the slot.
type BabeSeal struct {
	VrfOutput  [sr25519.VRFOutputLength]byte
	VrfProof   [sr25519.VRFProofLength]byte
	Signature  [sr25519.SignatureLength]byte
	Signer     types.AuthorityID
	SlotNumber uint64
}

func (s *BabeSeal) String() string {
	return fmt.Sprintf("BabeSeal Signer=%s SlotNumber=%d VrfOutput=0x%x",
		s.Signer, s.SlotNumber, s.VrfOutput)
}

// Encode returns the SCALE encoding of the seal.
func (s *BabeSeal) Encode() ([]byte, error) {
	buffer := bytes.NewBuffer(make([]byte, 0, sealLength))
	err := scale.NewEncoder(buffer).Encode(*s)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// DecodeBabeSeal decodes a SCALE encoded seal. It fails if the input
// is not exactly one seal long, or if the VRF output or proof are not
// valid curve encodings.
func DecodeBabeSeal(in []byte) (*BabeSeal, error) {
	if len(in) != sealLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrSealDecode, sealLength, len(in))
	}

	seal := new(BabeSeal)
	err := scale.NewDecoder(bytes.NewReader(in)).Decode(seal)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSealDecode, err)
	}

	err = sr25519.ValidateVRFOutput(seal.VrfOutput)
	if err != nil {
		return nil, fmt.Errorf("%w: vrf output: %s", ErrSealDecode, err)
	}

	err = sr25519.ValidateVRFProof(seal.VrfProof)
	if err != nil {
		return nil, fmt.Errorf("%w: vrf proof: %s", ErrSealDecode, err)
	}

	return seal, nil
}

// SelfCheckPolicy is what the seal codec does when an encoded seal
// does not decode back to the seal it was encoded from.
type SelfCheckPolicy uint8

const (
	// SelfCheckError returns ErrSealRoundTrip.
	SelfCheckError SelfCheckPolicy = iota
	// SelfCheckPanic panics.
	SelfCheckPanic
	// SelfCheckDisabled skips the round trip check.
	SelfCheckDisabled
)

func (p SelfCheckPolicy) String() string {
	switch p {
	case SelfCheckError:
		return "error"
	case SelfCheckPanic:
		return "panic"
	case SelfCheckDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

var errSelfCheckPolicyUnknown = errors.New("seal self check policy is unknown")

// ParseSelfCheckPolicy parses one of error, panic or disabled.
// An empty string gives SelfCheckError.
func ParseSelfCheckPolicy(s string) (SelfCheckPolicy, error) {
	switch strings.ToLower(s) {
	case "", "error":
		return SelfCheckError, nil
	case "panic":
		return SelfCheckPanic, nil
	case "disabled", "off":
		return SelfCheckDisabled, nil
	default:
		return 0, fmt.Errorf("%w: %s", errSelfCheckPolicyUnknown, s)
	}
}

// SealCodec encodes seals, checking that the encoding decodes back
// to the same seal.
type SealCodec struct {
	policy SelfCheckPolicy
}

// NewSealCodec returns a seal codec applying the given self check policy.
func NewSealCodec(policy SelfCheckPolicy) *SealCodec {
	return &SealCodec{policy: policy}
}

// Encode encodes the seal and applies the self check policy.
func (c *SealCodec) Encode(seal *BabeSeal) ([]byte, error) {
	encoded, err := seal.Encode()
	if err != nil {
		return nil, err
	}

	if c.policy == SelfCheckDisabled {
		return encoded, nil
	}

	decoded, err := DecodeBabeSeal(encoded)
	if err == nil && *decoded == *seal {
		return encoded, nil
	}

	if err == nil {
		err = fmt.Errorf("decoded %s", decoded)
	}
	err = fmt.Errorf("%w: %s: %s", ErrSealRoundTrip, seal, err)
	if c.policy == SelfCheckPanic {
		panic(err)
	}
	return nil, err
}

// NewSealDigest wraps an encoded seal into the digest item appended
// to a sealed header.
func NewSealDigest(encodedSeal []byte) *types.ConsensusDigest {
	return &types.ConsensusDigest{
		ConsensusEngineID: types.BabeEngineID,
		Data:              encodedSeal,
	}
}

// SealFromDigest returns the BABE seal carried by the digest item.
func SealFromDigest(item types.DigestItem) (*BabeSeal, error) {
	digest, ok := item.(*types.ConsensusDigest)
	if !ok {
		return nil, fmt.Errorf("%w: last digest item is %T", ErrUnsealed, item)
	}

	if digest.ConsensusEngineID != types.BabeEngineID {
		return nil, fmt.Errorf("%w: last digest item is for engine %s",
			ErrUnsealed, digest.ConsensusEngineID.ToBytes())
	}

	seal, err := DecodeBabeSeal(digest.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsealed, err)
	}
	return seal, nil
}

// sealSigningMessage returns the message signed in a seal: the SCALE encoding
// of the slot number, the pre-seal header hash and the VRF proof.
func sealSigningMessage(slot uint64, preHash common.Hash,
	proof [sr25519.VRFProofLength]byte) ([]byte, error) {
	message := struct {
		Slot    uint64
		PreHash [32]byte
		Proof   [sr25519.VRFProofLength]byte
	}{slot, preHash, proof}

	buffer := bytes.NewBuffer(nil)
	err := scale.NewEncoder(buffer).Encode(message)
	if err != nil {
		return nil, fmt.Errorf("encoding seal signing message: %w", err)
	}
	return buffer.Bytes(), nil
}
