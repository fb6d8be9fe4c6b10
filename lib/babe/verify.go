// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/lib/common"
	"github.com/ChainSafe/gossamer-babe/lib/crypto/sr25519"
)

// CheckedHeader is the result of checking a header seal.
// It is either *Checked or *Deferred.
type CheckedHeader interface {
	isCheckedHeader()
}

// Checked is a header whose seal was verified. PreHeader is the header
// without its seal, and Seal is the digest item removed from it.
type Checked struct {
	PreHeader  *types.Header
	Seal       types.DigestItem
	SlotNumber uint64
	Signer     types.AuthorityID
}

// Deferred is a header whose slot is ahead of the local slot.
// Header still carries its seal.
type Deferred struct {
	Header     *types.Header
	SlotNumber uint64
}

func (*Checked) isCheckedHeader()  {}
func (*Deferred) isCheckedHeader() {}

// VerifierConfig holds the dependencies and parameters of a Verifier.
type VerifierConfig struct {
	Authorities     AuthorityFetcher
	Tracker         EquivocationTracker
	InherentChecker InherentChecker
	Observer        Observer
	Registerer      prometheus.Registerer
	Clock           clock.Clock
	Transcript      TranscriptParams
	Threshold       uint64
	SlotDuration    time.Duration
}

// Verifier checks the seals of imported headers.
// It is safe for concurrent use.
type Verifier struct {
	authorities     AuthorityFetcher
	tracker         EquivocationTracker
	inherentChecker InherentChecker
	observer        Observer
	slotClock       *slotClock
	transcript      TranscriptParams
	threshold       uint64
}

// ApplyRuntime fills the slot duration and threshold left unset
// with the values of the runtime BABE configuration.
func (c *VerifierConfig) ApplyRuntime(runtime *types.BabeConfiguration) {
	c.SlotDuration, c.Threshold = runtimeDefaults(c.SlotDuration, c.Threshold, runtime)
}

// NewVerifier returns a new header verifier.
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	if cfg.Authorities == nil {
		return nil, errNilAuthorityFetcher
	}

	if cfg.Tracker == nil {
		return nil, errNilTracker
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	if cfg.Observer == nil {
		observer, err := newDefaultObserver(cfg.Registerer)
		if err != nil {
			return nil, err
		}
		cfg.Observer = observer
	}

	slotClock, err := newSlotClock(cfg.Clock, cfg.SlotDuration)
	if err != nil {
		return nil, err
	}

	if cfg.Transcript.IsPlaceholder() {
		logger.Warn("verifier uses placeholder VRF transcript parameters")
	}

	return &Verifier{
		authorities:     cfg.Authorities,
		tracker:         cfg.Tracker,
		inherentChecker: cfg.InherentChecker,
		observer:        cfg.Observer,
		slotClock:       slotClock,
		transcript:      cfg.Transcript,
		threshold:       cfg.Threshold,
	}, nil
}

// VerifyBlock verifies the seal of a header received from the given origin,
// and returns the parameters to import the block with.
// The header is accepted up to one slot ahead of the local slot.
func (v *Verifier) VerifyBlock(origin types.BlockOrigin, header *types.Header,
	justification []byte, body *types.Body) (*types.BlockImportParams, error) {
	hash := header.Hash()
	logger.Tracef("verifying origin %s header %s", origin, hash)

	timestamp, slotNow, err := v.slotClock.slotNow()
	if err != nil {
		return nil, err
	}

	authorities, err := v.authorities.Authorities(header.ParentHash)
	if err != nil {
		return nil, fmt.Errorf("getting authorities at parent %s of header %s: %w",
			header.ParentHash, hash, err)
	}

	checked, err := v.checkHeader(slotNow+1, header, authorities)
	if err != nil {
		v.observer.HeaderVerified(hash, 0, err)
		return nil, err
	}

	switch c := checked.(type) {
	case *Deferred:
		v.observer.HeaderDeferred(hash, c.SlotNumber)
		return nil, fmt.Errorf("header %s with slot %d at local slot %d %w",
			hash, c.SlotNumber, slotNow, ErrTooFarInFuture)
	case *Checked:
		if body != nil && v.inherentChecker != nil {
			inherents := v.slotClock.inherentData(time.UnixMilli(int64(timestamp)))
			inherents.SetUint64Inherent(types.Babeslot, c.SlotNumber)

			block := types.NewBlock(*c.PreHeader, *body)
			err = v.inherentChecker.CheckInherents(&block, header.ParentHash, inherents)
			if err != nil {
				err = fmt.Errorf("checking inherents of header %s: %w", hash, err)
				v.observer.HeaderVerified(hash, c.SlotNumber, err)
				return nil, err
			}
		}

		logger.Debugf("checked header %s at slot %d signed by %s", hash, c.SlotNumber, c.Signer)
		v.observer.HeaderVerified(hash, c.SlotNumber, nil)

		return &types.BlockImportParams{
			Origin:        origin,
			Header:        *c.PreHeader,
			Justification: justification,
			PostDigests:   []types.DigestItem{c.Seal},
			Body:          body,
			Finalized:     false,
			ForkChoice:    types.LongestChain,
		}, nil
	default:
		panic(fmt.Sprintf("unexpected checked header type %T", checked))
	}
}

// checkHeader checks the seal of the header against the authorities. The header
// is not modified. A header with a slot after slotNow is returned as Deferred.
func (v *Verifier) checkHeader(slotNow uint64, header *types.Header,
	authorities types.Authorities) (CheckedHeader, error) {
	header = header.DeepCopy()
	hash := header.Hash()

	item := header.Digest.Pop()
	if item == nil {
		return nil, fmt.Errorf("%w: header %s has no digest item", ErrUnsealed, hash)
	}

	seal, err := SealFromDigest(item)
	if err != nil {
		return nil, fmt.Errorf("header %s: %w", hash, err)
	}

	if seal.SlotNumber > slotNow {
		header.Digest.Push(item)
		return &Deferred{Header: header, SlotNumber: seal.SlotNumber}, nil
	}

	if !authorities.Contains(seal.Signer) {
		return nil, fmt.Errorf("%w: signer %s of header %s at slot %d",
			ErrAuthorNotFound, seal.Signer, hash, seal.SlotNumber)
	}

	pub, err := sr25519.NewPublicKey(seal.Signer)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding signer %s of header %s: %s",
			ErrBadSignature, seal.Signer, hash, err)
	}

	err = verifySealSignature(pub, seal, header.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: header %s signed by %s: %s",
			ErrBadSignature, hash, seal.Signer, err)
	}

	ok, err := pub.VrfVerify(makeTranscript(v.transcript, seal.SlotNumber), seal.VrfOutput, seal.VrfProof)
	if err != nil {
		return nil, fmt.Errorf("%w: header %s at slot %d signed by %s: %s",
			ErrVRFVerificationFailed, hash, seal.SlotNumber, seal.Signer, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: header %s at slot %d signed by %s",
			ErrVRFVerificationFailed, hash, seal.SlotNumber, seal.Signer)
	}

	ok, err = checkThreshold(v.transcript, seal.SlotNumber, seal.VrfOutput, pub,
		perAuthorityThreshold(v.threshold, len(authorities)))
	if err != nil {
		return nil, fmt.Errorf("checking threshold of header %s: %w", hash, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: signer %s of header %s at slot %d",
			ErrNotLeaderForSlot, seal.Signer, hash, seal.SlotNumber)
	}

	proof, err := v.tracker.CheckEquivocation(slotNow, seal.SlotNumber, header, seal.Signer)
	if err != nil {
		return nil, fmt.Errorf("checking equivocation of header %s: %w", hash, err)
	}
	if proof != nil {
		return nil, &EquivocationError{Proof: proof}
	}

	return &Checked{
		PreHeader:  header,
		Seal:       item,
		SlotNumber: seal.SlotNumber,
		Signer:     seal.Signer,
	}, nil
}

var errSignatureInvalid = errors.New("signature is invalid")

func verifySealSignature(pub *sr25519.PublicKey, seal *BabeSeal, preHash common.Hash) error {
	message, err := sealSigningMessage(seal.SlotNumber, preHash, seal.VrfProof)
	if err != nil {
		return err
	}

	ok, err := pub.Verify(message, seal.Signature[:])
	if err != nil {
		return err
	}
	if !ok {
		return errSignatureInvalid
	}
	return nil
}
