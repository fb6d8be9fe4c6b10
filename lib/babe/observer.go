// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"errors"

	"github.com/ChainSafe/gossamer-babe/internal/log"
	"github.com/ChainSafe/gossamer-babe/lib/common"
)

// SkipReason is the reason the slot worker skipped a slot.
type SkipReason uint8

const (
	// SkipNoChainHead is used when the best block header cannot be fetched.
	SkipNoChainHead SkipReason = iota
	// SkipNoAuthorities is used when the authorities at the chain head cannot be fetched.
	SkipNoAuthorities
	// SkipOffline is used when the node is offline and other authorities exist.
	SkipOffline
	// SkipNoProposer is used when no proposer can be created for the chain head.
	SkipNoProposer
)

func (r SkipReason) String() string {
	switch r {
	case SkipNoChainHead:
		return "no_chain_head"
	case SkipNoAuthorities:
		return "no_authorities"
	case SkipOffline:
		return "offline"
	case SkipNoProposer:
		return "no_proposer"
	default:
		return "unknown"
	}
}

// Observer is notified of slot worker and verifier events.
// Implementations must be safe for concurrent use.
type Observer interface {
	SlotSkipped(slot uint64, reason SkipReason)
	SlotClaimed(slot uint64)
	ProposalDiscarded(slot uint64, reason error)
	BlockAuthored(slot uint64, hash common.Hash, number uint)
	HeaderVerified(hash common.Hash, slot uint64, err error)
	HeaderDeferred(hash common.Hash, slot uint64)
}

// Observers notifies each of its observers in order.
type Observers []Observer

var _ Observer = Observers(nil)

// SlotSkipped notifies every observer.
func (o Observers) SlotSkipped(slot uint64, reason SkipReason) {
	for _, observer := range o {
		observer.SlotSkipped(slot, reason)
	}
}

// SlotClaimed notifies every observer.
func (o Observers) SlotClaimed(slot uint64) {
	for _, observer := range o {
		observer.SlotClaimed(slot)
	}
}

// ProposalDiscarded notifies every observer.
func (o Observers) ProposalDiscarded(slot uint64, reason error) {
	for _, observer := range o {
		observer.ProposalDiscarded(slot, reason)
	}
}

// BlockAuthored notifies every observer.
func (o Observers) BlockAuthored(slot uint64, hash common.Hash, number uint) {
	for _, observer := range o {
		observer.BlockAuthored(slot, hash, number)
	}
}

// HeaderVerified notifies every observer.
func (o Observers) HeaderVerified(hash common.Hash, slot uint64, err error) {
	for _, observer := range o {
		observer.HeaderVerified(hash, slot, err)
	}
}

// HeaderDeferred notifies every observer.
func (o Observers) HeaderDeferred(hash common.Hash, slot uint64) {
	for _, observer := range o {
		observer.HeaderDeferred(hash, slot)
	}
}

// LogObserver logs events with a leveled logger.
type LogObserver struct {
	logger log.LeveledLogger
}

var _ Observer = (*LogObserver)(nil)

// NewLogObserver returns an observer logging to the given logger.
func NewLogObserver(logger log.LeveledLogger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (l *LogObserver) SlotSkipped(slot uint64, reason SkipReason) {
	l.logger.Debugf("skipping slot %d: %s", slot, reason)
}

func (l *LogObserver) SlotClaimed(slot uint64) {
	l.logger.Debugf("claimed slot %d, starting proposal", slot)
}

func (l *LogObserver) ProposalDiscarded(slot uint64, reason error) {
	l.logger.Infof("discarding proposal for slot %d: %s", slot, reason)
}

func (l *LogObserver) BlockAuthored(slot uint64, hash common.Hash, number uint) {
	l.logger.Infof("pre-sealed block at slot %d with number %d and hash %s", slot, number, hash)
}

func (l *LogObserver) HeaderVerified(hash common.Hash, slot uint64, err error) {
	var equivocation *EquivocationError
	switch {
	case err == nil:
		l.logger.Tracef("verified header %s at slot %d", hash, slot)
	case errors.As(err, &equivocation):
		l.logger.Warnf("equivocation detected: %s", err)
	default:
		l.logger.Debugf("header %s rejected: %s", hash, err)
	}
}

func (l *LogObserver) HeaderDeferred(hash common.Hash, slot uint64) {
	l.logger.Debugf("header %s with slot %d is ahead of the local slot", hash, slot)
}
