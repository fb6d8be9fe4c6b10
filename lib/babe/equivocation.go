// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/internal/database"
	"github.com/ChainSafe/gossamer-babe/lib/common"
)

const (
	// MaxSlotCapacity is the number of slots behind the current slot
	// for which headers are checked for equivocations.
	MaxSlotCapacity = 1000
	// PruningBound is the number of slots after which stored headers
	// older than MaxSlotCapacity are pruned.
	PruningBound = 2 * MaxSlotCapacity

	equivocationTablePrefix = "babe_slot_header/"
)

var slotHeaderStartKey = []byte("slot_header_start")

type signedHeader struct {
	Signer types.AuthorityID
	Header []byte
}

// AuxEquivocationTracker is an EquivocationTracker persisting the headers
// seen per slot in a database table.
type AuxEquivocationTracker struct {
	table database.Table
	mutex sync.Mutex
}

var _ EquivocationTracker = (*AuxEquivocationTracker)(nil)

// NewAuxEquivocationTracker returns a tracker storing its data in the database.
func NewAuxEquivocationTracker(db database.Database) *AuxEquivocationTracker {
	return &AuxEquivocationTracker{
		table: database.NewTable(db, equivocationTablePrefix),
	}
}

// CheckEquivocation returns a proof if the signer already signed a different header
// for the slot. Headers more than MaxSlotCapacity slots behind slotNow are not checked.
func (t *AuxEquivocationTracker) CheckEquivocation(slotNow, slot uint64,
	header *types.Header, signer types.AuthorityID) (*types.BabeEquivocationProof, error) {
	if slotNow > slot && slotNow-slot > MaxSlotCapacity {
		return nil, nil
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	slotKey, err := slotHeaderKey(slot)
	if err != nil {
		return nil, err
	}

	headers, err := t.loadSignedHeaders(slotKey)
	if err != nil {
		return nil, fmt.Errorf("loading headers for slot %d: %w", slot, err)
	}

	firstSavedSlot, err := t.loadFirstSavedSlot(slot)
	if err != nil {
		return nil, fmt.Errorf("loading first saved slot: %w", err)
	}

	headerHash := header.Hash()
	for _, previous := range headers {
		if previous.Signer != signer {
			continue
		}

		previousHeader, err := types.DecodeHeader(bytes.NewReader(previous.Header))
		if err != nil {
			return nil, fmt.Errorf("decoding stored header for slot %d: %w", slot, err)
		}

		if previousHeader.Hash() == headerHash {
			// already seen, any equivocation was reported the first time
			return nil, nil
		}

		return &types.BabeEquivocationProof{
			Offender:     signer,
			Slot:         slot,
			FirstHeader:  *previousHeader,
			SecondHeader: *header.DeepCopy(),
		}, nil
	}

	batch := t.table.NewBatch()
	defer batch.Close() //nolint:errcheck

	newFirstSavedSlot := firstSavedSlot
	if slotNow >= firstSavedSlot+PruningBound {
		newFirstSavedSlot = saturatingSub(slotNow, MaxSlotCapacity)
		for s := firstSavedSlot; s < newFirstSavedSlot; s++ {
			key, err := slotHeaderKey(s)
			if err != nil {
				return nil, err
			}
			err = batch.Del(key)
			if err != nil {
				return nil, err
			}
		}
		logger.Debugf("pruning equivocation data for slots %d to %d",
			firstSavedSlot, newFirstSavedSlot)
	}

	encodedHeader, err := header.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}
	headers = append(headers, signedHeader{Signer: signer, Header: encodedHeader})

	encodedHeaders, err := encode(headers)
	if err != nil {
		return nil, fmt.Errorf("encoding headers for slot %d: %w", slot, err)
	}

	err = batch.Put(slotKey, encodedHeaders)
	if err != nil {
		return nil, err
	}

	err = batch.Put(slotHeaderStartKey, common.Uint64ToLEB(newFirstSavedSlot))
	if err != nil {
		return nil, err
	}

	err = batch.Flush()
	if err != nil {
		return nil, fmt.Errorf("storing header for slot %d: %w", slot, err)
	}

	return nil, nil
}

func (t *AuxEquivocationTracker) loadSignedHeaders(key []byte) (headers []signedHeader, err error) {
	encoded, err := t.table.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	err = scale.NewDecoder(bytes.NewReader(encoded)).Decode(&headers)
	if err != nil {
		return nil, err
	}
	return headers, nil
}

func (t *AuxEquivocationTracker) loadFirstSavedSlot(defaultSlot uint64) (uint64, error) {
	encoded, err := t.table.Get(slotHeaderStartKey)
	if errors.Is(err, database.ErrNotFound) {
		return defaultSlot, nil
	} else if err != nil {
		return 0, err
	}

	var slot uint64
	err = scale.NewDecoder(bytes.NewReader(encoded)).Decode(&slot)
	if err != nil {
		return 0, err
	}
	return slot, nil
}

// slotHeaderKey returns the twox64 concatenated key of the slot.
func slotHeaderKey(slot uint64) ([]byte, error) {
	encodedSlot := common.Uint64ToLEB(slot)
	hashed, err := common.Twox64(encodedSlot)
	if err != nil {
		return nil, fmt.Errorf("hashing slot key: %w", err)
	}
	return append(hashed, encodedSlot...), nil
}

func encode(value interface{}) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	err := scale.NewEncoder(buffer).Encode(value)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
