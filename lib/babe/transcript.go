// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"github.com/gtank/merlin"

	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/lib/crypto"
)

// TranscriptParams are the chain values bound into the VRF transcript
// next to the slot number.
type TranscriptParams struct {
	Randomness  []byte
	GenesisHash []byte
	Epoch       uint64
}

// PlaceholderTranscriptParams returns the empty randomness, empty genesis hash
// and epoch 0 used by both authors and verifiers until epoch randomness
// is tracked.
func PlaceholderTranscriptParams() TranscriptParams {
	return TranscriptParams{}
}

// IsPlaceholder returns true if the params carry no chain specific values.
func (p TranscriptParams) IsPlaceholder() bool {
	return len(p.Randomness) == 0 && len(p.GenesisHash) == 0 && p.Epoch == 0
}

func makeTranscript(params TranscriptParams, slot uint64) *merlin.Transcript {
	t := merlin.NewTranscript(string(types.BabeEngineID[:]))
	crypto.AppendUint64(t, []byte("slot number"), slot)
	t.AppendMessage([]byte("genesis block hash"), params.GenesisHash)
	crypto.AppendUint64(t, []byte("current epoch"), params.Epoch)
	t.AppendMessage([]byte("chain randomness"), params.Randomness)
	return t
}
