// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/internal/database"
	"github.com/ChainSafe/gossamer-babe/lib/common"
	"github.com/ChainSafe/gossamer-babe/lib/crypto/sr25519"
	"github.com/ChainSafe/gossamer-babe/lib/keystore"
)

func newTestKeyring(t *testing.T) *keystore.Sr25519Keyring {
	t.Helper()
	kr, err := keystore.NewSr25519Keyring()
	require.NoError(t, err)
	return kr
}

func newTestAuthorities(keys ...*sr25519.Keypair) types.Authorities {
	authorities := make(types.Authorities, len(keys))
	for i, kp := range keys {
		authorities[i] = kp.Public().Encode()
	}
	return authorities
}

func newTestDatabase(t *testing.T) database.Database {
	t.Helper()
	db, err := database.NewPebble(t.TempDir(), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		err := db.Close()
		require.NoError(t, err)
	})
	return db
}

// newTestHeader returns an unsealed header with a pre-runtime digest.
func newTestHeader(parentHash common.Hash, number uint) *types.Header {
	digest := types.NewDigest(&types.PreRuntimeDigest{
		ConsensusEngineID: types.BabeEngineID,
		Data:              []byte{1, 2, 3},
	})
	return types.NewHeader(parentHash, common.Hash{byte(number)}, common.Hash{}, number, digest)
}

// newTestClaim claims the slot as the only authority with the maximum threshold.
func newTestClaim(t *testing.T, kp *sr25519.Keypair, params TranscriptParams, slot uint64) *SlotClaim {
	t.Helper()
	claim, err := claimSlot(params, slot, newTestAuthorities(kp), kp, math.MaxUint64)
	require.NoError(t, err)
	require.NotNil(t, claim)
	return claim
}

func newTestSeal(t *testing.T, kp *sr25519.Keypair, preHash common.Hash,
	slot uint64, claim *SlotClaim) *BabeSeal {
	t.Helper()
	message, err := sealSigningMessage(slot, preHash, claim.Proof)
	require.NoError(t, err)

	signature, err := kp.Sign(message)
	require.NoError(t, err)

	return &BabeSeal{
		VrfOutput:  claim.Output,
		VrfProof:   claim.Proof,
		Signature:  signature,
		Signer:     kp.Public().Encode(),
		SlotNumber: slot,
	}
}

// sealTestHeader returns a copy of the header sealed by the keypair at the slot.
func sealTestHeader(t *testing.T, kp *sr25519.Keypair, header *types.Header,
	params TranscriptParams, slot uint64) *types.Header {
	t.Helper()
	claim := newTestClaim(t, kp, params, slot)
	return sealTestHeaderWithClaim(t, kp, header, slot, claim)
}

func sealTestHeaderWithClaim(t *testing.T, kp *sr25519.Keypair, header *types.Header,
	slot uint64, claim *SlotClaim) *types.Header {
	t.Helper()
	seal := newTestSeal(t, kp, header.Hash(), slot, claim)
	encoded, err := seal.Encode()
	require.NoError(t, err)

	sealed := header.DeepCopy()
	sealed.Digest.Push(NewSealDigest(encoded))
	return sealed
}
