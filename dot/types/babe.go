// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// BabeConfiguration contains the genesis data for BABE
// as returned by the runtime startup call.
type BabeConfiguration struct {
	// SlotDuration is the slot duration in milliseconds.
	SlotDuration uint64
	// ExpectedBlockTime is the expected block time in milliseconds.
	ExpectedBlockTime uint64
	// Threshold is the primary slot leader threshold, out of MaxUint64.
	Threshold uint64
	// SlotsPerEpoch is informational only since epochs are not rotated.
	SlotsPerEpoch uint64
}
