// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/internal/database"
	"github.com/ChainSafe/gossamer-babe/lib/common"
)

var babeConfigurationKey = []byte("babe_configuration")

// GetOrComputeConfiguration returns the BABE configuration stored in the aux table,
// fetching it from the runtime at the given block and storing it if missing.
func GetOrComputeConfiguration(aux database.Table, api RuntimeAPI,
	at common.Hash) (*types.BabeConfiguration, error) {
	encoded, err := aux.Get(babeConfigurationKey)
	switch {
	case err == nil:
		cfg := new(types.BabeConfiguration)
		err = scale.NewDecoder(bytes.NewReader(encoded)).Decode(cfg)
		if err != nil {
			return nil, fmt.Errorf("decoding stored babe configuration: %w", err)
		}
		return cfg, nil
	case !errors.Is(err, database.ErrNotFound):
		return nil, fmt.Errorf("reading babe configuration: %w", err)
	}

	logger.Tracef("getting babe configuration from runtime at block %s", at)

	cfg, err := api.BabeConfiguration(at)
	if err != nil {
		return nil, fmt.Errorf("getting babe configuration from runtime: %w", err)
	}

	encoded, err = encode(*cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding babe configuration: %w", err)
	}

	err = aux.Put(babeConfigurationKey, encoded)
	if err != nil {
		return nil, fmt.Errorf("storing babe configuration: %w", err)
	}

	return cfg, nil
}

func runtimeDefaults(slotDuration time.Duration, threshold uint64,
	runtime *types.BabeConfiguration) (time.Duration, uint64) {
	if slotDuration == 0 {
		slotDuration = time.Duration(runtime.SlotDuration) * time.Millisecond
	}
	if threshold == 0 {
		threshold = runtime.Threshold
	}
	return slotDuration, threshold
}
