// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/gossamer-babe/lib/common"
	"github.com/ChainSafe/gossamer-babe/lib/crypto/sr25519"
)

// ErrEmptyKey is returned when no key material is given.
var ErrEmptyKey = errors.New("key is empty")

// LoadKeypair creates a sr25519 keypair from one of:
//   - a development key name such as //Alice
//   - a 0x prefixed 32 bytes hex seed
//   - a bip39 mnemonic phrase
func LoadKeypair(key string) (*sr25519.Keypair, error) {
	key = strings.TrimSpace(key)

	switch {
	case key == "":
		return nil, ErrEmptyKey
	case strings.HasPrefix(key, "//"):
		name := strings.ToLower(strings.TrimPrefix(key, "//"))
		for i, devName := range devNames {
			if devName != name {
				continue
			}
			seed, err := common.HexToBytes(sr25519PrivateKeys[i])
			if err != nil {
				return nil, err
			}
			return sr25519.NewKeypairFromSeed(seed)
		}
		return nil, fmt.Errorf("unknown development key: %s", key)
	case strings.HasPrefix(key, "0x"):
		seed, err := common.HexToBytes(key)
		if err != nil {
			return nil, fmt.Errorf("decoding seed: %w", err)
		}
		return sr25519.NewKeypairFromSeed(seed)
	default:
		kp, err := sr25519.NewKeypairFromMnenomic(key, "")
		if err != nil {
			return nil, fmt.Errorf("loading keypair from mnemonic: %w", err)
		}
		return kp, nil
	}
}
