// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

//go:generate mockgen -destination=mocks_test.go -package $GOPACKAGE github.com/ChainSafe/gossamer-babe/lib/babe BlockState,RuntimeAPI,ProposerFactory,BlockImporter,SyncOracle
