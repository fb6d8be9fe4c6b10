// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ChainSafe/gossamer-babe/config"
	"github.com/ChainSafe/gossamer-babe/internal/database"
	"github.com/ChainSafe/gossamer-babe/internal/log"
	"github.com/ChainSafe/gossamer-babe/lib/babe"
)

const (
	databaseDir = "db"
	auxPrefix   = "babe_aux/"
)

// setLogLevels applies the configured log levels. The global level is
// applied first so package levels take precedence.
func setLogLevels(cfg *config.Config) error {
	globalLevel, err := cfg.GlobalLogLevel()
	if err != nil {
		return err
	}
	log.Patch(log.SetLevel(globalLevel))

	databaseLevel, err := cfg.DatabaseLogLevel()
	if err != nil {
		return err
	}
	database.SetLogLevel(databaseLevel)
	return nil
}

// createDatabase opens the node database under the base path.
func createDatabase(cfg *config.Config) (*database.PebbleDB, error) {
	path := filepath.Join(expandDir(cfg.Global.BasePath), databaseDir)
	logger.Debugf("creating database at %s (in memory: %t)", path, cfg.Database.InMemory)

	db, err := database.NewPebble(path, cfg.Database.InMemory)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}
	return db, nil
}

// createBABEService creates the block authoring service.
func createBABEService(serviceCfg *babe.ServiceConfig, chain ChainState,
	authorities babe.AuthorityFetcher, registerer prometheus.Registerer) (*babe.Service, error) {
	logger.Info("creating BABE service...")

	serviceCfg.BlockState = chain.BlockState
	serviceCfg.Authorities = authorities
	serviceCfg.ProposerFactory = chain.ProposerFactory
	serviceCfg.BlockImport = chain.BlockImport
	serviceCfg.SyncOracle = chain.SyncOracle
	serviceCfg.Registerer = registerer

	service, err := babe.NewService(serviceCfg)
	if err != nil {
		logger.Errorf("failed to initialise BABE service: %s", err)
		return nil, err
	}
	return service, nil
}

// createVerifier creates the header verifier, tracking equivocations in db.
func createVerifier(verifierCfg babe.VerifierConfig, db database.Database, chain ChainState,
	authorities babe.AuthorityFetcher, registerer prometheus.Registerer) (*babe.Verifier, error) {
	verifierCfg.Authorities = authorities
	verifierCfg.Tracker = babe.NewAuxEquivocationTracker(db)
	verifierCfg.InherentChecker = chain.InherentChecker
	verifierCfg.Registerer = registerer

	verifier, err := babe.NewVerifier(verifierCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create BABE verifier: %w", err)
	}
	return verifier, nil
}
