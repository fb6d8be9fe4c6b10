// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ChainSafe/gossamer-babe/config"
	"github.com/ChainSafe/gossamer-babe/internal/database"
	"github.com/ChainSafe/gossamer-babe/internal/log"
	"github.com/ChainSafe/gossamer-babe/internal/metrics"
	"github.com/ChainSafe/gossamer-babe/lib/babe"
	"github.com/ChainSafe/gossamer-babe/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// ChainState holds the chain collaborators the node runs on.
type ChainState struct {
	// GenesisHash is the block the runtime BABE configuration is read at.
	GenesisHash     common.Hash
	Runtime         babe.RuntimeAPI
	BlockState      babe.BlockState
	ProposerFactory babe.ProposerFactory
	BlockImport     babe.BlockImporter
	SyncOracle      babe.SyncOracle
	InherentChecker babe.InherentChecker
}

// Node is a BABE node: a header verifier, a block authoring service if the
// node is an authority, the node database and the metrics server.
type Node struct {
	verifier      *babe.Verifier
	service       *babe.Service
	db            database.Database
	registry      *prometheus.Registry
	metricsServer *metrics.Server

	mutex   sync.Mutex
	stopped bool
}

// NewNode creates the node database and services from the configuration.
func NewNode(cfg *config.Config, chain ChainState) (node *Node, err error) {
	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if chain.Runtime == nil {
		return nil, ErrNilRuntime
	}

	err = setLogLevels(cfg)
	if err != nil {
		return nil, err
	}

	db, err := createDatabase(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err == nil {
			return
		}
		closeErr := db.Close()
		if closeErr != nil {
			logger.Errorf("failed to close database: %s", closeErr)
		}
	}()

	runtimeCfg, err := babe.GetOrComputeConfiguration(database.NewTable(db, auxPrefix),
		chain.Runtime, chain.GenesisHash)
	if err != nil {
		return nil, err
	}
	logger.Debugf("runtime babe configuration: slot duration %dms, threshold %d",
		runtimeCfg.SlotDuration, runtimeCfg.Threshold)

	authorities, err := babe.NewCachingAuthorityFetcher(chain.Runtime, babe.DefaultAuthorityCacheSize)
	if err != nil {
		return nil, err
	}

	serviceCfg, err := babe.NewServiceConfig(cfg)
	if err != nil {
		return nil, err
	}

	verifierCfg := babe.VerifierConfig{
		Transcript:   serviceCfg.Transcript,
		Threshold:    serviceCfg.Threshold,
		SlotDuration: serviceCfg.SlotDuration,
	}
	verifierCfg.ApplyRuntime(runtimeCfg)
	serviceCfg.ApplyRuntime(runtimeCfg)

	registry := prometheus.NewRegistry()

	verifier, err := createVerifier(verifierCfg, db, chain, authorities, registry)
	if err != nil {
		return nil, err
	}

	node = &Node{
		verifier: verifier,
		db:       db,
		registry: registry,
	}

	if cfg.BABE.Authority {
		node.service, err = createBABEService(serviceCfg, chain, authorities, registry)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Metrics.Publish {
		node.metricsServer = metrics.NewServer(cfg.Metrics.Address, registry)
	}

	return node, nil
}

// Verifier returns the header verifier.
func (n *Node) Verifier() *babe.Verifier {
	return n.verifier
}

// Service returns the block authoring service, or nil if the node is not
// an authority.
func (n *Node) Service() *babe.Service {
	return n.service
}

// Registry returns the prometheus registry holding the node metrics.
func (n *Node) Registry() *prometheus.Registry {
	return n.registry
}

// MetricsAddress returns the address the metrics server listens on, or
// the empty string if metrics are not published or not started.
func (n *Node) MetricsAddress() string {
	if n.metricsServer == nil {
		return ""
	}
	return n.metricsServer.Address()
}

// Start starts the metrics server and block authoring.
func (n *Node) Start() error {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	if n.stopped {
		return errNodeStopped
	}

	if n.metricsServer != nil {
		err := n.metricsServer.Start()
		if err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
	}

	if n.service != nil {
		err := n.service.Start()
		if err != nil {
			return fmt.Errorf("starting BABE service: %w", err)
		}
	}

	logger.Info("node started")
	return nil
}

// Stop stops block authoring and the metrics server, and closes the database.
func (n *Node) Stop() error {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	if n.stopped {
		return errNodeStopped
	}
	n.stopped = true

	if n.service != nil {
		err := n.service.Stop()
		if err != nil {
			logger.Warnf("failed to stop BABE service: %s", err)
		}
	}

	if n.metricsServer != nil && n.metricsServer.Address() != "" {
		err := n.metricsServer.Stop()
		if err != nil {
			logger.Warnf("failed to stop metrics server: %s", err)
		}
	}

	err := n.db.Close()
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}

	logger.Info("node stopped")
	return nil
}
