// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ChainSafe/gossamer-babe/config"
	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/internal/log"
	"github.com/ChainSafe/gossamer-babe/lib/common"
	"github.com/ChainSafe/gossamer-babe/lib/crypto/sr25519"
	"github.com/ChainSafe/gossamer-babe/lib/keystore"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "babe"))

var errServiceStopped = errors.New("service already stopped")

// Service authors blocks in the slots the local authority wins.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Chain interfaces
	blockState      BlockState
	authorities     AuthorityFetcher
	proposerFactory ProposerFactory
	blockImport     BlockImporter
	syncOracle      SyncOracle
	observer        Observer

	// BABE authority keypair
	keypair *sr25519.Keypair

	clock          clock.Clock
	slotClock      *slotClock
	ticker         *slotTicker
	sealCodec      *SealCodec
	transcript     TranscriptParams
	threshold      uint64
	forceAuthoring bool

	// State variables
	sync.Mutex
	started bool
	pause   chan struct{}
}

// ServiceConfig represents a BABE configuration
type ServiceConfig struct {
	BlockState      BlockState
	Authorities     AuthorityFetcher
	ProposerFactory ProposerFactory
	BlockImport     BlockImporter
	SyncOracle      SyncOracle
	Observer        Observer
	// Registerer, when Observer is nil, adds prometheus counters to the
	// default logging observer.
	Registerer      prometheus.Registerer
	Keypair         *sr25519.Keypair
	Clock           clock.Clock
	SlotDuration    time.Duration
	Threshold       uint64
	ForceAuthoring  bool
	Transcript      TranscriptParams
	SealSelfCheck   SelfCheckPolicy
}

// NewServiceConfig maps the babe configuration onto a ServiceConfig.
// Chain interfaces must be set on the returned configuration.
func NewServiceConfig(cfg *config.Config) (*ServiceConfig, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	if l, ok := logger.(*log.Logger); ok {
		l.Patch(log.SetLevel(level))
	}

	babeCfg := cfg.BABE
	serviceCfg := &ServiceConfig{
		SlotDuration:   time.Duration(babeCfg.SlotDuration) * time.Millisecond,
		Threshold:      babeCfg.Threshold,
		ForceAuthoring: babeCfg.ForceAuthoring,
	}

	if babeCfg.Authority {
		serviceCfg.Keypair, err = keystore.LoadKeypair(babeCfg.Key)
		if err != nil {
			return nil, fmt.Errorf("loading babe key: %w", err)
		}
	}

	if babeCfg.ThresholdDenominator != 0 {
		serviceCfg.Threshold, err = ThresholdFromRatio(babeCfg.ThresholdNumerator, babeCfg.ThresholdDenominator)
		if err != nil {
			return nil, err
		}
	}

	serviceCfg.SealSelfCheck, err = ParseSelfCheckPolicy(babeCfg.SealSelfCheck)
	if err != nil {
		return nil, err
	}

	serviceCfg.Transcript.Epoch = babeCfg.Epoch
	if babeCfg.Randomness != "" {
		serviceCfg.Transcript.Randomness, err = common.HexToBytes(babeCfg.Randomness)
		if err != nil {
			return nil, fmt.Errorf("decoding randomness: %w", err)
		}
	}
	if babeCfg.GenesisHash != "" {
		serviceCfg.Transcript.GenesisHash, err = common.HexToBytes(babeCfg.GenesisHash)
		if err != nil {
			return nil, fmt.Errorf("decoding genesis hash: %w", err)
		}
	}

	return serviceCfg, nil
}

// ApplyRuntime fills the slot duration and threshold left unset
// with the values of the runtime BABE configuration.
func (c *ServiceConfig) ApplyRuntime(runtime *types.BabeConfiguration) {
	c.SlotDuration, c.Threshold = runtimeDefaults(c.SlotDuration, c.Threshold, runtime)
}

// NewService returns a new Babe Service using the provided VRF keys
func NewService(cfg *ServiceConfig) (*Service, error) {
	if cfg.Keypair == nil {
		return nil, fmt.Errorf("%w: no keypair provided", ErrNotAuthority)
	}

	if cfg.BlockState == nil {
		return nil, errNilBlockState
	}

	if cfg.Authorities == nil {
		return nil, errNilAuthorityFetcher
	}

	if cfg.ProposerFactory == nil {
		return nil, errNilProposerFactory
	}

	if cfg.BlockImport == nil {
		return nil, errNilBlockImporter
	}

	if cfg.SyncOracle == nil {
		return nil, errNilSyncOracle
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	slotClock, err := newSlotClock(clk, cfg.SlotDuration)
	if err != nil {
		return nil, err
	}

	observer := cfg.Observer
	if observer == nil {
		observer, err = newDefaultObserver(cfg.Registerer)
		if err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	babeService := &Service{
		ctx:             ctx,
		cancel:          cancel,
		blockState:      cfg.BlockState,
		authorities:     cfg.Authorities,
		proposerFactory: cfg.ProposerFactory,
		blockImport:     cfg.BlockImport,
		syncOracle:      cfg.SyncOracle,
		observer:        observer,
		keypair:         cfg.Keypair,
		clock:           clk,
		slotClock:       slotClock,
		ticker:          newSlotTicker(slotClock),
		sealCodec:       NewSealCodec(cfg.SealSelfCheck),
		transcript:      cfg.Transcript,
		threshold:       cfg.Threshold,
		forceAuthoring:  cfg.ForceAuthoring,
		pause:           make(chan struct{}),
	}

	logger.Debugf("created service with authority %s, slot duration %s, threshold %d and seal self check %s",
		cfg.Keypair.Public().Hex(), cfg.SlotDuration, cfg.Threshold, cfg.SealSelfCheck)

	if cfg.Transcript.IsPlaceholder() {
		logger.Warn("using placeholder VRF transcript parameters: empty randomness, empty genesis hash and epoch 0")
	}

	return babeService, nil
}

// Start starts BABE block authoring
func (b *Service) Start() error {
	b.Lock()
	defer b.Unlock()

	if b.IsStopped() {
		return errServiceStopped
	}

	if b.started {
		return nil
	}
	b.started = true

	b.wg.Add(1)
	go b.run(b.pause)
	return nil
}

// SlotDuration returns the current service slot duration in milliseconds
func (b *Service) SlotDuration() uint64 {
	return uint64(b.slotClock.duration.Milliseconds())
}

// Pause pauses the service ie. halts block production
func (b *Service) Pause() error {
	b.Lock()
	defer b.Unlock()

	if b.IsPaused() {
		return nil
	}

	close(b.pause)
	b.wg.Wait()
	logger.Info("service paused")
	return nil
}

// Resume resumes the service ie. resumes block production
func (b *Service) Resume() error {
	b.Lock()
	defer b.Unlock()

	if b.IsStopped() {
		return errServiceStopped
	}

	if !b.IsPaused() {
		return nil
	}

	b.pause = make(chan struct{})
	if b.started {
		b.wg.Add(1)
		go b.run(b.pause)
	}

	logger.Info("service resumed")
	return nil
}

// IsPaused returns if the service is paused or not (ie. producing blocks)
func (b *Service) IsPaused() bool {
	select {
	case <-b.pause:
		return true
	default:
		return false
	}
}

// Stop stops the service. If stop is called, it cannot be resumed.
func (b *Service) Stop() error {
	b.Lock()
	defer b.Unlock()

	if b.ctx.Err() != nil {
		return errServiceStopped
	}

	b.cancel()
	b.wg.Wait()
	return nil
}

// IsStopped returns true if the service is stopped (ie not producing blocks)
func (b *Service) IsStopped() bool {
	return b.ctx.Err() != nil
}

func (b *Service) run(pause <-chan struct{}) {
	defer b.wg.Done()

	for {
		slot, err := b.ticker.next(b.ctx, pause)
		if err != nil {
			logger.Debugf("stopping block authoring: %s", err)
			return
		}

		logger.Debugf("starting %s", slot)

		err = b.handleSlot(b.ctx, slot)
		if err != nil {
			logger.Warnf("failed to handle slot %d: %s", slot.Number, err)
		}
	}
}

// handleSlot attempts to author a block in the slot. Reasons not to author
// are logged and nil is returned.
func (b *Service) handleSlot(ctx context.Context, slot SlotInfo) error {
	parentHeader, err := b.blockState.BestBlockHeader()
	if err != nil {
		logger.Warnf("unable to author block in slot %d: no best block header: %s", slot.Number, err)
		b.observer.SlotSkipped(slot.Number, SkipNoChainHead)
		return nil
	}

	// there is a chance that the best block header may change in the course of building the block,
	// so let's copy it first.
	parent := parentHeader.DeepCopy()
	parentHash := parent.Hash()

	authorities, err := b.authorities.Authorities(parentHash)
	if err != nil {
		logger.Warnf("unable to author block in slot %d: no authorities at block %s: %s",
			slot.Number, parentHash, err)
		b.observer.SlotSkipped(slot.Number, SkipNoAuthorities)
		return nil
	}

	if !b.forceAuthoring && b.syncOracle.IsOffline() && len(authorities) > 1 {
		logger.Debugf("skipping proposal slot %d: node is offline", slot.Number)
		b.observer.SlotSkipped(slot.Number, SkipOffline)
		return nil
	}

	claim, err := claimSlot(b.transcript, slot.Number, authorities, b.keypair, b.threshold)
	if err != nil {
		return fmt.Errorf("claiming slot %d: %w", slot.Number, err)
	}
	if claim == nil {
		logger.Tracef("not authorized to produce a block in slot %d", slot.Number)
		return nil
	}

	b.observer.SlotClaimed(slot.Number)
	logger.Debugf("starting authorship at slot %d with parent %s", slot.Number, parentHash)

	proposer, err := b.proposerFactory.InitProposer(parent, authorities)
	if err != nil {
		logger.Warnf("unable to author block in slot %d: failed to create proposer: %s", slot.Number, err)
		b.observer.SlotSkipped(slot.Number, SkipNoProposer)
		return nil
	}

	block, err := b.propose(ctx, proposer, slot)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		b.observer.ProposalDiscarded(slot.Number, err)
		return nil
	}

	if currentSlot := b.slotClock.currentSlot(); currentSlot > slot.Number {
		b.observer.ProposalDiscarded(slot.Number,
			fmt.Errorf("%w: slot %d ended, now at slot %d", errSlotElapsed, slot.Number, currentSlot))
		return nil
	}

	if block.Header.ParentHash != parentHash {
		b.observer.ProposalDiscarded(slot.Number,
			fmt.Errorf("%w: proposed block has parent %s instead of %s",
				errChainReorged, block.Header.ParentHash, parentHash))
		return nil
	}

	params, err := b.seal(block, slot.Number, claim)
	if err != nil {
		if errors.Is(err, ErrSealRoundTrip) {
			logger.Critical(err.Error())
		}
		return fmt.Errorf("sealing block for slot %d: %w", slot.Number, err)
	}

	sealed := params.SealedHeader()
	hash := sealed.Hash()
	logger.Infof("pre-sealed block at slot %d with number %d, hash %s and parent %s",
		slot.Number, sealed.Number, hash, parentHash)

	err = b.blockImport.ImportBlock(params)
	if err != nil {
		logger.Warnf("error importing block %s: %s", hash, err)
		return fmt.Errorf("%w: block %s: %s", ErrClientImport, hash, err)
	}

	b.observer.BlockAuthored(slot.Number, hash, sealed.Number)
	return nil
}
