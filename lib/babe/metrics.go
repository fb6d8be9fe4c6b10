// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ChainSafe/gossamer-babe/lib/common"
)

const metricsNamespace = "gossamer_babe"

const (
	verificationAccepted     = "accepted"
	verificationDeferred     = "deferred"
	verificationRejected     = "rejected"
	verificationEquivocation = "equivocation"
)

// Metrics is an Observer counting events with prometheus counters.
type Metrics struct {
	slotsSkipped       *prometheus.CounterVec
	slotsClaimed       prometheus.Counter
	proposalsDiscarded prometheus.Counter
	blocksAuthored     prometheus.Counter
	headersVerified    *prometheus.CounterVec
}

var _ Observer = (*Metrics)(nil)

// NewMetrics creates the BABE counters and registers them on the registerer.
// Counters already registered are reused.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		slotsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "slots_skipped_total",
			Help:      "slots skipped by the slot worker, by reason",
		}, []string{"reason"}),
		slotsClaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "slots_claimed_total",
			Help:      "slots claimed by the local authority",
		}),
		proposalsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "proposals_discarded_total",
			Help:      "block proposals discarded before import",
		}),
		blocksAuthored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "blocks_authored_total",
			Help:      "blocks sealed and imported by the local authority",
		}),
		headersVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "headers_verified_total",
			Help:      "headers checked by the verifier, by result",
		}, []string{"result"}),
	}

	var err error
	metrics.slotsSkipped, err = registerCounterVec(registerer, "slots skipped", metrics.slotsSkipped)
	if err != nil {
		return nil, err
	}

	metrics.headersVerified, err = registerCounterVec(registerer, "headers verified", metrics.headersVerified)
	if err != nil {
		return nil, err
	}

	collectorsToRegister := map[string]*prometheus.Counter{
		"slots claimed":       &metrics.slotsClaimed,
		"proposals discarded": &metrics.proposalsDiscarded,
		"blocks authored":     &metrics.blocksAuthored,
	}
	for name, counter := range collectorsToRegister {
		err = registerer.Register(*counter)
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			*counter = alreadyRegistered.ExistingCollector.(prometheus.Counter)
		} else if err != nil {
			return nil, fmt.Errorf("cannot register %s counter: %w", name, err)
		}
	}

	return metrics, nil
}

func registerCounterVec(registerer prometheus.Registerer, name string,
	counter *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := registerer.Register(counter)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		return alreadyRegistered.ExistingCollector.(*prometheus.CounterVec), nil
	} else if err != nil {
		return nil, fmt.Errorf("cannot register %s counter: %w", name, err)
	}
	return counter, nil
}

// newDefaultObserver returns the logging observer, counting events with
// prometheus counters as well when a registerer is given.
func newDefaultObserver(registerer prometheus.Registerer) (Observer, error) {
	logObserver := NewLogObserver(logger)
	if registerer == nil {
		return logObserver, nil
	}

	metrics, err := NewMetrics(registerer)
	if err != nil {
		return nil, err
	}
	return Observers{logObserver, metrics}, nil
}

func (m *Metrics) SlotSkipped(_ uint64, reason SkipReason) {
	m.slotsSkipped.WithLabelValues(reason.String()).Inc()
}

func (m *Metrics) SlotClaimed(uint64) {
	m.slotsClaimed.Inc()
}

func (m *Metrics) ProposalDiscarded(uint64, error) {
	m.proposalsDiscarded.Inc()
}

func (m *Metrics) BlockAuthored(uint64, common.Hash, uint) {
	m.blocksAuthored.Inc()
}

func (m *Metrics) HeaderVerified(_ common.Hash, _ uint64, err error) {
	result := verificationAccepted
	if errors.Is(err, ErrProducerEquivocated) {
		result = verificationEquivocation
	} else if err != nil {
		result = verificationRejected
	}
	m.headersVerified.WithLabelValues(result).Inc()
}

func (m *Metrics) HeaderDeferred(common.Hash, uint64) {
	m.headersVerified.WithLabelValues(verificationDeferred).Inc()
}
