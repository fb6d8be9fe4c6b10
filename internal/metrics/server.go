// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ChainSafe/gossamer-babe/internal/log"
)

const (
	// DefaultAddress is the default listening address of the metrics server.
	DefaultAddress = "localhost:9876"

	readHeaderTimeout = time.Second
	shutdownTimeout   = 3 * time.Second
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

var errServerNotStarted = errors.New("metrics server not started")

// Server is a metrics http server
type Server struct {
	server  *http.Server
	address string
	done    chan error
}

// NewServer is a constructor for metrics server serving the metrics
// gathered by the gatherer on /metrics.
func NewServer(address string, gatherer prometheus.Gatherer) *Server {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return &Server{
		server: &http.Server{
			Addr:              address,
			Handler:           m,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Start listens on the server address and serves metrics in a goroutine.
func (s *Server) Start() (err error) {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.server.Addr, err)
	}
	s.address = listener.Addr().String()

	logger.Infof("Starting metrics server at http://%s/metrics", s.address)

	s.done = make(chan error, 1)
	go func() {
		err := s.server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()
	return nil
}

// Address returns the address the server listens on, once started.
func (s *Server) Address() string {
	return s.address
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	if s.done == nil {
		return errServerNotStarted
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = s.server.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("shutting down metrics server: %w", err)
	}

	return <-s.done
}
