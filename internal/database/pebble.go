// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package database

import (
	"errors"
	"fmt"
	"os"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/ChainSafe/gossamer-babe/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "database"))

// SetLogLevel sets the log level of the database package logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

var _ Database = (*PebbleDB)(nil)

// ErrNotFound is returned when a key is not present in the database.
var ErrNotFound = pebble.ErrNotFound

// PebbleDB is a Database backed by pebble.
type PebbleDB struct {
	path string
	db   *pebble.DB
}

// NewPebble opens a pebble database at the given path. If inMemory
// is true, the database is kept in memory and the path is only used
// as an identifier.
func NewPebble(path string, inMemory bool) (*PebbleDB, error) {
	opts := &pebble.Options{}
	if inMemory {
		opts = &pebble.Options{FS: vfs.NewMem()}
	} else {
		if err := os.MkdirAll(path, os.ModePerm); err != nil {
			return nil, err
		}
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("opening pebble db: %w", err)
	}
	logger.Debugf("opened pebble database at %s (in memory: %t)", path, inMemory)

	return &PebbleDB{path: path, db: db}, nil
}

func (p *PebbleDB) Path() string {
	return p.path
}

func (p *PebbleDB) Put(key, value []byte) error {
	err := p.db.Set(key, value, pebble.Sync)
	if err != nil {
		return fmt.Errorf("writing 0x%x with value 0x%x to database: %w",
			key, value, err)
	}
	return nil
}

func (p *PebbleDB) Get(key []byte) (value []byte, err error) {
	value, closer, err := p.db.Get(key)
	if err != nil {
		return nil, fmt.Errorf("getting 0x%x from database: %w", key, err)
	}

	valueCpy := make([]byte, len(value))
	copy(valueCpy, value)

	if err := closer.Close(); err != nil {
		return nil, fmt.Errorf("closing after get: %w", err)
	}

	return valueCpy, nil
}

func (p *PebbleDB) Has(key []byte) (exists bool, err error) {
	_, closer, err := p.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := closer.Close(); err != nil {
		return false, fmt.Errorf("closing after get: %w", err)
	}

	return true, nil
}

func (p *PebbleDB) Del(key []byte) error {
	err := p.db.Delete(key, pebble.Sync)
	if err != nil {
		return fmt.Errorf("deleting 0x%x from database: %w", key, err)
	}

	return nil
}

func (p *PebbleDB) Close() error {
	return p.db.Close()
}

func (p *PebbleDB) Flush() error {
	err := p.db.Flush()
	if err != nil {
		return fmt.Errorf("flushing database: %w", err)
	}

	return nil
}

func (p *PebbleDB) NewBatch() Batch {
	return &pebbleBatch{
		batch: p.db.NewBatch(),
	}
}
