// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package database

import (
	"bytes"
)

type table struct {
	db     Database
	prefix []byte
}

var _ Table = (*table)(nil)

// NewTable returns a view of the database where
// every key is prefixed with the given prefix.
func NewTable(db Database, prefix string) Table {
	return &table{
		db:     db,
		prefix: []byte(prefix),
	}
}

func (t *table) Path() string {
	return string(t.prefix)
}

func (t *table) Get(key []byte) ([]byte, error) {
	return t.db.Get(t.key(key))
}

func (t *table) Has(key []byte) (bool, error) {
	return t.db.Has(t.key(key))
}

func (t *table) Put(key, value []byte) error {
	return t.db.Put(t.key(key), value)
}

func (t *table) Del(key []byte) error {
	return t.db.Del(t.key(key))
}

func (t *table) Flush() error {
	return t.db.Flush()
}

func (t *table) NewBatch() Batch {
	return &tableBatch{
		batch:  t.db.NewBatch(),
		prefix: t.prefix,
	}
}

func (t *table) key(key []byte) []byte {
	return bytes.Join([][]byte{t.prefix, key}, nil)
}

type tableBatch struct {
	batch  Batch
	prefix []byte
}

var _ Batch = (*tableBatch)(nil)

func (tb *tableBatch) Put(key, value []byte) error {
	return tb.batch.Put(bytes.Join([][]byte{tb.prefix, key}, nil), value)
}

func (tb *tableBatch) Del(key []byte) error {
	return tb.batch.Del(bytes.Join([][]byte{tb.prefix, key}, nil))
}

func (tb *tableBatch) Flush() error {
	return tb.batch.Flush()
}

func (tb *tableBatch) ValueSize() int {
	return tb.batch.ValueSize()
}

func (tb *tableBatch) Reset() {
	tb.batch.Reset()
}

func (tb *tableBatch) Close() error {
	return tb.batch.Close()
}
