// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	// Timstap0 is the timestamp inherent key.
	Timstap0 = [8]byte{'t', 'i', 'm', 's', 't', 'a', 'p', '0'}
	// Babeslot is the BABE slot inherent key.
	Babeslot = [8]byte{'b', 'a', 'b', 'e', 's', 'l', 'o', 't'}
)

var (
	ErrInherentNotFound     = errors.New("inherent not found")
	ErrInherentValueInvalid = errors.New("inherent value is invalid")
)

// InherentData contains a mapping of inherent keys to values.
// Keys are 8 bytes and values are SCALE encoded.
type InherentData struct {
	data map[[8]byte][]byte
}

// NewInherentData returns an empty InherentData
func NewInherentData() *InherentData {
	return &InherentData{
		data: make(map[[8]byte][]byte),
	}
}

func (d *InherentData) String() string {
	keys := d.sortedKeys()
	entries := make([]string, len(keys))
	for i, k := range keys {
		entries[i] = fmt.Sprintf("%s=0x%x", k[:], d.data[k])
	}
	return strings.Join(entries, " ")
}

// SetUint64Inherent sets an inherent of type uint64,
// overriding any existing value for the key.
func (d *InherentData) SetUint64Inherent(key [8]byte, value uint64) {
	encoded := make([]byte, 8)
	binary.LittleEndian.PutUint64(encoded, value)
	d.data[key] = encoded
}

// Uint64Inherent returns the uint64 inherent value for the key.
func (d *InherentData) Uint64Inherent(key [8]byte) (uint64, error) {
	encoded, ok := d.data[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInherentNotFound, key[:])
	}

	if len(encoded) != 8 {
		return 0, fmt.Errorf("%w: %s has %d bytes",
			ErrInherentValueInvalid, key[:], len(encoded))
	}

	return binary.LittleEndian.Uint64(encoded), nil
}

// Clone returns a copy of the inherent data.
func (d *InherentData) Clone() *InherentData {
	cp := NewInherentData()
	for k, v := range d.data {
		value := make([]byte, len(v))
		copy(value, v)
		cp.data[k] = value
	}
	return cp
}

// Encode SCALE encodes the inherent data as an ordered map
// of keys to byte vectors.
func (d *InherentData) Encode() ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	encoder := scale.NewEncoder(buffer)

	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(d.data))))
	if err != nil {
		return nil, err
	}

	for _, k := range d.sortedKeys() {
		_, err = buffer.Write(k[:])
		if err != nil {
			return nil, err
		}

		err = encoder.Encode(d.data[k])
		if err != nil {
			return nil, fmt.Errorf("encoding value for %s: %w", k[:], err)
		}
	}

	return buffer.Bytes(), nil
}

func (d *InherentData) sortedKeys() [][8]byte {
	keys := make([][8]byte, 0, len(d.data))
	for k := range d.data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})
	return keys
}
