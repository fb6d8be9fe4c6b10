// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/ChainSafe/gossamer-babe/lib/common"
)

// ErrInvalidDigestItemType is returned when decoding a digest item
// with an unknown type byte.
var ErrInvalidDigestItemType = errors.New("invalid digest item type")

// Digest represents the block digest. It consists of digest items.
type Digest []DigestItem

// NewDigest returns a new Digest from the given DigestItems
func NewDigest(items ...DigestItem) Digest {
	return items
}

// Encode returns the SCALE encoded digest
func (d Digest) Encode() ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	encoder := scale.NewEncoder(buffer)

	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(d))))
	if err != nil {
		return nil, err
	}

	for _, item := range d {
		encItem, err := item.Encode()
		if err != nil {
			return nil, err
		}

		_, err = buffer.Write(encItem)
		if err != nil {
			return nil, err
		}
	}

	return buffer.Bytes(), nil
}

// Pop removes the last digest item and returns it.
// It returns nil if the digest is empty.
func (d *Digest) Pop() DigestItem {
	if len(*d) == 0 {
		return nil
	}

	last := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return last
}

// Push appends the item to the digest.
func (d *Digest) Push(item DigestItem) {
	*d = append(*d, item)
}

// ConsensusEngineID is a 4-character identifier of the consensus engine that produced the digest.
type ConsensusEngineID [4]byte

// ToBytes turns ConsensusEngineID to a byte slice
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

// BabeEngineID is the hard-coded babe ID
var BabeEngineID = ConsensusEngineID{'B', 'A', 'B', 'E'}

const (
	// ChangesTrieRootDigestType is the byte representation of ChangesTrieRootDigest
	ChangesTrieRootDigestType = byte(2)
	// ConsensusDigestType is the byte representation of ConsensusDigest
	ConsensusDigestType = byte(4)
	// SealDigestType is the byte representation of SealDigest
	SealDigestType = byte(5)
	// PreRuntimeDigestType is the byte representation of PreRuntimeDigest
	PreRuntimeDigestType = byte(6)
)

// DecodeDigest decodes the input into a Digest
func DecodeDigest(r io.Reader) (Digest, error) {
	decoder := scale.NewDecoder(r)

	num, err := decoder.DecodeUintCompact()
	if err != nil {
		return nil, fmt.Errorf("could not decode length of digest items: %w", err)
	}

	digest := make(Digest, num.Uint64())
	for i := range digest {
		digest[i], err = DecodeDigestItem(r)
		if err != nil {
			return nil, fmt.Errorf("could not decode digest item %d: %w", i, err)
		}
	}

	return digest, nil
}

// DecodeDigestItem decodes a single SCALE encoded digest item from the reader.
func DecodeDigestItem(r io.Reader) (DigestItem, error) {
	typ, err := scale.NewDecoder(r).ReadOneByte()
	if err != nil {
		return nil, err
	}

	var d DigestItem
	switch typ {
	case ChangesTrieRootDigestType:
		d = new(ChangesTrieRootDigest)
	case PreRuntimeDigestType:
		d = new(PreRuntimeDigest)
	case ConsensusDigestType:
		d = new(ConsensusDigest)
	case SealDigestType:
		d = new(SealDigest)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigestItemType, typ)
	}

	err = d.Decode(r)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DigestItem can be of one of four types of digest: ChangesTrieRootDigest,
// PreRuntimeDigest, ConsensusDigest, or SealDigest.
type DigestItem interface {
	String() string
	Type() byte
	Encode() ([]byte, error)
	// Decode assumes the type byte (first byte) has been removed from the encoding.
	Decode(io.Reader) error
}

// ChangesTrieRootDigest contains the root of the changes trie at a given block, if the runtime supports it.
type ChangesTrieRootDigest struct {
	Hash common.Hash
}

// String returns the digest as a string
func (d *ChangesTrieRootDigest) String() string {
	return fmt.Sprintf("ChangesTrieRootDigest Hash=%s", d.Hash)
}

// Type returns the type
func (*ChangesTrieRootDigest) Type() byte {
	return ChangesTrieRootDigestType
}

// Encode will encode the ChangesTrieRootDigestType into byte array
func (d *ChangesTrieRootDigest) Encode() ([]byte, error) {
	return append([]byte{ChangesTrieRootDigestType}, d.Hash[:]...), nil
}

// Decode will decode into ChangesTrieRootDigest Hash
func (d *ChangesTrieRootDigest) Decode(r io.Reader) (err error) {
	d.Hash, err = common.ReadHash(r)
	return err
}

// PreRuntimeDigest contains messages from the consensus engine to the runtime.
type PreRuntimeDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d *PreRuntimeDigest) String() string {
	return fmt.Sprintf("PreRuntimeDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Type will return PreRuntimeDigestType
func (*PreRuntimeDigest) Type() byte {
	return PreRuntimeDigestType
}

// Encode will encode PreRuntimeDigest ConsensusEngineID and Data
func (d *PreRuntimeDigest) Encode() ([]byte, error) {
	return encodeEngineMessage(PreRuntimeDigestType, d.ConsensusEngineID, d.Data)
}

// Decode will decode PreRuntimeDigest ConsensusEngineID and Data
func (d *PreRuntimeDigest) Decode(r io.Reader) (err error) {
	d.ConsensusEngineID, d.Data, err = decodeEngineMessage(r)
	return err
}

// ConsensusDigest contains messages from the runtime to the consensus engine.
// The BABE block seal is carried as a ConsensusDigest with the BABE engine id.
type ConsensusDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d *ConsensusDigest) String() string {
	return fmt.Sprintf("ConsensusDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Type returns the ConsensusDigest type
func (*ConsensusDigest) Type() byte {
	return ConsensusDigestType
}

// Encode will encode ConsensusDigest ConsensusEngineID and Data
func (d *ConsensusDigest) Encode() ([]byte, error) {
	return encodeEngineMessage(ConsensusDigestType, d.ConsensusEngineID, d.Data)
}

// Decode will decode into ConsensusEngineID and Data
func (d *ConsensusDigest) Decode(r io.Reader) (err error) {
	d.ConsensusEngineID, d.Data, err = decodeEngineMessage(r)
	return err
}

// SealDigest contains the seal or signature. This is only used by native code.
type SealDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d *SealDigest) String() string {
	return fmt.Sprintf("SealDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Type will return SealDigest type
func (*SealDigest) Type() byte {
	return SealDigestType
}

// Encode will encode SealDigest ConsensusEngineID and Data
func (d *SealDigest) Encode() ([]byte, error) {
	return encodeEngineMessage(SealDigestType, d.ConsensusEngineID, d.Data)
}

// Decode will decode into SealDigest ConsensusEngineID and Data
func (d *SealDigest) Decode(r io.Reader) (err error) {
	d.ConsensusEngineID, d.Data, err = decodeEngineMessage(r)
	return err
}

func encodeEngineMessage(typ byte, id ConsensusEngineID, data []byte) ([]byte, error) {
	buffer := bytes.NewBuffer([]byte{typ})
	_, err := buffer.Write(id[:])
	if err != nil {
		return nil, err
	}

	err = scale.NewEncoder(buffer).Encode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding data: %w", err)
	}

	return buffer.Bytes(), nil
}

func decodeEngineMessage(r io.Reader) (id ConsensusEngineID, data []byte, err error) {
	decoder := scale.NewDecoder(r)

	err = decoder.Read(id[:])
	if err != nil {
		return id, nil, fmt.Errorf("reading engine id: %w", err)
	}

	err = decoder.Decode(&data)
	if err != nil {
		return id, nil, fmt.Errorf("decoding data: %w", err)
	}

	return id, data, nil
}
