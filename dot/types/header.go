// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/ChainSafe/gossamer-babe/lib/common"
)

// Header is a state block header
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         uint        `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         Digest      `json:"digest"`
}

// NewHeader creates a new block header
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint, digest Digest) *Header {
	return &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

// DeepCopy returns a deep copy of the header to prevent side effects down the road.
// Digest items are shared with the original header since they are never
// modified once created.
func (bh *Header) DeepCopy() *Header {
	cp := *bh
	if bh.Digest != nil {
		cp.Digest = make(Digest, len(bh.Digest))
		copy(cp.Digest, bh.Digest)
	}
	return &cp
}

// String returns the formatted header as a string
func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v Hash=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest, bh.Hash())
}

// Hash returns the blake2b hash of the SCALE encoded header.
// The hash is computed on every call since the digest may be
// modified while checking the header seal.
// If hashing the header errors, this will panic.
func (bh *Header) Hash() common.Hash {
	return common.MustBlake2bHash(bh.MustEncode())
}

// Encode returns the SCALE encoding of a header
func (bh *Header) Encode() ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	encoder := scale.NewEncoder(buffer)

	_, err := buffer.Write(bh.ParentHash[:])
	if err != nil {
		return nil, err
	}

	err = encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(bh.Number)))
	if err != nil {
		return nil, fmt.Errorf("encoding number: %w", err)
	}

	_, err = buffer.Write(bh.StateRoot[:])
	if err != nil {
		return nil, err
	}

	_, err = buffer.Write(bh.ExtrinsicsRoot[:])
	if err != nil {
		return nil, err
	}

	digest, err := bh.Digest.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding digest: %w", err)
	}

	_, err = buffer.Write(digest)
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// MustEncode returns the SCALE encoded header and panics if it fails to encode
func (bh *Header) MustEncode() []byte {
	enc, err := bh.Encode()
	if err != nil {
		panic(err)
	}
	return enc
}

// DecodeHeader decodes a SCALE encoded header from the reader.
func DecodeHeader(r io.Reader) (*Header, error) {
	var (
		bh  Header
		err error
	)

	bh.ParentHash, err = common.ReadHash(r)
	if err != nil {
		return nil, fmt.Errorf("reading parent hash: %w", err)
	}

	number, err := scale.NewDecoder(r).DecodeUintCompact()
	if err != nil {
		return nil, fmt.Errorf("decoding number: %w", err)
	}
	bh.Number = uint(number.Uint64())

	bh.StateRoot, err = common.ReadHash(r)
	if err != nil {
		return nil, fmt.Errorf("reading state root: %w", err)
	}

	bh.ExtrinsicsRoot, err = common.ReadHash(r)
	if err != nil {
		return nil, fmt.Errorf("reading extrinsics root: %w", err)
	}

	bh.Digest, err = DecodeDigest(r)
	if err != nil {
		return nil, fmt.Errorf("decoding digest: %w", err)
	}

	return &bh, nil
}
