// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/ChainSafe/gossamer-babe/dot/types"
	"github.com/ChainSafe/gossamer-babe/lib/common"
)

// DefaultAuthorityCacheSize is the number of authority sets kept in memory.
const DefaultAuthorityCacheSize = 128

// CachingAuthorityFetcher caches the authority sets returned by an
// AuthorityFetcher, keyed by block hash.
type CachingAuthorityFetcher struct {
	fetcher AuthorityFetcher
	cache   *lru.ARCCache
}

var _ AuthorityFetcher = (*CachingAuthorityFetcher)(nil)

// NewCachingAuthorityFetcher returns a fetcher caching up to size authority sets.
func NewCachingAuthorityFetcher(fetcher AuthorityFetcher, size int) (*CachingAuthorityFetcher, error) {
	if fetcher == nil {
		return nil, errNilAuthorityFetcher
	}

	cache, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("creating authority cache: %w", err)
	}

	return &CachingAuthorityFetcher{
		fetcher: fetcher,
		cache:   cache,
	}, nil
}

// Authorities returns a copy of the authority set at the block.
func (c *CachingAuthorityFetcher) Authorities(blockHash common.Hash) (types.Authorities, error) {
	if cached, ok := c.cache.Get(blockHash); ok {
		return cached.(types.Authorities).Copy(), nil
	}

	authorities, err := c.fetcher.Authorities(blockHash)
	if err != nil {
		return nil, err
	}

	c.cache.Add(blockHash, authorities.Copy())
	return authorities.Copy(), nil
}
