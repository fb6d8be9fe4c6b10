// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"strings"

	"github.com/ChainSafe/gossamer-babe/lib/common"
)

// AuthorityID is a BABE authority identifier: the 32 bytes
// sr25519 public key of the authority.
type AuthorityID [32]byte

// String returns the 0x prefixed hex encoding of the authority id.
func (a AuthorityID) String() string {
	return common.BytesToHex(a[:])
}

// Authorities is an ordered BABE authority set.
type Authorities []AuthorityID

// IndexOf returns the position of the authority in the set, and false
// if it is not part of the set.
func (a Authorities) IndexOf(id AuthorityID) (index int, ok bool) {
	for i := range a {
		if a[i] == id {
			return i, true
		}
	}
	return 0, false
}

// Contains returns true if the authority is part of the set.
func (a Authorities) Contains(id AuthorityID) bool {
	_, ok := a.IndexOf(id)
	return ok
}

// Copy returns a copy of the authority set.
func (a Authorities) Copy() Authorities {
	if a == nil {
		return nil
	}
	cp := make(Authorities, len(a))
	copy(cp, a)
	return cp
}

func (a Authorities) String() string {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].String()
	}
	return "[" + strings.Join(ids, ", ") + "]"
}
