// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import "errors"

var (
	// ErrNilRuntime is returned when no runtime API is given to the node.
	ErrNilRuntime = errors.New("cannot have nil runtime API")

	errNodeStopped = errors.New("node already stopped")
)
