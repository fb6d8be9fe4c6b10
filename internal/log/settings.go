// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	colour  *bool
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values from other in the receiving settings
// when they are set. Context key values are appended.
func (s *settings) mergeWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.colour != nil {
		value := *other.colour
		s.colour = &value
	}

	s.caller.mergeWith(other.caller)

	for _, otherKV := range other.context {
		found := false
		for i := range s.context {
			if s.context[i].key != otherKV.key {
				continue
			}
			found = true
			s.context[i].values = append(s.context[i].values, otherKV.values...)
			break
		}
		if !found {
			values := make([]string, len(otherKV.values))
			copy(values, otherKV.values)
			s.context = append(s.context, contextKeyValues{
				key:    otherKV.key,
				values: values,
			})
		}
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		value := Info
		s.level = &value
	}

	if s.colour == nil {
		value := false
		s.colour = &value
	}

	s.caller.setDefaults()
}
