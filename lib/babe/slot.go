// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/ChainSafe/gossamer-babe/dot/types"
)

// SlotInfo holds the data of a slot handed to the slot worker.
type SlotInfo struct {
	Number       uint64
	Timestamp    time.Time
	Duration     time.Duration
	EndsAt       time.Time
	InherentData *types.InherentData
}

func (s SlotInfo) String() string {
	return fmt.Sprintf("slot number %d started at %s, ends at %s",
		s.Number, s.Timestamp.Format(time.RFC3339Nano), s.EndsAt.Format(time.RFC3339Nano))
}

// slotClock converts wall clock time to slot numbers.
type slotClock struct {
	clock    clock.Clock
	duration time.Duration
}

func newSlotClock(c clock.Clock, duration time.Duration) (*slotClock, error) {
	if duration < time.Millisecond {
		return nil, fmt.Errorf("%w: %s", errInvalidSlotDuration, duration)
	}
	return &slotClock{clock: c, duration: duration}, nil
}

func (c *slotClock) slotAt(t time.Time) uint64 {
	return uint64(t.UnixMilli()) / uint64(c.duration.Milliseconds())
}

func (c *slotClock) currentSlot() uint64 {
	return c.slotAt(c.clock.Now())
}

func (c *slotClock) slotStart(slot uint64) time.Time {
	return time.UnixMilli(int64(slot * uint64(c.duration.Milliseconds())))
}

func (c *slotClock) timeUntilNextSlot(now time.Time) time.Duration {
	next := c.slotStart(c.slotAt(now) + 1)
	return next.Sub(now)
}

// inherentData returns the timestamp and babe slot inherents at the given time.
func (c *slotClock) inherentData(now time.Time) *types.InherentData {
	data := types.NewInherentData()
	data.SetUint64Inherent(types.Timstap0, uint64(now.UnixMilli()))
	data.SetUint64Inherent(types.Babeslot, c.slotAt(now))
	return data
}

// slotNow creates the inherent data for the current time and
// reads the timestamp and slot back from it.
func (c *slotClock) slotNow() (timestamp, slot uint64, err error) {
	data := c.inherentData(c.clock.Now())

	timestamp, err = data.Uint64Inherent(types.Timstap0)
	if err != nil {
		return 0, 0, fmt.Errorf("reading timestamp inherent: %w", err)
	}

	slot, err = data.Uint64Inherent(types.Babeslot)
	if err != nil {
		return 0, 0, fmt.Errorf("reading babe slot inherent: %w", err)
	}

	return timestamp, slot, nil
}

// slotTicker yields slots at their start, never yielding the same slot twice.
type slotTicker struct {
	*slotClock
	lastSlot uint64
}

func newSlotTicker(c *slotClock) *slotTicker {
	return &slotTicker{slotClock: c}
}

// next waits for the next slot boundary and returns the slot started.
// It returns the context error if ctx is canceled, or errServicePaused
// if the pause channel is closed.
func (t *slotTicker) next(ctx context.Context, pause <-chan struct{}) (SlotInfo, error) {
	for {
		wait := t.timeUntilNextSlot(t.clock.Now())
		timer := t.clock.Timer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return SlotInfo{}, ctx.Err()
		case <-pause:
			timer.Stop()
			return SlotInfo{}, errServicePaused
		case <-timer.C:
		}

		now := t.clock.Now()
		slot := t.slotAt(now)
		if slot <= t.lastSlot {
			continue
		}
		t.lastSlot = slot

		return SlotInfo{
			Number:       slot,
			Timestamp:    now,
			Duration:     t.duration,
			EndsAt:       t.slotStart(slot + 1),
			InherentData: t.inherentData(now),
		}, nil
	}
}

// remaining returns the time left in the slot, or zero if it ended.
func (c *slotClock) remaining(slot SlotInfo) time.Duration {
	left := slot.EndsAt.Sub(c.clock.Now())
	if left < 0 {
		return 0
	}
	return left
}
