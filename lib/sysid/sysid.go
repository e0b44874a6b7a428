// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sysid generates identifiers that are unique across every
// process on the machine: the process id, the creation time, and a
// per-process counter, packed into 128 bits.
//
// Node directories are named by the hex form of an ID, which lets a
// scanner recover the owning pid and test whether that process is still
// alive without opening any file.
package sysid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/zerocopy/lib/clock"
)

// TextLength is the length of the hex form of an ID.
const TextLength = 32

var counter atomic.Uint32

// ID is a machine-wide unique identifier. The zero value is not a
// valid ID.
type ID struct {
	pid         uint32
	seconds     uint32
	nanoseconds uint32
	counter     uint32
}

// New creates an ID for the calling process at the clock's current
// time.
func New(c clock.Clock) ID {
	now := c.Now()
	return ID{
		pid:         uint32(unix.Getpid()),
		seconds:     uint32(now.Unix()),
		nanoseconds: uint32(now.Nanosecond()),
		counter:     counter.Add(1) - 1,
	}
}

// Parse reads the hex form produced by String.
func Parse(text string) (ID, error) {
	if len(text) != TextLength {
		return ID{}, fmt.Errorf("system id %q: want %d hex digits, got %d", text, TextLength, len(text))
	}
	var raw [16]byte
	if _, err := hex.Decode(raw[:], []byte(text)); err != nil {
		return ID{}, fmt.Errorf("system id %q: %w", text, err)
	}
	id := ID{
		pid:         binary.BigEndian.Uint32(raw[0:4]),
		seconds:     binary.BigEndian.Uint32(raw[4:8]),
		nanoseconds: binary.BigEndian.Uint32(raw[8:12]),
		counter:     binary.BigEndian.Uint32(raw[12:16]),
	}
	if id.IsZero() {
		return ID{}, fmt.Errorf("system id %q is zero", text)
	}
	return id, nil
}

// PID returns the process id of the creator.
func (id ID) PID() int { return int(id.pid) }

// CreationTime returns when the ID was created, at nanosecond
// resolution (seconds wrap in 2106).
func (id ID) CreationTime() time.Time {
	return time.Unix(int64(id.seconds), int64(id.nanoseconds))
}

// Counter returns the per-process sequence number.
func (id ID) Counter() uint32 { return id.counter }

// IsZero reports whether this is the zero value.
func (id ID) IsZero() bool { return id == ID{} }

// Bytes returns the 128-bit big-endian value.
func (id ID) Bytes() [16]byte {
	var raw [16]byte
	binary.BigEndian.PutUint32(raw[0:4], id.pid)
	binary.BigEndian.PutUint32(raw[4:8], id.seconds)
	binary.BigEndian.PutUint32(raw[8:12], id.nanoseconds)
	binary.BigEndian.PutUint32(raw[12:16], id.counter)
	return raw
}

// String returns the 32-digit lowercase hex form. It sorts by pid, then
// creation time, then counter.
func (id ID) String() string {
	raw := id.Bytes()
	return hex.EncodeToString(raw[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
