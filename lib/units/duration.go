// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package units provides unit-safe value types for configuration
// fields. A [Duration] is always constructed from an explicit unit, so
// a bare integer can never be mistaken for seconds when it meant
// milliseconds.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const nanosPerSecond = 1_000_000_000

// Duration is a non-negative time span stored as whole seconds plus a
// nanosecond remainder. Unlike time.Duration it can represent the full
// uint64 range of seconds, and it cannot be negative.
type Duration struct {
	seconds     uint64
	nanoseconds uint32
}

// Zero is the empty duration.
var Zero = Duration{}

// FromSeconds returns a Duration of the given number of seconds.
func FromSeconds(seconds uint64) Duration {
	return Duration{seconds: seconds}
}

// FromMilliseconds returns a Duration of the given number of
// milliseconds.
func FromMilliseconds(milliseconds uint64) Duration {
	return Duration{
		seconds:     milliseconds / 1_000,
		nanoseconds: uint32(milliseconds%1_000) * 1_000_000,
	}
}

// FromMicroseconds returns a Duration of the given number of
// microseconds.
func FromMicroseconds(microseconds uint64) Duration {
	return Duration{
		seconds:     microseconds / 1_000_000,
		nanoseconds: uint32(microseconds%1_000_000) * 1_000,
	}
}

// FromNanoseconds returns a Duration of the given number of
// nanoseconds.
func FromNanoseconds(nanoseconds uint64) Duration {
	return Duration{
		seconds:     nanoseconds / nanosPerSecond,
		nanoseconds: uint32(nanoseconds % nanosPerSecond),
	}
}

// FromStd converts a time.Duration. Negative values clamp to Zero.
func FromStd(d time.Duration) Duration {
	if d <= 0 {
		return Zero
	}
	return FromNanoseconds(uint64(d))
}

// Seconds returns the whole seconds, discarding the sub-second part.
func (d Duration) Seconds() uint64 { return d.seconds }

// SubsecNanoseconds returns the nanosecond remainder in [0, 1e9).
func (d Duration) SubsecNanoseconds() uint32 { return d.nanoseconds }

// Milliseconds returns the span in whole milliseconds, saturating at
// math.MaxUint64.
func (d Duration) Milliseconds() uint64 {
	return saturatingTotal(d.seconds, 1_000, uint64(d.nanoseconds)/1_000_000)
}

// Nanoseconds returns the span in nanoseconds, saturating at
// math.MaxUint64.
func (d Duration) Nanoseconds() uint64 {
	return saturatingTotal(d.seconds, nanosPerSecond, uint64(d.nanoseconds))
}

// Std converts to time.Duration, saturating at math.MaxInt64
// nanoseconds (about 292 years).
func (d Duration) Std() time.Duration {
	total := d.Nanoseconds()
	if total > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(total)
}

// IsZero reports whether the duration is empty.
func (d Duration) IsZero() bool { return d == Zero }

// Compare returns -1, 0 or +1 depending on whether d is shorter than,
// equal to, or longer than other.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.seconds < other.seconds:
		return -1
	case d.seconds > other.seconds:
		return 1
	case d.nanoseconds < other.nanoseconds:
		return -1
	case d.nanoseconds > other.nanoseconds:
		return 1
	}
	return 0
}

// String formats the duration in time.Duration syntax ("20m34s",
// "500ms") when it fits, and as "<seconds>.<nanoseconds>s" with nine
// fractional digits otherwise.
func (d Duration) String() string {
	if d.seconds > math.MaxInt64/nanosPerSecond-1 {
		return fmt.Sprintf("%d.%09ds", d.seconds, d.nanoseconds)
	}
	return d.Std().String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts
// time.ParseDuration syntax and the long seconds form String emits for
// spans beyond time.Duration, and rejects negative spans.
func (d *Duration) UnmarshalText(data []byte) error {
	if long, ok := parseLongSeconds(string(data)); ok {
		*d = long
		return nil
	}
	parsed, err := time.ParseDuration(string(data))
	if err != nil {
		return fmt.Errorf("parsing duration: %w", err)
	}
	if parsed < 0 {
		return fmt.Errorf("parsing duration %q: negative durations are not allowed", data)
	}
	*d = FromStd(parsed)
	return nil
}

// parseLongSeconds parses "<seconds>.<nine digits>s". Any other shape
// reports false and is left to time.ParseDuration.
func parseLongSeconds(text string) (Duration, bool) {
	body, found := strings.CutSuffix(text, "s")
	if !found {
		return Duration{}, false
	}
	whole, fraction, found := strings.Cut(body, ".")
	if !found || len(fraction) != 9 || whole == "" || whole[0] == '+' || fraction[0] == '+' {
		return Duration{}, false
	}
	seconds, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return Duration{}, false
	}
	nanoseconds, err := strconv.ParseUint(fraction, 10, 32)
	if err != nil {
		return Duration{}, false
	}
	return Duration{seconds: seconds, nanoseconds: uint32(nanoseconds)}, true
}

func saturatingTotal(whole, factor, remainder uint64) uint64 {
	if whole > (math.MaxUint64-remainder)/factor {
		return math.MaxUint64
	}
	return whole*factor + remainder
}
