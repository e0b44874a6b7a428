// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package units

import (
	"math"
	"testing"
	"time"
)

func TestFromSecondsRoundTrip(t *testing.T) {
	for _, seconds := range []uint64{0, 1, 1234, math.MaxUint64} {
		duration := FromSeconds(seconds)
		if duration.Seconds() != seconds {
			t.Errorf("FromSeconds(%d).Seconds() = %d", seconds, duration.Seconds())
		}
		if duration.SubsecNanoseconds() != 0 {
			t.Errorf("FromSeconds(%d) has sub-second part %d", seconds, duration.SubsecNanoseconds())
		}
	}
}

func TestUnitConstructors(t *testing.T) {
	tests := []struct {
		name        string
		duration    Duration
		seconds     uint64
		nanoseconds uint32
		millis      uint64
	}{
		{name: "milliseconds", duration: FromMilliseconds(1500), seconds: 1, nanoseconds: 500_000_000, millis: 1500},
		{name: "microseconds", duration: FromMicroseconds(2_000_001), seconds: 2, nanoseconds: 1_000, millis: 2000},
		{name: "nanoseconds", duration: FromNanoseconds(3_000_000_007), seconds: 3, nanoseconds: 7, millis: 3000},
		{name: "std", duration: FromStd(500 * time.Millisecond), seconds: 0, nanoseconds: 500_000_000, millis: 500},
		{name: "negative-std", duration: FromStd(-time.Second), seconds: 0, nanoseconds: 0, millis: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.duration.Seconds() != tt.seconds {
				t.Errorf("Seconds() = %d, want %d", tt.duration.Seconds(), tt.seconds)
			}
			if tt.duration.SubsecNanoseconds() != tt.nanoseconds {
				t.Errorf("SubsecNanoseconds() = %d, want %d", tt.duration.SubsecNanoseconds(), tt.nanoseconds)
			}
			if tt.duration.Milliseconds() != tt.millis {
				t.Errorf("Milliseconds() = %d, want %d", tt.duration.Milliseconds(), tt.millis)
			}
		})
	}
}

func TestSaturation(t *testing.T) {
	huge := FromSeconds(math.MaxUint64)
	if huge.Nanoseconds() != math.MaxUint64 {
		t.Errorf("Nanoseconds() = %d, want saturation", huge.Nanoseconds())
	}
	if huge.Milliseconds() != math.MaxUint64 {
		t.Errorf("Milliseconds() = %d, want saturation", huge.Milliseconds())
	}
	if huge.Std() != time.Duration(math.MaxInt64) {
		t.Errorf("Std() = %v, want saturation", huge.Std())
	}
	if huge.String() != "18446744073709551615.000000000s" {
		t.Errorf("String() = %q", huge.String())
	}
}

func TestCompare(t *testing.T) {
	if FromMilliseconds(500).Compare(FromSeconds(1)) != -1 {
		t.Error("500ms should be shorter than 1s")
	}
	if FromSeconds(1).Compare(FromMilliseconds(1000)) != 0 {
		t.Error("1s should equal 1000ms")
	}
	if FromNanoseconds(1_000_000_001).Compare(FromSeconds(1)) != 1 {
		t.Error("1s+1ns should be longer than 1s")
	}
	if !Zero.IsZero() || FromNanoseconds(1).IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestTextRoundTrip(t *testing.T) {
	tests := []struct {
		duration Duration
		text     string
	}{
		{duration: FromSeconds(1234), text: "20m34s"},
		{duration: FromMilliseconds(500), text: "500ms"},
		{duration: Zero, text: "0s"},
		{duration: FromSeconds(math.MaxUint64), text: "18446744073709551615.000000000s"},
		{duration: Duration{seconds: 1 << 40, nanoseconds: 7}, text: "1099511627776.000000007s"},
	}
	for _, tt := range tests {
		data, err := tt.duration.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText: %v", err)
		}
		if string(data) != tt.text {
			t.Errorf("MarshalText(%v) = %q, want %q", tt.duration, data, tt.text)
		}
		var decoded Duration
		if err := decoded.UnmarshalText(data); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", data, err)
		}
		if decoded != tt.duration {
			t.Errorf("UnmarshalText(%q) = %v, want %v", data, decoded, tt.duration)
		}
	}

	var decoded Duration
	if err := decoded.UnmarshalText([]byte("-5s")); err == nil {
		t.Error("UnmarshalText accepted a negative duration")
	}
	if err := decoded.UnmarshalText([]byte("18446744073709551616.000000000s")); err == nil {
		t.Error("UnmarshalText accepted seconds beyond uint64")
	}
	if err := decoded.UnmarshalText([]byte("soon")); err == nil {
		t.Error("UnmarshalText accepted garbage")
	}
}
