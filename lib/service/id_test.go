// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import "testing"

func TestNewIDIsDeterministic(t *testing.T) {
	first := NewID(PublishSubscribe, MustName("camera"))
	second := NewID(PublishSubscribe, MustName("camera"))
	if first != second {
		t.Errorf("ids differ for identical input: %s, %s", first, second)
	}
	if len(first.String()) != IDLength {
		t.Errorf("id %q has length %d, want %d", first, len(first.String()), IDLength)
	}
}

func TestNewIDSeparatesPatternAndName(t *testing.T) {
	ids := map[ID]string{}
	for label, id := range map[string]ID{
		"pubsub camera": NewID(PublishSubscribe, MustName("camera")),
		"event camera":  NewID(Event, MustName("camera")),
		"pubsub lidar":  NewID(PublishSubscribe, MustName("lidar")),
	} {
		if previous, ok := ids[id]; ok {
			t.Errorf("%s and %s share id %s", label, previous, id)
		}
		ids[id] = label
	}
}

func TestParseID(t *testing.T) {
	id := NewID(Event, MustName("wakeup"))
	parsed, err := ParseID(id.String())
	if err != nil {
		t.Fatalf("ParseID(%q): %v", id, err)
	}
	if parsed != id {
		t.Errorf("ParseID round trip = %s, want %s", parsed, id)
	}
	if id.FileName().String() != id.String() {
		t.Errorf("FileName() = %q, want %q", id.FileName(), id)
	}

	for _, input := range []string{"", "abcd", id.String()[:IDLength-1] + "g"} {
		if _, err := ParseID(input); err == nil {
			t.Errorf("ParseID(%q) succeeded", input)
		}
	}
}
