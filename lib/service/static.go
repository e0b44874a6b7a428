// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/zerocopy/lib/codec"
)

// ErrIncompatible is wrapped when an opener asks for more than an
// existing service was created with.
var ErrIncompatible = errors.New("incompatible service configuration")

// StaticConfig is the immutable description of a service, written once
// by its creator and read by every opener. Exactly one of
// PublishSubscribe and Event is set, matching Pattern. Attributes are
// sorted by key then value.
type StaticConfig struct {
	ID               ID                      `cbor:"id"`
	Name             Name                    `cbor:"name"`
	Pattern          MessagingPattern        `cbor:"pattern"`
	PublishSubscribe *PublishSubscribeConfig `cbor:"publish_subscribe,omitempty"`
	Event            *EventConfig            `cbor:"event,omitempty"`
	Attributes       []Attribute             `cbor:"attributes,omitempty"`
}

// PublishSubscribeConfig holds the ceilings of a publish-subscribe
// service.
type PublishSubscribeConfig struct {
	MaxSubscribers               uint64 `cbor:"max_subscribers"`
	MaxPublishers                uint64 `cbor:"max_publishers"`
	MaxNodes                     uint64 `cbor:"max_nodes"`
	HistorySize                  uint64 `cbor:"history_size"`
	SubscriberMaxBufferSize      uint64 `cbor:"subscriber_max_buffer_size"`
	SubscriberMaxBorrowedSamples uint64 `cbor:"subscriber_max_borrowed_samples"`
	EnableSafeOverflow           bool   `cbor:"enable_safe_overflow"`
}

// EventConfig holds the ceilings of an event service.
type EventConfig struct {
	MaxListeners    uint64 `cbor:"max_listeners"`
	MaxNotifiers    uint64 `cbor:"max_notifiers"`
	MaxNodes        uint64 `cbor:"max_nodes"`
	EventIDMaxValue uint64 `cbor:"event_id_max_value"`
}

// check verifies the structural invariants every stored static config
// must hold.
func (s *StaticConfig) check() error {
	if s.Name.IsZero() {
		return fmt.Errorf("static config: %w: empty", ErrInvalidName)
	}
	if want := NewID(s.Pattern, s.Name); s.ID != want {
		return fmt.Errorf("static config for %q: id %s does not match derived id %s", s.Name, s.ID, want)
	}
	switch s.Pattern {
	case PublishSubscribe:
		if s.PublishSubscribe == nil || s.Event != nil {
			return fmt.Errorf("static config for %q: publish_subscribe pattern requires exactly the publish_subscribe section", s.Name)
		}
	case Event:
		if s.Event == nil || s.PublishSubscribe != nil {
			return fmt.Errorf("static config for %q: event pattern requires exactly the event section", s.Name)
		}
	default:
		return fmt.Errorf("static config for %q: unknown %s", s.Name, s.Pattern)
	}
	if err := checkAttributes(s.Attributes); err != nil {
		return fmt.Errorf("static config for %q: %w", s.Name, err)
	}
	return nil
}

// EncodeStaticConfig returns the deterministic CBOR encoding of s.
func EncodeStaticConfig(s StaticConfig) ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	data, err := codec.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding static config for %q: %w", s.Name, err)
	}
	return data, nil
}

// DecodeStaticConfig parses and checks a stored static config.
func DecodeStaticConfig(data []byte) (StaticConfig, error) {
	var s StaticConfig
	if err := codec.Unmarshal(data, &s); err != nil {
		return StaticConfig{}, fmt.Errorf("decoding static config: %w", err)
	}
	if err := s.check(); err != nil {
		return StaticConfig{}, err
	}
	return s, nil
}

// Satisfies reports whether the existing service s can serve an opener
// with the requested configuration. The opener may ask for less of any
// ceiling, never more. Safe overflow must match exactly, since
// publishers and subscribers disagree otherwise on what happens when a
// buffer is full. Attributes are not compared here; openers check them
// with an AttributeVerifier.
func (s StaticConfig) Satisfies(requested StaticConfig) error {
	if s.Pattern != requested.Pattern {
		return fmt.Errorf("%w: service %q is %s, opener requested %s",
			ErrIncompatible, s.Name, s.Pattern, requested.Pattern)
	}
	if s.ID != requested.ID {
		return fmt.Errorf("%w: service id %s, opener requested %s", ErrIncompatible, s.ID, requested.ID)
	}

	var errs []error
	atMost := func(field string, existing, wanted uint64) {
		if wanted > existing {
			errs = append(errs, fmt.Errorf("%s: requested %d, service supports %d", field, wanted, existing))
		}
	}
	switch s.Pattern {
	case PublishSubscribe:
		existing, wanted := s.PublishSubscribe, requested.PublishSubscribe
		if existing == nil || wanted == nil {
			return fmt.Errorf("%w: missing publish_subscribe section", ErrIncompatible)
		}
		atMost("max_subscribers", existing.MaxSubscribers, wanted.MaxSubscribers)
		atMost("max_publishers", existing.MaxPublishers, wanted.MaxPublishers)
		atMost("max_nodes", existing.MaxNodes, wanted.MaxNodes)
		atMost("history_size", existing.HistorySize, wanted.HistorySize)
		atMost("subscriber_max_buffer_size", existing.SubscriberMaxBufferSize, wanted.SubscriberMaxBufferSize)
		atMost("subscriber_max_borrowed_samples", existing.SubscriberMaxBorrowedSamples, wanted.SubscriberMaxBorrowedSamples)
		if existing.EnableSafeOverflow != wanted.EnableSafeOverflow {
			errs = append(errs, fmt.Errorf("enable_safe_overflow: requested %t, service has %t",
				wanted.EnableSafeOverflow, existing.EnableSafeOverflow))
		}
	case Event:
		existing, wanted := s.Event, requested.Event
		if existing == nil || wanted == nil {
			return fmt.Errorf("%w: missing event section", ErrIncompatible)
		}
		atMost("max_listeners", existing.MaxListeners, wanted.MaxListeners)
		atMost("max_notifiers", existing.MaxNotifiers, wanted.MaxNotifiers)
		atMost("max_nodes", existing.MaxNodes, wanted.MaxNodes)
		atMost("event_id_max_value", existing.EventIDMaxValue, wanted.EventIDMaxValue)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w for service %q: %w", ErrIncompatible, s.Name, errors.Join(errs...))
	}
	return nil
}
