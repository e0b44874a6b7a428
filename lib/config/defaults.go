// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// Defaults holds the resource limits and delivery policy a service gets
// when its creator does not override them.
type Defaults struct {
	event            DefaultsEvent
	publishSubscribe DefaultsPublishSubscribe
}

// Event returns the event pattern defaults.
func (d *Defaults) Event() *DefaultsEvent { return &d.event }

// PublishSubscribe returns the publish-subscribe pattern defaults.
func (d *Defaults) PublishSubscribe() *DefaultsPublishSubscribe { return &d.publishSubscribe }

// DefaultsEvent holds the ceilings of an event service. A zero ceiling
// is stored as given; service creation warns about it.
type DefaultsEvent struct {
	maxListeners    uint64
	maxNotifiers    uint64
	maxNodes        uint64
	eventIDMaxValue uint64
}

// MaxListeners is the maximum number of listener ports.
func (e *DefaultsEvent) MaxListeners() uint64 { return e.maxListeners }

// SetMaxListeners replaces the listener ceiling.
func (e *DefaultsEvent) SetMaxListeners(value uint64) { e.maxListeners = value }

// MaxNotifiers is the maximum number of notifier ports.
func (e *DefaultsEvent) MaxNotifiers() uint64 { return e.maxNotifiers }

// SetMaxNotifiers replaces the notifier ceiling.
func (e *DefaultsEvent) SetMaxNotifiers(value uint64) { e.maxNotifiers = value }

// MaxNodes is the maximum number of nodes that may open the service.
func (e *DefaultsEvent) MaxNodes() uint64 { return e.maxNodes }

// SetMaxNodes replaces the node ceiling.
func (e *DefaultsEvent) SetMaxNodes(value uint64) { e.maxNodes = value }

// EventIDMaxValue is the largest event id a notifier may emit.
func (e *DefaultsEvent) EventIDMaxValue() uint64 { return e.eventIDMaxValue }

// SetEventIDMaxValue replaces the event id ceiling.
func (e *DefaultsEvent) SetEventIDMaxValue(value uint64) { e.eventIDMaxValue = value }

// DefaultsPublishSubscribe holds the ceilings and delivery policy of a
// publish-subscribe service. Cross-field constraints (history size not
// exceeding the subscriber buffer) are checked at service creation, not
// here.
type DefaultsPublishSubscribe struct {
	maxSubscribers                    uint64
	maxPublishers                     uint64
	maxNodes                          uint64
	subscriberMaxBufferSize           uint64
	subscriberMaxBorrowedSamples      uint64
	publisherMaxLoanedSamples         uint64
	publisherHistorySize              uint64
	subscriberExpiredConnectionBuffer uint64
	enableSafeOverflow                bool
	unableToDeliverStrategy           UnableToDeliverStrategy
}

// MaxSubscribers is the maximum number of subscriber ports.
func (p *DefaultsPublishSubscribe) MaxSubscribers() uint64 { return p.maxSubscribers }

// SetMaxSubscribers replaces the subscriber ceiling.
func (p *DefaultsPublishSubscribe) SetMaxSubscribers(value uint64) { p.maxSubscribers = value }

// MaxPublishers is the maximum number of publisher ports.
func (p *DefaultsPublishSubscribe) MaxPublishers() uint64 { return p.maxPublishers }

// SetMaxPublishers replaces the publisher ceiling.
func (p *DefaultsPublishSubscribe) SetMaxPublishers(value uint64) { p.maxPublishers = value }

// MaxNodes is the maximum number of nodes that may open the service.
func (p *DefaultsPublishSubscribe) MaxNodes() uint64 { return p.maxNodes }

// SetMaxNodes replaces the node ceiling.
func (p *DefaultsPublishSubscribe) SetMaxNodes(value uint64) { p.maxNodes = value }

// SubscriberMaxBufferSize is how many samples a subscriber can hold
// before delivery backs up.
func (p *DefaultsPublishSubscribe) SubscriberMaxBufferSize() uint64 {
	return p.subscriberMaxBufferSize
}

// SetSubscriberMaxBufferSize replaces the subscriber buffer size.
func (p *DefaultsPublishSubscribe) SetSubscriberMaxBufferSize(value uint64) {
	p.subscriberMaxBufferSize = value
}

// SubscriberMaxBorrowedSamples is how many received samples a
// subscriber may hold at once.
func (p *DefaultsPublishSubscribe) SubscriberMaxBorrowedSamples() uint64 {
	return p.subscriberMaxBorrowedSamples
}

// SetSubscriberMaxBorrowedSamples replaces the borrowed sample ceiling.
func (p *DefaultsPublishSubscribe) SetSubscriberMaxBorrowedSamples(value uint64) {
	p.subscriberMaxBorrowedSamples = value
}

// PublisherMaxLoanedSamples is how many unsent samples a publisher may
// hold at once.
func (p *DefaultsPublishSubscribe) PublisherMaxLoanedSamples() uint64 {
	return p.publisherMaxLoanedSamples
}

// SetPublisherMaxLoanedSamples replaces the loaned sample ceiling.
func (p *DefaultsPublishSubscribe) SetPublisherMaxLoanedSamples(value uint64) {
	p.publisherMaxLoanedSamples = value
}

// PublisherHistorySize is how many past samples a publisher retains for
// late-joining subscribers.
func (p *DefaultsPublishSubscribe) PublisherHistorySize() uint64 {
	return p.publisherHistorySize
}

// SetPublisherHistorySize replaces the history size.
func (p *DefaultsPublishSubscribe) SetPublisherHistorySize(value uint64) {
	p.publisherHistorySize = value
}

// SubscriberExpiredConnectionBuffer is how many samples a subscriber
// keeps from a publisher that has disconnected.
func (p *DefaultsPublishSubscribe) SubscriberExpiredConnectionBuffer() uint64 {
	return p.subscriberExpiredConnectionBuffer
}

// SetSubscriberExpiredConnectionBuffer replaces the expired connection
// buffer size.
func (p *DefaultsPublishSubscribe) SetSubscriberExpiredConnectionBuffer(value uint64) {
	p.subscriberExpiredConnectionBuffer = value
}

// EnableSafeOverflow reports whether a full subscriber buffer recycles
// its oldest sample instead of applying the unable-to-deliver strategy.
func (p *DefaultsPublishSubscribe) EnableSafeOverflow() bool { return p.enableSafeOverflow }

// SetEnableSafeOverflow replaces the safe overflow flag.
func (p *DefaultsPublishSubscribe) SetEnableSafeOverflow(value bool) {
	p.enableSafeOverflow = value
}

// UnableToDeliverStrategy is what a publisher does when a subscriber
// buffer is full and safe overflow is disabled.
func (p *DefaultsPublishSubscribe) UnableToDeliverStrategy() UnableToDeliverStrategy {
	return p.unableToDeliverStrategy
}

// SetUnableToDeliverStrategy replaces the delivery strategy.
func (p *DefaultsPublishSubscribe) SetUnableToDeliverStrategy(value UnableToDeliverStrategy) {
	p.unableToDeliverStrategy = value
}

// UnableToDeliverStrategy is a closed set of exactly two values, Block
// and DiscardSample. The representation admits no third value; the zero
// value is Block.
type UnableToDeliverStrategy struct {
	discard bool
}

var (
	// Block makes the publisher wait until the subscriber has room.
	Block = UnableToDeliverStrategy{}

	// DiscardSample makes the publisher drop the newest sample
	// immediately.
	DiscardSample = UnableToDeliverStrategy{discard: true}
)

const (
	blockText         = "block"
	discardSampleText = "discard_sample"
)

// ParseUnableToDeliverStrategy parses "block" or "discard_sample".
func ParseUnableToDeliverStrategy(text string) (UnableToDeliverStrategy, error) {
	switch text {
	case blockText:
		return Block, nil
	case discardSampleText:
		return DiscardSample, nil
	}
	return Block, fmt.Errorf("unknown unable-to-deliver strategy %q (want %q or %q)", text, blockText, discardSampleText)
}

func (s UnableToDeliverStrategy) String() string {
	if s.discard {
		return discardSampleText
	}
	return blockText
}

// MarshalText implements encoding.TextMarshaler.
func (s UnableToDeliverStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *UnableToDeliverStrategy) UnmarshalText(data []byte) error {
	parsed, err := ParseUnableToDeliverStrategy(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
