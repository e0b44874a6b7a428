// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/zerocopy/lib/config"
)

var (
	// ErrHistoryExceedsBuffer is returned when a late-joining subscriber
	// could not hold the history a publisher replays to it.
	ErrHistoryExceedsBuffer = errors.New("history size exceeds subscriber buffer size")

	// ErrBorrowExceedsBuffer is returned when a subscriber could borrow
	// more samples than its buffer holds.
	ErrBorrowExceedsBuffer = errors.New("subscriber borrowed samples exceed subscriber buffer size")
)

// PublishSubscribeBuilder configures a publish-subscribe service. It
// starts from the defaults section of the Config it was created from;
// later changes to that Config do not reach it.
type PublishSubscribeBuilder struct {
	name       Name
	settings   PublishSubscribeConfig
	attributes []Attribute
	logger     *slog.Logger
}

// NewPublishSubscribe returns a builder seeded from
// cfg.Defaults().PublishSubscribe(). A nil logger uses slog.Default().
func NewPublishSubscribe(cfg *config.Config, serviceName Name, logger *slog.Logger) *PublishSubscribeBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	defaults := cfg.Defaults().PublishSubscribe()
	return &PublishSubscribeBuilder{
		name: serviceName,
		settings: PublishSubscribeConfig{
			MaxSubscribers:               defaults.MaxSubscribers(),
			MaxPublishers:                defaults.MaxPublishers(),
			MaxNodes:                     defaults.MaxNodes(),
			HistorySize:                  defaults.PublisherHistorySize(),
			SubscriberMaxBufferSize:      defaults.SubscriberMaxBufferSize(),
			SubscriberMaxBorrowedSamples: defaults.SubscriberMaxBorrowedSamples(),
			EnableSafeOverflow:           defaults.EnableSafeOverflow(),
		},
		logger: logger,
	}
}

// MaxSubscribers sets how many subscribers may connect at once.
func (b *PublishSubscribeBuilder) MaxSubscribers(value uint64) *PublishSubscribeBuilder {
	b.settings.MaxSubscribers = value
	return b
}

// MaxPublishers sets how many publishers may connect at once.
func (b *PublishSubscribeBuilder) MaxPublishers(value uint64) *PublishSubscribeBuilder {
	b.settings.MaxPublishers = value
	return b
}

// MaxNodes sets how many nodes may open the service at once.
func (b *PublishSubscribeBuilder) MaxNodes(value uint64) *PublishSubscribeBuilder {
	b.settings.MaxNodes = value
	return b
}

// HistorySize sets how many samples a publisher keeps for subscribers
// that connect later.
func (b *PublishSubscribeBuilder) HistorySize(value uint64) *PublishSubscribeBuilder {
	b.settings.HistorySize = value
	return b
}

// SubscriberMaxBufferSize sets how many samples a subscriber can
// queue before it receives them.
func (b *PublishSubscribeBuilder) SubscriberMaxBufferSize(value uint64) *PublishSubscribeBuilder {
	b.settings.SubscriberMaxBufferSize = value
	return b
}

// SubscriberMaxBorrowedSamples sets how many received samples a
// subscriber may hold at once.
func (b *PublishSubscribeBuilder) SubscriberMaxBorrowedSamples(value uint64) *PublishSubscribeBuilder {
	b.settings.SubscriberMaxBorrowedSamples = value
	return b
}

// EnableSafeOverflow sets whether a full subscriber buffer drops its
// oldest sample instead of refusing delivery.
func (b *PublishSubscribeBuilder) EnableSafeOverflow(value bool) *PublishSubscribeBuilder {
	b.settings.EnableSafeOverflow = value
	return b
}

// Attribute attaches key=value to the service. A key may be given
// several values.
func (b *PublishSubscribeBuilder) Attribute(key, value string) *PublishSubscribeBuilder {
	b.attributes = append(b.attributes, Attribute{Key: key, Value: value})
	return b
}

// Build checks the settings against each other and returns the static
// config a creator stores. Zero ceilings are accepted; a service with no
// room for publishers or subscribers is legal but useless, so each one
// is logged as a warning.
func (b *PublishSubscribeBuilder) Build() (StaticConfig, error) {
	if b.name.IsZero() {
		return StaticConfig{}, fmt.Errorf("building publish-subscribe service: %w: empty", ErrInvalidName)
	}
	settings := b.settings

	var errs []error
	if settings.HistorySize > settings.SubscriberMaxBufferSize {
		errs = append(errs, fmt.Errorf("%w: history_size %d, subscriber_max_buffer_size %d",
			ErrHistoryExceedsBuffer, settings.HistorySize, settings.SubscriberMaxBufferSize))
	}
	if settings.SubscriberMaxBorrowedSamples > settings.SubscriberMaxBufferSize {
		errs = append(errs, fmt.Errorf("%w: subscriber_max_borrowed_samples %d, subscriber_max_buffer_size %d",
			ErrBorrowExceedsBuffer, settings.SubscriberMaxBorrowedSamples, settings.SubscriberMaxBufferSize))
	}
	attributes, err := normalizeAttributes(b.attributes)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return StaticConfig{}, fmt.Errorf("building publish-subscribe service %q: %w", b.name, errors.Join(errs...))
	}

	warnZero(b.logger, b.name, PublishSubscribe, []zeroCheck{
		{"max_subscribers", settings.MaxSubscribers},
		{"max_publishers", settings.MaxPublishers},
		{"max_nodes", settings.MaxNodes},
		{"subscriber_max_buffer_size", settings.SubscriberMaxBufferSize},
	})

	return StaticConfig{
		ID:               NewID(PublishSubscribe, b.name),
		Name:             b.name,
		Pattern:          PublishSubscribe,
		PublishSubscribe: &settings,
		Attributes:       attributes,
	}, nil
}

// PublisherSettings are the per-publisher values a publisher port takes
// from the defaults section. They are not part of the static config:
// publishers of one service may differ.
type PublisherSettings struct {
	MaxLoanedSamples        uint64
	UnableToDeliverStrategy config.UnableToDeliverStrategy
}

// DefaultPublisherSettings reads the publisher defaults from cfg.
func DefaultPublisherSettings(cfg *config.Config) PublisherSettings {
	defaults := cfg.Defaults().PublishSubscribe()
	return PublisherSettings{
		MaxLoanedSamples:        defaults.PublisherMaxLoanedSamples(),
		UnableToDeliverStrategy: defaults.UnableToDeliverStrategy(),
	}
}

type zeroCheck struct {
	field string
	value uint64
}

func warnZero(logger *slog.Logger, serviceName Name, pattern MessagingPattern, checks []zeroCheck) {
	for _, check := range checks {
		if check.value == 0 {
			logger.Warn("service ceiling is zero",
				"service", serviceName.String(),
				"pattern", pattern.String(),
				"field", check.field,
			)
		}
	}
}
