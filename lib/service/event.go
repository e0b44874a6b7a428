// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/zerocopy/lib/config"
)

// EventBuilder configures an event service, seeded from a snapshot of
// cfg.Defaults().Event().
type EventBuilder struct {
	name       Name
	settings   EventConfig
	attributes []Attribute
	logger     *slog.Logger
}

// NewEvent returns a builder seeded from cfg.Defaults().Event(). A nil
// logger uses slog.Default().
func NewEvent(cfg *config.Config, serviceName Name, logger *slog.Logger) *EventBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	defaults := cfg.Defaults().Event()
	return &EventBuilder{
		name: serviceName,
		settings: EventConfig{
			MaxListeners:    defaults.MaxListeners(),
			MaxNotifiers:    defaults.MaxNotifiers(),
			MaxNodes:        defaults.MaxNodes(),
			EventIDMaxValue: defaults.EventIDMaxValue(),
		},
		logger: logger,
	}
}

// MaxListeners sets how many listeners may connect at once.
func (b *EventBuilder) MaxListeners(value uint64) *EventBuilder {
	b.settings.MaxListeners = value
	return b
}

// MaxNotifiers sets how many notifiers may connect at once.
func (b *EventBuilder) MaxNotifiers(value uint64) *EventBuilder {
	b.settings.MaxNotifiers = value
	return b
}

// MaxNodes sets how many nodes may open the service at once.
func (b *EventBuilder) MaxNodes(value uint64) *EventBuilder {
	b.settings.MaxNodes = value
	return b
}

// EventIDMaxValue sets the largest event id notifiers may send.
func (b *EventBuilder) EventIDMaxValue(value uint64) *EventBuilder {
	b.settings.EventIDMaxValue = value
	return b
}

// Attribute attaches key=value to the service. A key may be given
// several values.
func (b *EventBuilder) Attribute(key, value string) *EventBuilder {
	b.attributes = append(b.attributes, Attribute{Key: key, Value: value})
	return b
}

// Build returns the static config a creator stores. Event ceilings have
// no cross-field constraints; zero ceilings are logged as warnings.
func (b *EventBuilder) Build() (StaticConfig, error) {
	if b.name.IsZero() {
		return StaticConfig{}, fmt.Errorf("building event service: %w: empty", ErrInvalidName)
	}
	attributes, err := normalizeAttributes(b.attributes)
	if err != nil {
		return StaticConfig{}, fmt.Errorf("building event service %q: %w", b.name, err)
	}
	settings := b.settings
	warnZero(b.logger, b.name, Event, []zeroCheck{
		{"max_listeners", settings.MaxListeners},
		{"max_notifiers", settings.MaxNotifiers},
		{"max_nodes", settings.MaxNodes},
	})
	return StaticConfig{
		ID:         NewID(Event, b.name),
		Name:       b.name,
		Pattern:    Event,
		Event:      &settings,
		Attributes: attributes,
	}, nil
}
