// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/zerocopy/lib/name"
)

var (
	// ErrUnsetField reports a name or path field that still holds its
	// zero value, which happens when a Config is built as a zero value
	// instead of from Default.
	ErrUnsetField = errors.New("field is unset")

	// ErrDuplicateSuffix reports two suffixes that would name different
	// artifact kinds identically in the same directory.
	ErrDuplicateSuffix = errors.New("duplicate suffix")
)

type namedSuffix struct {
	field string
	value name.FileName
}

// Validate checks the structural invariants consumers rely on: every
// name and path field is set, the five service suffixes are pairwise
// distinct, and the three node suffixes are pairwise distinct. All
// violations are reported together.
//
// Validate does not check resource ceilings against each other; service
// creation does that against the values it actually uses.
func (c *Config) Validate() error {
	var errs []error

	global := &c.global
	if global.prefix.IsZero() {
		errs = append(errs, fmt.Errorf("global.prefix: %w", ErrUnsetField))
	}
	if global.rootPath.IsZero() {
		errs = append(errs, fmt.Errorf("global.root_path: %w", ErrUnsetField))
	}
	if global.service.directory.IsZero() {
		errs = append(errs, fmt.Errorf("global.service.directory: %w", ErrUnsetField))
	}
	if global.node.directory.IsZero() {
		errs = append(errs, fmt.Errorf("global.node.directory: %w", ErrUnsetField))
	}

	service := &global.service
	errs = append(errs, checkSuffixes("global.service", []namedSuffix{
		{"publisher_data_segment_suffix", service.publisherDataSegmentSuffix},
		{"static_config_storage_suffix", service.staticConfigStorageSuffix},
		{"dynamic_config_storage_suffix", service.dynamicConfigStorageSuffix},
		{"connection_suffix", service.connectionSuffix},
		{"event_connection_suffix", service.eventConnectionSuffix},
	})...)

	node := &global.node
	errs = append(errs, checkSuffixes("global.node", []namedSuffix{
		{"monitor_suffix", node.monitorSuffix},
		{"static_config_suffix", node.staticConfigSuffix},
		{"service_tag_suffix", node.serviceTagSuffix},
	})...)

	return errors.Join(errs...)
}

func checkSuffixes(section string, suffixes []namedSuffix) []error {
	var errs []error
	firstUse := make(map[name.FileName]string, len(suffixes))
	for _, suffix := range suffixes {
		if suffix.value.IsZero() {
			errs = append(errs, fmt.Errorf("%s.%s: %w", section, suffix.field, ErrUnsetField))
			continue
		}
		if previous, seen := firstUse[suffix.value]; seen {
			errs = append(errs, fmt.Errorf("%s.%s: %w %q, already used by %s",
				section, suffix.field, ErrDuplicateSuffix, suffix.value, previous))
			continue
		}
		firstUse[suffix.value] = suffix.field
	}
	return errs
}
