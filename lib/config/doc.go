// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config is the configuration model of the zero-copy IPC
// fabric: the single source of truth that service discovery,
// shared-memory segment naming, sample delivery and node lifecycle
// management all interpret.
//
// A [Config] composes exactly one [Global] section (naming prefix, root
// path, and the [GlobalService] and [GlobalNode] sub-sections that
// determine artifact directories and suffixes) and exactly one
// [Defaults] section (the [DefaultsEvent] and [DefaultsPublishSubscribe]
// resource ceilings and delivery policy used when a service is created
// without explicit overrides).
//
// # Mutation contract
//
// [Default] returns a fully populated Config built from the versioned
// built-in table (see [DefaultsVersion]). The owning process then edits
// it in place through the section accessors:
//
//	cfg := config.Default()
//	cfg.Defaults().Event().SetMaxListeners(123)
//	cfg.Global().Service().SetCreationTimeout(units.FromSeconds(2))
//
// Accessors return pointers into the Config; they are valid for as long
// as the Config is. Setters replace a single field, never fail, and
// never check cross-field consistency (a history size larger than the
// subscriber buffer is stored as given). That check belongs to service
// creation, which sees the final values. [Config.Validate] is an
// opt-in check of the structural invariants (distinct, non-empty
// suffixes) for tooling.
//
// # Sharing
//
// A Config is a plain value with single-writer semantics: it must not be
// mutated while another goroutine reads it. Consumers that capture a
// Config (node and service creation) take a [Config.Clone], so later
// edits never reach entities that already exist. Every section is free
// of pointers, slices and maps, which makes Clone a complete deep copy.
// When one Config really must be shared between goroutines, wrap it in
// [Shared], which hands out snapshots under a lock.
//
// # Rendering
//
// A Config renders as YAML, JSON or CBOR through [Document] for
// inspection tools. There is no parsing counterpart:
// configuration files are not part of this package. [Config.Fingerprint]
// hashes the deterministic CBOR form so two processes can detect that
// they disagree about any field.
package config
