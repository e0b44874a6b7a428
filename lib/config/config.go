// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

// Config is the aggregate root: exactly one Global and one Defaults
// section. The zero value has empty names and zero ceilings and is only
// useful as a target for copying; start from Default.
type Config struct {
	global   Global
	defaults Defaults
}

// Default returns a new Config populated from the built-in default
// table. Every call returns an independent value.
func Default() *Config {
	cfg := builtinDefaults()
	return &cfg
}

// Global returns the system-wide naming and path policy for in-place
// reads and edits.
func (c *Config) Global() *Global { return &c.global }

// Defaults returns the per-pattern default resource limits for in-place
// reads and edits.
func (c *Config) Defaults() *Defaults { return &c.defaults }

// Clone returns a deep copy. Edits to the copy never reach c and vice
// versa.
func (c *Config) Clone() *Config {
	// All sections are pointer-free values (TestSectionsArePointerFree
	// guards this), so a struct copy is a deep copy.
	clone := *c
	return &clone
}

// Equal reports whether both configs hold the same value in every
// field.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}
