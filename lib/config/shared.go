// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"sync"
)

// Shared wraps one Config for use from several goroutines. Readers get
// independent snapshots; writers mutate under an exclusive lock. No
// caller ever holds a pointer into the guarded Config.
type Shared struct {
	mu     sync.RWMutex
	config *Config
	logger *slog.Logger
}

// NewShared takes a private copy of cfg. A nil cfg starts from Default.
// A nil logger uses slog.Default().
func NewShared(cfg *Config, logger *slog.Logger) *Shared {
	if cfg == nil {
		cfg = Default()
	} else {
		cfg = cfg.Clone()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Shared{config: cfg, logger: logger}
}

// Snapshot returns a deep copy of the current configuration.
func (s *Shared) Snapshot() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone()
}

// Update runs mutate with exclusive access to the configuration. The
// pointer passed to mutate must not be retained after it returns.
// Entities created from earlier snapshots are unaffected.
func (s *Shared) Update(mutate func(*Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.config.Fingerprint()
	mutate(s.config)
	after := s.config.Fingerprint()
	if before != after {
		s.logger.Debug("shared configuration updated",
			"previous_fingerprint", before,
			"fingerprint", after,
		)
	}
}

// Replace swaps in a private copy of cfg.
func (s *Shared) Replace(cfg *Config) {
	s.Update(func(current *Config) {
		*current = *cfg
	})
}
