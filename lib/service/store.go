// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bureau-foundation/zerocopy/lib/clock"
	"github.com/bureau-foundation/zerocopy/lib/config"
)

var (
	// ErrServiceExists is returned by Create when another creator got
	// there first.
	ErrServiceExists = errors.New("service already exists")

	// ErrServiceNotFound is returned when no static config appeared
	// before the creation timeout.
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceInCreation is returned when a static config file exists
	// but never became readable before the creation timeout.
	ErrServiceInCreation = errors.New("service is still being created")
)

// openPollInterval is how long Open sleeps between attempts while
// waiting for a creator.
const openPollInterval = 10 * time.Millisecond

// Store persists static configs in the service directory of a Layout.
// Several processes may share one directory; creation is atomic and
// first-wins.
type Store struct {
	layout          Layout
	creationTimeout time.Duration
	clock           clock.Clock
	logger          *slog.Logger
}

// NewStore snapshots cfg. A nil clock uses the real clock; a nil logger
// uses slog.Default().
func NewStore(cfg *config.Config, clk clock.Clock, logger *slog.Logger) (*Store, error) {
	layout, err := NewLayout(cfg)
	if err != nil {
		return nil, err
	}
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		layout:          layout,
		creationTimeout: cfg.Global().Service().CreationTimeout().Std(),
		clock:           clk,
		logger:          logger,
	}, nil
}

// Layout returns the layout the store writes under.
func (s *Store) Layout() Layout { return s.layout }

// Create stores static. The file appears under its final name only once
// fully written, so openers never read a partial config.
func (s *Store) Create(ctx context.Context, static StaticConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := EncodeStaticConfig(static)
	if err != nil {
		return err
	}
	finalPath, err := s.layout.StaticConfigPath(static.ID)
	if err != nil {
		return err
	}

	directory := s.layout.ServiceDirectory().String()
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("creating service directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(directory, ".creating-*")
	if err != nil {
		return fmt.Errorf("creating temp static config: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing static config: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing static config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp static config: %w", err)
	}

	// Link, unlike Rename, refuses to replace an existing file.
	if err := os.Link(tmpPath, finalPath.String()); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s %q", ErrServiceExists, static.Pattern, static.Name)
		}
		return fmt.Errorf("publishing static config: %w", err)
	}

	s.logger.Info("service created",
		"service", static.Name.String(),
		"pattern", static.Pattern.String(),
		"id", static.ID.String(),
	)
	return nil
}

// Open reads the static config of an existing service. While the file
// is missing or unreadable Open retries until the configured creation
// timeout has elapsed, since a creator may be racing with it.
func (s *Store) Open(ctx context.Context, pattern MessagingPattern, serviceName Name) (StaticConfig, error) {
	return s.OpenWithAttributes(ctx, pattern, serviceName, nil)
}

// OpenWithAttributes is Open for an opener that requires attributes of
// the service. A service missing any of them fails with ErrIncompatible.
func (s *Store) OpenWithAttributes(ctx context.Context, pattern MessagingPattern, serviceName Name, verifier *AttributeVerifier) (StaticConfig, error) {
	id := NewID(pattern, serviceName)
	path, err := s.layout.StaticConfigPath(id)
	if err != nil {
		return StaticConfig{}, err
	}

	deadline := s.clock.Now().Add(s.creationTimeout)
	for {
		static, readErr := readStaticConfig(path.String())
		if readErr == nil {
			if err := verifier.Verify(static.Attributes); err != nil {
				return StaticConfig{}, fmt.Errorf("opening %s %q: %w", pattern, serviceName, err)
			}
			return static, nil
		}

		if !s.clock.Now().Before(deadline) {
			if errors.Is(readErr, fs.ErrNotExist) {
				return StaticConfig{}, fmt.Errorf("%w: %s %q", ErrServiceNotFound, pattern, serviceName)
			}
			return StaticConfig{}, fmt.Errorf("%w: %s %q: %w", ErrServiceInCreation, pattern, serviceName, readErr)
		}

		select {
		case <-ctx.Done():
			return StaticConfig{}, ctx.Err()
		case <-s.clock.After(openPollInterval):
		}
	}
}

// OpenOrCreate creates the service described by requested, or opens the
// existing one if it is compatible.
func (s *Store) OpenOrCreate(ctx context.Context, requested StaticConfig) (StaticConfig, error) {
	return s.OpenOrCreateWithAttributes(ctx, requested, nil)
}

// OpenOrCreateWithAttributes is OpenOrCreate where an existing service
// must also pass verifier. A newly created service carries the
// attributes of requested and is not checked against verifier.
func (s *Store) OpenOrCreateWithAttributes(ctx context.Context, requested StaticConfig, verifier *AttributeVerifier) (StaticConfig, error) {
	err := s.Create(ctx, requested)
	if err == nil {
		return requested, nil
	}
	if !errors.Is(err, ErrServiceExists) {
		return StaticConfig{}, err
	}
	existing, err := s.OpenWithAttributes(ctx, requested.Pattern, requested.Name, verifier)
	if err != nil {
		return StaticConfig{}, err
	}
	if err := existing.Satisfies(requested); err != nil {
		return StaticConfig{}, err
	}
	return existing, nil
}

// List returns the static config of every service in the directory,
// ordered by id. Files that do not decode are skipped with a warning.
func (s *Store) List() ([]StaticConfig, error) {
	entries, err := os.ReadDir(s.layout.ServiceDirectory().String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing services: %w", err)
	}

	var services []StaticConfig
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := s.layout.parseStaticConfigFileName(entry.Name())
		if !ok {
			continue
		}
		path := filepath.Join(s.layout.ServiceDirectory().String(), entry.Name())
		static, err := readStaticConfig(path)
		if err != nil {
			s.logger.Warn("skipping unreadable static config", "id", id.String(), "error", err)
			continue
		}
		if static.ID != id {
			s.logger.Warn("skipping misnamed static config", "file", entry.Name(), "id", static.ID.String())
			continue
		}
		services = append(services, static)
	}
	return services, nil
}

// Remove deletes the static config of the service with the given id.
func (s *Store) Remove(id ID) error {
	path, err := s.layout.StaticConfigPath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path.String()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: id %s", ErrServiceNotFound, id)
		}
		return fmt.Errorf("removing static config: %w", err)
	}
	s.logger.Info("service removed", "id", id.String())
	return nil
}

func readStaticConfig(path string) (StaticConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StaticConfig{}, err
	}
	return DecodeStaticConfig(data)
}
