// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"testing"

	"github.com/bureau-foundation/zerocopy/lib/config"
	"github.com/bureau-foundation/zerocopy/lib/name"
)

// RootPath creates a temporary directory, removed when the test
// completes, and returns it as a root path. The test is skipped when
// the temporary directory contains characters a Path does not allow,
// which can happen with an unusual TMPDIR.
func RootPath(t *testing.T) name.Path {
	t.Helper()
	directory := t.TempDir()
	root, err := name.NewPath(directory)
	if err != nil {
		t.Skipf("temporary directory %q is not a valid root path: %v", directory, err)
	}
	return root
}

// Config returns the built-in defaults with the root path moved to
// RootPath(t).
func Config(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Global().SetRootPath(RootPath(t))
	return cfg
}
