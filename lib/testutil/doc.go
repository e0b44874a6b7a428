// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for zerocopy packages.
//
// [Config] returns the default configuration rooted in a per-test
// temporary directory, so tests that create services or nodes never
// touch the real root path and never see each other's artifacts.
// [RootPath] returns just that directory as a [name.Path].
//
// [RequireReceive] encapsulates the timeout safety valve pattern
// (select with time.After fallback) so that individual tests do not
// need direct time.After calls. It is the only place in the test suite
// where real wall-clock timeouts are used; everything else runs on
// lib/clock's fake clock.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
