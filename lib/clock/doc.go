// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for code that
// waits on shared storage.
//
// Production code accepts a [Clock] instead of calling time.Now or
// time.After directly. [Real] provides the standard library behavior;
// [Fake] provides a deterministic clock that advances only when
// [FakeClock.Advance] is called, so creation-timeout behavior can be
// tested without sleeping.
//
// Use [FakeClock.WaitForTimers] to block until a goroutine has
// registered its timer before advancing the clock.
package clock
