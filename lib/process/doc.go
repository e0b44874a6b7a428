// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process answers questions about other processes on the
// machine. Node cleanup uses [Alive] to decide whether the owner of a
// node directory is gone.
package process
