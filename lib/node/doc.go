// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package node manages the on-disk presence of a process taking part in
// zero-copy communication.
//
// A node owns one directory under the configured node directory, named
// by its [sysid.ID]. The directory holds a details file describing the
// node and the configuration it was created with, a monitor marker, and
// one tag file per service the node participates in. Because the
// directory name carries the owner's pid, any process can find nodes
// whose owner died without cleaning up and remove them, depending on
// the cleanup flags of the global node section.
package node
