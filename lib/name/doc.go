// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package name provides validated, immutable file-system name values.
//
// Every artifact the IPC fabric creates (shared-memory segments, static
// and dynamic service configuration files, node monitors) is named by
// concatenating configured prefixes, directories and suffixes. A
// [FileName] is a single path component that is safe to use as a file
// or shared-memory object name; a [Path] may additionally contain '/'.
//
// Both types are constructed through a fallible factory ([NewFileName],
// [NewPath]). Construction never substitutes or truncates: invalid
// input is reported as a [*ValidationError] whose kind is one of
// [ErrEmptyInput], [ErrInvalidCharacter] or [ErrTooLong]. Once a value
// exists it is valid for the lifetime of the program and downstream
// code never re-validates it.
//
// Values marshal as plain strings through encoding.TextMarshaler, so
// they render naturally in YAML, JSON and CBOR.
package name
