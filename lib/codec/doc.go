// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the single CBOR encoding configuration used
// for every artifact the IPC fabric writes to shared storage: service
// static configuration files, node detail files, and the canonical
// form of a Config that its fingerprint is computed over.
//
// Two processes that interpret the same artifact must agree on its
// bytes, so the encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same logical value always produces
// identical bytes.
//
// Artifacts are whole files, so the package offers buffer operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Types implementing encoding.TextMarshaler (name.FileName, name.Path,
// units.Duration) serialize as CBOR text strings, so a static config
// file can be inspected with [Diagnose] and read as plain strings.
//
// Struct tag rule: types that only ever live in shared storage carry
// `cbor` tags. Types that are also rendered as JSON carry `json` tags,
// which fxamacker/cbor reads as a fallback. Never both on one field.
package codec
