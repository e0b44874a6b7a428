// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/zerocopy/lib/name"
)

// idDomainKey keys the BLAKE3 hash that derives service ids. Changing it
// renames every service on disk. ASCII "zerocopy.service.id.v1",
// zero-padded to 32 bytes.
var idDomainKey = [32]byte{
	'z', 'e', 'r', 'o', 'c', 'o', 'p', 'y', '.',
	's', 'e', 'r', 'v', 'i', 'c', 'e', '.',
	'i', 'd', '.', 'v', '1',
}

// IDLength is the length of the hex form of an ID.
const IDLength = 2 * 32

// ID identifies a service across processes. It is derived from the
// messaging pattern and the service name, so two processes asking for
// the same pattern and name agree on it without coordination.
type ID struct {
	value string
}

// NewID derives the id of the service with the given pattern and name.
func NewID(pattern MessagingPattern, serviceName Name) ID {
	hasher, err := blake3.NewKeyed(idDomainKey[:])
	if err != nil {
		// NewKeyed fails only for keys that are not 32 bytes.
		panic(fmt.Sprintf("service: creating keyed hasher: %v", err))
	}
	hasher.Write([]byte{byte(pattern)})
	hasher.Write([]byte(serviceName.value))
	return ID{value: hex.EncodeToString(hasher.Sum(nil))}
}

// ParseID reads the hex form produced by String.
func ParseID(text string) (ID, error) {
	if len(text) != IDLength {
		return ID{}, fmt.Errorf("service id %q: want %d hex digits, got %d", text, IDLength, len(text))
	}
	if _, err := hex.DecodeString(text); err != nil {
		return ID{}, fmt.Errorf("service id %q: %w", text, err)
	}
	return ID{value: text}, nil
}

func (id ID) String() string { return id.value }

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id.value == "" }

// FileName returns the id as a file name component. Hex digits are
// always valid file name characters.
func (id ID) FileName() name.FileName {
	return name.MustFileName(id.value)
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := ParseID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
