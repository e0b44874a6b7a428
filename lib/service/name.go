// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"
	"strings"
)

// MaxNameLength is the maximum length of a service name in bytes.
const MaxNameLength = 255

// ErrInvalidName is wrapped by every service name validation failure.
var ErrInvalidName = errors.New("invalid service name")

// Name is a validated service name. Unlike file names, service names
// are free-form: any byte except NUL is allowed, since the name never
// reaches the file system directly (the [ID] does).
type Name struct {
	value string
}

// NewName validates raw as a service name.
func NewName(raw string) (Name, error) {
	switch {
	case raw == "":
		return Name{}, fmt.Errorf("%w: empty", ErrInvalidName)
	case len(raw) > MaxNameLength:
		return Name{}, fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrInvalidName, len(raw), MaxNameLength)
	case strings.IndexByte(raw, 0) >= 0:
		return Name{}, fmt.Errorf("%w: contains NUL byte", ErrInvalidName)
	}
	return Name{value: raw}, nil
}

// MustName is like NewName but panics on error. For constants and tests.
func MustName(raw string) Name {
	parsed, err := NewName(raw)
	if err != nil {
		panic(err)
	}
	return parsed
}

func (n Name) String() string { return n.value }

// IsZero reports whether n is the zero value.
func (n Name) IsZero() bool { return n.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(data []byte) error {
	parsed, err := NewName(string(data))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
