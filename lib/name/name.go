// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package name

import "strings"

// FileName is a single validated path component: no '/', no NUL, only
// the bytes a-z A-Z 0-9 . _ - :, at most MaxFileNameLength bytes.
//
// Size: one string header. The zero value is not a valid FileName; use
// IsZero to detect it.
type FileName struct {
	value string
}

// NewFileName validates raw and returns it as a FileName.
func NewFileName(raw string) (FileName, error) {
	if err := validateFileName(raw); err != nil {
		return FileName{}, err
	}
	return FileName{value: raw}, nil
}

// MustFileName is NewFileName for compile-time constants. It panics on
// invalid input.
func MustFileName(raw string) FileName {
	fileName, err := NewFileName(raw)
	if err != nil {
		panic(err)
	}
	return fileName
}

// String returns exactly the string the FileName was created from.
func (f FileName) String() string { return f.value }

// IsZero reports whether this is an uninitialized zero-value FileName.
func (f FileName) IsZero() bool { return f.value == "" }

// Append returns f with suffix appended. The concatenation of two
// valid file names is always a valid file name unless it exceeds the
// length limit, which is reported as ErrTooLong.
func (f FileName) Append(suffix FileName) (FileName, error) {
	return NewFileName(f.value + suffix.value)
}

// MarshalText implements encoding.TextMarshaler.
func (f FileName) MarshalText() ([]byte, error) {
	return []byte(f.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FileName) UnmarshalText(data []byte) error {
	parsed, err := NewFileName(string(data))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Path is a validated file-system path: the FileName byte set plus '/',
// at most MaxPathLength bytes. A Path may be absolute or relative and
// may end with '/'.
type Path struct {
	value string
}

// NewPath validates raw and returns it as a Path.
func NewPath(raw string) (Path, error) {
	if err := validatePath(raw); err != nil {
		return Path{}, err
	}
	return Path{value: raw}, nil
}

// MustPath is NewPath for compile-time constants. It panics on invalid
// input.
func MustPath(raw string) Path {
	path, err := NewPath(raw)
	if err != nil {
		panic(err)
	}
	return path
}

// String returns exactly the string the Path was created from.
func (p Path) String() string { return p.value }

// IsZero reports whether this is an uninitialized zero-value Path.
func (p Path) IsZero() bool { return p.value == "" }

// IsAbsolute reports whether the path starts with '/'.
func (p Path) IsAbsolute() bool { return strings.HasPrefix(p.value, "/") }

// Join appends a single component, inserting '/' unless p already ends
// with one. Both inputs are already valid, so only the length limit can
// fail.
func (p Path) Join(component FileName) (Path, error) {
	return NewPath(p.joined(component.value))
}

// JoinPath appends another path, treating it as relative to p even if
// it starts with '/'.
func (p Path) JoinPath(other Path) (Path, error) {
	return NewPath(p.joined(strings.TrimPrefix(other.value, "/")))
}

func (p Path) joined(tail string) string {
	if p.value == "" {
		return tail
	}
	if strings.HasSuffix(p.value, "/") {
		return p.value + tail
	}
	return p.value + "/" + tail
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(data []byte) error {
	parsed, err := NewPath(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
