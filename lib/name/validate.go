// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"errors"
	"fmt"
)

const (
	// MaxFileNameLength is the longest accepted FileName in bytes,
	// matching NAME_MAX on Linux.
	MaxFileNameLength = 255

	// MaxPathLength is the longest accepted Path in bytes, matching
	// PATH_MAX on Linux.
	MaxPathLength = 4096
)

// Validation error kinds. A [*ValidationError] unwraps to exactly one
// of these, so callers test with errors.Is.
var (
	ErrEmptyInput       = errors.New("empty input")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrTooLong          = errors.New("input too long")
)

// ValidationError reports why a string was rejected as a FileName or
// Path.
type ValidationError struct {
	// Kind is one of ErrEmptyInput, ErrInvalidCharacter, ErrTooLong.
	Kind error

	// Label names what was being validated ("file name", "path").
	Label string

	// Value is the rejected input.
	Value string

	// Position is the byte offset of the first offending byte for
	// ErrInvalidCharacter, and -1 otherwise.
	Position int
}

func (e *ValidationError) Error() string {
	switch {
	case e.Kind == ErrInvalidCharacter && e.Position >= 0:
		return fmt.Sprintf("invalid %s %q: %v %q at position %d", e.Label, e.Value, e.Kind, e.Value[e.Position], e.Position)
	case e.Kind == ErrTooLong:
		return fmt.Sprintf("invalid %s: %d bytes exceeds the maximum", e.Label, len(e.Value))
	case e.Value == "":
		return fmt.Sprintf("invalid %s: %v", e.Label, e.Kind)
	default:
		return fmt.Sprintf("invalid %s %q: %v", e.Label, e.Value, e.Kind)
	}
}

// Unwrap returns the error kind.
func (e *ValidationError) Unwrap() error { return e.Kind }

// fileNameChars is the set of bytes permitted in a FileName. Path
// additionally permits '/'. Everything else, including NUL, whitespace
// and non-ASCII bytes, is rejected.
var fileNameChars [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		fileNameChars[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		fileNameChars[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		fileNameChars[c] = true
	}
	fileNameChars['.'] = true
	fileNameChars['_'] = true
	fileNameChars['-'] = true
	fileNameChars[':'] = true
}

func validateFileName(value string) error {
	if value == "" {
		return &ValidationError{Kind: ErrEmptyInput, Label: "file name", Position: -1}
	}
	if len(value) > MaxFileNameLength {
		return &ValidationError{Kind: ErrTooLong, Label: "file name", Value: value, Position: -1}
	}
	for i := 0; i < len(value); i++ {
		if !fileNameChars[value[i]] {
			return &ValidationError{Kind: ErrInvalidCharacter, Label: "file name", Value: value, Position: i}
		}
	}
	// "." and ".." consist of allowed bytes but name directories, not
	// files.
	if value == "." || value == ".." {
		return &ValidationError{Kind: ErrInvalidCharacter, Label: "file name", Value: value, Position: -1}
	}
	return nil
}

func validatePath(value string) error {
	if value == "" {
		return &ValidationError{Kind: ErrEmptyInput, Label: "path", Position: -1}
	}
	if len(value) > MaxPathLength {
		return &ValidationError{Kind: ErrTooLong, Label: "path", Value: value, Position: -1}
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '/' && !fileNameChars[c] {
			return &ValidationError{Kind: ErrInvalidCharacter, Label: "path", Value: value, Position: i}
		}
	}
	return nil
}
