// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidAttribute is returned when a service attribute has an empty
// key or a stored attribute list is out of order.
var ErrInvalidAttribute = errors.New("invalid service attribute")

// Attribute is a key/value pair a creator attaches to a service. Openers
// can require attributes through an [AttributeVerifier]. A key may carry
// several values.
type Attribute struct {
	Key   string `cbor:"key"`
	Value string `cbor:"value"`
}

func compareAttributes(a, b Attribute) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.Value, b.Value)
}

// normalizeAttributes sorts attributes by key then value and drops exact
// duplicates, so equal sets encode to equal bytes.
func normalizeAttributes(attributes []Attribute) ([]Attribute, error) {
	if len(attributes) == 0 {
		return nil, nil
	}
	for _, attribute := range attributes {
		if attribute.Key == "" {
			return nil, fmt.Errorf("%w: empty key (value %q)", ErrInvalidAttribute, attribute.Value)
		}
	}
	sorted := slices.Clone(attributes)
	slices.SortFunc(sorted, compareAttributes)
	return slices.Compact(sorted), nil
}

// checkAttributes verifies that a decoded attribute list is in the
// normalized form.
func checkAttributes(attributes []Attribute) error {
	for i, attribute := range attributes {
		if attribute.Key == "" {
			return fmt.Errorf("%w: empty key (value %q)", ErrInvalidAttribute, attribute.Value)
		}
		if i > 0 && compareAttributes(attributes[i-1], attribute) >= 0 {
			return fmt.Errorf("%w: %q=%q is out of order", ErrInvalidAttribute, attribute.Key, attribute.Value)
		}
	}
	return nil
}

// AttributeVerifier lists the attributes an opener requires of an
// existing service. An empty verifier accepts any attributes.
type AttributeVerifier struct {
	required []Attribute
	keys     []string
}

// NewAttributeVerifier returns a verifier that requires nothing.
func NewAttributeVerifier() *AttributeVerifier {
	return &AttributeVerifier{}
}

// Require demands that the service carries key with exactly value.
func (v *AttributeVerifier) Require(key, value string) *AttributeVerifier {
	v.required = append(v.required, Attribute{Key: key, Value: value})
	return v
}

// RequireKey demands that the service carries key with any value.
func (v *AttributeVerifier) RequireKey(key string) *AttributeVerifier {
	v.keys = append(v.keys, key)
	return v
}

// Verify reports every requirement the given attributes miss, wrapped
// in ErrIncompatible. A nil verifier accepts anything.
func (v *AttributeVerifier) Verify(attributes []Attribute) error {
	if v == nil {
		return nil
	}
	var missing []string
	for _, want := range v.required {
		if !slices.Contains(attributes, want) {
			missing = append(missing, fmt.Sprintf("%s=%s", want.Key, want.Value))
		}
	}
	for _, key := range v.keys {
		hasKey := slices.ContainsFunc(attributes, func(attribute Attribute) bool {
			return attribute.Key == key
		})
		if !hasKey {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required attributes: %s", ErrIncompatible, strings.Join(missing, ", "))
	}
	return nil
}
