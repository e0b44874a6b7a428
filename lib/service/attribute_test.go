// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"slices"
	"testing"

	"github.com/bureau-foundation/zerocopy/lib/codec"
	"github.com/bureau-foundation/zerocopy/lib/config"
)

func TestBuildNormalizesAttributes(t *testing.T) {
	static, err := NewPublishSubscribe(config.Default(), MustName("camera"), discardLogger()).
		Attribute("resolution", "1920x1080").
		Attribute("mapping", "dds").
		Attribute("resolution", "1280x720").
		Attribute("mapping", "dds").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	want := []Attribute{
		{Key: "mapping", Value: "dds"},
		{Key: "resolution", Value: "1280x720"},
		{Key: "resolution", Value: "1920x1080"},
	}
	if !slices.Equal(static.Attributes, want) {
		t.Errorf("Attributes = %v, want %v", static.Attributes, want)
	}

	data, err := EncodeStaticConfig(static)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeStaticConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(decoded.Attributes, want) {
		t.Errorf("decoded Attributes = %v, want %v", decoded.Attributes, want)
	}
}

func TestAttributeOrderDoesNotChangeEncoding(t *testing.T) {
	first, err := NewEvent(config.Default(), MustName("wakeup"), discardLogger()).
		Attribute("b", "2").Attribute("a", "1").Build()
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewEvent(config.Default(), MustName("wakeup"), discardLogger()).
		Attribute("a", "1").Attribute("b", "2").Build()
	if err != nil {
		t.Fatal(err)
	}
	firstData, err := EncodeStaticConfig(first)
	if err != nil {
		t.Fatal(err)
	}
	secondData, err := EncodeStaticConfig(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(firstData) != string(secondData) {
		t.Error("attribute insertion order changed the encoding")
	}
}

func TestBuildRejectsEmptyAttributeKey(t *testing.T) {
	if _, err := NewEvent(config.Default(), MustName("wakeup"), discardLogger()).Attribute("", "x").Build(); !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("event Build error = %v, want ErrInvalidAttribute", err)
	}
	if _, err := NewPublishSubscribe(config.Default(), MustName("camera"), discardLogger()).Attribute("", "x").Build(); !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("publish-subscribe Build error = %v, want ErrInvalidAttribute", err)
	}
}

func TestDecodeStaticConfigRejectsUnsortedAttributes(t *testing.T) {
	static := mustBuildEvent(t, config.Default(), "wakeup")
	static.Attributes = []Attribute{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}
	data, err := codec.Marshal(static)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeStaticConfig(data); !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("DecodeStaticConfig error = %v, want ErrInvalidAttribute", err)
	}
}

func TestAttributeVerifier(t *testing.T) {
	attributes := []Attribute{
		{Key: "camera_resolution", Value: "1920x1080"},
		{Key: "dds_service_mapping", Value: "my_funky_service_name"},
	}
	tests := []struct {
		name     string
		verifier *AttributeVerifier
		wantErr  bool
	}{
		{name: "nil", verifier: nil},
		{name: "empty", verifier: NewAttributeVerifier()},
		{name: "value", verifier: NewAttributeVerifier().Require("camera_resolution", "1920x1080")},
		{name: "key", verifier: NewAttributeVerifier().RequireKey("dds_service_mapping")},
		{name: "both", verifier: NewAttributeVerifier().Require("camera_resolution", "1920x1080").RequireKey("dds_service_mapping")},
		{name: "wrong-value", verifier: NewAttributeVerifier().Require("camera_resolution", "640x480"), wantErr: true},
		{name: "missing-key", verifier: NewAttributeVerifier().RequireKey("frame_rate"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.verifier.Verify(attributes)
			if tt.wantErr {
				if !errors.Is(err, ErrIncompatible) {
					t.Errorf("Verify error = %v, want ErrIncompatible", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Verify: %v", err)
			}
		})
	}
}
