// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/zerocopy/lib/name"
)

func TestValidateDuplicateServiceSuffix(t *testing.T) {
	cfg := Default()
	cfg.Global().Service().SetConnectionSuffix(name.MustFileName(".service"))

	err := cfg.Validate()
	if !errors.Is(err, ErrDuplicateSuffix) {
		t.Fatalf("Validate() = %v, want ErrDuplicateSuffix", err)
	}
	message := err.Error()
	if !strings.Contains(message, "global.service.connection_suffix") ||
		!strings.Contains(message, "static_config_storage_suffix") {
		t.Errorf("error does not name both colliding fields: %s", message)
	}
}

func TestValidateDuplicateNodeSuffix(t *testing.T) {
	cfg := Default()
	cfg.Global().Node().SetServiceTagSuffix(name.MustFileName(".details"))

	if err := cfg.Validate(); !errors.Is(err, ErrDuplicateSuffix) {
		t.Fatalf("Validate() = %v, want ErrDuplicateSuffix", err)
	}
}

func TestValidateAllowsSuffixSharedAcrossSections(t *testing.T) {
	// Service and node artifacts live in different directories, so the
	// same suffix in both sections does not collide.
	cfg := Default()
	cfg.Global().Node().SetStaticConfigSuffix(name.MustFileName(".service"))

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateZeroConfig(t *testing.T) {
	var cfg Config
	err := cfg.Validate()
	if !errors.Is(err, ErrUnsetField) {
		t.Fatalf("Validate() = %v, want ErrUnsetField", err)
	}
	// 4 names/paths at the top plus 5 service and 3 node suffixes.
	if count := strings.Count(err.Error(), ErrUnsetField.Error()); count != 12 {
		t.Errorf("reported %d unset fields, want 12:\n%v", count, err)
	}
	if errors.Is(err, ErrDuplicateSuffix) {
		t.Error("unset suffixes should not also be reported as duplicates")
	}
}

func TestValidateDoesNotCheckCeilings(t *testing.T) {
	cfg := Default()
	pubsub := cfg.Defaults().PublishSubscribe()
	pubsub.SetPublisherHistorySize(1000)
	pubsub.SetSubscriberMaxBufferSize(1)
	cfg.Defaults().Event().SetMaxListeners(0)

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v; ceilings are checked at service creation", err)
	}
	if pubsub.PublisherHistorySize() != 1000 || pubsub.SubscriberMaxBufferSize() != 1 {
		t.Error("inconsistent ceilings were not stored as given")
	}
}
