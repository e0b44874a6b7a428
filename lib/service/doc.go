// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package service creates and opens zero-copy services from a
// [config.Config].
//
// A service is identified by its [MessagingPattern] and [Name]. Both are
// hashed into an [ID], which names every shared-memory artifact the
// service owns. The creator writes a [StaticConfig] next to those
// artifacts. Openers read it back and check with
// [StaticConfig.Satisfies] that the service can accommodate them.
//
// Builders seed every ceiling from a snapshot of the configuration's
// defaults section and check cross-field constraints at Build time:
//
//	cfg := config.Default()
//	static, err := service.NewPublishSubscribe(cfg, serviceName, logger).
//		MaxPublishers(4).
//		HistorySize(1).
//		Build()
//
// A [Layout] maps a service onto file-system paths under the global
// section, and a [Store] persists static configs there.
package service
