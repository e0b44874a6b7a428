// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"math"

	"github.com/bureau-foundation/zerocopy/lib/name"
	"github.com/bureau-foundation/zerocopy/lib/units"
)

// DefaultsVersion identifies the built-in default table. Bump it with
// any change to the constants below: processes built against different
// tables produce different Config fingerprints for Default().
const DefaultsVersion = 1

// Built-in defaults. Changing a default is a one-place edit here;
// TestDefaultTable pins every value.
const (
	DefaultPrefix   = "iox2_"
	DefaultRootPath = "/tmp/iceoryx2/"

	DefaultServiceDirectory                  = "services"
	DefaultPublisherDataSegmentSuffix        = ".publisher_data"
	DefaultStaticConfigStorageSuffix         = ".service"
	DefaultDynamicConfigStorageSuffix        = ".dynamic"
	DefaultCreationTimeoutMilliseconds       = 500
	DefaultConnectionSuffix                  = ".connection"
	DefaultEventConnectionSuffix             = ".event"
	DefaultNodeDirectory                     = "nodes"
	DefaultMonitorSuffix                     = ".node_monitor"
	DefaultNodeStaticConfigSuffix            = ".details"
	DefaultServiceTagSuffix                  = ".service_tag"
	DefaultCleanupDeadNodesOnCreation        = true
	DefaultCleanupDeadNodesOnDestruction     = true
	DefaultEventMaxListeners                 = 16
	DefaultEventMaxNotifiers                 = 16
	DefaultEventMaxNodes                     = 36
	DefaultEventIDMaxValue                   = math.MaxUint32
	DefaultMaxSubscribers                    = 8
	DefaultMaxPublishers                     = 2
	DefaultPublishSubscribeMaxNodes          = 20
	DefaultSubscriberMaxBufferSize           = 2
	DefaultSubscriberMaxBorrowedSamples      = 2
	DefaultPublisherMaxLoanedSamples         = 2
	DefaultPublisherHistorySize              = 0
	DefaultSubscriberExpiredConnectionBuffer = 128
	DefaultEnableSafeOverflow                = true
)

// defaultUnableToDeliverStrategy is the built-in delivery strategy.
var defaultUnableToDeliverStrategy = Block

func builtinDefaults() Config {
	return Config{
		global: Global{
			prefix:   name.MustFileName(DefaultPrefix),
			rootPath: name.MustPath(DefaultRootPath),
			service: GlobalService{
				directory:                  name.MustPath(DefaultServiceDirectory),
				publisherDataSegmentSuffix: name.MustFileName(DefaultPublisherDataSegmentSuffix),
				staticConfigStorageSuffix:  name.MustFileName(DefaultStaticConfigStorageSuffix),
				dynamicConfigStorageSuffix: name.MustFileName(DefaultDynamicConfigStorageSuffix),
				creationTimeout:            units.FromMilliseconds(DefaultCreationTimeoutMilliseconds),
				connectionSuffix:           name.MustFileName(DefaultConnectionSuffix),
				eventConnectionSuffix:      name.MustFileName(DefaultEventConnectionSuffix),
			},
			node: GlobalNode{
				directory:                     name.MustPath(DefaultNodeDirectory),
				monitorSuffix:                 name.MustFileName(DefaultMonitorSuffix),
				staticConfigSuffix:            name.MustFileName(DefaultNodeStaticConfigSuffix),
				serviceTagSuffix:              name.MustFileName(DefaultServiceTagSuffix),
				cleanupDeadNodesOnCreation:    DefaultCleanupDeadNodesOnCreation,
				cleanupDeadNodesOnDestruction: DefaultCleanupDeadNodesOnDestruction,
			},
		},
		defaults: Defaults{
			event: DefaultsEvent{
				maxListeners:    DefaultEventMaxListeners,
				maxNotifiers:    DefaultEventMaxNotifiers,
				maxNodes:        DefaultEventMaxNodes,
				eventIDMaxValue: DefaultEventIDMaxValue,
			},
			publishSubscribe: DefaultsPublishSubscribe{
				maxSubscribers:                    DefaultMaxSubscribers,
				maxPublishers:                     DefaultMaxPublishers,
				maxNodes:                          DefaultPublishSubscribeMaxNodes,
				subscriberMaxBufferSize:           DefaultSubscriberMaxBufferSize,
				subscriberMaxBorrowedSamples:      DefaultSubscriberMaxBorrowedSamples,
				publisherMaxLoanedSamples:         DefaultPublisherMaxLoanedSamples,
				publisherHistorySize:              DefaultPublisherHistorySize,
				subscriberExpiredConnectionBuffer: DefaultSubscriberExpiredConnectionBuffer,
				enableSafeOverflow:                DefaultEnableSafeOverflow,
				unableToDeliverStrategy:           defaultUnableToDeliverStrategy,
			},
		},
	}
}
