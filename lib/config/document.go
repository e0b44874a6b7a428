// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/zerocopy/lib/codec"
	"github.com/bureau-foundation/zerocopy/lib/name"
	"github.com/bureau-foundation/zerocopy/lib/units"
)

// Document is the exported, tagged mirror of a Config used for
// rendering. The same field names are used for YAML, JSON and CBOR.
// It is produced from a Config and never converted back.
type Document struct {
	Global   GlobalDocument   `json:"global" yaml:"global"`
	Defaults DefaultsDocument `json:"defaults" yaml:"defaults"`
}

// GlobalDocument mirrors Global.
type GlobalDocument struct {
	Prefix   name.FileName         `json:"prefix" yaml:"prefix"`
	RootPath name.Path             `json:"root_path" yaml:"root_path"`
	Service  GlobalServiceDocument `json:"service" yaml:"service"`
	Node     GlobalNodeDocument    `json:"node" yaml:"node"`
}

// GlobalServiceDocument mirrors GlobalService.
type GlobalServiceDocument struct {
	Directory                  name.Path      `json:"directory" yaml:"directory"`
	PublisherDataSegmentSuffix name.FileName  `json:"publisher_data_segment_suffix" yaml:"publisher_data_segment_suffix"`
	StaticConfigStorageSuffix  name.FileName  `json:"static_config_storage_suffix" yaml:"static_config_storage_suffix"`
	DynamicConfigStorageSuffix name.FileName  `json:"dynamic_config_storage_suffix" yaml:"dynamic_config_storage_suffix"`
	CreationTimeout            units.Duration `json:"creation_timeout" yaml:"creation_timeout"`
	ConnectionSuffix           name.FileName  `json:"connection_suffix" yaml:"connection_suffix"`
	EventConnectionSuffix      name.FileName  `json:"event_connection_suffix" yaml:"event_connection_suffix"`
}

// GlobalNodeDocument mirrors GlobalNode.
type GlobalNodeDocument struct {
	Directory                     name.Path     `json:"directory" yaml:"directory"`
	MonitorSuffix                 name.FileName `json:"monitor_suffix" yaml:"monitor_suffix"`
	StaticConfigSuffix            name.FileName `json:"static_config_suffix" yaml:"static_config_suffix"`
	ServiceTagSuffix              name.FileName `json:"service_tag_suffix" yaml:"service_tag_suffix"`
	CleanupDeadNodesOnCreation    bool          `json:"cleanup_dead_nodes_on_creation" yaml:"cleanup_dead_nodes_on_creation"`
	CleanupDeadNodesOnDestruction bool          `json:"cleanup_dead_nodes_on_destruction" yaml:"cleanup_dead_nodes_on_destruction"`
}

// DefaultsDocument mirrors Defaults.
type DefaultsDocument struct {
	Event            DefaultsEventDocument            `json:"event" yaml:"event"`
	PublishSubscribe DefaultsPublishSubscribeDocument `json:"publish_subscribe" yaml:"publish_subscribe"`
}

// DefaultsEventDocument mirrors DefaultsEvent.
type DefaultsEventDocument struct {
	MaxListeners    uint64 `json:"max_listeners" yaml:"max_listeners"`
	MaxNotifiers    uint64 `json:"max_notifiers" yaml:"max_notifiers"`
	MaxNodes        uint64 `json:"max_nodes" yaml:"max_nodes"`
	EventIDMaxValue uint64 `json:"event_id_max_value" yaml:"event_id_max_value"`
}

// DefaultsPublishSubscribeDocument mirrors DefaultsPublishSubscribe.
type DefaultsPublishSubscribeDocument struct {
	MaxSubscribers                    uint64                  `json:"max_subscribers" yaml:"max_subscribers"`
	MaxPublishers                     uint64                  `json:"max_publishers" yaml:"max_publishers"`
	MaxNodes                          uint64                  `json:"max_nodes" yaml:"max_nodes"`
	SubscriberMaxBufferSize           uint64                  `json:"subscriber_max_buffer_size" yaml:"subscriber_max_buffer_size"`
	SubscriberMaxBorrowedSamples      uint64                  `json:"subscriber_max_borrowed_samples" yaml:"subscriber_max_borrowed_samples"`
	PublisherMaxLoanedSamples         uint64                  `json:"publisher_max_loaned_samples" yaml:"publisher_max_loaned_samples"`
	PublisherHistorySize              uint64                  `json:"publisher_history_size" yaml:"publisher_history_size"`
	SubscriberExpiredConnectionBuffer uint64                  `json:"subscriber_expired_connection_buffer" yaml:"subscriber_expired_connection_buffer"`
	EnableSafeOverflow                bool                    `json:"enable_safe_overflow" yaml:"enable_safe_overflow"`
	UnableToDeliverStrategy           UnableToDeliverStrategy `json:"unable_to_deliver_strategy" yaml:"unable_to_deliver_strategy"`
}

// Document returns the rendering mirror of c.
func (c *Config) Document() Document {
	service := &c.global.service
	node := &c.global.node
	event := &c.defaults.event
	pubsub := &c.defaults.publishSubscribe
	return Document{
		Global: GlobalDocument{
			Prefix:   c.global.prefix,
			RootPath: c.global.rootPath,
			Service: GlobalServiceDocument{
				Directory:                  service.directory,
				PublisherDataSegmentSuffix: service.publisherDataSegmentSuffix,
				StaticConfigStorageSuffix:  service.staticConfigStorageSuffix,
				DynamicConfigStorageSuffix: service.dynamicConfigStorageSuffix,
				CreationTimeout:            service.creationTimeout,
				ConnectionSuffix:           service.connectionSuffix,
				EventConnectionSuffix:      service.eventConnectionSuffix,
			},
			Node: GlobalNodeDocument{
				Directory:                     node.directory,
				MonitorSuffix:                 node.monitorSuffix,
				StaticConfigSuffix:            node.staticConfigSuffix,
				ServiceTagSuffix:              node.serviceTagSuffix,
				CleanupDeadNodesOnCreation:    node.cleanupDeadNodesOnCreation,
				CleanupDeadNodesOnDestruction: node.cleanupDeadNodesOnDestruction,
			},
		},
		Defaults: DefaultsDocument{
			Event: DefaultsEventDocument{
				MaxListeners:    event.maxListeners,
				MaxNotifiers:    event.maxNotifiers,
				MaxNodes:        event.maxNodes,
				EventIDMaxValue: event.eventIDMaxValue,
			},
			PublishSubscribe: DefaultsPublishSubscribeDocument{
				MaxSubscribers:                    pubsub.maxSubscribers,
				MaxPublishers:                     pubsub.maxPublishers,
				MaxNodes:                          pubsub.maxNodes,
				SubscriberMaxBufferSize:           pubsub.subscriberMaxBufferSize,
				SubscriberMaxBorrowedSamples:      pubsub.subscriberMaxBorrowedSamples,
				PublisherMaxLoanedSamples:         pubsub.publisherMaxLoanedSamples,
				PublisherHistorySize:              pubsub.publisherHistorySize,
				SubscriberExpiredConnectionBuffer: pubsub.subscriberExpiredConnectionBuffer,
				EnableSafeOverflow:                pubsub.enableSafeOverflow,
				UnableToDeliverStrategy:           pubsub.unableToDeliverStrategy,
			},
		},
	}
}

// MarshalYAML implements yaml.Marshaler.
func (c *Config) MarshalYAML() (any, error) {
	return c.Document(), nil
}

// MarshalJSON implements json.Marshaler.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Document())
}

// MarshalCBOR implements cbor.Marshaler with the deterministic encoding
// of lib/codec.
func (c *Config) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(c.Document())
}

// Fingerprint returns the hex BLAKE3 digest of the deterministic CBOR
// encoding of c. Equal configs have equal fingerprints; any difference
// in any field changes it.
func (c *Config) Fingerprint() string {
	data, err := codec.Marshal(c.Document())
	if err != nil {
		// Every Document field is a fixed-size integer, bool or a
		// TextMarshaler that cannot fail.
		panic(fmt.Sprintf("config: encoding document for fingerprint: %v", err))
	}
	digest := blake3.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// LogValue implements slog.LogValuer with the fields that identify
// where a process puts its artifacts, plus the fingerprint.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("prefix", c.global.prefix.String()),
		slog.String("root_path", c.global.rootPath.String()),
		slog.String("service_directory", c.global.service.directory.String()),
		slog.String("node_directory", c.global.node.directory.String()),
		slog.String("fingerprint", c.Fingerprint()),
	)
}
