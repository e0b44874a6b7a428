// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/zerocopy/lib/config"
	"github.com/bureau-foundation/zerocopy/lib/name"
	"github.com/bureau-foundation/zerocopy/lib/units"
)

// setting binds one command-line flag to one Config setter. Only flags
// the user actually passed are applied, so an untouched flag never
// overwrites a value with its displayed default.
type setting struct {
	flag  string
	apply func(flagSet *pflag.FlagSet, cfg *config.Config) error
}

func fileNameSetting(flagSet *pflag.FlagSet, flag, defaultValue, usage string, set func(*config.Config, name.FileName)) setting {
	flagSet.String(flag, defaultValue, usage)
	return setting{flag: flag, apply: func(flagSet *pflag.FlagSet, cfg *config.Config) error {
		raw, err := flagSet.GetString(flag)
		if err != nil {
			return err
		}
		value, err := name.NewFileName(raw)
		if err != nil {
			return err
		}
		set(cfg, value)
		return nil
	}}
}

func pathSetting(flagSet *pflag.FlagSet, flag, defaultValue, usage string, set func(*config.Config, name.Path)) setting {
	flagSet.String(flag, defaultValue, usage)
	return setting{flag: flag, apply: func(flagSet *pflag.FlagSet, cfg *config.Config) error {
		raw, err := flagSet.GetString(flag)
		if err != nil {
			return err
		}
		value, err := name.NewPath(raw)
		if err != nil {
			return err
		}
		set(cfg, value)
		return nil
	}}
}

func uintSetting(flagSet *pflag.FlagSet, flag string, defaultValue uint64, usage string, set func(*config.Config, uint64)) setting {
	flagSet.Uint64(flag, defaultValue, usage)
	return setting{flag: flag, apply: func(flagSet *pflag.FlagSet, cfg *config.Config) error {
		value, err := flagSet.GetUint64(flag)
		if err != nil {
			return err
		}
		set(cfg, value)
		return nil
	}}
}

func boolSetting(flagSet *pflag.FlagSet, flag string, defaultValue bool, usage string, set func(*config.Config, bool)) setting {
	flagSet.Bool(flag, defaultValue, usage)
	return setting{flag: flag, apply: func(flagSet *pflag.FlagSet, cfg *config.Config) error {
		value, err := flagSet.GetBool(flag)
		if err != nil {
			return err
		}
		set(cfg, value)
		return nil
	}}
}

func textSetting(flagSet *pflag.FlagSet, flag, defaultValue, usage string, set func(*config.Config, string) error) setting {
	flagSet.String(flag, defaultValue, usage)
	return setting{flag: flag, apply: func(flagSet *pflag.FlagSet, cfg *config.Config) error {
		raw, err := flagSet.GetString(flag)
		if err != nil {
			return err
		}
		return set(cfg, raw)
	}}
}

// registerSettings adds one flag per Config field to flagSet.
func registerSettings(flagSet *pflag.FlagSet) []setting {
	service := func(c *config.Config) *config.GlobalService { return c.Global().Service() }
	node := func(c *config.Config) *config.GlobalNode { return c.Global().Node() }
	event := func(c *config.Config) *config.DefaultsEvent { return c.Defaults().Event() }
	pubsub := func(c *config.Config) *config.DefaultsPublishSubscribe { return c.Defaults().PublishSubscribe() }

	return []setting{
		fileNameSetting(flagSet, "prefix", config.DefaultPrefix,
			"prefix of every artifact file name",
			func(c *config.Config, v name.FileName) { c.Global().SetPrefix(v) }),
		pathSetting(flagSet, "root-path", config.DefaultRootPath,
			"directory all artifacts live under",
			func(c *config.Config, v name.Path) { c.Global().SetRootPath(v) }),

		pathSetting(flagSet, "service-directory", config.DefaultServiceDirectory,
			"service directory, relative to the root path",
			func(c *config.Config, v name.Path) { service(c).SetDirectory(v) }),
		fileNameSetting(flagSet, "publisher-data-segment-suffix", config.DefaultPublisherDataSegmentSuffix,
			"suffix of publisher data segments",
			func(c *config.Config, v name.FileName) { service(c).SetPublisherDataSegmentSuffix(v) }),
		fileNameSetting(flagSet, "static-config-storage-suffix", config.DefaultStaticConfigStorageSuffix,
			"suffix of service static config files",
			func(c *config.Config, v name.FileName) { service(c).SetStaticConfigStorageSuffix(v) }),
		fileNameSetting(flagSet, "dynamic-config-storage-suffix", config.DefaultDynamicConfigStorageSuffix,
			"suffix of service dynamic config segments",
			func(c *config.Config, v name.FileName) { service(c).SetDynamicConfigStorageSuffix(v) }),
		textSetting(flagSet, "creation-timeout", (time.Duration(config.DefaultCreationTimeoutMilliseconds) * time.Millisecond).String(),
			"how long openers wait for a service being created",
			func(c *config.Config, raw string) error {
				var value units.Duration
				if err := value.UnmarshalText([]byte(raw)); err != nil {
					return err
				}
				service(c).SetCreationTimeout(value)
				return nil
			}),
		fileNameSetting(flagSet, "connection-suffix", config.DefaultConnectionSuffix,
			"suffix of publisher-subscriber connections",
			func(c *config.Config, v name.FileName) { service(c).SetConnectionSuffix(v) }),
		fileNameSetting(flagSet, "event-connection-suffix", config.DefaultEventConnectionSuffix,
			"suffix of event connections",
			func(c *config.Config, v name.FileName) { service(c).SetEventConnectionSuffix(v) }),

		pathSetting(flagSet, "node-directory", config.DefaultNodeDirectory,
			"node directory, relative to the root path",
			func(c *config.Config, v name.Path) { node(c).SetDirectory(v) }),
		fileNameSetting(flagSet, "node-monitor-suffix", config.DefaultMonitorSuffix,
			"suffix of node monitor markers",
			func(c *config.Config, v name.FileName) { node(c).SetMonitorSuffix(v) }),
		fileNameSetting(flagSet, "node-static-config-suffix", config.DefaultNodeStaticConfigSuffix,
			"suffix of node details files",
			func(c *config.Config, v name.FileName) { node(c).SetStaticConfigSuffix(v) }),
		fileNameSetting(flagSet, "node-service-tag-suffix", config.DefaultServiceTagSuffix,
			"suffix of node service tags",
			func(c *config.Config, v name.FileName) { node(c).SetServiceTagSuffix(v) }),
		boolSetting(flagSet, "cleanup-dead-nodes-on-creation", config.DefaultCleanupDeadNodesOnCreation,
			"remove dead nodes when a node is created",
			func(c *config.Config, v bool) { node(c).SetCleanupDeadNodesOnCreation(v) }),
		boolSetting(flagSet, "cleanup-dead-nodes-on-destruction", config.DefaultCleanupDeadNodesOnDestruction,
			"remove dead nodes when a node is closed",
			func(c *config.Config, v bool) { node(c).SetCleanupDeadNodesOnDestruction(v) }),

		uintSetting(flagSet, "event-max-listeners", config.DefaultEventMaxListeners,
			"default listener ceiling of event services",
			func(c *config.Config, v uint64) { event(c).SetMaxListeners(v) }),
		uintSetting(flagSet, "event-max-notifiers", config.DefaultEventMaxNotifiers,
			"default notifier ceiling of event services",
			func(c *config.Config, v uint64) { event(c).SetMaxNotifiers(v) }),
		uintSetting(flagSet, "event-max-nodes", config.DefaultEventMaxNodes,
			"default node ceiling of event services",
			func(c *config.Config, v uint64) { event(c).SetMaxNodes(v) }),
		uintSetting(flagSet, "event-id-max-value", config.DefaultEventIDMaxValue,
			"default largest event id",
			func(c *config.Config, v uint64) { event(c).SetEventIDMaxValue(v) }),

		uintSetting(flagSet, "max-subscribers", config.DefaultMaxSubscribers,
			"default subscriber ceiling of publish-subscribe services",
			func(c *config.Config, v uint64) { pubsub(c).SetMaxSubscribers(v) }),
		uintSetting(flagSet, "max-publishers", config.DefaultMaxPublishers,
			"default publisher ceiling of publish-subscribe services",
			func(c *config.Config, v uint64) { pubsub(c).SetMaxPublishers(v) }),
		uintSetting(flagSet, "publish-subscribe-max-nodes", config.DefaultPublishSubscribeMaxNodes,
			"default node ceiling of publish-subscribe services",
			func(c *config.Config, v uint64) { pubsub(c).SetMaxNodes(v) }),
		uintSetting(flagSet, "subscriber-max-buffer-size", config.DefaultSubscriberMaxBufferSize,
			"default subscriber buffer size",
			func(c *config.Config, v uint64) { pubsub(c).SetSubscriberMaxBufferSize(v) }),
		uintSetting(flagSet, "subscriber-max-borrowed-samples", config.DefaultSubscriberMaxBorrowedSamples,
			"default number of samples a subscriber may hold",
			func(c *config.Config, v uint64) { pubsub(c).SetSubscriberMaxBorrowedSamples(v) }),
		uintSetting(flagSet, "publisher-max-loaned-samples", config.DefaultPublisherMaxLoanedSamples,
			"default number of samples a publisher may loan",
			func(c *config.Config, v uint64) { pubsub(c).SetPublisherMaxLoanedSamples(v) }),
		uintSetting(flagSet, "publisher-history-size", config.DefaultPublisherHistorySize,
			"default history replayed to late subscribers",
			func(c *config.Config, v uint64) { pubsub(c).SetPublisherHistorySize(v) }),
		uintSetting(flagSet, "subscriber-expired-connection-buffer", config.DefaultSubscriberExpiredConnectionBuffer,
			"default buffer for connections of departed publishers",
			func(c *config.Config, v uint64) { pubsub(c).SetSubscriberExpiredConnectionBuffer(v) }),
		boolSetting(flagSet, "enable-safe-overflow", config.DefaultEnableSafeOverflow,
			"overwrite the oldest sample when a subscriber buffer is full",
			func(c *config.Config, v bool) { pubsub(c).SetEnableSafeOverflow(v) }),
		textSetting(flagSet, "unable-to-deliver-strategy", config.Block.String(),
			"publisher behavior when a subscriber cannot receive: block or discard_sample",
			func(c *config.Config, raw string) error {
				strategy, err := config.ParseUnableToDeliverStrategy(raw)
				if err != nil {
					return err
				}
				pubsub(c).SetUnableToDeliverStrategy(strategy)
				return nil
			}),
	}
}

// seedConfig starts from the built-in defaults and applies every flag
// the user passed.
func seedConfig(flagSet *pflag.FlagSet, settings []setting) (*config.Config, error) {
	cfg := config.Default()
	for _, s := range settings {
		if !flagSet.Changed(s.flag) {
			continue
		}
		if err := s.apply(flagSet, cfg); err != nil {
			return nil, fmt.Errorf("--%s: %w", s.flag, err)
		}
	}
	return cfg, nil
}
