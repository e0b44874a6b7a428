// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"math"
	"reflect"
	"testing"

	"github.com/bureau-foundation/zerocopy/lib/name"
	"github.com/bureau-foundation/zerocopy/lib/units"
)

// uintField is one integer ceiling reachable through the accessors.
type uintField struct {
	name string
	get  func(*Config) uint64
	set  func(*Config, uint64)
}

func uintFields() []uintField {
	return []uintField{
		{"defaults.event.max_listeners",
			func(c *Config) uint64 { return c.Defaults().Event().MaxListeners() },
			func(c *Config, v uint64) { c.Defaults().Event().SetMaxListeners(v) }},
		{"defaults.event.max_notifiers",
			func(c *Config) uint64 { return c.Defaults().Event().MaxNotifiers() },
			func(c *Config, v uint64) { c.Defaults().Event().SetMaxNotifiers(v) }},
		{"defaults.event.max_nodes",
			func(c *Config) uint64 { return c.Defaults().Event().MaxNodes() },
			func(c *Config, v uint64) { c.Defaults().Event().SetMaxNodes(v) }},
		{"defaults.event.event_id_max_value",
			func(c *Config) uint64 { return c.Defaults().Event().EventIDMaxValue() },
			func(c *Config, v uint64) { c.Defaults().Event().SetEventIDMaxValue(v) }},
		{"defaults.publish_subscribe.max_subscribers",
			func(c *Config) uint64 { return c.Defaults().PublishSubscribe().MaxSubscribers() },
			func(c *Config, v uint64) { c.Defaults().PublishSubscribe().SetMaxSubscribers(v) }},
		{"defaults.publish_subscribe.max_publishers",
			func(c *Config) uint64 { return c.Defaults().PublishSubscribe().MaxPublishers() },
			func(c *Config, v uint64) { c.Defaults().PublishSubscribe().SetMaxPublishers(v) }},
		{"defaults.publish_subscribe.max_nodes",
			func(c *Config) uint64 { return c.Defaults().PublishSubscribe().MaxNodes() },
			func(c *Config, v uint64) { c.Defaults().PublishSubscribe().SetMaxNodes(v) }},
		{"defaults.publish_subscribe.subscriber_max_buffer_size",
			func(c *Config) uint64 { return c.Defaults().PublishSubscribe().SubscriberMaxBufferSize() },
			func(c *Config, v uint64) { c.Defaults().PublishSubscribe().SetSubscriberMaxBufferSize(v) }},
		{"defaults.publish_subscribe.subscriber_max_borrowed_samples",
			func(c *Config) uint64 { return c.Defaults().PublishSubscribe().SubscriberMaxBorrowedSamples() },
			func(c *Config, v uint64) { c.Defaults().PublishSubscribe().SetSubscriberMaxBorrowedSamples(v) }},
		{"defaults.publish_subscribe.publisher_max_loaned_samples",
			func(c *Config) uint64 { return c.Defaults().PublishSubscribe().PublisherMaxLoanedSamples() },
			func(c *Config, v uint64) { c.Defaults().PublishSubscribe().SetPublisherMaxLoanedSamples(v) }},
		{"defaults.publish_subscribe.publisher_history_size",
			func(c *Config) uint64 { return c.Defaults().PublishSubscribe().PublisherHistorySize() },
			func(c *Config, v uint64) { c.Defaults().PublishSubscribe().SetPublisherHistorySize(v) }},
		{"defaults.publish_subscribe.subscriber_expired_connection_buffer",
			func(c *Config) uint64 { return c.Defaults().PublishSubscribe().SubscriberExpiredConnectionBuffer() },
			func(c *Config, v uint64) { c.Defaults().PublishSubscribe().SetSubscriberExpiredConnectionBuffer(v) }},
	}
}

// fileNameField is one FileName reachable through the accessors.
type fileNameField struct {
	name string
	get  func(*Config) name.FileName
	set  func(*Config, name.FileName)
}

func fileNameFields() []fileNameField {
	return []fileNameField{
		{"global.prefix",
			func(c *Config) name.FileName { return c.Global().Prefix() },
			func(c *Config, v name.FileName) { c.Global().SetPrefix(v) }},
		{"global.service.publisher_data_segment_suffix",
			func(c *Config) name.FileName { return c.Global().Service().PublisherDataSegmentSuffix() },
			func(c *Config, v name.FileName) { c.Global().Service().SetPublisherDataSegmentSuffix(v) }},
		{"global.service.static_config_storage_suffix",
			func(c *Config) name.FileName { return c.Global().Service().StaticConfigStorageSuffix() },
			func(c *Config, v name.FileName) { c.Global().Service().SetStaticConfigStorageSuffix(v) }},
		{"global.service.dynamic_config_storage_suffix",
			func(c *Config) name.FileName { return c.Global().Service().DynamicConfigStorageSuffix() },
			func(c *Config, v name.FileName) { c.Global().Service().SetDynamicConfigStorageSuffix(v) }},
		{"global.service.connection_suffix",
			func(c *Config) name.FileName { return c.Global().Service().ConnectionSuffix() },
			func(c *Config, v name.FileName) { c.Global().Service().SetConnectionSuffix(v) }},
		{"global.service.event_connection_suffix",
			func(c *Config) name.FileName { return c.Global().Service().EventConnectionSuffix() },
			func(c *Config, v name.FileName) { c.Global().Service().SetEventConnectionSuffix(v) }},
		{"global.node.monitor_suffix",
			func(c *Config) name.FileName { return c.Global().Node().MonitorSuffix() },
			func(c *Config, v name.FileName) { c.Global().Node().SetMonitorSuffix(v) }},
		{"global.node.static_config_suffix",
			func(c *Config) name.FileName { return c.Global().Node().StaticConfigSuffix() },
			func(c *Config, v name.FileName) { c.Global().Node().SetStaticConfigSuffix(v) }},
		{"global.node.service_tag_suffix",
			func(c *Config) name.FileName { return c.Global().Node().ServiceTagSuffix() },
			func(c *Config, v name.FileName) { c.Global().Node().SetServiceTagSuffix(v) }},
	}
}

// pathField is one Path reachable through the accessors.
type pathField struct {
	name string
	get  func(*Config) name.Path
	set  func(*Config, name.Path)
}

func pathFields() []pathField {
	return []pathField{
		{"global.root_path",
			func(c *Config) name.Path { return c.Global().RootPath() },
			func(c *Config, v name.Path) { c.Global().SetRootPath(v) }},
		{"global.service.directory",
			func(c *Config) name.Path { return c.Global().Service().Directory() },
			func(c *Config, v name.Path) { c.Global().Service().SetDirectory(v) }},
		{"global.node.directory",
			func(c *Config) name.Path { return c.Global().Node().Directory() },
			func(c *Config, v name.Path) { c.Global().Node().SetDirectory(v) }},
	}
}

// boolField is one flag reachable through the accessors.
type boolField struct {
	name string
	get  func(*Config) bool
	set  func(*Config, bool)
}

func boolFields() []boolField {
	return []boolField{
		{"global.node.cleanup_dead_nodes_on_creation",
			func(c *Config) bool { return c.Global().Node().CleanupDeadNodesOnCreation() },
			func(c *Config, v bool) { c.Global().Node().SetCleanupDeadNodesOnCreation(v) }},
		{"global.node.cleanup_dead_nodes_on_destruction",
			func(c *Config) bool { return c.Global().Node().CleanupDeadNodesOnDestruction() },
			func(c *Config, v bool) { c.Global().Node().SetCleanupDeadNodesOnDestruction(v) }},
		{"defaults.publish_subscribe.enable_safe_overflow",
			func(c *Config) bool { return c.Defaults().PublishSubscribe().EnableSafeOverflow() },
			func(c *Config, v bool) { c.Defaults().PublishSubscribe().SetEnableSafeOverflow(v) }},
	}
}

func TestUintFieldRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 123, 13113, math.MaxUint32, math.MaxUint64}
	for _, field := range uintFields() {
		t.Run(field.name, func(t *testing.T) {
			cfg := Default()
			for _, value := range values {
				field.set(cfg, value)
				if got := field.get(cfg); got != value {
					t.Errorf("after set(%d), get() = %d", value, got)
				}
			}
		})
	}
}

func TestUintFieldIndependence(t *testing.T) {
	// Setting any one ceiling must leave every other ceiling at its
	// default.
	fields := uintFields()
	for i, target := range fields {
		t.Run(target.name, func(t *testing.T) {
			cfg := Default()
			reference := Default()
			target.set(cfg, 987654321)
			for j, other := range fields {
				if i == j {
					continue
				}
				if other.get(cfg) != other.get(reference) {
					t.Errorf("setting %s changed %s from %d to %d",
						target.name, other.name, other.get(reference), other.get(cfg))
				}
			}
		})
	}
}

func TestFileNameFieldRoundTrip(t *testing.T) {
	values := []string{"oh_my_dot", "no_touchy_fishy", "its_a_smelly_fishy", "dont_eat_elephants"}
	for _, field := range fileNameFields() {
		t.Run(field.name, func(t *testing.T) {
			cfg := Default()
			for _, raw := range values {
				value := name.MustFileName(raw)
				field.set(cfg, value)
				if got := field.get(cfg); got != value || got.String() != raw {
					t.Errorf("after set(%q), get() = %q", raw, got)
				}
			}
		})
	}
}

func TestPathFieldRoundTrip(t *testing.T) {
	values := []string{"some_path", "look/there/flies/a/dead/pidgin", "/eat/the/carrototier/"}
	for _, field := range pathFields() {
		t.Run(field.name, func(t *testing.T) {
			cfg := Default()
			for _, raw := range values {
				value := name.MustPath(raw)
				field.set(cfg, value)
				if got := field.get(cfg); got.String() != raw {
					t.Errorf("after set(%q), get() = %q", raw, got)
				}
			}
		})
	}
}

func TestBoolFieldToggle(t *testing.T) {
	for _, field := range boolFields() {
		t.Run(field.name, func(t *testing.T) {
			cfg := Default()
			original := field.get(cfg)
			for _, value := range []bool{true, false, !original, original} {
				field.set(cfg, value)
				if got := field.get(cfg); got != value {
					t.Errorf("after set(%v), get() = %v", value, got)
				}
			}
			if field.get(cfg) != original {
				t.Errorf("toggling twice did not restore %v", original)
			}
		})
	}
}

func TestUnableToDeliverStrategy(t *testing.T) {
	cfg := Default()
	pubsub := cfg.Defaults().PublishSubscribe()

	pubsub.SetUnableToDeliverStrategy(Block)
	if pubsub.UnableToDeliverStrategy() != Block {
		t.Errorf("got %v, want Block", pubsub.UnableToDeliverStrategy())
	}
	pubsub.SetUnableToDeliverStrategy(DiscardSample)
	if pubsub.UnableToDeliverStrategy() != DiscardSample {
		t.Errorf("got %v, want DiscardSample", pubsub.UnableToDeliverStrategy())
	}

	var zero UnableToDeliverStrategy
	if zero != Block {
		t.Error("zero value strategy is not Block")
	}
	if Block == DiscardSample {
		t.Error("Block and DiscardSample compare equal")
	}
}

func TestUnableToDeliverStrategyText(t *testing.T) {
	for _, strategy := range []UnableToDeliverStrategy{Block, DiscardSample} {
		text, err := strategy.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText: %v", err)
		}
		var parsed UnableToDeliverStrategy
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if parsed != strategy {
			t.Errorf("round trip of %v produced %v", strategy, parsed)
		}
	}
	if Block.String() != "block" || DiscardSample.String() != "discard_sample" {
		t.Errorf("String() = %q, %q", Block, DiscardSample)
	}
	if _, err := ParseUnableToDeliverStrategy("retry"); err == nil {
		t.Error("ParseUnableToDeliverStrategy accepted an unknown strategy")
	}
}

func TestCreationTimeout(t *testing.T) {
	cfg := Default()
	cfg.Global().Service().SetCreationTimeout(units.FromSeconds(1234))

	timeout := cfg.Global().Service().CreationTimeout()
	if timeout.Seconds() != 1234 {
		t.Errorf("Seconds() = %d, want 1234", timeout.Seconds())
	}
	if timeout != units.FromSeconds(1234) {
		t.Errorf("CreationTimeout() = %v, want 1234s", timeout)
	}
}

func TestMaxListenersLeavesNotifiersAtDefault(t *testing.T) {
	cfg := Default()
	cfg.Defaults().Event().SetMaxListeners(123)

	if got := cfg.Defaults().Event().MaxListeners(); got != 123 {
		t.Errorf("MaxListeners() = %d, want 123", got)
	}
	if got := cfg.Defaults().Event().MaxNotifiers(); got != DefaultEventMaxNotifiers {
		t.Errorf("MaxNotifiers() = %d, want default %d", got, DefaultEventMaxNotifiers)
	}
}

func TestDefaultIndependentInstances(t *testing.T) {
	first := Default()
	second := Default()
	if !first.Equal(second) {
		t.Fatal("two Default() values differ")
	}
	if first.Fingerprint() != second.Fingerprint() {
		t.Fatal("two Default() values have different fingerprints")
	}

	first.Defaults().PublishSubscribe().SetMaxPublishers(99)
	first.Global().SetPrefix(name.MustFileName("other_"))

	if second.Defaults().PublishSubscribe().MaxPublishers() != DefaultMaxPublishers {
		t.Error("mutating one Default() value changed another")
	}
	if second.Global().Prefix().String() != DefaultPrefix {
		t.Error("mutating one Default() prefix changed another")
	}
	if !second.Equal(Default()) {
		t.Error("built-in table was modified through a returned Config")
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := Default()
	original.Defaults().Event().SetMaxNodes(5)
	original.Global().Node().SetDirectory(name.MustPath("custom_nodes"))

	clone := original.Clone()
	if !clone.Equal(original) {
		t.Fatal("clone differs from original")
	}

	clone.Defaults().Event().SetMaxNodes(6)
	clone.Global().Node().SetDirectory(name.MustPath("other_nodes"))
	clone.Global().Service().SetCreationTimeout(units.FromSeconds(9))
	clone.Defaults().PublishSubscribe().SetUnableToDeliverStrategy(DiscardSample)

	if original.Defaults().Event().MaxNodes() != 5 {
		t.Errorf("original MaxNodes changed to %d", original.Defaults().Event().MaxNodes())
	}
	if original.Global().Node().Directory().String() != "custom_nodes" {
		t.Errorf("original node directory changed to %q", original.Global().Node().Directory())
	}
	if original.Global().Service().CreationTimeout() != units.FromMilliseconds(DefaultCreationTimeoutMilliseconds) {
		t.Error("original creation timeout changed")
	}
	if original.Defaults().PublishSubscribe().UnableToDeliverStrategy() != Block {
		t.Error("original strategy changed")
	}

	original.Defaults().Event().SetMaxNodes(7)
	if clone.Defaults().Event().MaxNodes() != 6 {
		t.Errorf("mutating original changed clone MaxNodes to %d", clone.Defaults().Event().MaxNodes())
	}
}

func TestEqual(t *testing.T) {
	var nilConfig *Config
	if !nilConfig.Equal(nil) {
		t.Error("nil should equal nil")
	}
	if Default().Equal(nil) {
		t.Error("non-nil should not equal nil")
	}
	changed := Default()
	changed.Defaults().PublishSubscribe().SetEnableSafeOverflow(false)
	if Default().Equal(changed) {
		t.Error("configs differing in one flag compare equal")
	}
}

func TestDefaultTable(t *testing.T) {
	cfg := Default()
	global := cfg.Global()
	service := global.Service()
	node := global.Node()
	event := cfg.Defaults().Event()
	pubsub := cfg.Defaults().PublishSubscribe()

	names := []struct {
		field string
		got   string
		want  string
	}{
		{"prefix", global.Prefix().String(), "iox2_"},
		{"root_path", global.RootPath().String(), "/tmp/iceoryx2/"},
		{"service.directory", service.Directory().String(), "services"},
		{"service.publisher_data_segment_suffix", service.PublisherDataSegmentSuffix().String(), ".publisher_data"},
		{"service.static_config_storage_suffix", service.StaticConfigStorageSuffix().String(), ".service"},
		{"service.dynamic_config_storage_suffix", service.DynamicConfigStorageSuffix().String(), ".dynamic"},
		{"service.connection_suffix", service.ConnectionSuffix().String(), ".connection"},
		{"service.event_connection_suffix", service.EventConnectionSuffix().String(), ".event"},
		{"node.directory", node.Directory().String(), "nodes"},
		{"node.monitor_suffix", node.MonitorSuffix().String(), ".node_monitor"},
		{"node.static_config_suffix", node.StaticConfigSuffix().String(), ".details"},
		{"node.service_tag_suffix", node.ServiceTagSuffix().String(), ".service_tag"},
	}
	for _, tt := range names {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.field, tt.got, tt.want)
		}
	}

	integers := []struct {
		field string
		got   uint64
		want  uint64
	}{
		{"event.max_listeners", event.MaxListeners(), 16},
		{"event.max_notifiers", event.MaxNotifiers(), 16},
		{"event.max_nodes", event.MaxNodes(), 36},
		{"event.event_id_max_value", event.EventIDMaxValue(), math.MaxUint32},
		{"publish_subscribe.max_subscribers", pubsub.MaxSubscribers(), 8},
		{"publish_subscribe.max_publishers", pubsub.MaxPublishers(), 2},
		{"publish_subscribe.max_nodes", pubsub.MaxNodes(), 20},
		{"publish_subscribe.subscriber_max_buffer_size", pubsub.SubscriberMaxBufferSize(), 2},
		{"publish_subscribe.subscriber_max_borrowed_samples", pubsub.SubscriberMaxBorrowedSamples(), 2},
		{"publish_subscribe.publisher_max_loaned_samples", pubsub.PublisherMaxLoanedSamples(), 2},
		{"publish_subscribe.publisher_history_size", pubsub.PublisherHistorySize(), 0},
		{"publish_subscribe.subscriber_expired_connection_buffer", pubsub.SubscriberExpiredConnectionBuffer(), 128},
		{"service.creation_timeout_ms", service.CreationTimeout().Milliseconds(), 500},
	}
	for _, tt := range integers {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.field, tt.got, tt.want)
		}
	}

	if !node.CleanupDeadNodesOnCreation() || !node.CleanupDeadNodesOnDestruction() {
		t.Error("dead node cleanup should default to enabled")
	}
	if !pubsub.EnableSafeOverflow() {
		t.Error("safe overflow should default to enabled")
	}
	if pubsub.UnableToDeliverStrategy() != Block {
		t.Errorf("strategy = %v, want block", pubsub.UnableToDeliverStrategy())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

// TestSectionsArePointerFree guards Clone: a struct copy is only a deep
// copy while no section holds a pointer, slice, map, channel, function
// or interface.
func TestSectionsArePointerFree(t *testing.T) {
	var walk func(path string, typ reflect.Type)
	walk = func(path string, typ reflect.Type) {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
			t.Errorf("%s has reference kind %s; Clone would alias it", path, typ.Kind())
		case reflect.Struct:
			for i := 0; i < typ.NumField(); i++ {
				field := typ.Field(i)
				walk(path+"."+field.Name, field.Type)
			}
		case reflect.Array:
			walk(path+"[]", typ.Elem())
		}
	}
	walk("Config", reflect.TypeOf(Config{}))
}
