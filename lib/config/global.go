// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/bureau-foundation/zerocopy/lib/name"
	"github.com/bureau-foundation/zerocopy/lib/units"
)

// Global is the system-wide naming and path policy. RootPath combined
// with Prefix forms the base namespace of every artifact a process
// creates or discovers.
type Global struct {
	prefix   name.FileName
	rootPath name.Path
	service  GlobalService
	node     GlobalNode
}

// Prefix is prepended to every artifact name.
func (g *Global) Prefix() name.FileName { return g.prefix }

// SetPrefix replaces the artifact name prefix.
func (g *Global) SetPrefix(value name.FileName) { g.prefix = value }

// RootPath is the directory under which the service and node
// directories live.
func (g *Global) RootPath() name.Path { return g.rootPath }

// SetRootPath replaces the root path.
func (g *Global) SetRootPath(value name.Path) { g.rootPath = value }

// Service returns the service artifact settings.
func (g *Global) Service() *GlobalService { return &g.service }

// Node returns the node artifact settings.
func (g *Global) Node() *GlobalNode { return &g.node }

// GlobalService controls where service artifacts live and how they are
// named. The suffixes distinguish artifact kinds that share one
// directory, so they must differ from each other (see Config.Validate).
type GlobalService struct {
	directory                  name.Path
	publisherDataSegmentSuffix name.FileName
	staticConfigStorageSuffix  name.FileName
	dynamicConfigStorageSuffix name.FileName
	creationTimeout            units.Duration
	connectionSuffix           name.FileName
	eventConnectionSuffix      name.FileName
}

// Directory is the service directory, relative to the root path.
func (s *GlobalService) Directory() name.Path { return s.directory }

// SetDirectory replaces the service directory.
func (s *GlobalService) SetDirectory(value name.Path) { s.directory = value }

// PublisherDataSegmentSuffix names a publisher's shared-memory data
// segment.
func (s *GlobalService) PublisherDataSegmentSuffix() name.FileName {
	return s.publisherDataSegmentSuffix
}

// SetPublisherDataSegmentSuffix replaces the publisher data segment
// suffix.
func (s *GlobalService) SetPublisherDataSegmentSuffix(value name.FileName) {
	s.publisherDataSegmentSuffix = value
}

// StaticConfigStorageSuffix names the file holding a service's static
// configuration, which is also how services are discovered.
func (s *GlobalService) StaticConfigStorageSuffix() name.FileName {
	return s.staticConfigStorageSuffix
}

// SetStaticConfigStorageSuffix replaces the static config storage
// suffix.
func (s *GlobalService) SetStaticConfigStorageSuffix(value name.FileName) {
	s.staticConfigStorageSuffix = value
}

// DynamicConfigStorageSuffix names the storage holding a service's
// dynamic state (connected ports).
func (s *GlobalService) DynamicConfigStorageSuffix() name.FileName {
	return s.dynamicConfigStorageSuffix
}

// SetDynamicConfigStorageSuffix replaces the dynamic config storage
// suffix.
func (s *GlobalService) SetDynamicConfigStorageSuffix(value name.FileName) {
	s.dynamicConfigStorageSuffix = value
}

// CreationTimeout is how long an opener waits for a service that is
// still being created before giving up.
func (s *GlobalService) CreationTimeout() units.Duration { return s.creationTimeout }

// SetCreationTimeout replaces the creation timeout.
func (s *GlobalService) SetCreationTimeout(value units.Duration) { s.creationTimeout = value }

// ConnectionSuffix names a publisher-to-subscriber connection.
func (s *GlobalService) ConnectionSuffix() name.FileName { return s.connectionSuffix }

// SetConnectionSuffix replaces the connection suffix.
func (s *GlobalService) SetConnectionSuffix(value name.FileName) { s.connectionSuffix = value }

// EventConnectionSuffix names a notifier-to-listener event connection.
func (s *GlobalService) EventConnectionSuffix() name.FileName { return s.eventConnectionSuffix }

// SetEventConnectionSuffix replaces the event connection suffix.
func (s *GlobalService) SetEventConnectionSuffix(value name.FileName) {
	s.eventConnectionSuffix = value
}

// GlobalNode controls where node artifacts live and whether nodes clean
// up after processes that died without removing their own artifacts.
type GlobalNode struct {
	directory                     name.Path
	monitorSuffix                 name.FileName
	staticConfigSuffix            name.FileName
	serviceTagSuffix              name.FileName
	cleanupDeadNodesOnCreation    bool
	cleanupDeadNodesOnDestruction bool
}

// Directory is the node directory, relative to the root path.
func (n *GlobalNode) Directory() name.Path { return n.directory }

// SetDirectory replaces the node directory.
func (n *GlobalNode) SetDirectory(value name.Path) { n.directory = value }

// MonitorSuffix names the liveness marker of a node.
func (n *GlobalNode) MonitorSuffix() name.FileName { return n.monitorSuffix }

// SetMonitorSuffix replaces the monitor suffix.
func (n *GlobalNode) SetMonitorSuffix(value name.FileName) { n.monitorSuffix = value }

// StaticConfigSuffix names the file holding a node's details.
func (n *GlobalNode) StaticConfigSuffix() name.FileName { return n.staticConfigSuffix }

// SetStaticConfigSuffix replaces the node static config suffix.
func (n *GlobalNode) SetStaticConfigSuffix(value name.FileName) { n.staticConfigSuffix = value }

// ServiceTagSuffix names the marker a node leaves for every service it
// uses.
func (n *GlobalNode) ServiceTagSuffix() name.FileName { return n.serviceTagSuffix }

// SetServiceTagSuffix replaces the service tag suffix.
func (n *GlobalNode) SetServiceTagSuffix(value name.FileName) { n.serviceTagSuffix = value }

// CleanupDeadNodesOnCreation reports whether creating a node first
// removes the artifacts of dead nodes.
func (n *GlobalNode) CleanupDeadNodesOnCreation() bool { return n.cleanupDeadNodesOnCreation }

// SetCleanupDeadNodesOnCreation replaces the cleanup-on-creation flag.
func (n *GlobalNode) SetCleanupDeadNodesOnCreation(value bool) {
	n.cleanupDeadNodesOnCreation = value
}

// CleanupDeadNodesOnDestruction reports whether closing a node also
// removes the artifacts of dead nodes.
func (n *GlobalNode) CleanupDeadNodesOnDestruction() bool {
	return n.cleanupDeadNodesOnDestruction
}

// SetCleanupDeadNodesOnDestruction replaces the cleanup-on-destruction
// flag.
func (n *GlobalNode) SetCleanupDeadNodesOnDestruction(value bool) {
	n.cleanupDeadNodesOnDestruction = value
}
