// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"fmt"

	"github.com/bureau-foundation/zerocopy/lib/config"
	"github.com/bureau-foundation/zerocopy/lib/name"
	"github.com/bureau-foundation/zerocopy/lib/sysid"
)

// Layout maps services onto the file system described by the global
// section of a Config. It holds a copy of that section, so it keeps
// naming the same files after the Config changes.
//
// Every artifact lives in the service directory and is named
//
//	<prefix><service id>[_<port id>...]<suffix>
//
// so artifacts of different kinds are told apart by suffix alone.
type Layout struct {
	global           config.Global
	serviceDirectory name.Path
	nodeDirectory    name.Path
}

// NewLayout snapshots the global section of cfg. It fails when cfg does
// not pass Validate, or when the directories exceed the path limit.
func NewLayout(cfg *config.Config) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, fmt.Errorf("service layout: %w", err)
	}
	global := *cfg.Global()
	serviceDirectory, err := global.RootPath().JoinPath(global.Service().Directory())
	if err != nil {
		return Layout{}, fmt.Errorf("service layout: service directory: %w", err)
	}
	nodeDirectory, err := global.RootPath().JoinPath(global.Node().Directory())
	if err != nil {
		return Layout{}, fmt.Errorf("service layout: node directory: %w", err)
	}
	return Layout{
		global:           global,
		serviceDirectory: serviceDirectory,
		nodeDirectory:    nodeDirectory,
	}, nil
}

// ServiceDirectory is root_path joined with global.service.directory.
func (l Layout) ServiceDirectory() name.Path { return l.serviceDirectory }

// NodeDirectory is root_path joined with global.node.directory.
func (l Layout) NodeDirectory() name.Path { return l.nodeDirectory }

// Prefix returns the global prefix every artifact name starts with.
func (l Layout) Prefix() name.FileName { return l.global.Prefix() }

// NodeSection returns the node settings captured with the layout.
func (l Layout) NodeSection() config.GlobalNode { return *l.global.Node() }

// StaticConfigPath names the file holding the service's StaticConfig.
func (l Layout) StaticConfigPath(id ID) (name.Path, error) {
	return l.artifact(l.global.Service().StaticConfigStorageSuffix(), id.String())
}

// DynamicConfigPath names the segment holding the service's live port
// registry.
func (l Layout) DynamicConfigPath(id ID) (name.Path, error) {
	return l.artifact(l.global.Service().DynamicConfigStorageSuffix(), id.String())
}

// PublisherDataSegmentPath names the segment a publisher loans samples
// from.
func (l Layout) PublisherDataSegmentPath(id ID, publisher sysid.ID) (name.Path, error) {
	return l.artifact(l.global.Service().PublisherDataSegmentSuffix(), id.String(), publisher.String())
}

// ConnectionPath names the queue between one publisher and one
// subscriber.
func (l Layout) ConnectionPath(id ID, publisher, subscriber sysid.ID) (name.Path, error) {
	return l.artifact(l.global.Service().ConnectionSuffix(),
		id.String(), publisher.String(), subscriber.String())
}

// EventConnectionPath names the channel notifiers use to wake one
// listener.
func (l Layout) EventConnectionPath(id ID, listener sysid.ID) (name.Path, error) {
	return l.artifact(l.global.Service().EventConnectionSuffix(), id.String(), listener.String())
}

func (l Layout) artifact(suffix name.FileName, parts ...string) (name.Path, error) {
	base := l.global.Prefix().String()
	for index, part := range parts {
		if index > 0 {
			base += "_"
		}
		base += part
	}
	fileName, err := name.NewFileName(base + suffix.String())
	if err != nil {
		return name.Path{}, fmt.Errorf("artifact name: %w", err)
	}
	path, err := l.serviceDirectory.Join(fileName)
	if err != nil {
		return name.Path{}, fmt.Errorf("artifact path: %w", err)
	}
	return path, nil
}

// parseStaticConfigFileName recovers the service id from the name of a
// static config file, reporting false for any other file.
func (l Layout) parseStaticConfigFileName(fileName string) (ID, bool) {
	prefix := l.global.Prefix().String()
	suffix := l.global.Service().StaticConfigStorageSuffix().String()
	if len(fileName) != len(prefix)+IDLength+len(suffix) {
		return ID{}, false
	}
	if fileName[:len(prefix)] != prefix || fileName[len(fileName)-len(suffix):] != suffix {
		return ID{}, false
	}
	id, err := ParseID(fileName[len(prefix) : len(prefix)+IDLength])
	if err != nil {
		return ID{}, false
	}
	return id, true
}
