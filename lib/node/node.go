// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package node

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bureau-foundation/zerocopy/lib/clock"
	"github.com/bureau-foundation/zerocopy/lib/codec"
	"github.com/bureau-foundation/zerocopy/lib/config"
	"github.com/bureau-foundation/zerocopy/lib/service"
	"github.com/bureau-foundation/zerocopy/lib/sysid"
)

// MaxNameLength is the maximum length of a node name in bytes.
const MaxNameLength = 255

// ErrClosed is returned by operations on a closed Node.
var ErrClosed = errors.New("node is closed")

// Details is the content of a node's details file.
type Details struct {
	Name              string          `cbor:"name"`
	PID               int             `cbor:"pid"`
	CreatedAt         time.Time       `cbor:"created_at"`
	ConfigFingerprint string          `cbor:"config_fingerprint"`
	Config            config.Document `cbor:"config"`
}

// Options holds the optional collaborators of Create.
type Options struct {
	// Clock stamps the node id. Nil uses the real clock.
	Clock clock.Clock

	// Logger receives lifecycle and cleanup messages. Nil uses
	// slog.Default().
	Logger *slog.Logger
}

// Node is a live participant. It keeps the configuration snapshot taken
// at creation for its whole lifetime.
type Node struct {
	id        sysid.ID
	name      string
	config    *config.Config
	layout    service.Layout
	directory string
	logger    *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Create registers a new node for the calling process. When the
// configuration asks for it, directories of dead nodes are removed
// first; failures there are logged and do not prevent creation.
func Create(ctx context.Context, cfg *config.Config, nodeName string, options Options) (*Node, error) {
	if len(nodeName) > MaxNameLength {
		return nil, fmt.Errorf("node name is %d bytes, maximum is %d", len(nodeName), MaxNameLength)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clk := options.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	snapshot := cfg.Clone()
	layout, err := service.NewLayout(snapshot)
	if err != nil {
		return nil, fmt.Errorf("creating node: %w", err)
	}

	if snapshot.Global().Node().CleanupDeadNodesOnCreation() {
		if _, err := removeDead(layout, logger); err != nil {
			logger.Warn("dead node cleanup failed", "error", err)
		}
	}

	id := sysid.New(clk)
	directory := filepath.Join(layout.NodeDirectory().String(), id.String())
	if err := os.MkdirAll(layout.NodeDirectory().String(), 0o755); err != nil {
		return nil, fmt.Errorf("creating node directory: %w", err)
	}
	if err := os.Mkdir(directory, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory for node %s: %w", id, err)
	}

	node := &Node{
		id:        id,
		name:      nodeName,
		config:    snapshot,
		layout:    layout,
		directory: directory,
		logger:    logger.With("node", id.String()),
	}
	if err := node.writeFiles(clk.Now()); err != nil {
		os.RemoveAll(directory)
		return nil, err
	}

	node.logger.Info("node created", "name", nodeName, "config", snapshot)
	return node, nil
}

func (n *Node) writeFiles(now time.Time) error {
	section := n.layout.NodeSection()

	data, err := codec.Marshal(Details{
		Name:              n.name,
		PID:               n.id.PID(),
		CreatedAt:         now.UTC(),
		ConfigFingerprint: n.config.Fingerprint(),
		Config:            n.config.Document(),
	})
	if err != nil {
		return fmt.Errorf("encoding node details: %w", err)
	}

	detailsPath := n.filePath(section.StaticConfigSuffix().String())
	tmpFile, err := os.CreateTemp(n.directory, ".details-*")
	if err != nil {
		return fmt.Errorf("creating temp node details: %w", err)
	}
	tmpPath := tmpFile.Name()
	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing node details: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp node details: %w", err)
	}
	if err := os.Rename(tmpPath, detailsPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("publishing node details: %w", err)
	}

	monitor, err := os.OpenFile(n.filePath(section.MonitorSuffix().String()), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("creating node monitor: %w", err)
	}
	return monitor.Close()
}

func (n *Node) filePath(suffix string) string {
	return filepath.Join(n.directory, n.id.String()+suffix)
}

// ID returns the node's machine-wide unique id.
func (n *Node) ID() sysid.ID { return n.id }

// Name returns the name given at creation.
func (n *Node) Name() string { return n.name }

// Directory returns the node's directory.
func (n *Node) Directory() string { return n.directory }

// Config returns a copy of the configuration snapshot the node was
// created with.
func (n *Node) Config() *config.Config { return n.config.Clone() }

// TagService records that this node participates in the service with
// the given id. Tagging twice is harmless.
func (n *Node) TagService(id service.ID) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrClosed
	}

	section := n.layout.NodeSection()
	path := filepath.Join(n.directory, id.String()+section.ServiceTagSuffix().String())
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("tagging service %s: %w", id, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("tagging service %s: %w", id, err)
	}
	n.logger.Debug("service tagged", "service_id", id.String())
	return nil
}

// Services returns the ids of every service this node has tagged.
func (n *Node) Services() ([]service.ID, error) {
	section := n.layout.NodeSection()
	return readTags(n.directory, section.ServiceTagSuffix().String())
}

// Close removes the node's directory and, when the configuration asks
// for it, the directories of dead nodes. Closing twice is a no-op.
func (n *Node) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return nil
	}
	n.closed = true

	if err := os.RemoveAll(n.directory); err != nil {
		return fmt.Errorf("removing node directory: %w", err)
	}
	n.logger.Info("node closed")

	if n.config.Global().Node().CleanupDeadNodesOnDestruction() {
		if _, err := removeDead(n.layout, n.logger); err != nil {
			n.logger.Warn("dead node cleanup failed", "error", err)
		}
	}
	return nil
}
