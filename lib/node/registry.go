// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package node

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bureau-foundation/zerocopy/lib/codec"
	"github.com/bureau-foundation/zerocopy/lib/config"
	"github.com/bureau-foundation/zerocopy/lib/process"
	"github.com/bureau-foundation/zerocopy/lib/service"
	"github.com/bureau-foundation/zerocopy/lib/sysid"
)

// Entry describes one node found in the node directory.
type Entry struct {
	ID        sysid.ID
	Directory string
	Alive     bool

	// Details is nil when the details file is missing or unreadable,
	// which happens while a node is being created or after it crashed
	// mid-creation.
	Details *Details

	Services []service.ID
}

// List enumerates the nodes under the node directory of cfg. Entries
// whose name is not a node id are ignored.
func List(cfg *config.Config) ([]Entry, error) {
	layout, err := service.NewLayout(cfg)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}
	return list(layout)
}

// RemoveDead deletes the directories of nodes whose process no longer
// exists and returns their ids.
func RemoveDead(cfg *config.Config, logger *slog.Logger) ([]sysid.ID, error) {
	if logger == nil {
		logger = slog.Default()
	}
	layout, err := service.NewLayout(cfg)
	if err != nil {
		return nil, fmt.Errorf("removing dead nodes: %w", err)
	}
	return removeDead(layout, logger)
}

func list(layout service.Layout) ([]Entry, error) {
	root := layout.NodeDirectory().String()
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading node directory: %w", err)
	}

	section := layout.NodeSection()
	var entries []Entry
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() {
			continue
		}
		id, err := sysid.Parse(dirEntry.Name())
		if err != nil {
			continue
		}
		entry := Entry{
			ID:        id,
			Directory: filepath.Join(root, dirEntry.Name()),
			Alive:     process.Alive(id.PID()),
		}
		detailsPath := filepath.Join(entry.Directory, id.String()+section.StaticConfigSuffix().String())
		if details, err := readDetails(detailsPath); err == nil {
			entry.Details = &details
		}
		entry.Services, _ = readTags(entry.Directory, section.ServiceTagSuffix().String())
		entries = append(entries, entry)
	}
	return entries, nil
}

func removeDead(layout service.Layout, logger *slog.Logger) ([]sysid.ID, error) {
	entries, err := list(layout)
	if err != nil {
		return nil, err
	}
	var removed []sysid.ID
	var errs []error
	for _, entry := range entries {
		if entry.Alive {
			continue
		}
		if err := os.RemoveAll(entry.Directory); err != nil {
			errs = append(errs, fmt.Errorf("removing dead node %s: %w", entry.ID, err))
			continue
		}
		logger.Info("removed dead node", "dead_node", entry.ID.String(), "pid", entry.ID.PID())
		removed = append(removed, entry.ID)
	}
	return removed, errors.Join(errs...)
}

func readDetails(path string) (Details, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Details{}, err
	}
	var details Details
	if err := codec.Unmarshal(data, &details); err != nil {
		return Details{}, fmt.Errorf("decoding node details %s: %w", path, err)
	}
	return details, nil
}

func readTags(directory, suffix string) ([]service.ID, error) {
	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("reading node tags: %w", err)
	}
	var ids []service.ID
	for _, dirEntry := range dirEntries {
		text, ok := strings.CutSuffix(dirEntry.Name(), suffix)
		if !ok {
			continue
		}
		id, err := service.ParseID(text)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
