// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/zerocopy/lib/config"
)

type row struct {
	key   string
	value string
}

// configRows flattens the YAML rendering of cfg into dotted keys, in
// document order.
func configRows(cfg *config.Config) ([]row, error) {
	var document yaml.Node
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("rendering configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("re-reading rendered configuration: %w", err)
	}
	var rows []row
	if len(document.Content) == 1 {
		flattenYAML(document.Content[0], "", &rows)
	}
	return rows, nil
}

func flattenYAML(node *yaml.Node, prefix string, rows *[]row) {
	if node.Kind != yaml.MappingNode {
		*rows = append(*rows, row{key: prefix, value: node.Value})
		return
	}
	for index := 0; index+1 < len(node.Content); index += 2 {
		key := node.Content[index].Value
		if prefix != "" {
			key = prefix + "." + key
		}
		flattenYAML(node.Content[index+1], key, rows)
	}
}

// writeTable prints rows as two aligned columns. When styled is set the
// keys are highlighted; otherwise the output is plain text.
func writeTable(w io.Writer, rows []row, styled bool) {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.key))
	}

	keyStyle := lipgloss.NewStyle().Width(width + 2)
	valueStyle := lipgloss.NewStyle()
	if styled {
		keyStyle = keyStyle.Bold(true).Foreground(lipgloss.Color("12"))
		valueStyle = valueStyle.Foreground(lipgloss.Color("252"))
	}
	for _, r := range rows {
		fmt.Fprintln(w, keyStyle.Render(r.key)+valueStyle.Render(r.value))
	}
}
