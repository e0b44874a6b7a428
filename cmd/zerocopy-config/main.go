// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// zerocopy-config builds a zero-copy configuration from the built-in
// defaults and command-line overrides, then renders, checks or applies
// it. Every configuration field has a flag; fields whose flag is not
// given keep their default.
//
// Subcommands:
//
//	show         print the configuration (YAML, --json, or --table)
//	validate     check suffix uniqueness and unset fields
//	fingerprint  print the configuration's BLAKE3 fingerprint
//	paths NAME   print the artifact paths of service NAME
//	nodes        list nodes under the node directory and their liveness
//	inspect FILE print a stored artifact in CBOR diagnostic notation
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/zerocopy/lib/clock"
	"github.com/bureau-foundation/zerocopy/lib/codec"
	"github.com/bureau-foundation/zerocopy/lib/config"
	"github.com/bureau-foundation/zerocopy/lib/name"
	"github.com/bureau-foundation/zerocopy/lib/node"
	"github.com/bureau-foundation/zerocopy/lib/service"
	"github.com/bureau-foundation/zerocopy/lib/sysid"
	"github.com/bureau-foundation/zerocopy/lib/version"
)

const programName = "zerocopy-config"

// usageError marks errors caused by the command line itself.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func main() {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, styled))
}

// run executes one invocation and returns the process exit code: 0 on
// success, 1 on failure, 2 on a malformed command line.
func run(args []string, stdout, stderr io.Writer, styled bool) int {
	if err := execute(args, stdout, stderr, styled); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var usage *usageError
		if errors.As(err, &usage) {
			return 2
		}
		return 1
	}
	return 0
}

type outputFlags struct {
	json    bool
	table   bool
	verbose bool
}

func execute(args []string, stdout, stderr io.Writer, styled bool) error {
	// Handle --version before flag parsing to match other binaries.
	if len(args) > 0 && args[0] == "--version" {
		version.Print(stdout, programName)
		fmt.Fprintf(stdout, "  Defaults: v%d\n", config.DefaultsVersion)
		return nil
	}

	flagSet := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	settings := registerSettings(flagSet)

	var output outputFlags
	flagSet.BoolVar(&output.json, "json", false, "show: print JSON instead of YAML")
	flagSet.BoolVar(&output.table, "table", false, "show, paths, nodes: print an aligned table")
	flagSet.BoolVarP(&output.verbose, "verbose", "v", false, "log debug messages to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return nil
		}
		return &usageError{err: err}
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}
	if output.json && output.table {
		return usagef("--json and --table are mutually exclusive")
	}

	level := slog.LevelWarn
	if output.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := seedConfig(flagSet, settings)
	if err != nil {
		return &usageError{err: err}
	}
	logger.Debug("configuration seeded", "config", cfg)

	positional := flagSet.Args()
	if len(positional) == 0 {
		return usagef("missing subcommand (show, validate, fingerprint, paths, nodes, inspect)")
	}
	command, rest := positional[0], positional[1:]
	expectArgs := func(count int, usage string) error {
		if len(rest) != count {
			return usagef("usage: %s %s", programName, usage)
		}
		return nil
	}

	switch command {
	case "show":
		if err := expectArgs(0, "show [--json|--table]"); err != nil {
			return err
		}
		return show(stdout, cfg, output, styled)
	case "validate":
		if err := expectArgs(0, "validate"); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration:\n%w", err)
		}
		fmt.Fprintln(stdout, "configuration is valid")
		return nil
	case "fingerprint":
		if err := expectArgs(0, "fingerprint"); err != nil {
			return err
		}
		fmt.Fprintln(stdout, cfg.Fingerprint())
		return nil
	case "paths":
		if err := expectArgs(1, "paths SERVICE-NAME"); err != nil {
			return err
		}
		serviceName, err := service.NewName(rest[0])
		if err != nil {
			return &usageError{err: err}
		}
		rows, err := servicePaths(cfg, serviceName)
		if err != nil {
			return err
		}
		writeTable(stdout, rows, styled && output.table)
		return nil
	case "nodes":
		if err := expectArgs(0, "nodes"); err != nil {
			return err
		}
		return listNodes(stdout, cfg, styled && output.table)
	case "inspect":
		if err := expectArgs(1, "inspect FILE"); err != nil {
			return err
		}
		return inspect(stdout, rest[0])
	default:
		return usagef("unknown subcommand %q", command)
	}
}

func show(stdout io.Writer, cfg *config.Config, output outputFlags, styled bool) error {
	switch {
	case output.json:
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	case output.table:
		rows, err := configRows(cfg)
		if err != nil {
			return err
		}
		writeTable(stdout, rows, styled)
		return nil
	default:
		encoder := yaml.NewEncoder(stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(cfg); err != nil {
			return fmt.Errorf("rendering configuration: %w", err)
		}
		return encoder.Close()
	}
}

// servicePaths lists where the artifacts of a publish-subscribe and an
// event service named serviceName would live. Port-specific paths use
// freshly generated example port ids.
func servicePaths(cfg *config.Config, serviceName service.Name) ([]row, error) {
	layout, err := service.NewLayout(cfg)
	if err != nil {
		return nil, err
	}
	publisher := sysid.New(clock.Real())
	subscriber := sysid.New(clock.Real())

	pubsubID := service.NewID(service.PublishSubscribe, serviceName)
	eventID := service.NewID(service.Event, serviceName)

	rows := []row{
		{"service_directory", layout.ServiceDirectory().String()},
		{"node_directory", layout.NodeDirectory().String()},
		{"publish_subscribe.id", pubsubID.String()},
		{"event.id", eventID.String()},
	}
	artifacts := []struct {
		key  string
		path func() (name.Path, error)
	}{
		{"publish_subscribe.static_config", func() (name.Path, error) { return layout.StaticConfigPath(pubsubID) }},
		{"publish_subscribe.dynamic_config", func() (name.Path, error) { return layout.DynamicConfigPath(pubsubID) }},
		{"publish_subscribe.publisher_data_segment", func() (name.Path, error) {
			return layout.PublisherDataSegmentPath(pubsubID, publisher)
		}},
		{"publish_subscribe.connection", func() (name.Path, error) {
			return layout.ConnectionPath(pubsubID, publisher, subscriber)
		}},
		{"event.static_config", func() (name.Path, error) { return layout.StaticConfigPath(eventID) }},
		{"event.dynamic_config", func() (name.Path, error) { return layout.DynamicConfigPath(eventID) }},
		{"event.connection", func() (name.Path, error) { return layout.EventConnectionPath(eventID, subscriber) }},
	}
	for _, artifact := range artifacts {
		path, err := artifact.path()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", artifact.key, err)
		}
		rows = append(rows, row{artifact.key, path.String()})
	}
	return rows, nil
}

func listNodes(stdout io.Writer, cfg *config.Config, styled bool) error {
	entries, err := node.List(cfg)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(stdout, "no nodes")
		return nil
	}
	var rows []row
	for _, entry := range entries {
		state := "dead"
		if entry.Alive {
			state = "alive"
		}
		nodeName := ""
		if entry.Details != nil {
			nodeName = entry.Details.Name
		}
		rows = append(rows, row{
			key:   entry.ID.String(),
			value: fmt.Sprintf("pid=%d state=%s services=%d name=%q", entry.ID.PID(), state, len(entry.Services), nodeName),
		})
	}
	writeTable(stdout, rows, styled)
	return nil
}

// inspect prints a static config or node details file, or any other
// CBOR artifact, in diagnostic notation.
func inspect(stdout io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading artifact: %w", err)
	}
	notation, err := codec.Diagnose(data)
	if err != nil {
		return fmt.Errorf("%s is not a CBOR artifact: %w", path, err)
	}
	fmt.Fprintln(stdout, notation)
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Build a zero-copy configuration from defaults and flags, then render or check it.

Usage:
  %[1]s [flags] show [--json|--table]
  %[1]s [flags] validate
  %[1]s [flags] fingerprint
  %[1]s [flags] paths SERVICE-NAME
  %[1]s [flags] nodes
  %[1]s inspect FILE
  %[1]s --version

Examples:
  # Print the defaults as YAML
  %[1]s show

  # Check a prefix/suffix combination before deploying it
  %[1]s --prefix app_ --connection-suffix .conn validate

  # Where would service "camera/front" put its files?
  %[1]s --root-path /dev/shm/app/ paths camera/front

  # Dump a service's static config file
  %[1]s inspect /tmp/iceoryx2/services/iox2_<id>.service

Flags:
`, programName)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
