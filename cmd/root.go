// Package cmd implements the CLI subcommands that bypass the TUI.
package cmd

import (
	"fmt"
	"os"
)

// knownSubcommands is the set of CLI subcommands that bypass the TUI.
var knownSubcommands = map[string]bool{
	"check":    true,
	"discover": true,
	"config":   true,
	"themes":   true,
	"version":  true,
	"help":     true,
}

// IsSubcommand returns true if the argument is a known CLI subcommand.
func IsSubcommand(arg string) bool {
	return knownSubcommands[arg]
}

// Execute dispatches to the appropriate CLI subcommand handler.
func Execute(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "check":
		checkCmd(args[1:])
	case "discover":
		discoverCmd(args[1:])
	case "config":
		configCmd(args[1:])
	case "themes":
		themesCmd()
	case "version":
		fmt.Println("slant v0.1.0")
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`slant - remote system monitor

Usage:
  slant [HOST ...]            Launch the dashboard; HOST arguments
                              override the configured server list
  slant check [FILE]          Parse a configuration and report errors
  slant discover HOST         Probe which metrics a host exposes
  slant config <cmd>          Manage preferences
  slant themes                List available themes
  slant version               Show version
  slant help                  Show this help

Config Commands:
  slant config path           Show config directory path
  slant config file PATH      Set the monitor configuration path
  slant config theme NAME     Set default theme
  slant config example        Print an example slant.conf

Discovery:
  slant discover [--port PORT] [--community NAME] HOST`)
}
