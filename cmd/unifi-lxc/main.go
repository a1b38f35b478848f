// Package main is the entry point for the unifi-lxc CLI.
//
// unifi-lxc provisions a single LXC container on a Proxmox VE host and
// installs the UniFi Network Application inside it, driving the host
// tooling (pct, pvesm, pveam) through a fail-fast pipeline.
//
// Commands: init, provision, doctor, destroy.
//
// For detailed usage information, run:
//
//	unifi-lxc --help
package main

import (
	"fmt"
	"os"

	"github.com/mhartig/unifi-lxc/cmd/unifi-lxc/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
