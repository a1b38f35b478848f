// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the unifi-lxc CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unifi-lxc",
		Short: "Provision a UniFi Network Application container on Proxmox VE",
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Provision())
	cmd.AddCommand(Destroy())

	// Utility commands
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
