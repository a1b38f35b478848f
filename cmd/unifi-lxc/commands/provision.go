package commands

import (
	"github.com/spf13/cobra"

	"github.com/mhartig/unifi-lxc/cmd/unifi-lxc/handlers"
)

// Provision returns the command for creating and bootstrapping the container.
//
// This command handles the complete container lifecycle: loading
// configuration, running the pre-flight checks, creating the container from
// a cached template, configuring its network, and installing the UniFi
// Network Application inside the guest.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: unifi-lxc.yaml)
func Provision() *cobra.Command {
	var (
		configPath string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create and bootstrap the container",
		Long: `Create and bootstrap the UniFi Network Application container.

This command runs the full provisioning pipeline on the Proxmox VE host it
is invoked on: duplicate-ID check, template cache resolution, outbound
connectivity check, template fetch, container creation, network and option
configuration, start, guest address discovery, and in-guest software
installation.

If no config file is specified, it looks for unifi-lxc.yaml in the current
directory. Use 'unifi-lxc init' to create a configuration file.

Examples:
  # Provision using unifi-lxc.yaml in current directory
  unifi-lxc provision

  # Provision using a specific config file
  unifi-lxc provision -c site-office.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), configPath, strict)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: unifi-lxc.yaml)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat every stage failure as fatal, overriding the configured mode")

	return cmd
}
