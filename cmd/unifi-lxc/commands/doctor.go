package commands

import (
	"github.com/spf13/cobra"

	"github.com/mhartig/unifi-lxc/cmd/unifi-lxc/handlers"
)

// Doctor returns the command for checking the host environment.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the host environment",
		Long: `Check that this host carries the tooling the provisioner drives.

Verifies that pct, pvesm, pveam, and ping are available in PATH, which is
the case on any standard Proxmox VE node.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor()
		},
	}
}
