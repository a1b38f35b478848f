package commands

import (
	"github.com/spf13/cobra"

	"github.com/mhartig/unifi-lxc/cmd/unifi-lxc/handlers"
)

// Destroy returns the command for removing the provisioned container.
func Destroy() *cobra.Command {
	var (
		configPath string
		vmid       int
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Stop and remove the container",
		Long: `Stop and permanently remove the container named by the configuration.

The container volume is purged; this cannot be undone. An interactive
confirmation is required unless --force is given.

Examples:
  # Destroy the container named by unifi-lxc.yaml, with confirmation
  unifi-lxc destroy

  # Destroy a specific container without a config file
  unifi-lxc destroy --vmid 200

  # Destroy without prompting (for scripts)
  unifi-lxc destroy --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath, vmid, force)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: unifi-lxc.yaml)")
	cmd.Flags().IntVar(&vmid, "vmid", 0, "Container ID to destroy (skips the config file)")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
