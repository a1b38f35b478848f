package commands

import (
	"github.com/spf13/cobra"

	"github.com/mhartig/unifi-lxc/cmd/unifi-lxc/handlers"
)

// Init returns the command for creating a configuration file interactively.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Create a configuration file through an interactive wizard.

The wizard asks for the container identity, storage pools, sizing, and
network setup, and writes a ready-to-use configuration file. Defaults are
chosen so that only the per-host values need answering.

Examples:
  # Write unifi-lxc.yaml in the current directory
  unifi-lxc init

  # Write to a specific path
  unifi-lxc init -o site-office.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "unifi-lxc.yaml", "Path for the generated configuration file")

	return cmd
}
