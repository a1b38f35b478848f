package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/huh"

	"github.com/mhartig/unifi-lxc/internal/config"
	"github.com/mhartig/unifi-lxc/internal/platform/pve"
)

// Factory function variables for destroy - can be replaced in tests.
var (
	// newInstanceManager builds the container client.
	newInstanceManager = func(timeouts *config.Timeouts) pve.InstanceManager {
		return pve.NewRealClient(pve.NewRunner(), timeouts.ProbeTimeout, timeouts.GuestCommand)
	}

	// confirmDestroy asks the operator to confirm the removal.
	confirmDestroy = func(vmid int, hostname string) (bool, error) {
		target := fmt.Sprintf("container %d", vmid)
		if hostname != "" {
			target += " (" + hostname + ")"
		}

		confirmed := false
		err := huh.NewConfirm().
			Title("Permanently destroy " + target + "?").
			Description("The container volume is purged; this cannot be undone.").
			Value(&confirmed).
			Run()
		return confirmed, err
	}
)

// Destroy stops and permanently removes a container. The target is taken
// from the --vmid flag when given, otherwise from the configuration file.
//
// The stop is best-effort: a container that is already stopped (or was never
// started) makes pct stop fail, which must not block the removal.
func Destroy(ctx context.Context, configPath string, vmid int, force bool) error {
	hostname := ""
	if vmid == 0 {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		vmid = cfg.VMID
		hostname = cfg.Hostname
	}

	if !force {
		if !stdinIsTerminal() {
			return fmt.Errorf("refusing to destroy without confirmation; re-run with --force")
		}
		confirmed, err := confirmDestroy(vmid, hostname)
		if err != nil {
			return fmt.Errorf("confirmation aborted: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	client := newInstanceManager(config.LoadTimeouts())

	exists, err := client.Exists(ctx, vmid)
	if err != nil {
		return fmt.Errorf("failed to check container %d: %w", vmid, err)
	}
	if !exists {
		fmt.Printf("Container %d does not exist, nothing to do.\n", vmid)
		return nil
	}

	if err := client.Stop(ctx, vmid); err != nil {
		log.Printf("stop failed (container may not be running): %v", err)
	}

	if err := client.Destroy(ctx, vmid); err != nil {
		return fmt.Errorf("failed to destroy container %d: %w", vmid, err)
	}

	fmt.Printf("Container %d destroyed.\n", vmid)
	return nil
}
