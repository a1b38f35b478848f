package handlers

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mhartig/unifi-lxc/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// stdinIsTerminal reports whether the wizard can run.
	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.WriteFile
)

// Init runs the configuration wizard and writes the result to a file.
func Init(outputPath string) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("init is interactive and needs a terminal; write %s by hand instead", outputPath)
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	cfg, err := runWizard()
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("unifi-lxc - UniFi Network Application on Proxmox VE")
	fmt.Println("===================================================")
	fmt.Println()
	fmt.Println("This wizard creates a provisioning configuration with sensible defaults.")
	fmt.Println("The generated YAML is fully expanded and can be edited afterwards.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Container Summary")
	fmt.Println("-----------------")
	fmt.Printf("  ID:        %d\n", cfg.VMID)
	fmt.Printf("  Hostname:  %s\n", cfg.Hostname)
	fmt.Printf("  Size:      %d cores, %d MB RAM, %d GB disk\n", cfg.Cores, cfg.MemoryMB, cfg.DiskGB)
	fmt.Printf("  Network:   %s on %s\n", cfg.IPCIDR, cfg.Bridge)
	fmt.Printf("  Template:  %s\n", cfg.Template)
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. On the Proxmox VE node, provision the container:")
	fmt.Println("     unifi-lxc provision")
	fmt.Println()
}
