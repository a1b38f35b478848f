package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// sizePreset is a container sizing choice offered by the wizard.
type sizePreset struct {
	Cores    int
	MemoryMB int
	SwapMB   int
	DiskGB   int
}

var sizePresets = []huh.Option[sizePreset]{
	huh.NewOption("Small - 1 core, 1GB RAM, 4GB disk", sizePreset{1, 1024, 256, 4}),
	huh.NewOption("Medium - 2 cores, 2GB RAM, 8GB disk", sizePreset{2, 2048, 512, 8}),
	huh.NewOption("Large - 4 cores, 4GB RAM, 16GB disk", sizePreset{4, 4096, 1024, 16}),
}

// RunWizard interactively collects a provisioning configuration.
// All fields start from [Default]; the result is validated before return.
func RunWizard() (*Config, error) {
	cfg := Default()
	cfg.Template = "debian-12-standard_12.7-1_amd64.tar.zst"

	var (
		vmidStr = ""
		size    = sizePresets[1].Value
		static  = false
		dnsStr  = ""
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Container ID").
				Description("Numeric VMID, must be unused on this host").
				Placeholder("200").
				Value(&vmidStr).
				Validate(validateVMID),
			huh.NewInput().
				Title("Hostname").
				Placeholder("unifi").
				Value(&cfg.Hostname).
				Validate(validateRequired("hostname")),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Rootfs storage").
				Description("Storage pool for the container volume").
				Value(&cfg.RootStorage).
				Validate(validateRequired("storage")),
			huh.NewInput().
				Title("Template storage").
				Description("Storage pool for cached template images").
				Value(&cfg.TemplateStorage),
			huh.NewInput().
				Title("Template filename").
				Value(&cfg.Template).
				Validate(validateRequired("template")),
		),

		huh.NewGroup(
			huh.NewSelect[sizePreset]().
				Title("Container size").
				Options(sizePresets...).
				Value(&size),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Network bridge").
				Value(&cfg.Bridge).
				Validate(validateRequired("bridge")),
			huh.NewConfirm().
				Title("Static address?").
				Description("No uses DHCP on the bridge").
				Value(&static),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Address (CIDR)").
				Placeholder("10.0.0.5/24").
				Value(&cfg.IPCIDR),
			huh.NewInput().
				Title("Gateway").
				Placeholder("10.0.0.1").
				Value(&cfg.Gateway),
			huh.NewInput().
				Title("Nameservers").
				Description("Comma-separated, optional").
				Value(&dnsStr),
		).WithHideFunc(func() bool { return !static }),

		huh.NewGroup(
			huh.NewInput().
				Title("Root password").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.RootPassword),
			huh.NewSelect[Mode]().
				Title("Failure handling").
				Options(
					huh.NewOption("Best effort - keep going after post-creation failures", ModeBestEffort),
					huh.NewOption("Strict - any stage failure aborts", ModeStrict),
				).
				Value(&cfg.Mode),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard aborted: %w", err)
	}

	cfg.VMID, _ = strconv.Atoi(strings.TrimSpace(vmidStr))
	cfg.Cores = size.Cores
	cfg.MemoryMB = size.MemoryMB
	cfg.SwapMB = size.SwapMB
	cfg.DiskGB = size.DiskGB
	if !static {
		cfg.IPCIDR = "dhcp"
		cfg.Gateway = ""
	}
	if s := strings.TrimSpace(dnsStr); s != "" && static {
		for _, ns := range strings.Split(s, ",") {
			cfg.DNS = append(cfg.DNS, strings.TrimSpace(ns))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateVMID(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive integer")
	}
	return nil
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
