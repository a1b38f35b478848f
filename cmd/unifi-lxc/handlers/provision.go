// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mhartig/unifi-lxc/internal/config"
	"github.com/mhartig/unifi-lxc/internal/platform/pve"
	"github.com/mhartig/unifi-lxc/internal/provisioning"
	"github.com/mhartig/unifi-lxc/internal/ui"
	"github.com/mhartig/unifi-lxc/internal/util/prerequisites"
)

// defaultConfigPath is used when no --config flag is given.
const defaultConfigPath = "unifi-lxc.yaml"

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.LoadFile

	// checkDefaultPrereqs runs prerequisite checks.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// newClients builds the platform clients the pipeline drives.
	newClients = func(timeouts *config.Timeouts) provisioning.Clients {
		client := pve.NewRealClient(pve.NewRunner(), timeouts.ProbeTimeout, timeouts.GuestCommand)
		return provisioning.Clients{
			Instances: client,
			Storages:  client,
			Cache:     pve.NewDirCache("", pve.NewRunner()),
			Net:       client,
		}
	}

	// newPipeline builds the provisioning pipeline.
	newPipeline = provisioning.Default

	// renderReport renders the end-of-run summary.
	renderReport = ui.RenderReport
)

// Provision runs the full provisioning pipeline against the local host.
//
// The workflow:
//  1. Loads and validates the configuration file
//  2. Verifies the host tooling (pct, pvesm, pveam, ping) is present
//  3. Runs the fail-fast pipeline: uniqueness, storage, connectivity,
//     template, create, network, options, start, address, software
//  4. Renders the run summary and, if configured, writes the Prometheus
//     textfile for the node-exporter textfile collector
//
// The summary is rendered even when the pipeline aborts, so the operator
// sees how far the run got. strict overrides the configured mode for this run.
func Provision(ctx context.Context, configPath string, strict bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if strict {
		cfg.Mode = config.ModeStrict
	}

	if err := checkPrerequisites(); err != nil {
		return err
	}

	log.Printf("Provisioning container %d (%s)", cfg.VMID, cfg.Hostname)

	timeouts := config.LoadTimeouts()
	pctx := provisioning.NewContext(ctx, cfg, newClients(timeouts), provisioning.NewConsoleObserver())
	pctx.Timeouts = timeouts
	pctx.Metrics = provisioning.NewMetrics()

	runErr := newPipeline().Run(pctx)

	pctx.Metrics.ObserveRun(runErr == nil)
	if err := pctx.Metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		log.Printf("WARNING: %v", err)
	}

	fmt.Println()
	fmt.Print(renderReport(cfg, pctx.State))

	return runErr
}

// loadConfig loads and validates the configuration.
// If configPath is empty, it looks for unifi-lxc.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		configPath = defaultConfigPath
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("no config file found at %s\nRun 'unifi-lxc init' to create one", configPath)
		}
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Using config: %s", configPath)
	return cfg, nil
}

// checkPrerequisites verifies the host CLI tools are available.
func checkPrerequisites() error {
	results := checkDefaultPrereqs()

	for _, r := range results.Results {
		if r.Found {
			version := r.Version
			if version == "" {
				version = "unknown version"
			}
			log.Printf("  Found %s (%s)", r.Tool.Name, version)
		}
	}

	if err := results.Error(); err != nil {
		return fmt.Errorf("host check failed: %w", err)
	}

	return nil
}
