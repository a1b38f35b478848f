package provisioning

import (
	"context"
	"fmt"

	"github.com/mhartig/unifi-lxc/internal/config"
	"github.com/mhartig/unifi-lxc/internal/platform/pve"
)

// Lifecycle is the observed state of the container handle as the pipeline
// progresses. It is produced by the run and discarded at process exit.
type Lifecycle string

const (
	LifecycleAbsent      Lifecycle = "absent"
	LifecycleCreated     Lifecycle = "created"
	LifecycleConfigured  Lifecycle = "network-configured"
	LifecycleRunning     Lifecycle = "running"
	LifecycleProvisioned Lifecycle = "provisioned"
)

// Warning records a non-fatal phase failure for the final report.
type Warning struct {
	Phase string
	Err   error
}

// State holds the shared results of provisioning phases. It is progressively
// populated as each phase completes and read by subsequent phases.
type State struct {
	Lifecycle Lifecycle

	// TemplateStorage is the resolved cache-capable pool (may differ from
	// the configured one after fallback).
	TemplateStorage string

	// TemplateCached reports whether the image was already present locally.
	TemplateCached bool

	// Address is the guest address discovered after start; empty when the
	// discovery poll exhausted its budget.
	Address string

	// Installed reports whether the guest software installation completed.
	Installed bool

	// FinalStatus is the lifecycle state reported by the host tool at the
	// end of the run.
	FinalStatus string

	// Warnings are the accumulated soft failures.
	Warnings []Warning
}

// NewState creates the initial pipeline state.
func NewState() *State {
	return &State{Lifecycle: LifecycleAbsent}
}

// Clients bundles the platform interfaces the pipeline drives.
type Clients struct {
	Instances pve.InstanceManager
	Storages  pve.StorageManager
	Cache     pve.ImageCache
	Net       pve.ConnectivityChecker
}

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Clients  Clients
	Observer Observer
	Timeouts *config.Timeouts
	Metrics  *Metrics
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, cfg *config.Config, clients Clients, observer Observer) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Clients:  clients,
		Observer: observer,
		Timeouts: config.LoadTimeouts(),
	}
}

// soft handles a post-creation phase failure according to the configured
// mode: strict aborts, best-effort records a warning and continues.
func (c *Context) soft(phase string, err error) error {
	if err == nil {
		return nil
	}
	if c.Config.Strict() {
		return err
	}
	c.State.Warnings = append(c.State.Warnings, Warning{Phase: phase, Err: err})
	c.Observer.Event(Event{
		Type:    EventPhaseDegraded,
		Phase:   phase,
		Message: fmt.Sprintf("continuing despite failure: %v", err),
	})
	return nil
}
