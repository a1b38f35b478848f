package provisioning

import (
	"fmt"

	"github.com/mhartig/unifi-lxc/internal/platform/pve"
)

// OptionsPhase sets boot-on-host-start, the CPU scheduling weight, and the
// guest kernel feature flags the application needs. Soft in best-effort
// mode.
type OptionsPhase struct{}

// Name implements the Phase interface.
func (p *OptionsPhase) Name() string { return "options" }

// Provision implements the Phase interface.
func (p *OptionsPhase) Provision(ctx *Context) error {
	cfg := ctx.Config

	err := ctx.Clients.Instances.SetOptions(ctx, cfg.VMID, pve.InstanceOpts{
		OnBoot:   cfg.OnBoot,
		CPUUnits: cfg.CPUUnits,
		Features: cfg.Features,
	})
	if err != nil {
		return ctx.soft(p.Name(), fmt.Errorf("failed to set container options: %w", err))
	}
	return nil
}
