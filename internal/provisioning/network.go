package provisioning

import (
	"fmt"

	"github.com/mhartig/unifi-lxc/internal/platform/pve"
)

// NetworkPhase applies bridge, address, gateway, and nameservers to the
// created-but-stopped container. Soft in best-effort mode.
type NetworkPhase struct{}

// Name implements the Phase interface.
func (p *NetworkPhase) Name() string { return "network" }

// Provision implements the Phase interface.
func (p *NetworkPhase) Provision(ctx *Context) error {
	cfg := ctx.Config

	err := ctx.Clients.Instances.SetNetwork(ctx, cfg.VMID, pve.NetworkOpts{
		Bridge:      cfg.Bridge,
		IPCIDR:      cfg.IPCIDR,
		Gateway:     cfg.Gateway,
		Nameservers: cfg.DNS,
	})
	if err != nil {
		return ctx.soft(p.Name(), fmt.Errorf("failed to apply network configuration: %w", err))
	}

	ctx.State.Lifecycle = LifecycleConfigured
	return nil
}
