package provisioning

import (
	"fmt"
	"time"
)

// StartPhase transitions the container to running, then waits a fixed settle
// delay so the guest network can come up before address discovery polls.
type StartPhase struct{}

// Name implements the Phase interface.
func (p *StartPhase) Name() string { return "start" }

// Provision implements the Phase interface.
func (p *StartPhase) Provision(ctx *Context) error {
	vmid := ctx.Config.VMID

	if err := ctx.Clients.Instances.Start(ctx, vmid); err != nil {
		return fmt.Errorf("failed to start container %d: %w", vmid, err)
	}
	ctx.State.Lifecycle = LifecycleRunning

	ctx.Observer.Printf("container %d started, settling for %v", vmid, ctx.Timeouts.SettleDelay)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(ctx.Timeouts.SettleDelay):
	}
	return nil
}
