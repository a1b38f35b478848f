package provisioning

import (
	"fmt"
	"strconv"
)

// UniquenessPhase refuses to proceed when the requested container ID is
// already taken. It runs before any mutation, which makes the whole pipeline
// safe to re-invoke: a second run against an unchanged ID is rejected here.
type UniquenessPhase struct{}

// Name implements the Phase interface.
func (p *UniquenessPhase) Name() string { return "uniqueness" }

// Provision implements the Phase interface.
func (p *UniquenessPhase) Provision(ctx *Context) error {
	vmid := ctx.Config.VMID

	exists, err := ctx.Clients.Instances.Exists(ctx, vmid)
	if err != nil {
		return fmt.Errorf("failed to check container %d: %w", vmid, err)
	}
	if exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, vmid)
	}

	ctx.Observer.Event(Event{
		Type:     EventPhaseCompleted,
		Phase:    p.Name(),
		Resource: strconv.Itoa(vmid),
		Message:  fmt.Sprintf("container ID %d is free", vmid),
	})
	return nil
}
