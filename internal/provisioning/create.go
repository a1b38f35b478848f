package provisioning

import (
	"fmt"
	"strconv"

	"github.com/mhartig/unifi-lxc/internal/platform/pve"
)

// CreatePhase materializes the new, stopped container from the resolved
// template. It is the only phase that allocates a resource; every check
// before it must already have passed.
type CreatePhase struct{}

// Name implements the Phase interface.
func (p *CreatePhase) Name() string { return "create" }

// Provision implements the Phase interface.
func (p *CreatePhase) Provision(ctx *Context) error {
	cfg := ctx.Config

	opts := pve.CreateOpts{
		VMID:         cfg.VMID,
		TemplateRef:  pve.TemplateRef(ctx.State.TemplateStorage, cfg.Template),
		Hostname:     cfg.Hostname,
		Cores:        cfg.Cores,
		MemoryMB:     cfg.MemoryMB,
		SwapMB:       cfg.SwapMB,
		OSType:       cfg.OSType,
		Unprivileged: cfg.Unprivileged,
		Start:        false,
		Password:     cfg.RootPassword,
		RootFS:       pve.RootFSRef(cfg.RootStorage, cfg.DiskGB),
	}

	if err := ctx.Clients.Instances.Create(ctx, opts); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	ctx.State.Lifecycle = LifecycleCreated
	ctx.Observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    p.Name(),
		Resource: strconv.Itoa(cfg.VMID),
		Message:  fmt.Sprintf("container %d created from %s", cfg.VMID, opts.TemplateRef),
	})
	return nil
}
