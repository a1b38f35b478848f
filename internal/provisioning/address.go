package provisioning

import (
	"context"
	"errors"
	"fmt"

	"github.com/mhartig/unifi-lxc/internal/platform/pve"
	"github.com/mhartig/unifi-lxc/internal/util/poll"
)

// addressCommand lists the guest interfaces; the first non-loopback address
// in its output is the discovered guest address.
const addressCommand = "ip -4 addr show"

// AddressPhase polls the guest for its first non-loopback address at a fixed
// interval with a fixed attempt cap, stopping early on the first non-empty
// result. Exhausting the budget degrades gracefully: the address stays
// unknown and the pipeline proceeds.
type AddressPhase struct{}

// Name implements the Phase interface.
func (p *AddressPhase) Name() string { return "address" }

// Provision implements the Phase interface.
func (p *AddressPhase) Provision(ctx *Context) error {
	vmid := ctx.Config.VMID

	addr, err := poll.Until(ctx, ctx.Timeouts.AddressInterval, ctx.Timeouts.AddressAttempts,
		func(pollCtx context.Context) (string, bool, error) {
			out, execErr := ctx.Clients.Instances.Exec(pollCtx, vmid, addressCommand)
			if execErr != nil {
				// The guest may still be booting; try again.
				return "", false, nil
			}
			if a := pve.FirstGlobalAddress(out); a != "" {
				return a, true, nil
			}
			return "", false, nil
		})

	if err != nil {
		if errors.Is(err, poll.ErrExhausted) {
			ctx.State.Warnings = append(ctx.State.Warnings, Warning{
				Phase: p.Name(),
				Err:   fmt.Errorf("guest address unknown after %d attempts", ctx.Timeouts.AddressAttempts),
			})
			ctx.Observer.Event(Event{
				Type:    EventPhaseDegraded,
				Phase:   p.Name(),
				Message: "address discovery exhausted, proceeding without a confirmed address",
			})
			return nil
		}
		return fmt.Errorf("address discovery aborted: %w", err)
	}

	ctx.State.Address = addr
	ctx.Observer.Printf("guest reported address %s", addr)
	return nil
}
