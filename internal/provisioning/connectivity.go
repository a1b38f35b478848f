package provisioning

import (
	"fmt"
)

// ConnectivityPhase verifies outbound connectivity with a single probe. The
// template fetch needs the network; failing here is far easier to diagnose
// than a download error later.
type ConnectivityPhase struct{}

// Name implements the Phase interface.
func (p *ConnectivityPhase) Name() string { return "connectivity" }

// Provision implements the Phase interface.
func (p *ConnectivityPhase) Provision(ctx *Context) error {
	host := ctx.Config.ProbeHost
	if err := ctx.Clients.Net.Probe(ctx, host); err != nil {
		return fmt.Errorf("%w: %w", ErrNetworkUnreachable, err)
	}

	ctx.Observer.Printf("outbound connectivity confirmed via %s", host)
	return nil
}
