package provisioning

import (
	"fmt"
)

// ReportPhase queries the final lifecycle state for the run summary. The
// styled operator-facing report is rendered by the caller from the final
// State; a status query failure here is recorded but never fails the run.
type ReportPhase struct{}

// Name implements the Phase interface.
func (p *ReportPhase) Name() string { return "report" }

// Provision implements the Phase interface.
func (p *ReportPhase) Provision(ctx *Context) error {
	status, err := ctx.Clients.Instances.Status(ctx, ctx.Config.VMID)
	if err != nil {
		ctx.State.Warnings = append(ctx.State.Warnings, Warning{
			Phase: p.Name(),
			Err:   fmt.Errorf("final status query failed: %w", err),
		})
		ctx.State.FinalStatus = "unknown"
		return nil
	}

	ctx.State.FinalStatus = status
	return nil
}
