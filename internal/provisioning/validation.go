package provisioning

import (
	"fmt"
	"strings"
)

// ValidationPhase re-checks the loaded configuration before any external
// call and surfaces warnings (weak credential, privileged container) that
// file loading tolerates silently.
type ValidationPhase struct{}

// Name implements the Phase interface.
func (p *ValidationPhase) Name() string { return "validation" }

// Provision implements the Phase interface.
func (p *ValidationPhase) Provision(ctx *Context) error {
	var errs []string
	for _, ve := range ctx.Config.Check() {
		if ve.IsError() {
			errs = append(errs, ve.Error())
			continue
		}
		ctx.Observer.Event(Event{
			Type:    EventPhaseDegraded,
			Phase:   p.Name(),
			Message: "WARNING: " + ve.Error(),
		})
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
