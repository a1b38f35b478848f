package provisioning

import (
	"fmt"
	"strings"
)

// SoftwarePhase installs the application inside the guest: refresh the
// package index, install the runtime prerequisites, trust the repository
// signing key, register the repository source, refresh again, install the
// application package, and drop unused dependencies. Each sub-step is one
// guest invocation; a later failure does not roll back earlier steps.
//
// The phase runs only when address discovery produced an address — without
// one the guest network is presumed down and every sub-step would fail.
type SoftwarePhase struct{}

// Name implements the Phase interface.
func (p *SoftwarePhase) Name() string { return "software" }

// guestStep is a named in-guest command.
type guestStep struct {
	name    string
	command string
}

// steps expands the application config into the ordered sub-step list.
func (p *SoftwarePhase) steps(ctx *Context) []guestStep {
	app := ctx.Config.App
	const apt = "DEBIAN_FRONTEND=noninteractive apt-get -y"

	return []guestStep{
		{"refresh package index", apt + " update"},
		{"install prerequisites", fmt.Sprintf("%s install %s", apt, strings.Join(app.Prereqs, " "))},
		{"import signing key", fmt.Sprintf("curl -fsSL %s -o %s", app.KeyURL, app.KeyPath)},
		{"register repository", fmt.Sprintf("echo '%s' > %s", app.Repo, app.SourceFile)},
		{"refresh package index again", apt + " update"},
		{"install application", fmt.Sprintf("%s install %s", apt, app.Package)},
		{"remove unused dependencies", apt + " autoremove"},
	}
}

// Provision implements the Phase interface.
func (p *SoftwarePhase) Provision(ctx *Context) error {
	if ctx.State.Address == "" {
		ctx.Observer.Event(Event{
			Type:    EventPhaseDegraded,
			Phase:   p.Name(),
			Message: "skipping guest software installation: no confirmed guest address",
		})
		return nil
	}

	vmid := ctx.Config.VMID
	steps := p.steps(ctx)

	for i, step := range steps {
		ctx.Observer.Printf("[%s] (%d/%d) %s", p.Name(), i+1, len(steps), step.name)
		if _, err := ctx.Clients.Instances.Exec(ctx, vmid, step.command); err != nil {
			return ctx.soft(p.Name(), fmt.Errorf("%s: %w", step.name, err))
		}
	}

	ctx.State.Installed = true
	ctx.State.Lifecycle = LifecycleProvisioned
	ctx.Observer.Printf("%s installed", ctx.Config.App.Name)
	return nil
}
