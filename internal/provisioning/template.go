package provisioning

import (
	"fmt"
)

// TemplatePhase ensures the template image is present in the resolved cache
// pool, downloading it on a miss. A non-zero fetch exit covers repository
// downtime, full storage, and a wrong filename alike; the raw diagnostic is
// attached because the pipeline cannot tell them apart.
type TemplatePhase struct{}

// Name implements the Phase interface.
func (p *TemplatePhase) Name() string { return "template" }

// Provision implements the Phase interface.
func (p *TemplatePhase) Provision(ctx *Context) error {
	name := ctx.Config.Template

	cached, err := ctx.Clients.Cache.Contains(name)
	if err != nil {
		return fmt.Errorf("failed to check template cache: %w", err)
	}
	if cached {
		ctx.State.TemplateCached = true
		ctx.Observer.Event(Event{
			Type:     EventResourceExists,
			Phase:    p.Name(),
			Resource: name,
			Message:  "template already cached",
		})
		return nil
	}

	ctx.Observer.Printf("template %q not cached, downloading to %s", name, ctx.State.TemplateStorage)
	if err := ctx.Clients.Cache.Download(ctx, ctx.State.TemplateStorage, name); err != nil {
		return fmt.Errorf("%w: %w", ErrTemplateFetch, err)
	}

	ctx.Observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    p.Name(),
		Resource: name,
		Message:  "template downloaded",
	})
	return nil
}
