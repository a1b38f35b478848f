package provisioning

import (
	"fmt"
)

// templateContent is the storage content type for cached template images.
const templateContent = "vztmpl"

// StoragePhase resolves the template cache pool: the configured pool when it
// advertises template capability, otherwise the first active pool that does.
// Pure read plus fallback, no side effect.
type StoragePhase struct{}

// Name implements the Phase interface.
func (p *StoragePhase) Name() string { return "storage" }

// Provision implements the Phase interface.
func (p *StoragePhase) Provision(ctx *Context) error {
	storages, err := ctx.Clients.Storages.StoragesWithContent(ctx, templateContent)
	if err != nil {
		return fmt.Errorf("failed to list template-capable storages: %w", err)
	}

	configured := ctx.Config.TemplateStorage
	for _, s := range storages {
		if s.Name == configured && s.Active {
			ctx.State.TemplateStorage = configured
			return nil
		}
	}

	for _, s := range storages {
		if s.Active {
			ctx.State.TemplateStorage = s.Name
			ctx.Observer.Event(Event{
				Type:     EventResourceExists,
				Phase:    p.Name(),
				Resource: s.Name,
				Message:  fmt.Sprintf("storage %q does not cache templates, falling back to %q", configured, s.Name),
			})
			return nil
		}
	}

	return ErrNoCacheStorage
}
