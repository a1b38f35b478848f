package provisioning

import (
	"fmt"
	"time"
)

// Pipeline is an ordered sequence of phases executed fail-fast.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline creates a pipeline from the given phases.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// Default returns the full provisioning pipeline in required order. Every
// phase's postcondition is the next one's precondition: creation is never
// attempted before the uniqueness, storage, connectivity, and template
// checks pass.
func Default() *Pipeline {
	return NewPipeline(
		&ValidationPhase{},
		&UniquenessPhase{},
		&StoragePhase{},
		&ConnectivityPhase{},
		&TemplatePhase{},
		&CreatePhase{},
		&NetworkPhase{},
		&OptionsPhase{},
		&StartPhase{},
		&AddressPhase{},
		&SoftwarePhase{},
		&ReportPhase{},
	)
}

// Run executes all phases sequentially, aborting on the first error.
func (p *Pipeline) Run(ctx *Context) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(p.Phases))

	for i, phase := range p.Phases {
		phaseStart := time.Now()
		label := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(p.Phases))

		ctx.Observer.Event(Event{Type: EventPhaseStarted, Phase: phase.Name(), Message: "starting"})

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Event(Event{
				Type:    EventPhaseFailed,
				Phase:   phase.Name(),
				Message: fmt.Sprintf("failed: %v", err),
			})
			ctx.Metrics.ObservePhase(phase.Name(), time.Since(phaseStart), false)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Metrics.ObservePhase(phase.Name(), time.Since(phaseStart), true)
		ctx.Observer.Event(Event{
			Type:    EventPhaseCompleted,
			Phase:   phase.Name(),
			Message: fmt.Sprintf("[%s] completed in %v", label, time.Since(phaseStart).Round(time.Millisecond)),
		})
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
