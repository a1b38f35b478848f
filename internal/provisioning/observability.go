package provisioning

import (
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Observer receives structured events as the pipeline progresses.
type Observer interface {
	// Printf emits a free-form progress line.
	Printf(format string, v ...interface{})

	// Event emits a structured event.
	Event(event Event)
}

// Event represents a structured provisioning event.
type Event struct {
	Type     EventType
	Phase    string
	Message  string
	Resource string // resource name/ID if applicable
	Fields   map[string]string
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventPhaseStarted indicates a provisioning phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a provisioning phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a provisioning phase failed fatally.
	EventPhaseFailed EventType = "phase.failed"
	// EventPhaseDegraded indicates a phase failed but the pipeline continues.
	EventPhaseDegraded EventType = "phase.degraded"
	// EventResourceExists indicates a resource was already in place.
	EventResourceExists EventType = "resource.exists"
	// EventResourceCreated indicates a resource was created.
	EventResourceCreated EventType = "resource.created"
)

// ConsoleObserver implements Observer on a logr sink.
type ConsoleObserver struct {
	logger logr.Logger
}

// NewConsoleObserver returns an Observer that writes timestamped lines to
// stderr.
func NewConsoleObserver() *ConsoleObserver {
	return NewObserver(funcr.New(func(prefix, args string) {
		fmt.Fprintf(os.Stderr, "%s %s\n", time.Now().Format("15:04:05"), args)
	}, funcr.Options{}))
}

// NewObserver returns an Observer over an arbitrary logr.Logger.
func NewObserver(logger logr.Logger) *ConsoleObserver {
	return &ConsoleObserver{logger: logger}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	o.logger.Info(fmt.Sprintf(format, v...))
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	kv := []interface{}{"event", string(event.Type)}
	if event.Phase != "" {
		kv = append(kv, "phase", event.Phase)
	}
	if event.Resource != "" {
		kv = append(kv, "resource", event.Resource)
	}
	for k, v := range event.Fields {
		kv = append(kv, k, v)
	}
	o.logger.Info(event.Message, kv...)
}
