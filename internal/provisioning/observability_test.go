package provisioning

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureObserver() (*ConsoleObserver, *[]string) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})
	return NewObserver(logger), &lines
}

func TestConsoleObserver_Printf(t *testing.T) {
	t.Parallel()
	obs, lines := captureObserver()

	obs.Printf("container %d started", 310)

	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "container 310 started")
}

func TestConsoleObserver_EventCarriesStructuredFields(t *testing.T) {
	t.Parallel()
	obs, lines := captureObserver()

	obs.Event(Event{
		Type:     EventResourceCreated,
		Phase:    "create",
		Resource: "310",
		Message:  "container created",
		Fields:   map[string]string{"template": "img-1.tar"},
	})

	require.Len(t, *lines, 1)
	line := (*lines)[0]
	assert.Contains(t, line, "container created")
	assert.Contains(t, line, string(EventResourceCreated))
	assert.Contains(t, line, "create")
	assert.Contains(t, line, "310")
	assert.Contains(t, line, "img-1.tar")
}

func TestConsoleObserver_EventOmitsEmptyKeys(t *testing.T) {
	t.Parallel()
	obs, lines := captureObserver()

	obs.Event(Event{Type: EventPhaseStarted, Message: "starting"})

	require.Len(t, *lines, 1)
	assert.NotContains(t, (*lines)[0], `"phase"`)
	assert.NotContains(t, (*lines)[0], `"resource"`)
}

func TestPipeline_EmitsPhaseEvents(t *testing.T) {
	t.Parallel()
	obs, lines := captureObserver()

	mock := newMockClient()
	mock.exists = true
	ctx := testContext(t, testConfig(), mock)
	ctx.Observer = obs

	err := Default().Run(ctx)
	require.Error(t, err)

	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, string(EventPhaseStarted))
	assert.Contains(t, joined, string(EventPhaseCompleted))
	assert.Contains(t, joined, string(EventPhaseFailed))
	assert.Contains(t, joined, "uniqueness")
}
