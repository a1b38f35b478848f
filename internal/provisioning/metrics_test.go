package provisioning

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_WriteTextfile(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObservePhase("create", 1500*time.Millisecond, true)
	m.ObservePhase("software", 30*time.Second, false)
	m.ObserveRun(true)

	path := filepath.Join(t.TempDir(), "unifi_lxc.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `unifi_lxc_phase_duration_seconds{phase="create"} 1.5`)
	assert.Contains(t, out, `unifi_lxc_phase_success{phase="create"} 1`)
	assert.Contains(t, out, `unifi_lxc_phase_success{phase="software"} 0`)
	assert.Contains(t, out, "unifi_lxc_provision_success 1")
	assert.Contains(t, out, "unifi_lxc_provision_last_run_timestamp_seconds")
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObservePhase("create", time.Second, true)
	m.ObserveRun(false)
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "ignored.prom")))
}

func TestMetrics_EmptyPathIsNoop(t *testing.T) {
	t.Parallel()
	assert.NoError(t, NewMetrics().WriteTextfile(""))
}

func TestPipeline_RecordsPhaseMetrics(t *testing.T) {
	t.Parallel()

	mock := newMockClient()
	mock.execOutputs = []string{"    inet 10.0.0.5/24 scope global eth0\n"}
	ctx := testContext(t, testConfig(), mock)
	ctx.Metrics = NewMetrics()

	require.NoError(t, Default().Run(ctx))
	ctx.Metrics.ObserveRun(true)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, ctx.Metrics.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	for _, phase := range []string{"validation", "uniqueness", "storage", "connectivity", "template", "create", "network", "options", "start", "address", "software", "report"} {
		assert.Contains(t, out, `unifi_lxc_phase_success{phase="`+phase+`"} 1`)
	}
}
