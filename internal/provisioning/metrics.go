package provisioning

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics collects per-phase timing and outcome for a single run. A one-shot
// CLI has no scrape endpoint, so the collected registry is serialized to a
// node-exporter textfile on completion instead. All methods are nil-safe;
// a nil *Metrics disables collection.
type Metrics struct {
	registry *prometheus.Registry

	phaseDuration *prometheus.GaugeVec
	phaseResult   *prometheus.GaugeVec
	runSuccess    prometheus.Gauge
	runTimestamp  prometheus.Gauge
}

// NewMetrics creates a run-scoped metrics registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		phaseDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "unifi_lxc_phase_duration_seconds",
			Help: "Wall-clock duration of each provisioning phase.",
		}, []string{"phase"}),
		phaseResult: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "unifi_lxc_phase_success",
			Help: "Whether the phase completed without a fatal error (1) or failed (0).",
		}, []string{"phase"}),
		runSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "unifi_lxc_provision_success",
			Help: "Whether the provisioning run completed (1) or aborted (0).",
		}),
		runTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "unifi_lxc_provision_last_run_timestamp_seconds",
			Help: "Unix time of the last provisioning run.",
		}),
	}

	m.registry.MustRegister(m.phaseDuration, m.phaseResult, m.runSuccess, m.runTimestamp)
	return m
}

// ObservePhase records one phase outcome.
func (m *Metrics) ObservePhase(phase string, d time.Duration, ok bool) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase).Set(d.Seconds())
	result := 0.0
	if ok {
		result = 1.0
	}
	m.phaseResult.WithLabelValues(phase).Set(result)
}

// ObserveRun records the overall run outcome.
func (m *Metrics) ObserveRun(ok bool) {
	if m == nil {
		return
	}
	result := 0.0
	if ok {
		result = 1.0
	}
	m.runSuccess.Set(result)
	m.runTimestamp.Set(float64(time.Now().Unix()))
}

// WriteTextfile serializes the registry in Prometheus text exposition format
// to path, for collection by a node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}

	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
