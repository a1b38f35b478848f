package provisioning

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/mhartig/unifi-lxc/internal/config"
	"github.com/mhartig/unifi-lxc/internal/platform/pve"
)

// mockClient implements every platform interface and records the mutating
// call sequence for ordering assertions.
type mockClient struct {
	calls []string

	exists    bool
	existsErr error

	storages    []pve.Storage
	storagesErr error

	probeErr error

	cached      bool
	containsErr error
	downloadErr error

	createErr  error
	createOpts []pve.CreateOpts

	setNetworkErr error
	networkOpts   []pve.NetworkOpts

	setOptionsErr error
	instanceOpts  []pve.InstanceOpts

	startErr error

	execOutputs []string // consumed front to back; empty string means "no address yet"
	execErr     error
	execCmds    []string

	status    string
	statusErr error
}

func newMockClient() *mockClient {
	return &mockClient{
		storages: []pve.Storage{{Name: "pool-a", Type: "dir", Active: true}},
		cached:   true,
		status:   "running",
	}
}

func (m *mockClient) record(call string) { m.calls = append(m.calls, call) }

func (m *mockClient) Exists(_ context.Context, _ int) (bool, error) {
	m.record("exists")
	return m.exists, m.existsErr
}

func (m *mockClient) Create(_ context.Context, opts pve.CreateOpts) error {
	m.record("create")
	m.createOpts = append(m.createOpts, opts)
	return m.createErr
}

func (m *mockClient) SetNetwork(_ context.Context, _ int, opts pve.NetworkOpts) error {
	m.record("set-network")
	m.networkOpts = append(m.networkOpts, opts)
	return m.setNetworkErr
}

func (m *mockClient) SetOptions(_ context.Context, _ int, opts pve.InstanceOpts) error {
	m.record("set-options")
	m.instanceOpts = append(m.instanceOpts, opts)
	return m.setOptionsErr
}

func (m *mockClient) Start(_ context.Context, _ int) error {
	m.record("start")
	return m.startErr
}

func (m *mockClient) Stop(_ context.Context, _ int) error {
	m.record("stop")
	return nil
}

func (m *mockClient) Destroy(_ context.Context, _ int) error {
	m.record("destroy")
	return nil
}

func (m *mockClient) Status(_ context.Context, _ int) (string, error) {
	m.record("status")
	return m.status, m.statusErr
}

func (m *mockClient) Exec(_ context.Context, _ int, command string) (string, error) {
	m.record("exec")
	m.execCmds = append(m.execCmds, command)
	if m.execErr != nil {
		return "", m.execErr
	}
	if len(m.execOutputs) == 0 {
		return "", nil
	}
	out := m.execOutputs[0]
	m.execOutputs = m.execOutputs[1:]
	return out, nil
}

func (m *mockClient) StoragesWithContent(_ context.Context, _ string) ([]pve.Storage, error) {
	m.record("list-storages")
	return m.storages, m.storagesErr
}

func (m *mockClient) Contains(_ string) (bool, error) {
	m.record("cache-contains")
	return m.cached, m.containsErr
}

func (m *mockClient) Download(_ context.Context, storage, name string) error {
	m.record("download")
	_ = storage
	_ = name
	return m.downloadErr
}

func (m *mockClient) Probe(_ context.Context, _ string) error {
	m.record("probe")
	return m.probeErr
}

// mutating reports the mutating calls in order (read-only queries filtered
// out), for the ordering invariants.
func (m *mockClient) mutating() []string {
	var out []string
	for _, c := range m.calls {
		switch c {
		case "create", "set-network", "set-options", "start", "exec", "download", "stop", "destroy":
			out = append(out, c)
		}
	}
	return out
}

// testConfig returns the fixed request used across phase tests.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.VMID = 310
	cfg.Hostname = "test-node"
	cfg.RootStorage = "pool-a"
	cfg.TemplateStorage = "pool-a"
	cfg.Template = "img-1.tar"
	cfg.Bridge = "br0"
	cfg.IPCIDR = "10.0.0.5/24"
	cfg.Gateway = "10.0.0.1"
	cfg.RootPassword = "changeme123"
	return &cfg
}

// testContext builds a Context with fast timeouts and a silent observer.
func testContext(t *testing.T, cfg *config.Config, mock *mockClient) *Context {
	t.Helper()
	ctx := NewContext(context.Background(), cfg, Clients{
		Instances: mock,
		Storages:  mock,
		Cache:     mock,
		Net:       mock,
	}, NewObserver(logr.Discard()))
	ctx.Timeouts = &config.Timeouts{
		SettleDelay:     time.Millisecond,
		AddressInterval: time.Millisecond,
		AddressAttempts: 3,
		ProbeTimeout:    time.Second,
		GuestCommand:    time.Second,
	}
	return ctx
}
