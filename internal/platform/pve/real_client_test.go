package pve

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records every invocation and replays scripted results keyed by
// a command-line prefix.
type fakeRunner struct {
	calls   []string
	results map[string]fakeResult
}

type fakeResult struct {
	out Result
	err error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{results: make(map[string]fakeResult)}
}

func (f *fakeRunner) on(prefix string, out Result, err error) {
	f.results[prefix] = fakeResult{out: out, err: err}
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (Result, error) {
	line := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, line)
	for prefix, res := range f.results {
		if strings.HasPrefix(line, prefix) {
			return res.out, res.err
		}
	}
	return Result{}, nil
}

func newTestClient(runner Runner) *RealClient {
	return NewRealClient(runner, 5*time.Second, time.Minute)
}

func TestExists_True(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	runner.on("pct status 200", Result{Stdout: "status: stopped\n"}, nil)

	exists, err := newTestClient(runner).Exists(context.Background(), 200)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExists_FalseWhenConfigMissing(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	runner.on("pct status 200", Result{}, &CommandError{
		Command:  "pct status 200",
		ExitCode: 2,
		Stderr:   "Configuration file 'nodes/pve/lxc/200.conf' does not exist\n",
	})

	exists, err := newTestClient(runner).Exists(context.Background(), 200)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExists_OtherFailurePropagates(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	runner.on("pct status 200", Result{}, &CommandError{
		Command:  "pct status 200",
		ExitCode: 255,
		Stderr:   "cluster not ready\n",
	})

	_, err := newTestClient(runner).Exists(context.Background(), 200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cluster not ready")
}

func TestCreate_BuildsExactCommandLine(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	client := newTestClient(runner)

	err := client.Create(context.Background(), CreateOpts{
		VMID:         310,
		TemplateRef:  TemplateRef("pool-a", "img-1.tar"),
		Hostname:     "test-node",
		Cores:        2,
		MemoryMB:     2048,
		SwapMB:       512,
		OSType:       "debian",
		Unprivileged: false,
		Start:        false,
		Password:     "s3cret",
		RootFS:       RootFSRef("pool-a", 8),
	})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t,
		"pct create 310 pool-a:vztmpl/img-1.tar --hostname test-node "+
			"--cores 2 --memory 2048 --swap 512 --ostype debian "+
			"--rootfs pool-a:8 --unprivileged 0 --start 0 --password s3cret",
		runner.calls[0])
}

func TestCreate_FailurePropagatesDiagnostic(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	runner.on("pct create", Result{}, &CommandError{
		Command:  "pct create 310",
		ExitCode: 255,
		Stderr:   "unable to create CT 310 - no such logical volume\n",
	})

	err := newTestClient(runner).Create(context.Background(), CreateOpts{VMID: 310})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such logical volume")
}

func TestSetNetwork_StaticWithNameservers(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()

	err := newTestClient(runner).SetNetwork(context.Background(), 310, NetworkOpts{
		Bridge:      "br0",
		IPCIDR:      "10.0.0.5/24",
		Gateway:     "10.0.0.1",
		Nameservers: []string{"1.1.1.1", "9.9.9.9"},
	})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t,
		"pct set 310 --net0 name=eth0,bridge=br0,ip=10.0.0.5/24,gw=10.0.0.1 --nameserver 1.1.1.1 9.9.9.9",
		runner.calls[0])
}

func TestSetNetwork_DHCPOmitsGateway(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()

	err := newTestClient(runner).SetNetwork(context.Background(), 310, NetworkOpts{
		Bridge: "vmbr0",
		IPCIDR: "dhcp",
	})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "pct set 310 --net0 name=eth0,bridge=vmbr0,ip=dhcp", runner.calls[0])
}

func TestSetOptions(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()

	err := newTestClient(runner).SetOptions(context.Background(), 310, InstanceOpts{
		OnBoot:   true,
		CPUUnits: 1024,
		Features: "nesting=1,keyctl=1",
	})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "pct set 310 --onboot 1 --cpuunits 1024 --features nesting=1,keyctl=1", runner.calls[0])
}

func TestStartStopDestroy(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	client := newTestClient(runner)
	ctx := context.Background()

	require.NoError(t, client.Start(ctx, 310))
	require.NoError(t, client.Stop(ctx, 310))
	require.NoError(t, client.Destroy(ctx, 310))

	assert.Equal(t, []string{
		"pct start 310",
		"pct stop 310",
		"pct destroy 310 --purge",
	}, runner.calls)
}

func TestStatus(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	runner.on("pct status 310", Result{Stdout: "status: running\n"}, nil)

	status, err := newTestClient(runner).Status(context.Background(), 310)
	require.NoError(t, err)
	assert.Equal(t, "running", status)
}

func TestExec_WrapsCommandInShell(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	runner.on("pct exec", Result{Stdout: "ok\n"}, nil)

	out, err := newTestClient(runner).Exec(context.Background(), 310, "apt-get update")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "pct exec 310 -- bash -c apt-get update", runner.calls[0])
}

func TestStoragesWithContent(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	runner.on("pvesm status --content vztmpl", Result{Stdout: "" +
		"Name             Type     Status           Total            Used       Available        %\n" +
		"local             dir     active        98497780        12920452        80527356   13.12%\n" +
		"pool-a            dir     active       491086848        10485760       480601088    2.13%\n",
	}, nil)

	storages, err := newTestClient(runner).StoragesWithContent(context.Background(), "vztmpl")
	require.NoError(t, err)
	require.Len(t, storages, 2)
	assert.Equal(t, Storage{Name: "local", Type: "dir", Active: true}, storages[0])
	assert.Equal(t, "pool-a", storages[1].Name)
}

func TestProbe(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()

	require.NoError(t, newTestClient(runner).Probe(context.Background(), "deb.debian.org"))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "ping -c 1 -W 5 deb.debian.org", runner.calls[0])
}

func TestProbe_Unreachable(t *testing.T) {
	t.Parallel()
	runner := newFakeRunner()
	runner.on("ping", Result{}, &CommandError{Command: "ping", ExitCode: 1, Stderr: "100% packet loss"})

	err := newTestClient(runner).Probe(context.Background(), "deb.debian.org")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot reach deb.debian.org")
}
