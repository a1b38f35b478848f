package pve

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RealClient implements the package interfaces by shelling out to the host
// tools. It is stateless; every call is one external invocation.
type RealClient struct {
	runner       Runner
	probeTimeout time.Duration
	guestTimeout time.Duration
}

// NewRealClient returns a client backed by the given runner.
// probeTimeout bounds the reachability probe; guestTimeout bounds a single
// in-guest command.
func NewRealClient(runner Runner, probeTimeout, guestTimeout time.Duration) *RealClient {
	return &RealClient{
		runner:       runner,
		probeTimeout: probeTimeout,
		guestTimeout: guestTimeout,
	}
}

// TemplateRef builds the volume reference for a cached template image.
func TemplateRef(storage, name string) string {
	return fmt.Sprintf("%s:vztmpl/%s", storage, name)
}

// RootFSRef builds the rootfs specification for container creation.
func RootFSRef(storage string, diskGB int) string {
	return fmt.Sprintf("%s:%d", storage, diskGB)
}

// Exists implements InstanceManager. A status query that fails because the
// configuration file is missing means the VMID is free; any other failure is
// reported as an error.
func (c *RealClient) Exists(ctx context.Context, vmid int) (bool, error) {
	_, err := c.runner.Run(ctx, "pct", "status", strconv.Itoa(vmid))
	if err == nil {
		return true, nil
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Stderr, "does not exist") {
		return false, nil
	}
	return false, fmt.Errorf("failed to query status of %d: %w", vmid, err)
}

// Create implements InstanceManager.
func (c *RealClient) Create(ctx context.Context, opts CreateOpts) error {
	args := []string{
		"create", strconv.Itoa(opts.VMID), opts.TemplateRef,
		"--hostname", opts.Hostname,
		"--cores", strconv.Itoa(opts.Cores),
		"--memory", strconv.Itoa(opts.MemoryMB),
		"--swap", strconv.Itoa(opts.SwapMB),
		"--ostype", opts.OSType,
		"--rootfs", opts.RootFS,
		"--unprivileged", boolFlag(opts.Unprivileged),
		"--start", boolFlag(opts.Start),
	}
	if opts.Password != "" {
		args = append(args, "--password", opts.Password)
	}

	if _, err := c.runner.Run(ctx, "pct", args...); err != nil {
		return fmt.Errorf("failed to create container %d: %w", opts.VMID, err)
	}
	return nil
}

// SetNetwork implements InstanceManager.
func (c *RealClient) SetNetwork(ctx context.Context, vmid int, opts NetworkOpts) error {
	net0 := fmt.Sprintf("name=eth0,bridge=%s,ip=%s", opts.Bridge, opts.IPCIDR)
	if opts.Gateway != "" {
		net0 += ",gw=" + opts.Gateway
	}

	args := []string{"set", strconv.Itoa(vmid), "--net0", net0}
	if len(opts.Nameservers) > 0 {
		args = append(args, "--nameserver", strings.Join(opts.Nameservers, " "))
	}

	if _, err := c.runner.Run(ctx, "pct", args...); err != nil {
		return fmt.Errorf("failed to configure network of %d: %w", vmid, err)
	}
	return nil
}

// SetOptions implements InstanceManager.
func (c *RealClient) SetOptions(ctx context.Context, vmid int, opts InstanceOpts) error {
	args := []string{
		"set", strconv.Itoa(vmid),
		"--onboot", boolFlag(opts.OnBoot),
		"--cpuunits", strconv.Itoa(opts.CPUUnits),
	}
	if opts.Features != "" {
		args = append(args, "--features", opts.Features)
	}

	if _, err := c.runner.Run(ctx, "pct", args...); err != nil {
		return fmt.Errorf("failed to set options of %d: %w", vmid, err)
	}
	return nil
}

// Start implements InstanceManager.
func (c *RealClient) Start(ctx context.Context, vmid int) error {
	if _, err := c.runner.Run(ctx, "pct", "start", strconv.Itoa(vmid)); err != nil {
		return fmt.Errorf("failed to start container %d: %w", vmid, err)
	}
	return nil
}

// Stop implements InstanceManager.
func (c *RealClient) Stop(ctx context.Context, vmid int) error {
	if _, err := c.runner.Run(ctx, "pct", "stop", strconv.Itoa(vmid)); err != nil {
		return fmt.Errorf("failed to stop container %d: %w", vmid, err)
	}
	return nil
}

// Destroy implements InstanceManager.
func (c *RealClient) Destroy(ctx context.Context, vmid int) error {
	if _, err := c.runner.Run(ctx, "pct", "destroy", strconv.Itoa(vmid), "--purge"); err != nil {
		return fmt.Errorf("failed to destroy container %d: %w", vmid, err)
	}
	return nil
}

// Status implements InstanceManager.
func (c *RealClient) Status(ctx context.Context, vmid int) (string, error) {
	result, err := c.runner.Run(ctx, "pct", "status", strconv.Itoa(vmid))
	if err != nil {
		return "", fmt.Errorf("failed to query status of %d: %w", vmid, err)
	}
	return ParseStatus(result.Stdout), nil
}

// Exec implements InstanceManager. The command runs under a shell inside the
// guest, bounded by the guest command timeout.
func (c *RealClient) Exec(ctx context.Context, vmid int, command string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.guestTimeout)
	defer cancel()

	result, err := c.runner.Run(ctx, "pct", "exec", strconv.Itoa(vmid), "--", "bash", "-c", command)
	if err != nil {
		return result.Stdout, fmt.Errorf("guest command failed in %d: %w", vmid, err)
	}
	return result.Stdout, nil
}

// StoragesWithContent implements StorageManager.
func (c *RealClient) StoragesWithContent(ctx context.Context, content string) ([]Storage, error) {
	result, err := c.runner.Run(ctx, "pvesm", "status", "--content", content)
	if err != nil {
		return nil, fmt.Errorf("failed to list storages for content %q: %w", content, err)
	}
	return ParseStorageStatus(result.Stdout), nil
}

// Probe implements ConnectivityChecker with a single ICMP echo.
func (c *RealClient) Probe(ctx context.Context, host string) error {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	seconds := int(c.probeTimeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	if _, err := c.runner.Run(ctx, "ping", "-c", "1", "-W", strconv.Itoa(seconds), host); err != nil {
		return fmt.Errorf("host cannot reach %s: %w", host, err)
	}
	return nil
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
