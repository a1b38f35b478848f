package pve

import "context"

// CreateOpts holds all parameters for materializing a new container.
type CreateOpts struct {
	VMID         int
	TemplateRef  string // storage:vztmpl/<filename>
	Hostname     string
	Cores        int
	MemoryMB     int
	SwapMB       int
	OSType       string
	Unprivileged bool
	Start        bool
	Password     string
	RootFS       string // storage:<size-in-GB>
}

// NetworkOpts holds the guest network configuration applied after creation.
type NetworkOpts struct {
	Bridge      string
	IPCIDR      string // address/prefix or "dhcp"
	Gateway     string
	Nameservers []string
}

// InstanceOpts holds lifecycle and security options applied after creation.
type InstanceOpts struct {
	OnBoot   bool
	CPUUnits int
	Features string // pct feature flag syntax, e.g. "nesting=1,keyctl=1"
}

// InstanceManager drives the container lifecycle through the pct tool.
type InstanceManager interface {
	// Exists reports whether vmid denotes a known container on this host.
	Exists(ctx context.Context, vmid int) (bool, error)

	// Create materializes a new, stopped container from a template.
	Create(ctx context.Context, opts CreateOpts) error

	// SetNetwork applies bridge, address, gateway, and nameservers to a
	// created container.
	SetNetwork(ctx context.Context, vmid int, opts NetworkOpts) error

	// SetOptions applies lifecycle and security options.
	SetOptions(ctx context.Context, vmid int, opts InstanceOpts) error

	// Start transitions the container to running.
	Start(ctx context.Context, vmid int) error

	// Stop forces the container to stop.
	Stop(ctx context.Context, vmid int) error

	// Destroy removes the container and its volumes.
	Destroy(ctx context.Context, vmid int) error

	// Status returns the container lifecycle state ("running", "stopped").
	Status(ctx context.Context, vmid int) (string, error)

	// Exec runs a shell command inside the guest and returns its stdout.
	Exec(ctx context.Context, vmid int, command string) (string, error)
}

// Storage describes one storage pool reported by the storage manager.
type Storage struct {
	Name   string
	Type   string
	Active bool
}

// StorageManager lists storage pools by content capability.
type StorageManager interface {
	// StoragesWithContent returns the pools that accept the given content
	// type ("vztmpl" for template images, "rootdir" for container volumes).
	StoragesWithContent(ctx context.Context, content string) ([]Storage, error)
}

// ImageCache answers whether a template image is already cached locally and
// fetches it when it is not. The path-probe implementation is swappable for
// one that asks the storage tool instead.
type ImageCache interface {
	// Contains reports whether the named template is present in the cache.
	Contains(name string) (bool, error)

	// Download fetches the named template into the given storage pool.
	Download(ctx context.Context, storage, name string) error
}

// ConnectivityChecker probes outbound reachability from the host.
type ConnectivityChecker interface {
	Probe(ctx context.Context, host string) error
}
