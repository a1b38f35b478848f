package config

// Mode controls how post-creation stage failures are treated.
type Mode string

const (
	// ModeBestEffort keeps the pipeline running past network, options, and
	// guest software failures, collecting them as warnings for the final
	// report. This matches the historically observed behavior.
	ModeBestEffort Mode = "best-effort"

	// ModeStrict promotes every stage failure to a fatal pipeline error.
	ModeStrict Mode = "strict"
)

// Config holds the full provisioning request. Fields map 1:1 to the YAML
// configuration file.
type Config struct {
	// Container identity
	VMID     int    `yaml:"vmid"`
	Hostname string `yaml:"hostname"`

	// Storage
	RootStorage     string `yaml:"root_storage"`     // pool for the container rootfs
	TemplateStorage string `yaml:"template_storage"` // pool for the cached template image
	Template        string `yaml:"template"`         // exact template filename

	// Sizing
	Cores    int `yaml:"cores"`
	MemoryMB int `yaml:"memory_mb"`
	SwapMB   int `yaml:"swap_mb"`
	DiskGB   int `yaml:"disk_gb"`

	// Network
	Bridge  string   `yaml:"bridge"`
	IPCIDR  string   `yaml:"ip_cidr"` // address/prefix, or "dhcp"
	Gateway string   `yaml:"gateway"`
	DNS     []string `yaml:"dns"`

	// Credential, used once at creation.
	RootPassword string `yaml:"root_password"`

	// Lifecycle and security options
	Unprivileged bool   `yaml:"unprivileged"`
	OnBoot       bool   `yaml:"onboot"`
	CPUUnits     int    `yaml:"cpu_units"`
	Features     string `yaml:"features"` // guest kernel feature flags, pct --features syntax
	OSType       string `yaml:"ostype"`

	// Pipeline behavior
	Mode      Mode   `yaml:"mode"`
	ProbeHost string `yaml:"probe_host"` // outbound reachability probe target

	// Guest software source
	App AppConfig `yaml:"app"`

	// Optional Prometheus textfile output for the run summary.
	MetricsFile string `yaml:"metrics_file"`
}

// AppConfig describes the application installed into the guest: the package
// repository, its signing key, and the package set.
type AppConfig struct {
	Name       string   `yaml:"name"`
	KeyURL     string   `yaml:"key_url"`
	KeyPath    string   `yaml:"key_path"`    // destination in the guest's trusted-key store
	Repo       string   `yaml:"repo"`        // apt source line
	SourceFile string   `yaml:"source_file"` // destination under sources.list.d
	Package    string   `yaml:"package"`
	Prereqs    []string `yaml:"prereqs"` // runtime dependency and fetch utilities
}

// Default returns a configuration pre-filled with defaults for everything
// except the per-host values the operator must supply (vmid, hostname,
// template, network address).
func Default() Config {
	return Config{
		RootStorage:     "local-lvm",
		TemplateStorage: "local",
		Cores:           2,
		MemoryMB:        2048,
		SwapMB:          512,
		DiskGB:          8,
		Bridge:          "vmbr0",
		IPCIDR:          "dhcp",
		Unprivileged:    false,
		OnBoot:          true,
		CPUUnits:        1024,
		Features:        "nesting=1,keyctl=1",
		OSType:          "debian",
		Mode:            ModeBestEffort,
		ProbeHost:       "deb.debian.org",
		App:             DefaultApp(),
	}
}

// DefaultApp returns the UniFi Network Application software source.
func DefaultApp() AppConfig {
	return AppConfig{
		Name:       "UniFi Network Application",
		KeyURL:     "https://dl.ui.com/unifi/unifi-repo.gpg",
		KeyPath:    "/etc/apt/trusted.gpg.d/unifi-repo.gpg",
		Repo:       "deb https://www.ui.com/downloads/unifi/debian stable ubiquiti",
		SourceFile: "/etc/apt/sources.list.d/100-ubnt-unifi.list",
		Package:    "unifi",
		Prereqs:    []string{"curl", "ca-certificates", "gnupg"},
	}
}

// Strict reports whether post-creation failures should abort the pipeline.
func (c *Config) Strict() bool {
	return c.Mode == ModeStrict
}
