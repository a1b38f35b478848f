package config

import (
	"fmt"
	"net"
	"strings"
)

// ValidationError describes a single configuration problem.
type ValidationError struct {
	Field    string // configuration field that failed validation
	Message  string // human-readable message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == "error"
}

// Validate checks the configuration and returns an aggregate error if any
// check with error severity fails. Warnings are not returned here; use
// [Config.Check] to retrieve the full list.
func (c *Config) Validate() error {
	var msgs []string
	for _, ve := range c.Check() {
		if ve.IsError() {
			msgs = append(msgs, ve.Error())
		}
	}
	if len(msgs) > 0 {
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}

// Check runs all validation checks and returns every error and warning.
func (c *Config) Check() []ValidationError {
	var errs []ValidationError

	if c.VMID <= 0 {
		errs = append(errs, ValidationError{
			Field:    "vmid",
			Message:  "vmid must be a positive integer",
			Severity: "error",
		})
	}

	if c.Hostname == "" {
		errs = append(errs, ValidationError{
			Field:    "hostname",
			Message:  "hostname is required",
			Severity: "error",
		})
	}

	if c.Template == "" {
		errs = append(errs, ValidationError{
			Field:    "template",
			Message:  "template filename is required",
			Severity: "error",
		})
	}

	if c.RootStorage == "" {
		errs = append(errs, ValidationError{
			Field:    "root_storage",
			Message:  "root storage pool is required",
			Severity: "error",
		})
	}

	for _, sz := range []struct {
		field string
		value int
	}{
		{"cores", c.Cores},
		{"memory_mb", c.MemoryMB},
		{"disk_gb", c.DiskGB},
	} {
		if sz.value <= 0 {
			errs = append(errs, ValidationError{
				Field:    sz.field,
				Message:  "must be a positive integer",
				Severity: "error",
			})
		}
	}
	if c.SwapMB < 0 {
		errs = append(errs, ValidationError{
			Field:    "swap_mb",
			Message:  "must be non-negative",
			Severity: "error",
		})
	}

	if c.Bridge == "" {
		errs = append(errs, ValidationError{
			Field:    "bridge",
			Message:  "network bridge is required",
			Severity: "error",
		})
	}

	errs = append(errs, c.checkNetwork()...)

	switch c.Mode {
	case ModeBestEffort, ModeStrict:
	default:
		errs = append(errs, ValidationError{
			Field:    "mode",
			Message:  fmt.Sprintf("mode must be %q or %q", ModeBestEffort, ModeStrict),
			Severity: "error",
		})
	}

	if c.RootPassword == "" {
		errs = append(errs, ValidationError{
			Field:    "root_password",
			Message:  "no root password set; console login will be unavailable",
			Severity: "warning",
		})
	} else if len(c.RootPassword) < 8 {
		errs = append(errs, ValidationError{
			Field:    "root_password",
			Message:  "root password is shorter than 8 characters",
			Severity: "warning",
		})
	}

	if !c.Unprivileged {
		errs = append(errs, ValidationError{
			Field:    "unprivileged",
			Message:  "container runs privileged",
			Severity: "warning",
		})
	}

	return errs
}

// checkNetwork validates the static address fields. A literal "dhcp" address
// skips the gateway requirement.
func (c *Config) checkNetwork() []ValidationError {
	var errs []ValidationError

	if c.IPCIDR == "" || c.IPCIDR == "dhcp" {
		return errs
	}

	if _, _, err := net.ParseCIDR(c.IPCIDR); err != nil {
		errs = append(errs, ValidationError{
			Field:    "ip_cidr",
			Message:  fmt.Sprintf("invalid address: %v", err),
			Severity: "error",
		})
	}

	if c.Gateway == "" {
		errs = append(errs, ValidationError{
			Field:    "gateway",
			Message:  "gateway is required with a static address",
			Severity: "error",
		})
	} else if net.ParseIP(c.Gateway) == nil {
		errs = append(errs, ValidationError{
			Field:    "gateway",
			Message:  fmt.Sprintf("invalid gateway address %q", c.Gateway),
			Severity: "error",
		})
	}

	for i, ns := range c.DNS {
		if net.ParseIP(ns) == nil {
			errs = append(errs, ValidationError{
				Field:    fmt.Sprintf("dns[%d]", i),
				Message:  fmt.Sprintf("invalid nameserver address %q", ns),
				Severity: "error",
			})
		}
	}

	return errs
}
