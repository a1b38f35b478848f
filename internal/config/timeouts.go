package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable delay and polling values.
// These values can be customized via environment variables.
type Timeouts struct {
	SettleDelay     time.Duration // delay after start before address discovery
	AddressInterval time.Duration // interval between address discovery attempts
	AddressAttempts int           // maximum address discovery attempts
	ProbeTimeout    time.Duration // reachability probe timeout
	GuestCommand    time.Duration // timeout for a single in-guest command
}

// LoadTimeouts loads timing configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - PVE_SETTLE_DELAY (default: 5s)
//   - PVE_ADDRESS_INTERVAL (default: 2s)
//   - PVE_ADDRESS_ATTEMPTS (default: 15)
//   - PVE_PROBE_TIMEOUT (default: 5s)
//   - PVE_GUEST_CMD_TIMEOUT (default: 10m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		SettleDelay:     parseDuration("PVE_SETTLE_DELAY", 5*time.Second),
		AddressInterval: parseDuration("PVE_ADDRESS_INTERVAL", 2*time.Second),
		AddressAttempts: parseInt("PVE_ADDRESS_ATTEMPTS", 15),
		ProbeTimeout:    parseDuration("PVE_PROBE_TIMEOUT", 5*time.Second),
		GuestCommand:    parseDuration("PVE_GUEST_CMD_TIMEOUT", 10*time.Minute),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
