package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadTimeouts_Defaults(t *testing.T) {
	timeouts := LoadTimeouts()

	assert.Equal(t, 5*time.Second, timeouts.SettleDelay)
	assert.Equal(t, 2*time.Second, timeouts.AddressInterval)
	assert.Equal(t, 15, timeouts.AddressAttempts)
	assert.Equal(t, 5*time.Second, timeouts.ProbeTimeout)
	assert.Equal(t, 10*time.Minute, timeouts.GuestCommand)
}

func TestLoadTimeouts_EnvOverrides(t *testing.T) {
	t.Setenv("PVE_SETTLE_DELAY", "11s")
	t.Setenv("PVE_ADDRESS_ATTEMPTS", "30")

	timeouts := LoadTimeouts()

	assert.Equal(t, 11*time.Second, timeouts.SettleDelay)
	assert.Equal(t, 30, timeouts.AddressAttempts)
}

func TestLoadTimeouts_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PVE_SETTLE_DELAY", "eleven")
	t.Setenv("PVE_ADDRESS_ATTEMPTS", "lots")

	timeouts := LoadTimeouts()

	assert.Equal(t, 5*time.Second, timeouts.SettleDelay)
	assert.Equal(t, 15, timeouts.AddressAttempts)
}
