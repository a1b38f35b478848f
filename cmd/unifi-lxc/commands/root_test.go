package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_HasExpectedSubcommands(t *testing.T) {
	t.Parallel()
	root := Root()

	want := []string{"init", "provision", "destroy", "doctor", "version", "completion"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}

	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestProvision_ConfigFlag(t *testing.T) {
	t.Parallel()
	cmd := Provision()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestDestroy_ForceFlag(t *testing.T) {
	t.Parallel()
	cmd := Destroy()

	require.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestVersion_Output(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	cmd := Version()
	assert.Equal(t, "version", cmd.Name())
}
