package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor_AllToolsPresent(t *testing.T) {
	origPrereqs := checkDefaultPrereqs
	defer func() { checkDefaultPrereqs = origPrereqs }()

	checkDefaultPrereqs = stubPrereqs(true)

	require.NoError(t, Doctor())
}

func TestDoctor_MissingTools(t *testing.T) {
	origPrereqs := checkDefaultPrereqs
	defer func() { checkDefaultPrereqs = origPrereqs }()

	checkDefaultPrereqs = stubPrereqs(false)

	err := Doctor()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required tools")
}
