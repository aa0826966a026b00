package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_DefinesExpectedFlags(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"verbose", "logfile", "record-traffic", "replay-traffic", "config"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "expected flag %q to be defined", name)
	}
}

func TestNewRootCommand_RejectsMissingOutputDir(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
}

func TestNewRootCommand_RejectsMutuallyExclusiveTrafficFlags(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{
		"/tmp/does-not-matter",
		"--record-traffic", "/tmp/rec",
		"--replay-traffic", "/tmp/rep",
	})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}
