package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slurmplus/goslurm/internal/colorio"
)

func TestBuildCLI(t *testing.T) {
	cmd := BuildCLI()

	require.NotNil(t, cmd)
	assert.Equal(t, "slurmplus", cmd.Use)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)

	commandNames := make(map[string]bool)
	for _, c := range cmd.Commands() {
		commandNames[c.Name()] = true
	}
	assert.True(t, commandNames["recent"], "should have 'recent' command")
	assert.True(t, commandNames["status"], "should have 'status' command")

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("color"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestBuildRecentCommandFlags(t *testing.T) {
	cmd := buildRecentCommand()

	span := cmd.Flags().Lookup("span")
	require.NotNil(t, span)
	assert.Equal(t, "s", span.Shorthand)
	assert.Equal(t, "7", span.DefValue)

	limit := cmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "l", limit.Shorthand)
	assert.Equal(t, "30", limit.DefValue)
}

func TestBuildStatusCommandRequiresJobID(t *testing.T) {
	cmd := buildStatusCommand()

	require.NotNil(t, cmd.Args)
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.Error(t, cmd.Args(cmd, []string{"1", "2"}))
	assert.NoError(t, cmd.Args(cmd, []string{"42"}))
}

func TestSetupRejectsUnknownColorChoice(t *testing.T) {
	oldColor, oldConfig := colorFlag, configFile
	defer func() { colorFlag, configFile = oldColor, oldConfig }()
	colorFlag = "sometimes"
	configFile = ""

	_, _, _, err := setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestSetupHonorsColorFlagOverConfig(t *testing.T) {
	oldColor, oldConfig := colorFlag, configFile
	defer func() { colorFlag, configFile = oldColor, oldConfig }()
	colorFlag = "never"
	configFile = ""

	cfg, cio, logger, err := setup()
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
	assert.NotNil(t, cio)
	assert.NotNil(t, logger)
}

func TestPrintCauseChain(t *testing.T) {
	var out bytes.Buffer
	cio := colorio.NewWithWriters(&out, &out, colorio.Never)

	base := fmt.Errorf("connection refused")
	mid := fmt.Errorf("failed to reach the accounting database: %w", base)
	top := fmt.Errorf("failed to query recent jobs: %w", mid)

	PrintCauseChain(cio, top)

	want := "error: failed to query recent jobs: failed to reach the accounting database: connection refused\n" +
		"  caused by: failed to reach the accounting database: connection refused\n" +
		"  caused by: connection refused\n"
	assert.Equal(t, want, out.String())
}
