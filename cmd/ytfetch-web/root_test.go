package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvNames(t *testing.T) {
	names := envNames()

	assert.Contains(t, names, "YTFETCH_ADDR")
	assert.Contains(t, names, "YTFETCH_DOWNLOADS_DIR")
	assert.Contains(t, names, "YTFETCH_MAX_PARALLEL")
	assert.IsNonDecreasing(t, names)
}

func TestEnvCmd_SetOnly(t *testing.T) {
	t.Setenv("YTFETCH_ADDR", ":9999")

	cmd := newRootCmd(afero.NewMemMapFs())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"env", "--set-only"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "YTFETCH_ADDR=:9999\n")
	assert.NotContains(t, out.String(), "unset")
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	cmd := newRootCmd(afero.NewMemMapFs())
	cmd.SetArgs([]string{"--config", "/etc/ytfetch/missing.toml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}
