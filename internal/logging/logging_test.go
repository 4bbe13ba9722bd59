package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFallback(t *testing.T) {
	logger := New(Options{Level: "bogus", Output: &bytes.Buffer{}})
	assert.Equal(t, hclog.Info, logger.GetLevel())
	assert.Equal(t, DefaultName, logger.Name())

	logger = New(Options{Name: "web", Level: "DEBUG", Output: &bytes.Buffer{}})
	assert.Equal(t, hclog.Debug, logger.GetLevel())
	assert.Equal(t, "web", logger.Name())
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", JSON: true, Output: &buf})

	logger.Named("http").Info("request served", "status", 200)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request served", line["@message"])
	assert.Equal(t, "ytfetch.http", line["@module"])
	assert.EqualValues(t, 200, line["status"])
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Output: &buf})

	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
