package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytfetch/internal/platform"
)

func TestLoadServerConfig_Defaults(t *testing.T) {
	v := NewViper(afero.NewMemMapFs())

	cfg, err := LoadServerConfig(v, "")
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, platform.CustomFolderName, cfg.CustomFolderName)
	assert.Equal(t, platform.DefaultRemovalDelay, cfg.CleanupDelay)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.Zero(t, cfg.MaxParallel)
}

func TestLoadServerConfig_EnvOverrides(t *testing.T) {
	t.Setenv("YTFETCH_ADDR", "127.0.0.1:9090")
	t.Setenv("YTFETCH_CLEANUP_DELAY", "30s")
	t.Setenv("YTFETCH_LOG_JSON", "true")

	cfg, err := LoadServerConfig(NewViper(afero.NewMemMapFs()), "")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.CleanupDelay)
	assert.True(t, cfg.LogJSON)
}

func TestLoadServerConfig_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte(`
addr = ":7000"
downloads_dir = "/var/lib/ytfetch"
custom_folder_name = "Clips"
log_level = "debug"
max_parallel = 3
allowed_origins = ["https://app.example.com"]
`)
	require.NoError(t, afero.WriteFile(fs, "/etc/ytfetch/ytfetch.toml", content, 0o644))

	cfg, err := LoadServerConfig(NewViper(fs), "/etc/ytfetch/ytfetch.toml")
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "/var/lib/ytfetch", cfg.DownloadsDir)
	assert.Equal(t, "Clips", cfg.CustomFolderName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.MaxParallel)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
}

func TestLoadServerConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadServerConfig(NewViper(afero.NewMemMapFs()), "/nope/ytfetch.yaml")
	assert.ErrorContains(t, err, "failed to read config")
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() ServerConfig {
		return ServerConfig{Addr: ":8000", DownloadsDir: "/tmp/x", WriteTimeout: time.Second}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, platform.CustomFolderName, cfg.CustomFolderName)

	cfg = valid()
	cfg.Addr = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.CleanupDelay = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.WriteTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.MaxParallel = -1
	assert.Error(t, cfg.Validate())
}

func TestEnvKeyReplacer(t *testing.T) {
	assert.Equal(t, "cleanup_delay", EnvKeyReplacer.Replace("cleanup-delay"))
	assert.Equal(t, "log_level", EnvKeyReplacer.Replace("log.level"))
}
