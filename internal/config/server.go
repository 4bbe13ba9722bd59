package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/ytget/ytfetch/internal/platform"
)

// EnvPrefix is prepended to every environment override, e.g. YTFETCH_ADDR
const EnvPrefix = "YTFETCH"

// ConfigName is the base name of the optional config file
const ConfigName = "ytfetch"

// Viper keys of the web service
const (
	KeyAddr             = "addr"
	KeyDownloadsDir     = "downloads_dir"
	KeyCustomFolderName = "custom_folder_name"
	KeyCleanupDelay     = "cleanup_delay"
	KeyServerYtdlpPath  = "ytdlp_path"
	KeyFFmpegPath       = "ffmpeg_path"
	KeyLogLevel         = "log_level"
	KeyLogJSON          = "log_json"
	KeyWriteTimeout     = "write_timeout"
	KeyFetchTimeout     = "fetch_timeout"
	KeyAllowedOrigins   = "allowed_origins"
	KeyMaxParallelWeb   = "max_parallel"
)

// EnvKeyReplacer turns nested keys into environment variable names
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// ServerDefaults are applied before files, env and flags
var ServerDefaults = map[string]any{
	KeyAddr:             ":8000",
	KeyDownloadsDir:     filepath.Join(os.TempDir(), "ytfetch-downloads"),
	KeyCustomFolderName: platform.CustomFolderName,
	KeyCleanupDelay:     platform.DefaultRemovalDelay,
	KeyServerYtdlpPath:  "",
	KeyFFmpegPath:       "",
	KeyLogLevel:         "info",
	KeyLogJSON:          false,
	KeyWriteTimeout:     10 * time.Second,
	KeyFetchTimeout:     platform.DefaultParseTimeout,
	KeyAllowedOrigins:   []string{},
	KeyMaxParallelWeb:   0,
}

// ServerConfig is the resolved configuration of the web service
type ServerConfig struct {
	Addr             string        `mapstructure:"addr"`
	DownloadsDir     string        `mapstructure:"downloads_dir"`
	CustomFolderName string        `mapstructure:"custom_folder_name"`
	CleanupDelay     time.Duration `mapstructure:"cleanup_delay"`
	YtdlpPath        string        `mapstructure:"ytdlp_path"`
	FFmpegPath       string        `mapstructure:"ffmpeg_path"`
	LogLevel         string        `mapstructure:"log_level"`
	LogJSON          bool          `mapstructure:"log_json"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	FetchTimeout     time.Duration `mapstructure:"fetch_timeout"`
	AllowedOrigins   []string      `mapstructure:"allowed_origins"`
	MaxParallel      int           `mapstructure:"max_parallel"`
}

// NewViper returns a viper instance with defaults and env bindings set up.
// fs backs config file lookups; nil means the OS filesystem.
func NewViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	if fs != nil {
		v.SetFs(fs)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetTypeByDefaultValue(true)
	for key, value := range ServerDefaults {
		v.SetDefault(key, value)
	}
	return v
}

// LoadServerConfig reads the optional config file and decodes v.
// An explicit file must exist; without one the working directory and
// /etc/ytfetch are searched and a missing file is not an error.
func LoadServerConfig(v *viper.Viper, file string) (*ServerConfig, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/ytfetch")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the service cannot start with
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.DownloadsDir == "" {
		return errors.New("downloads_dir must not be empty")
	}
	if c.CleanupDelay < 0 {
		return fmt.Errorf("cleanup_delay must not be negative, got %s", c.CleanupDelay)
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be positive, got %s", c.WriteTimeout)
	}
	if c.MaxParallel < 0 {
		return fmt.Errorf("max_parallel must not be negative, got %d", c.MaxParallel)
	}
	if c.CustomFolderName == "" {
		c.CustomFolderName = platform.CustomFolderName
	}
	return nil
}
