package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/logging"
	"github.com/ytget/ytfetch/internal/muxer"
	"github.com/ytget/ytfetch/internal/platform"
	"github.com/ytget/ytfetch/internal/server"
	"github.com/ytget/ytfetch/internal/session"
)

// cacheDirName is created inside the downloads directory
const cacheDirName = ".cache"

// newRootCmd builds the command tree around one viper instance
func newRootCmd(fs afero.Fs) *cobra.Command {
	v := config.NewViper(fs)

	rootCmd := &cobra.Command{
		Use:           "ytfetch-web",
		Short:         "Serve media format lookups and downloads over HTTP with live progress",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file := lo.Must(cmd.Flags().GetString("config"))
			cfg, err := config.LoadServerConfig(v, file)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP("config", "c", "", "Path to a config file (toml, yaml or json)")

	flags.StringP("addr", "a", "", "Address to listen on")
	lo.Must0(v.BindPFlag(config.KeyAddr, flags.Lookup("addr")))

	flags.StringP("downloads-dir", "d", "", "Directory holding per-request transfer directories")
	lo.Must0(v.BindPFlag(config.KeyDownloadsDir, flags.Lookup("downloads-dir")))

	flags.String("ytdlp", "", "Path to the yt-dlp executable")
	lo.Must0(v.BindPFlag(config.KeyServerYtdlpPath, flags.Lookup("ytdlp")))

	flags.String("ffmpeg", "", "Path to the ffmpeg executable used for the merge check")
	lo.Must0(v.BindPFlag(config.KeyFFmpegPath, flags.Lookup("ffmpeg")))

	flags.StringP("log-level", "l", "", "Log level (trace, debug, info, warn, error)")
	lo.Must0(v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")))

	flags.Bool("log-json", false, "Write logs as JSON")
	lo.Must0(v.BindPFlag(config.KeyLogJSON, flags.Lookup("log-json")))

	flags.Int("max-parallel", 0, "Maximum concurrent transfers, 0 means no limit")
	lo.Must0(v.BindPFlag(config.KeyMaxParallelWeb, flags.Lookup("max-parallel")))

	rootCmd.AddCommand(newEnvCmd())
	return rootCmd
}

// serve wires the service graph and blocks until ctx is done
func serve(ctx context.Context, cfg *config.ServerConfig) error {
	logger := logging.New(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	engine := platform.NewYtdlpEngine(cfg.YtdlpPath, logger)
	engine.SetTimeout(cfg.FetchTimeout)

	fs := afero.NewOsFs()
	sessions := session.NewRegistry(logger)
	workspace := platform.NewWorkspace(fs, cfg.DownloadsDir, logger)
	if err := workspace.EnsureDir(workspace.Root()); err != nil {
		return err
	}

	downloads := download.NewService(engine, sessions, workspace, logger)
	downloads.SetMaxParallelDownloads(cfg.MaxParallel)

	probe := muxer.NewProbe(cfg.FFmpegPath, muxer.WithCacheDir(fs, filepath.Join(cfg.DownloadsDir, cacheDirName)))
	if status := probe.Check(ctx); !status.Available {
		logger.Warn("ffmpeg not found, video and audio downloads may not be merged", "error", status.Error)
	}

	srv := server.New(server.Options{
		Config:    cfg,
		Downloads: downloads,
		Sessions:  sessions,
		Workspace: workspace,
		Probe:     probe,
		Logger:    logger,
	})

	logger.Info("starting", "version", version, "downloads_dir", cfg.DownloadsDir)
	return srv.Run(ctx)
}

// newEnvCmd lists the environment variables the service reads
func newEnvCmd() *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Display the supported environment variables",
		Run: func(cmd *cobra.Command, _ []string) {
			setOnly := lo.Must(cmd.Flags().GetBool("set-only"))

			for _, name := range envNames() {
				value, present := os.LookupEnv(name)
				if setOnly && !present {
					continue
				}
				if !present {
					value = "unset"
				}
				cmd.Printf("%s=%s\n", name, value)
			}
		},
	}
	envCmd.Flags().BoolP("set-only", "s", false, "Display only variables that are currently defined")
	return envCmd
}

// envNames returns the YTFETCH_* names of every config key, sorted
func envNames() []string {
	names := lo.MapToSlice(config.ServerDefaults, func(key string, _ any) string {
		return config.EnvPrefix + "_" + strings.ToUpper(config.EnvKeyReplacer.Replace(key))
	})
	slices.Sort(names)
	return names
}
