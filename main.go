package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"

	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/logging"
	"github.com/ytget/ytfetch/internal/muxer"
	"github.com/ytget/ytfetch/internal/platform"
	"github.com/ytget/ytfetch/internal/session"
	"github.com/ytget/ytfetch/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytfetch"
	AppName = "ytfetch"
)

// EnvLogLevel overrides the desktop log level, e.g. YTFETCH_LOG_LEVEL=debug
const EnvLogLevel = config.EnvPrefix + "_LOG_LEVEL"

func main() {
	logger := logging.New(logging.Options{Level: os.Getenv(EnvLogLevel)})
	logger.Info("starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Warn("failed to ensure downloads dir", "dir", downloadsDir, "error", err)
	}

	engine := platform.NewYtdlpEngine(settings.GetYtdlpPath(), logger)
	sessions := session.NewRegistry(logger)
	locator := platform.NewWorkspace(afero.NewOsFs(), downloadsDir, logger)

	downloadSvc := download.NewService(engine, sessions, locator, logger)
	downloadSvc.SetMaxParallelDownloads(settings.GetMaxParallelDownloads())
	downloadSvc.SetOutputTemplate(settings.GetFilenameTemplate())

	ui.NewRootUI(myWindow, myApp, ui.Options{
		Downloads: downloadSvc,
		Sessions:  sessions,
		Probe:     muxer.NewProbe(""),
		Settings:  settings,
		Engine:    engine,
		Logger:    logger,
	})

	myWindow.ShowAndRun()
	sessions.CloseAll()
}
