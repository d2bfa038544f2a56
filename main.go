package main

import (
	"log"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"

	"github.com/ytget/gdrive-downloader/internal/config"
	"github.com/ytget/gdrive-downloader/internal/download"
	"github.com/ytget/gdrive-downloader/internal/logger"
	"github.com/ytget/gdrive-downloader/internal/platform"
	"github.com/ytget/gdrive-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.ytget.gdrive-downloader"

func main() {
	env, err := config.LoadEnv(config.DefaultEnvFile)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	lg, closer, err := logger.OpenFile(env.LogFile, env.LogLevel, true)
	if err != nil {
		log.Fatalf("failed to open log: %v", err)
	}
	defer closer.Close()

	lg.Info("Application started", slog.String("version", version), slog.String("endpoint", env.Endpoint))

	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(ui.AppTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDestinationDirectory()); err != nil {
		lg.Warn("Failed to ensure destination directory", slog.Any("error", err))
	}

	downloadSvc := download.NewService(afero.NewOsFs(), lg)
	downloadSvc.SetEndpoint(env.Endpoint)

	ui.NewRootUI(myWindow, myApp, settings, downloadSvc, lg)

	myWindow.ShowAndRun()
	lg.Info("Application stopped")
}
