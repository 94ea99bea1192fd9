package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/nvenc-encoder/internal/config"
	"github.com/ytget/nvenc-encoder/internal/encode"
	"github.com/ytget/nvenc-encoder/internal/logging"
	"github.com/ytget/nvenc-encoder/internal/platform"
	"github.com/ytget/nvenc-encoder/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.nvenc-encoder"
	AppName = "NVENC Encoder"
)

func main() {
	env := config.FromEnv()
	logger, err := logging.New(env.LogLevel, os.Stderr)
	if err != nil {
		logger.WithError(err).Warn("Invalid log level, using info")
	}
	log := logging.WithComponent(logger, "app")
	log.WithField("version", version).Info("NVENC Encoder starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewEncoderTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	converter := encode.NewService(nil, logging.WithComponent(logger, "encode"))
	probe := platform.NewToolProbeService(logging.WithComponent(logger, "probe"))

	root := ui.NewRootUI(myWindow, myApp, converter, probe, env, logging.WithComponent(logger, "ui"))
	root.CheckTool()

	myWindow.SetCloseIntercept(func() {
		if converter.State().IsBusy() {
			_ = converter.Cancel()
			converter.Wait()
		}
		myWindow.Close()
	})

	myWindow.ShowAndRun()
}
