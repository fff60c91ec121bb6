package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/wav-chopper/internal/config"
	"github.com/ytget/wav-chopper/internal/session"
	"github.com/ytget/wav-chopper/internal/toolchain"
)

const (
	AppID = "com.ytget.wav-chopper"
)

// Run creates the Fyne app and blocks until the window is closed
func Run(version string, newGateway GatewayFactory) {
	log.Printf("WAV Chopper v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(NewCompactTheme())
	if logo, err := LoadLogoResource(); err == nil {
		myApp.SetIcon(logo)
	}

	settings := config.NewSettings(myApp)
	toolCfg := settings.ToolchainConfig()
	sess := session.New(newGateway(toolCfg), session.WithOutputDir(settings.GetOutputDirectory()))

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := NewRootUI(myWindow, myApp, sess, settings, newGateway)
	root.ReportMissingTools(toolchain.NewService(toolCfg).Check())

	myWindow.ShowAndRun()
}
