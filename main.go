package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/gauransh/gitingest/internal/config"
	"github.com/gauransh/gitingest/internal/ingest"
	"github.com/gauransh/gitingest/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.gauransh.gitingest"
	AppName = "Gitingest"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := ingest.NewClient(settings.GetServerURL(), settings.GetRequestTimeout())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, settings)

	// Show and run
	myWindow.ShowAndRun()
}
