package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/gauransh/gitingest/internal/config"
	"github.com/gauransh/gitingest/internal/ingest"
	"github.com/gauransh/gitingest/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.gauransh.gitingest")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Gitingest")
	myWindow.Resize(fyne.NewSize(900, 640))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := ingest.NewClient(settings.GetServerURL(), settings.GetRequestTimeout())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, settings)

	// Show and run
	myWindow.ShowAndRun()
}
