package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/gauransh/gitingest/internal/config"
)

// ShowSettingsDialog displays the settings dialog and invokes onSaved after
// the values are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	serverEntry := widget.NewEntry()
	serverEntry.SetPlaceHolder("Gitingest server base URL")
	serverEntry.SetText(settings.GetServerURL())

	timeoutEntry := widget.NewEntry()
	timeoutEntry.SetPlaceHolder("5-600")
	timeoutEntry.SetText(strconv.Itoa(int(settings.GetRequestTimeout().Seconds())))

	rememberCheck := widget.NewCheck("Remember git username", nil)
	rememberCheck.SetChecked(settings.GetRememberCredentials())

	form := container.NewVBox(
		widget.NewLabel("Server URL"),
		serverEntry,
		widget.NewLabel("Request timeout (seconds)"),
		timeoutEntry,
		rememberCheck,
	)

	dialog.ShowCustomConfirm("Settings", "Save", "Cancel", form, func(save bool) {
		if !save {
			return
		}

		settings.SetServerURL(serverEntry.Text)
		if seconds, err := strconv.Atoi(timeoutEntry.Text); err == nil {
			settings.SetRequestTimeoutSeconds(seconds)
		}
		settings.SetRememberCredentials(rememberCheck.Checked)

		if onSaved != nil {
			onSaved()
		}
	}, window)
}
