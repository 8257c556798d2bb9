package ui

import (
	"context"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gauransh/gitingest/internal/config"
	"github.com/gauransh/gitingest/internal/ingest"
	"github.com/gauransh/gitingest/internal/model"
	"github.com/gauransh/gitingest/internal/platform"
	"github.com/gauransh/gitingest/internal/scale"
)

// RootUI represents the main UI structure. It owns the window content for
// the current view; a successful submission replaces the whole content with
// the result view, discarding every binding the form view registered.
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings
	ingester ingest.Ingester
	copier   *CopyFeedback

	status model.RequestStatus

	// Form view widgets; rebuilt whenever the form view is shown
	sourceEntry    *widget.Entry
	patternSelect  *widget.Select
	patternEntry   *widget.Entry
	privateCheck   *widget.Check
	usernameEntry  *widget.Entry
	patEntry       *widget.Entry
	credentialsRow *fyne.Container
	sliderBinding  *SliderBinding
	ingestBtn      *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// Credentials survive view replacement within the session. The PAT is
	// never written to preferences.
	gitUsername string
	gitPAT      string

	// runOnMain routes submit results onto the UI thread. Replaced in tests
	// with a direct call.
	runOnMain func(func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, ingester ingest.Ingester, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:      window,
		app:         app,
		settings:    settings,
		ingester:    ingester,
		copier:      NewCopyFeedback(NewFyneClipboard(app.Clipboard())),
		status:      model.StatusIdle,
		gitUsername: settings.GetGitUsername(),
		runOnMain:   fyne.Do,
	}

	log.Printf("RootUI initialized with ingest endpoint: %s", ingester.Endpoint())

	window.SetTitle("Gitingest")
	ui.showFormView()
	return ui
}

// showFormView builds the ingest form and installs it as the window content.
// Called at startup and again from the result view, starting a fresh widget
// lifecycle each time.
func (ui *RootUI) showFormView() {
	ui.status = model.StatusIdle

	ui.sourceEntry = widget.NewEntry()
	ui.sourceEntry.SetPlaceHolder("https://github.com/user/repo")
	ui.sourceEntry.OnSubmitted = func(string) { ui.onIngest(true) }

	ui.patternSelect = widget.NewSelect(
		[]string{string(model.PatternExclude), string(model.PatternInclude)}, nil)
	ui.patternSelect.SetSelected(string(model.PatternExclude))

	ui.patternEntry = widget.NewEntry()
	ui.patternEntry.SetPlaceHolder("*.md, src/")
	ui.patternEntry.OnSubmitted = func(string) { ui.onIngest(true) }

	ui.usernameEntry = widget.NewEntry()
	ui.usernameEntry.SetPlaceHolder("Git username")
	ui.usernameEntry.SetText(ui.gitUsername)
	ui.usernameEntry.OnSubmitted = func(string) { ui.onIngest(true) }

	ui.patEntry = widget.NewPasswordEntry()
	ui.patEntry.SetPlaceHolder("Personal access token")
	ui.patEntry.SetText(ui.gitPAT)
	ui.patEntry.OnSubmitted = func(string) { ui.onIngest(true) }

	ui.credentialsRow = container.NewGridWithColumns(2, ui.usernameEntry, ui.patEntry)
	ui.privateCheck = widget.NewCheck("Private repository", func(checked bool) {
		if checked {
			ui.credentialsRow.Show()
		} else {
			ui.credentialsRow.Hide()
		}
	})
	if ui.gitUsername != "" || ui.gitPAT != "" {
		ui.privateCheck.SetChecked(true)
	} else {
		ui.credentialsRow.Hide()
	}

	slider := widget.NewSlider(scale.MinPosition, scale.MaxPosition)
	slider.Step = 1
	slider.Value = float64(ui.settings.GetSliderPosition())
	sizeLabel := widget.NewLabel("")
	fillBar := widget.NewProgressBar()
	fillBar.TextFormatter = func() string { return "" }
	ui.sliderBinding = NewSliderBinding(slider, sizeLabel, fillBar, ui.settings)

	ui.ingestBtn = widget.NewButton(LabelIngest, func() { ui.onIngest(true) })
	ui.ingestBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Notification panel under the source row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.ingestBtn, ui.sourceEntry)
	patternRow := container.NewBorder(nil, nil, ui.patternSelect, nil, ui.patternEntry)
	sliderRow := container.NewBorder(nil, nil, widget.NewLabel("Include files under"), sizeLabel, slider)

	content := container.NewVBox(
		topPanel,
		ui.notificationContainer,
		patternRow,
		sliderRow,
		fillBar,
		ui.privateCheck,
		ui.credentialsRow,
	)

	ui.window.SetContent(content)
	ui.bindEnterShortcut()

	log.Printf("Form view ready: slider position=%d fill=%.0f%%",
		ui.sliderBinding.Position(), ui.sliderBinding.FillPercent())
}

// bindEnterShortcut registers the window-level Enter handler for the form
// view. Focused entries consume key events, so their OnSubmitted callbacks
// cover Enter inside single-line fields; this hook covers Enter when nothing
// has focus. Multi-line entries keep Enter for literal newlines.
func (ui *RootUI) bindEnterShortcut() {
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name != fyne.KeyReturn && ev.Name != fyne.KeyEnter {
			return
		}
		if entry, ok := ui.window.Canvas().Focused().(*widget.Entry); ok && entry.MultiLine {
			return
		}
		ui.onIngest(true)
	})
}

// buildRequest assembles the submission snapshot from the current form
// state. Credentials are trimmed and mirrored back into their fields so the
// form always shows exactly what was submitted.
func (ui *RootUI) buildRequest() model.IngestRequest {
	ui.gitUsername = strings.TrimSpace(ui.usernameEntry.Text)
	ui.gitPAT = strings.TrimSpace(ui.patEntry.Text)
	ui.usernameEntry.SetText(ui.gitUsername)
	ui.patEntry.SetText(ui.gitPAT)
	ui.settings.SetGitUsername(ui.gitUsername)

	req := model.IngestRequest{
		Source:         strings.TrimSpace(ui.sourceEntry.Text),
		PatternType:    model.PatternType(ui.patternSelect.Selected),
		Pattern:        strings.TrimSpace(ui.patternEntry.Text),
		SliderPosition: ui.sliderBinding.Position(),
	}

	if ui.privateCheck.Checked {
		req.GitUsername = ui.gitUsername
		req.GitPAT = ui.gitPAT
	}

	return req
}

// onIngest submits the form. showLoading reveals the spinner panel while the
// request is in flight.
func (ui *RootUI) onIngest(showLoading bool) {
	if ui.status == model.StatusSubmitting {
		log.Printf("Ignoring submission while a request is in flight")
		return
	}

	req := ui.buildRequest()
	if req.Source == "" {
		ui.showNotification("Please enter a repository URL or slug", false)
		return
	}

	ui.status = model.StatusSubmitting
	if showLoading {
		ui.showNotification(model.StatusSubmitting.String(), true)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ui.settings.GetRequestTimeout())
		defer cancel()

		result, err := ui.ingester.Submit(ctx, req)

		ui.runOnMain(func() {
			ui.finishIngest(req, result, err)
		})
	}()
}

// finishIngest applies a submission outcome on the UI thread. On failure the
// form stays intact; only the spinner goes away.
func (ui *RootUI) finishIngest(req model.IngestRequest, result *ingest.Result, err error) {
	if err != nil {
		log.Printf("Ingest failed: %v", err)
		ui.status = model.StatusError
		ui.showNotification("Ingest failed: "+err.Error(), false)
		return
	}

	ui.status = model.StatusCompleted
	ui.showResultView(req, result)
}

// showResultView replaces the window content with the rendered digest. The
// form view and all its listeners are gone after this; the "New ingest"
// button rebuilds them from scratch.
func (ui *RootUI) showResultView(req model.IngestRequest, result *ingest.Result) {
	ui.hideNotification()
	digest := result.Digest

	summaryLabel := widget.NewLabel(digest.Summary)
	summaryLabel.TextStyle = fyne.TextStyle{Monospace: true}

	treeEntry := widget.NewMultiLineEntry()
	treeEntry.SetText(digest.Tree)
	treeEntry.Wrapping = fyne.TextWrapOff
	treeEntry.TextStyle = fyne.TextStyle{Monospace: true}

	contentEntry := widget.NewMultiLineEntry()
	contentEntry.SetText(digest.Content)
	contentEntry.Wrapping = fyne.TextWrapOff
	contentEntry.TextStyle = fyne.TextStyle{Monospace: true}

	copyTreeBtn := widget.NewButton(LabelCopyTree, nil)
	copyTreeBtn.OnTapped = func() {
		ui.copier.Copy(copyTreeBtn, treeEntry.Text, CopyResetDelay)
	}

	copyBodyBtn := widget.NewButton(LabelCopyBody, nil)
	copyBodyBtn.OnTapped = func() {
		ui.copier.Copy(copyBodyBtn, contentEntry.Text, CopyResetDelay)
	}

	copyAllBtn := widget.NewButton(LabelCopyAll, nil)
	copyAllBtn.OnTapped = func() {
		full := model.Digest{Tree: treeEntry.Text, Content: contentEntry.Text}.Full()
		ui.copier.Copy(copyAllBtn, full, FullDigestResetDelay)
	}

	saveBtn := widget.NewButton(LabelSave, nil)
	saveBtn.OnTapped = func() {
		ui.onSaveDigest(req.Source, model.Digest{Tree: treeEntry.Text, Content: contentEntry.Text})
	}

	backBtn := widget.NewButton(LabelNewIngest, func() { ui.showFormView() })

	header := container.NewBorder(nil, nil, nil, backBtn, summaryLabel)
	actions := container.NewHBox(copyTreeBtn, copyBodyBtn, copyAllBtn, saveBtn)

	split := container.NewVSplit(treeEntry, contentEntry)
	split.Offset = 0.3

	content := container.NewBorder(
		container.NewVBox(header, actions), // top
		nil,                                // bottom
		nil,                                // left
		nil,                                // right
		split,                              // center
	)

	ui.window.SetContent(content)
	// The form's Enter shortcut dies with the form view
	ui.window.Canvas().SetOnTypedKey(nil)

	log.Printf("Result view shown: request=%s tree=%d chars content=%d chars",
		result.RequestID, len(digest.Tree), len(digest.Content))
}

// onSaveDigest writes the combined digest to the Downloads directory and
// reveals it in the file manager.
func (ui *RootUI) onSaveDigest(source string, digest model.Digest) {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		log.Printf("Could not resolve downloads directory: %v", err)
		widget.ShowPopUp(widget.NewLabel("Could not resolve Downloads directory"), ui.window.Canvas())
		return
	}

	path := filepath.Join(dir, platform.DigestFilename(source))
	if err := platform.WriteDigestFile(path, digest.Full()); err != nil {
		log.Printf("Could not save digest to %s: %v", path, err)
		widget.ShowPopUp(widget.NewLabel("Error saving digest: "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("Digest saved to %s", path)
	widget.ShowPopUp(widget.NewLabel("Saved to "+path), ui.window.Canvas())

	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Could not reveal saved digest: %v", err)
	}
}

// onShowSettings shows the settings dialog and rebuilds the ingest client
// when the server settings change.
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		ui.ingester = ingest.NewClient(ui.settings.GetServerURL(), ui.settings.GetRequestTimeout())
		log.Printf("Settings saved, endpoint now %s", ui.ingester.Endpoint())
		widget.ShowPopUp(widget.NewLabel("Settings saved"), ui.window.Canvas())
	})
}

// showNotification displays a message in the panel under the source row.
// When spinning is true, a spinner indicates the request in flight.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.runOnMain(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.runOnMain(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}
