package statuswin

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Config defines window visuals.
type Config struct {
	Title string
}

// Window shows the active prompt, the transient status report, the
// continuously refreshed status line, and the Done button that resolves
// the prompt.
type Window struct {
	app         fyne.App
	window      fyne.Window
	config      Config
	promptLabel *canvas.Text
	reportLabel *canvas.Text
	updateLabel *canvas.Text
	doneButton  *widget.Button
	onDone      func()
}

// New creates the status window. It starts hidden; a firing prompt or the
// tray raises it.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	promptLabel := canvas.NewText("", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	promptLabel.Alignment = fyne.TextAlignCenter
	promptLabel.TextStyle = fyne.TextStyle{Bold: true}
	promptLabel.TextSize = 32

	reportLabel := canvas.NewText("", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	reportLabel.Alignment = fyne.TextAlignCenter
	reportLabel.TextSize = 24

	updateLabel := canvas.NewText("", color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	updateLabel.Alignment = fyne.TextAlignCenter
	updateLabel.TextSize = 18

	doneButton := widget.NewButton("Done", nil)

	content := container.NewVBox(
		layout.NewSpacer(),
		promptLabel,
		reportLabel,
		updateLabel,
		container.NewCenter(doneButton),
		layout.NewSpacer(),
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(520, 280))
	window.CenterOnScreen()
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	statusWindow := &Window{
		app:         app,
		window:      window,
		config:      config,
		promptLabel: promptLabel,
		reportLabel: reportLabel,
		updateLabel: updateLabel,
		doneButton:  doneButton,
	}

	doneButton.OnTapped = func() {
		if statusWindow.onDone != nil {
			statusWindow.onDone()
		}
	}

	return statusWindow
}

// SetOnDone sets the acknowledgment handler.
func (statusWindow *Window) SetOnDone(handler func()) {
	statusWindow.onDone = handler
}

// SetPrompt updates the prompt text; empty clears it.
func (statusWindow *Window) SetPrompt(prompt string) {
	fyne.Do(func() {
		statusWindow.promptLabel.Text = prompt
		statusWindow.promptLabel.Refresh()
	})
}

// SetStatusReport updates the transient report line.
func (statusWindow *Window) SetStatusReport(report string) {
	fyne.Do(func() {
		statusWindow.reportLabel.Text = report
		statusWindow.reportLabel.Refresh()
	})
}

// SetLatestUpdate updates the continuously refreshed line.
func (statusWindow *Window) SetLatestUpdate(update string) {
	fyne.Do(func() {
		statusWindow.updateLabel.Text = update
		statusWindow.updateLabel.Refresh()
	})
}

// Show raises the window.
func (statusWindow *Window) Show() {
	fyne.Do(func() {
		statusWindow.window.Show()
		statusWindow.window.RequestFocus()
	})
}

// Raise re-requests focus for an already visible window.
func (statusWindow *Window) Raise() {
	fyne.Do(func() {
		statusWindow.window.Show()
		statusWindow.window.RequestFocus()
	})
}

// Hide hides the window without acknowledging anything.
func (statusWindow *Window) Hide() {
	fyne.Do(func() {
		statusWindow.window.Hide()
	})
}
