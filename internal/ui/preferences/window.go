package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	wavePeriod *widget.Entry
	frameRate  *widget.Slider
	rateLabel  *widget.Label
	smoothing  *widget.Check
	soundCue   *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("WaterBalance Settings")

	wavePeriod := widget.NewEntry()
	rateLabel := widget.NewLabel("")
	frameRate := widget.NewSlider(MinFrameRate, MaxFrameRate)
	frameRate.Step = 5
	frameRate.OnChanged = func(value float64) {
		rateLabel.SetText(fmt.Sprintf("%d fps", int(value)))
	}

	smoothing := widget.NewCheck("Smooth level changes", nil)
	soundCue := widget.NewCheck("Play a sound when adding or removing", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Wave", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("One wave every"), wavePeriod, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Frame rate"), rateLabel),
		frameRate,
		smoothing,
		soundCue,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 300))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		wavePeriod: wavePeriod,
		frameRate:  frameRate,
		rateLabel:  rateLabel,
		smoothing:  smoothing,
		soundCue:   soundCue,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.wavePeriod.SetText(strconv.Itoa(int(settings.WavePeriod / time.Millisecond)))
	prefs.frameRate.SetValue(float64(settings.FrameRate))
	prefs.rateLabel.SetText(fmt.Sprintf("%d fps", settings.FrameRate))
	prefs.smoothing.SetChecked(settings.Smoothing)
	prefs.soundCue.SetChecked(settings.SoundCue)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parsePositiveInt(prefs.wavePeriod.Text); ok {
		settings.WavePeriod = time.Duration(millis) * time.Millisecond
	}
	settings.FrameRate = int(prefs.frameRate.Value)
	settings.Smoothing = prefs.smoothing.Checked
	settings.SoundCue = prefs.soundCue.Checked
	settings = settings.Normalize()

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
