package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ajkekeli/Pomodoro-App/internal/core/model"
)

// Window handles the settings UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	workMin       *widget.Entry
	shortMin      *widget.Entry
	longMin       *widget.Entry
	cycles        *widget.Entry
	autoBreaks    *widget.Check
	autoWork      *widget.Check
	notifications *widget.Check
}

// New creates a settings window. onSave receives the validated settings.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	workMin := widget.NewEntry()
	shortMin := widget.NewEntry()
	longMin := widget.NewEntry()
	cycles := widget.NewEntry()

	autoBreaks := widget.NewCheck("Auto-start breaks", nil)
	autoWork := widget.NewCheck("Auto-start work sessions", nil)
	notifications := widget.NewCheck("Notify on session completion", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), workMin, rangeLabel(model.MinWorkMinutes, model.MaxWorkMinutes)),
		container.NewHBox(widget.NewLabel("Short break"), shortMin, rangeLabel(model.MinShortBreakMinutes, model.MaxShortBreakMinutes)),
		container.NewHBox(widget.NewLabel("Long break"), longMin, rangeLabel(model.MinLongBreakMinutes, model.MaxLongBreakMinutes)),
		container.NewHBox(widget.NewLabel("Cycles before long break"), cycles, widget.NewLabel(fmt.Sprintf("%d-%d", model.MinCycles, model.MaxCycles))),
		widget.NewLabelWithStyle("Behavior", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autoBreaks,
		autoWork,
		notifications,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 380))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:        window,
		settings:      settings,
		onSave:        onSave,
		workMin:       workMin,
		shortMin:      shortMin,
		longMin:       longMin,
		cycles:        cycles,
		autoBreaks:    autoBreaks,
		autoWork:      autoWork,
		notifications: notifications,
	}
	prefs.applySettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.applySettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.applySettings(settings)
}

func (prefs *Window) applySettings(settings Settings) {
	prefs.workMin.SetText(strconv.Itoa(int(settings.WorkDuration.Minutes())))
	prefs.shortMin.SetText(strconv.Itoa(int(settings.ShortBreakDuration.Minutes())))
	prefs.longMin.SetText(strconv.Itoa(int(settings.LongBreakDuration.Minutes())))
	prefs.cycles.SetText(strconv.Itoa(settings.CyclesBeforeLongBreak))
	prefs.autoBreaks.SetChecked(settings.AutoStartBreaks)
	prefs.autoWork.SetChecked(settings.AutoStartWork)
	prefs.notifications.SetChecked(settings.Notifications)
}

// handleSave validates the dialog values. On failure the error is shown
// and prior settings stay in effect.
func (prefs *Window) handleSave() {
	settings := prefs.settings

	fields := []struct {
		label string
		entry *widget.Entry
		apply func(int)
	}{
		{"work duration", prefs.workMin, func(minutes int) { settings.WorkDuration = time.Duration(minutes) * time.Minute }},
		{"short break duration", prefs.shortMin, func(minutes int) { settings.ShortBreakDuration = time.Duration(minutes) * time.Minute }},
		{"long break duration", prefs.longMin, func(minutes int) { settings.LongBreakDuration = time.Duration(minutes) * time.Minute }},
		{"cycles before long break", prefs.cycles, func(count int) { settings.CyclesBeforeLongBreak = count }},
	}
	for _, field := range fields {
		value, err := strconv.Atoi(field.entry.Text)
		if err != nil {
			dialog.ShowError(fmt.Errorf("%s must be a whole number", field.label), prefs.window)
			return
		}
		field.apply(value)
	}

	settings.AutoStartBreaks = prefs.autoBreaks.Checked
	settings.AutoStartWork = prefs.autoWork.Checked
	settings.Notifications = prefs.notifications.Checked

	if err := settings.Config().Validate(); err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func rangeLabel(min, max int) *widget.Label {
	return widget.NewLabel(fmt.Sprintf("%d-%d min", min, max))
}
