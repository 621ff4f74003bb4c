package timerview

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ajkekeli/Pomodoro-App/internal/core/pomodoro"
)

const namePlaceholder = "e.g., Study Math, Workout"

// Callbacks defines the user intents the main window can raise.
type Callbacks struct {
	OnStartStop   func()
	OnPause       func()
	OnReset       func(clearStats bool)
	OnSettings    func()
	OnHistory     func()
	OnSessionName func(string)
}

// Window is the main timer surface: cycle indicator, countdown,
// progress and the control buttons.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	cycleLabel   *widget.Label
	sessionLabel *widget.Label
	timeText     *canvas.Text
	progress     *widget.ProgressBar
	nameEntry    *widget.Entry
	startButton  *widget.Button
	pauseButton  *widget.Button
}

// New creates the main window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomodoro Timer")

	cycleLabel := widget.NewLabelWithStyle("CYCLE 1/4", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	sessionLabel := widget.NewLabelWithStyle("Work Session", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	timeText := canvas.NewText("25:00", color.NRGBA{R: 44, G: 62, B: 80, A: 255})
	timeText.Alignment = fyne.TextAlignCenter
	timeText.TextStyle = fyne.TextStyle{Bold: true}
	timeText.TextSize = 64

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(namePlaceholder)

	startButton := widget.NewButton("Start", nil)
	pauseButton := widget.NewButton("Pause", nil)
	pauseButton.Disable()
	resetButton := widget.NewButton("Reset", nil)
	settingsButton := widget.NewButton("Settings", nil)
	historyButton := widget.NewButton("History", nil)

	content := container.NewVBox(
		cycleLabel,
		sessionLabel,
		timeText,
		progress,
		widget.NewLabel("Name this session:"),
		nameEntry,
		container.NewGridWithColumns(3, startButton, pauseButton, resetButton),
		container.NewGridWithColumns(2, settingsButton, historyButton),
	)

	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 480))
	window.CenterOnScreen()

	view := &Window{
		window:       window,
		callbacks:    callbacks,
		cycleLabel:   cycleLabel,
		sessionLabel: sessionLabel,
		timeText:     timeText,
		progress:     progress,
		nameEntry:    nameEntry,
		startButton:  startButton,
		pauseButton:  pauseButton,
	}

	startButton.OnTapped = func() {
		if view.callbacks.OnStartStop != nil {
			view.callbacks.OnStartStop()
		}
	}
	pauseButton.OnTapped = func() {
		if view.callbacks.OnPause != nil {
			view.callbacks.OnPause()
		}
	}
	resetButton.OnTapped = view.confirmReset
	settingsButton.OnTapped = func() {
		if view.callbacks.OnSettings != nil {
			view.callbacks.OnSettings()
		}
	}
	historyButton.OnTapped = func() {
		if view.callbacks.OnHistory != nil {
			view.callbacks.OnHistory()
		}
	}
	nameEntry.OnChanged = func(name string) {
		if view.callbacks.OnSessionName != nil {
			view.callbacks.OnSessionName(name)
		}
	}

	return view
}

// Show displays the main window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Native exposes the underlying window for dialogs and close handling.
func (view *Window) Native() fyne.Window {
	return view.window
}

// SetCloseIntercept forwards to the underlying window.
func (view *Window) SetCloseIntercept(handler func()) {
	view.window.SetCloseIntercept(handler)
}

// Render updates every indicator from a timer snapshot. Safe to call
// from the event goroutine.
func (view *Window) Render(state pomodoro.State) {
	fyne.Do(func() {
		view.cycleLabel.SetText(fmt.Sprintf("CYCLE %d/%d", state.CurrentCycle, state.TotalCycles))
		view.sessionLabel.SetText(state.Session.Label())
		view.timeText.Text = formatDuration(state.Remaining)
		view.timeText.Refresh()
		view.progress.SetValue(state.Progress)

		switch state.Status {
		case pomodoro.StatusRunning:
			view.startButton.SetText("Stop")
			view.pauseButton.Enable()
		case pomodoro.StatusPaused:
			view.startButton.SetText("Resume")
			view.pauseButton.Disable()
		default:
			view.startButton.SetText("Start")
			view.pauseButton.Disable()
		}
	})
}

// ShowStatsError surfaces a statistics write failure without losing state.
func (view *Window) ShowStatsError(message string) {
	fyne.Do(func() {
		dialog.ShowError(fmt.Errorf("statistics could not be saved: %s", message), view.window)
	})
}

func (view *Window) confirmReset() {
	clearStats := widget.NewCheck("Also clear statistics", nil)
	dialog.ShowCustomConfirm("Reset Timer", "Reset", "Cancel",
		container.NewVBox(widget.NewLabel("Return to the first work session?"), clearStats),
		func(confirmed bool) {
			if confirmed && view.callbacks.OnReset != nil {
				view.callbacks.OnReset(clearStats.Checked)
			}
		}, view.window)
}

func formatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
