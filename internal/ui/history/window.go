package history

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ajkekeli/Pomodoro-App/internal/core/stats"
)

// Show opens a window with cumulative totals and today's sessions,
// newest first. A fresh window is built per invocation so the list
// always reflects the statistics handed in.
func Show(app fyne.App, statistics stats.Statistics) {
	window := app.NewWindow("Session History")

	summary := container.NewGridWithColumns(4,
		summaryBox("Total Sessions", fmt.Sprintf("%d", statistics.TotalSessions)),
		summaryBox("Work Time", formatHours(statistics.TotalWorkSeconds)),
		summaryBox("Break Time", formatHours(statistics.TotalBreakSeconds)),
		summaryBox("Today", fmt.Sprintf("%d", len(statistics.TodayHistory))),
	)

	records := statistics.TodayHistory
	list := widget.NewList(
		func() int { return len(records) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			// Newest first.
			item.(*widget.Label).SetText(describeRecord(records[len(records)-1-id]))
		},
	)

	closeButton := widget.NewButton("Close", window.Close)

	window.SetContent(container.NewBorder(summary, closeButton, nil, nil, list))
	window.Resize(fyne.NewSize(520, 420))
	window.Show()
}

func summaryBox(label, value string) fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabelWithStyle(label, fyne.TextAlignCenter, fyne.TextStyle{}),
		widget.NewLabelWithStyle(value, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	)
}

func describeRecord(record stats.SessionRecord) string {
	kind := "Break"
	if record.Type == stats.RecordWork {
		kind = "Work"
	}
	name := record.Name
	if name == "" {
		name = "Untitled"
	}
	return fmt.Sprintf("%s  %-5s  %s  %dm %ds",
		record.Timestamp.Format("15:04:05"),
		kind,
		name,
		record.DurationSeconds/60,
		record.DurationSeconds%60,
	)
}

func formatHours(seconds int) string {
	return fmt.Sprintf("%.1fh", float64(seconds)/3600)
}
