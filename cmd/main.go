package main

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ajkekeli/Pomodoro-App/internal/core/pomodoro"
	"github.com/ajkekeli/Pomodoro-App/internal/core/stats"
	"github.com/ajkekeli/Pomodoro-App/internal/platform"
	"github.com/ajkekeli/Pomodoro-App/internal/storage"
	"github.com/ajkekeli/Pomodoro-App/internal/ui/history"
	"github.com/ajkekeli/Pomodoro-App/internal/ui/preferences"
	"github.com/ajkekeli/Pomodoro-App/internal/ui/timerview"
	"github.com/ajkekeli/Pomodoro-App/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "pomodoro"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomodoro.app")

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	statsFile, err := storage.NewStatsFile(appName)
	if err != nil {
		log.Printf("resolve statistics path: %v", err)
	}
	statistics := stats.New(time.Now())
	if statsFile != nil {
		loaded, loadErr := statsFile.Load(time.Now())
		if loadErr != nil {
			// Corrupt or unreadable history: start from zeroed statistics.
			log.Printf("load statistics: %v", loadErr)
		}
		statistics = loaded
	}
	var store pomodoro.StatsStore
	if statsFile != nil {
		store = statsFile
	}
	timer := pomodoro.New(settings.Config(), statistics, store)

	// The event goroutine reads this flag while onSave writes the
	// settings on the UI thread, so it lives outside the struct.
	var notifications atomic.Bool
	notifications.Store(settings.Notifications)

	var prefsWindow *preferences.Window
	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := timer.UpdateConfig(updated.Config()); err != nil {
			log.Printf("update config: %v", err)
			prefsWindow.UpdateSettings(settings.FromConfig(timer.Config()))
			return
		}
		settings = updated
		notifications.Store(settings.Notifications)
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	quit := make(chan struct{})
	var shutdownOnce sync.Once
	shutdown := func() {
		shutdownOnce.Do(func() {
			close(quit)
			timer.Close()
			if err := timer.FlushStats(); err != nil {
				log.Printf("flush statistics: %v", err)
			}
			fyneApp.Quit()
		})
	}

	startStop := func() {
		if timer.State().Status == pomodoro.StatusRunning {
			timer.Stop()
		} else {
			timer.Start()
		}
	}

	view := timerview.New(fyneApp, timerview.Callbacks{
		OnStartStop: startStop,
		OnPause:     timer.Pause,
		OnReset:     timer.Reset,
		OnSettings:  prefsWindow.Show,
		OnHistory: func() {
			history.Show(fyneApp, timer.Stats())
		},
		OnSessionName: timer.SetSessionName,
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:      view.Show,
			OnStartStop: startStop,
			OnReset: func() {
				timer.Reset(false)
			},
			OnSettings: prefsWindow.Show,
			OnQuit:     shutdown,
		})
		view.SetCloseIntercept(view.Native().Hide)
	} else {
		view.SetCloseIntercept(shutdown)
	}

	events := timer.Subscribe(8)
	go func() {
		for event := range events {
			view.Render(event.State)
			if trayManager != nil {
				status := fmt.Sprintf("%s %s", event.State.Session, formatRemaining(event.State.Remaining))
				running := event.State.Status == pomodoro.StatusRunning
				fyne.Do(func() {
					trayManager.SetStatus(status)
					trayManager.SetRunning(running)
				})
			}
			switch event.Type {
			case pomodoro.EventSessionComplete:
				if notifications.Load() {
					notifyCompletion(fyneApp, event.Completed)
				}
			case pomodoro.EventStatsError:
				log.Printf("save statistics: %s", event.Message)
				view.ShowStatsError(event.Message)
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				timer.Tick()
			}
		}
	}()

	view.Render(timer.State())
	view.Show()
	fyneApp.Run()
}

func notifyCompletion(fyneApp fyne.App, completed pomodoro.SessionType) {
	if completed == pomodoro.SessionWork {
		fyneApp.SendNotification(fyne.NewNotification("Break Time!", "Great work! Time for a break."))
		return
	}
	fyneApp.SendNotification(fyne.NewNotification("Break Complete!", "Ready to get back to work?"))
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
