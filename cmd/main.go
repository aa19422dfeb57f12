package main

import (
	"context"
	"errors"
	"log"

	"waterbalance/internal/audio"
	"waterbalance/internal/core/fill"
	"waterbalance/internal/platform"
	"waterbalance/internal/storage"
	"waterbalance/internal/ui/animation"
	"waterbalance/internal/ui/gauge"
	"waterbalance/internal/ui/preferences"
	"waterbalance/internal/ui/tray"
	"waterbalance/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "WaterBalance"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			if activateErr := platform.ActivateRunning(appName); activateErr != nil {
				log.Printf("single instance: %v", activateErr)
			}
		}
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		log.Printf("audio: %v", err)
	}
	defer player.Close()
	player.SetEnabled(settings.SoundCue)

	controller := fill.New(settings.FillConfig())
	defer controller.Close()

	add := func() {
		controller.Increment()
		player.Play(audio.CueAdd)
	}
	remove := func() {
		controller.Decrement()
		player.Play(audio.CueRemove)
	}

	fyneApp := app.NewWithID("com.waterbalance.app")
	fyneApp.SetIcon(resources.MustIcon("waterbalance.svg"))

	gaugeWindow := gauge.New(fyneApp, appName, gauge.Callbacks{
		OnAdd:    add,
		OnRemove: remove,
	})

	engine := animation.New(settings.AnimationConfig(), controller, gaugeWindow.Render)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		engine.UpdateConfig(settings.AnimationConfig())
		player.SetEnabled(settings.SoundCue)
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("settings: %v", err)
		}
	})

	quit := func() {
		engine.Stop()
		fyneApp.Quit()
	}

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        gaugeWindow.Show,
			OnAdd:         add,
			OnRemove:      remove,
			OnPreferences: prefsWindow.Show,
			OnQuit:        quit,
		})
		desktopApp.SetSystemTrayIcon(trayIcon(0))
		gaugeWindow.SetCloseIntercept(gaugeWindow.Hide)
	} else {
		log.Printf("system tray unsupported on this platform")
		gaugeWindow.SetCloseIntercept(quit)
	}

	events := controller.Subscribe(32)
	go func() {
		for event := range events {
			handleEvent(event, fyneApp, trayManager)
		}
	}()

	go guard.Serve(func() {
		fyne.Do(gaugeWindow.Show)
	})

	engine.Start(ctx)
	gaugeWindow.Show()
	fyneApp.Run()
	engine.Stop()
}

func handleEvent(event fill.Event, fyneApp fyne.App, trayManager *tray.Manager) {
	if trayManager == nil {
		return
	}
	fyne.Do(func() {
		switch event.Type {
		case fill.EventVolumeChange:
			trayManager.SetVolume(event.State.Volume)
			if desktopApp, ok := fyneApp.(desktop.App); ok {
				desktopApp.SetSystemTrayIcon(trayIcon(event.State.Volume))
			}
			trayManager.SetSettling(event.State.Animating)
		case fill.EventLevelChange:
			trayManager.SetSettling(event.State.Animating)
		case fill.EventSettled:
			trayManager.SetSettling(false)
		}
	})
}

func trayIcon(volume int) fyne.Resource {
	if volume == 0 {
		return resources.MustIcon("waterbalance-idle.svg")
	}
	return resources.MustIcon("waterbalance.svg")
}
