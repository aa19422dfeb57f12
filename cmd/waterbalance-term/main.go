package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"waterbalance/internal/audio"
	"waterbalance/internal/core/fill"
	"waterbalance/internal/storage"
	"waterbalance/internal/ui/animation"
	"waterbalance/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

const appName = "WaterBalance"

func main() {
	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		// Non-fatal, the gauge works without sound.
		log.Printf("audio: %v", err)
	}
	defer player.Close()
	player.SetEnabled(settings.SoundCue)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	controller := fill.New(settings.FillConfig())
	defer controller.Close()

	view := terminal.New(screen, terminal.Callbacks{
		OnAdd: func() {
			controller.Increment()
			player.Play(audio.CueAdd)
		},
		OnRemove: func() {
			controller.Decrement()
			player.Play(audio.CueRemove)
		},
	})

	config := settings.AnimationConfig()
	// Terminals cannot keep up with desktop frame rates.
	if config.FrameRate > 30 {
		config.FrameRate = 30
	}
	engine := animation.New(config, controller, view.Render)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	engine.Start(ctx)
	view.Run(ctx)
	engine.Stop()
}
