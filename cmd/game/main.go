// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/defs"
	"go-hex-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxDeltaTime = 0.06

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "map seed, 0 picks one from the clock")
	zonesPath := flag.String("zones", "", "ore zone definitions (JSON)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts := app.DefaultOptions()
	opts.Seed = *seed
	opts.Logger = logger
	if *zonesPath != "" {
		zones, err := defs.LoadOreZones(*zonesPath)
		if err != nil {
			slog.Error("failed to load ore zones", "path", *zonesPath, "error", err)
			os.Exit(1)
		}
		opts.OreZones = zones
		slog.Info("ore zones loaded", "path", *zonesPath, "zones", len(zones))
	}

	session := app.NewSession(opts)
	sm := state.NewStateMachine()
	sm.SetState(state.NewViewerState(sm, session))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Path Network")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("bye", "seed", session.Rng.Seed())
}
