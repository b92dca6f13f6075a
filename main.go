package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sandkeep/logger"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/sirupsen/logrus"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "watch prefabs/ and report recipe edits")
	telemetryAddr := flag.String("telemetry", "", "telemetry listen address (overrides world.yaml, \"off\" disables)")
	seed := flag.Int64("seed", 0, "world seed (overrides world.yaml)")
	flag.Parse()

	logger.Init()
	if *debug {
		logger.Log.SetLevel(logrus.DebugLevel)
	}

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		logger.Log.WithError(err).Fatal("load world spec")
	}
	if *seed != 0 {
		spec.Seed = *seed
	}
	if *telemetryAddr != "" {
		spec.TelemetryAddr = *telemetryAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("sandkeep")

	game, err := NewGame(ctx, spec, Options{Debug: *debug, Watch: *watch})
	if err != nil {
		logger.Log.WithError(err).Fatal("create game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != errQuit {
		logger.Log.WithError(err).Fatal("run game")
	}
}
