package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/sandkeep/common"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/entity"
	"github.com/milk9111/sandkeep/ecs/render"
	"github.com/milk9111/sandkeep/ecs/system"
	"github.com/milk9111/sandkeep/logger"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/telemetry"
	"github.com/sirupsen/logrus"
)

const tick = time.Second / 60

var errQuit = errors.New("quit")

type Options struct {
	Debug bool
	Watch bool
}

type Game struct {
	world   *ecs.World
	systems *system.Systems
	sched   *ecs.Scheduler
	level   *entity.Level

	input    *ebitenInput
	hud      *HUD
	renderer *render.Renderer
	hub      *telemetry.Hub
	watcher  *prefabs.Watcher

	cancel context.CancelFunc
	paused bool
	quit   bool
	debug  bool
}

func NewGame(ctx context.Context, spec *prefabs.WorldSpec, opts Options) (*Game, error) {
	ctx, cancel := context.WithCancel(ctx)
	g := &Game{
		world:  ecs.NewWorldWithSeed(spec.Seed),
		input:  newEbitenInput(),
		cancel: cancel,
		debug:  opts.Debug,
	}

	level, err := entity.LoadLevelToWorld(g.world, spec)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("game: %w", err)
	}
	g.level = level

	if _, err := entity.NewCamera(g.world, spec.Camera); err != nil {
		cancel()
		return nil, fmt.Errorf("game: %w", err)
	}

	g.hud = NewHUD(g)
	sinks := telemetry.Multi{g.hud, &telemetry.LogSink{Logger: logger.Log, Every: 300}}

	if spec.TelemetryAddr != "" && spec.TelemetryAddr != "off" {
		g.hub = telemetry.NewHub()
		sinks = append(sinks, g.hub)
		go func() {
			if err := g.hub.ListenAndServe(ctx, spec.TelemetryAddr); err != nil {
				logger.Log.WithError(err).Warn("telemetry server stopped")
			}
		}()
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/recipes")
		if err != nil {
			logger.Log.WithError(err).Warn("prefab watcher disabled")
		} else {
			g.watcher = w
		}
	}

	loader := prefabs.NewLoader(ctx, nil)
	g.systems = system.NewSystems(spec, g.input, loader, sinks)
	g.sched = g.systems.Scheduler()
	g.systems.Spawn.QueueWorld(g.world, spec)

	g.renderer = render.NewRenderer(g.world, spec.Ground)

	logger.Log.WithFields(logrus.Fields{
		"seed":      spec.Seed,
		"colliders": g.world.Colliders.Len(),
		"nodes":     g.world.Scene.Live(),
	}).Info("world ready")
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return errQuit
	}

	g.input.poll()
	if g.input.current.Pause {
		g.paused = !g.paused
	}
	g.drainWatcher()

	if !g.paused {
		g.world.Step(tick, g.sched)
	}
	g.hud.Update(g.paused)
	return nil
}

// drainWatcher validates edited recipes so authoring mistakes show up in the
// log right away.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log := logger.Log.WithField("path", change.Path)
			switch {
			case change.Kind == prefabs.ChangeConfig:
				log.Info("world config changed, restart to apply")
			case change.Removed:
				log.Warn("recipe removed, new spawns fall back to the embedded copy")
			default:
				if _, err := prefabs.LoadRecipe(change.Path); err != nil {
					log.WithError(err).Warn("recipe rejected")
					continue
				}
				log.Info("recipe reloaded, applies to new spawns")
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			logger.Log.WithError(err).Warn("prefab watcher")
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.hud.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Tick: %d    FPS: %.2f    Nodes: %d    Tasks: %d",
			g.world.Tick(), ebiten.ActualFPS(), g.world.Scene.Live(), g.world.PendingTasks()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the telemetry server, the loader and the watcher.
func (g *Game) Close() {
	g.cancel()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
