// Command radar is a terminal viewer for the telemetry stream: the hero at
// the centre, living mobs around it and the current target in the status
// line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/sandkeep/logger"
	"github.com/milk9111/sandkeep/telemetry"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8088", "telemetry server address")
	scale := flag.Float64("scale", 2, "world units per terminal column")
	flag.Parse()

	logger.InitWithOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	snaps, err := subscribe(ctx, "ws://"+*addr+"/telemetry")
	if err != nil {
		logger.Log.WithError(err).Fatal("connect")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Fatal("create screen")
	}
	if err := screen.Init(); err != nil {
		logger.Log.WithError(err).Fatal("init screen")
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var last telemetry.Snapshot
	connected := true
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-snaps:
			if !ok {
				connected = false
				snaps = nil
			} else {
				last = s
			}
			draw(screen, last, *scale, connected)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, last, *scale, connected)
			}
		}
	}
}

func draw(screen tcell.Screen, s telemetry.Snapshot, scale float64, connected bool) {
	w, h := screen.Size()
	screen.Clear()

	for _, c := range plot(s, w, h-1, scale) {
		screen.SetContent(c.X, c.Y, c.Rune, nil, c.Style)
	}

	status := fmt.Sprintf(" tick %d  hp %d/%d  mobs %d", s.Tick, s.HeroHP, s.HeroMaxHP, len(s.Mobs))
	if s.Target != nil {
		status += fmt.Sprintf("  target %s %d/%d", s.Target.Name, s.Target.HP, s.Target.MaxHP)
	}
	if !connected {
		status += "  [disconnected]"
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, style)
	}
	screen.Show()
}
