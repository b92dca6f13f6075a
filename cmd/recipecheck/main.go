// Command recipecheck validates recipe documents and reports how each one
// assembles. With -watch it keeps re-checking files as they change.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/assembler"
	"github.com/milk9111/sandkeep/logger"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/scene"
)

func main() {
	watch := flag.Bool("watch", false, "re-check recipes when files under -dir change")
	dir := flag.String("dir", "prefabs/recipes", "recipe directory to watch")
	flag.Parse()

	logger.Init()

	names := flag.Args()
	if len(names) == 0 {
		all, err := prefabs.RecipeNames()
		if err != nil {
			logger.Log.WithError(err).Fatal("list recipes")
		}
		names = all
	}

	failed := check(os.Stdout, names)
	if !*watch {
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	w, err := prefabs.NewWatcher(*dir)
	if err != nil {
		logger.Log.WithError(err).Fatal("watch")
	}
	defer w.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	logger.Log.WithField("dir", *dir).Info("watching recipes")
	for {
		select {
		case change, ok := <-w.Events:
			if !ok {
				return
			}
			if change.Kind != prefabs.ChangeRecipe || change.Removed {
				continue
			}
			check(os.Stdout, []string{change.Path})
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Log.WithError(err).Warn("watcher")
		case <-sig:
			return
		}
	}
}

// check validates and assembles every named recipe, printing one line each.
// It returns how many failed.
func check(out io.Writer, names []string) int {
	failed := 0
	for _, name := range names {
		recipe, err := prefabs.LoadRecipe(name)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
			continue
		}

		g := scene.NewGraph()
		built, err := assembler.Assemble(g, scene.NewMaterials(), recipe, mgl64.Vec3{}, recipe.Name)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
			continue
		}

		unknown := 0
		for _, part := range recipe.Parts {
			if !prefabs.KnownShape(part.Shape) {
				unknown++
			}
		}
		limbs := built.FindLimbs()
		rigged := limbs.LegR != scene.NoNode && limbs.LegL != scene.NoNode &&
			limbs.ArmR != scene.NoNode && limbs.ArmL != scene.NoNode

		fmt.Fprintf(out, "ok   %s: %d parts, %d nodes, rigged=%v, unknown shapes=%d\n",
			recipe.Name, len(recipe.Parts), g.Len(), rigged, unknown)
	}
	return failed
}
