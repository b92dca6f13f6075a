package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/fort"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/scene"
)

const GroundName = "ground"

// Sand is the shared ground material.
func Sand(mats *scene.Materials) *scene.Material {
	return mats.Named("sandMat", func() *scene.Material {
		return &scene.Material{
			Texture:      "sand.jpg",
			TextureScale: 50,
			Diffuse:      scene.Color{R: 0.78, G: 0.64, B: 0.44},
			Specular:     scene.Color{R: 0.1, G: 0.1, B: 0.1},
		}
	})
}

// Level is the static part of the world.
type Level struct {
	Ground scene.NodeID
	Fort   *fort.Fort
}

// LoadLevelToWorld builds the ground mesh and the fort and registers the
// fort's footprints as colliders.
func LoadLevelToWorld(w *ecs.World, spec *prefabs.WorldSpec) (*Level, error) {
	if w == nil || spec == nil {
		return nil, fmt.Errorf("level: world and spec are required")
	}

	grid := w.Terrain.Grid(spec.Ground.Size, spec.Ground.Subdivisions)
	ground := w.Scene.AddMesh(GroundName, scene.Ground(grid.Size, grid.Subdivisions, grid.Heights), scene.NoNode)
	w.Scene.Node(ground).Material = Sand(w.Materials)

	base := spec.Fort.BaseHeight
	if base == 0 {
		base = w.Terrain.Height(spec.Fort.X, spec.Fort.Z)
	}
	f, err := fort.Build(w.Scene, w.Materials, mgl64.Vec2{spec.Fort.X, spec.Fort.Z}, base)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	for _, fp := range f.Footprints() {
		w.Colliders.Add(fp)
	}

	return &Level{Ground: ground, Fort: f}, nil
}
