package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/scene"
)

func mustRecipe(t *testing.T, name string) *prefabs.Recipe {
	t.Helper()
	r, err := prefabs.LoadRecipe(name)
	if err != nil {
		t.Fatalf("LoadRecipe(%s): %v", name, err)
	}
	return r
}

func TestNewHero(t *testing.T) {
	w := ecs.NewWorld()
	hero, err := NewHero(w, mustRecipe(t, "human_hero"), prefabs.HeroSpec{HP: 100, Damage: 5, HeightOffset: 1})
	if err != nil {
		t.Fatalf("NewHero: %v", err)
	}

	tr, ok := ecs.Get(w, hero, component.TransformComponent.Kind())
	if !ok || tr.Position.Y() != 11 {
		t.Fatalf("hero should stand at y=11 on the plateau, got %+v", tr)
	}
	h, _ := ecs.Get(w, hero, component.HeroComponent.Kind())
	if h.HP != 100 || h.MaxHP != 100 || h.Damage != 5 {
		t.Fatalf("unexpected hero stats %+v", h)
	}
	limbs, _ := ecs.Get(w, hero, component.LimbsComponent.Kind())
	for _, id := range []scene.NodeID{limbs.LegR, limbs.LegL, limbs.ArmR, limbs.ArmL} {
		if id == scene.NoNode {
			t.Fatalf("hero is missing a limb: %+v", limbs)
		}
	}
	body, _ := ecs.Get(w, hero, component.BodyComponent.Kind())
	if w.Scene.Node(body.Root).Name != "mob_root_hero" {
		t.Fatalf("unexpected root name %q", w.Scene.Node(body.Root).Name)
	}
	if !ecs.Has(w, hero, component.InputComponent.Kind()) || !ecs.Has(w, hero, component.AttackComponent.Kind()) {
		t.Fatalf("hero should accept input and attack")
	}

	events := w.Events().Peek()
	if len(events) != 1 || events[0].Type != ecs.EventSpawn {
		t.Fatalf("expected a spawn event, got %v", events)
	}
}

func TestNewMob(t *testing.T) {
	w := ecs.NewWorldWithSeed(42)
	mob, err := NewMob(w, mustRecipe(t, "orc_warrior"), MobParams{
		Name: "orc_0", X: -40, Z: -40, HP: 50, Scale: 1.5, Speed: 0.05, AggroRange: 15,
	})
	if err != nil {
		t.Fatalf("NewMob: %v", err)
	}

	tr, _ := ecs.Get(w, mob, component.TransformComponent.Kind())
	if tr.Position.Y() != w.Terrain.Height(-40, -40) || tr.Scale != 1.5 {
		t.Fatalf("unexpected transform %+v", tr)
	}
	stats, _ := ecs.Get(w, mob, component.StatsComponent.Kind())
	if stats.HP != 50 || stats.MaxHP != 50 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	state, _ := ecs.Get(w, mob, component.AIStateComponent.Kind())
	if state.Current != component.StateIdle {
		t.Fatalf("mobs start idle, got %s", state.Current)
	}
	anim, _ := ecs.Get(w, mob, component.AnimComponent.Kind())
	if anim.Phase < 0 || anim.Phase >= 100 || anim.Breath != 1 {
		t.Fatalf("unexpected anim %+v", anim)
	}
}

func TestNewPropHasNoRuntime(t *testing.T) {
	w := ecs.NewWorld()
	prop, err := NewProp(w, mustRecipe(t, "poi_mob_camp"), "camp", 0, 20)
	if err != nil {
		t.Fatalf("NewProp: %v", err)
	}
	if ecs.Has(w, prop, component.StatsComponent.Kind()) || ecs.Has(w, prop, component.AIStateComponent.Kind()) {
		t.Fatalf("props must not be simulated")
	}
}

func TestAddBodyReleasesNodesOnFailure(t *testing.T) {
	w := ecs.NewWorld()
	before := w.Scene.Live()

	gone := ecs.CreateEntity(w)
	ecs.DestroyEntity(w, gone)
	if _, err := addBody(w, gone, mustRecipe(t, "goblin_grunt"), "g", mgl64.Vec3{}, 1); err == nil {
		t.Fatalf("addBody on a destroyed entity should fail")
	}
	if got := w.Scene.Live(); got != before {
		t.Fatalf("live nodes = %d after failed addBody, want %d", got, before)
	}
}

func TestDiscardUndoesPartialEntity(t *testing.T) {
	w := ecs.NewWorld()
	before := w.Scene.Live()

	e := ecs.CreateEntity(w)
	built, err := addBody(w, e, mustRecipe(t, "goblin_grunt"), "g", mgl64.Vec3{}, 1)
	if err != nil {
		t.Fatalf("addBody: %v", err)
	}
	if w.Scene.Live() <= before {
		t.Fatalf("addBody should create scene nodes")
	}

	discard(w, e, built.Root)
	if ecs.IsAlive(w, e) {
		t.Fatalf("discarded entity should be destroyed")
	}
	if got := w.Scene.Live(); got != before {
		t.Fatalf("live nodes = %d after discard, want %d", got, before)
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.WorldSpec{
		Ground: prefabs.GroundSpec{Size: 200, Subdivisions: 10},
		Fort:   prefabs.FortSpec{BaseHeight: 10},
	}

	lvl, err := LoadLevelToWorld(w, spec)
	if err != nil {
		t.Fatalf("LoadLevelToWorld: %v", err)
	}
	if w.Colliders.Len() != 10 {
		t.Fatalf("expected 10 fort colliders, got %d", w.Colliders.Len())
	}
	ground := w.Scene.Node(lvl.Ground)
	if ground.Mesh.Kind != scene.MeshGround || len(ground.Mesh.Heights) != 11*11 {
		t.Fatalf("unexpected ground mesh kind=%v heights=%d", ground.Mesh.Kind, len(ground.Mesh.Heights))
	}
	if w.Materials.Allocations() != 3 {
		t.Fatalf("expected sand, stone and wood, got %d materials", w.Materials.Allocations())
	}
}
