package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  Change
		ok    bool
	}{
		{name: "recipe write", event: fsnotify.Event{Name: "r/goblin.json", Op: fsnotify.Write}, want: Change{Path: "r/goblin.json", Kind: ChangeRecipe}, ok: true},
		{name: "config create", event: fsnotify.Event{Name: "world.YAML", Op: fsnotify.Create}, want: Change{Path: "world.YAML", Kind: ChangeConfig}, ok: true},
		{name: "recipe removed", event: fsnotify.Event{Name: "wolf.json", Op: fsnotify.Remove}, want: Change{Path: "wolf.json", Kind: ChangeRecipe, Removed: true}, ok: true},
		{name: "chmod ignored", event: fsnotify.Event{Name: "wolf.json", Op: fsnotify.Chmod}},
		{name: "other file ignored", event: fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classify(tt.event)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("classify = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestChangeName(t *testing.T) {
	if got := (Change{Path: "prefabs/recipes/grey_wolf.json"}).Name(); got != "grey_wolf" {
		t.Fatalf("Name = %q", got)
	}
}

func TestWatcherReportsRecipeEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	path := filepath.Join(dir, "goblin.json")
	if err := os.WriteFile(path, []byte(`{"Parts":[]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case change := <-w.Events:
		if change.Path != path || change.Kind != ChangeRecipe {
			t.Fatalf("unexpected change %+v", change)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no change reported")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	for range w.Events {
	}
}
