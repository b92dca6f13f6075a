package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml recipes/*.json
var PrefabsFS embed.FS

// Load reads a prefab file, preferring a copy under ./prefabs on disk so
// recipes can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if clean == "" {
		return nil, fmt.Errorf("prefabs: load: empty name")
	}
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// RecipeNames lists the embedded recipes without extension, sorted.
func RecipeNames() ([]string, error) {
	entries, err := PrefabsFS.ReadDir("recipes")
	if err != nil {
		return nil, fmt.Errorf("prefabs: list recipes: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isRecipeFile(e.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	return names, nil
}

func isRecipeFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

// recipePath maps "goblin_grunt", "goblin_grunt.json" or
// "prefabs/recipes/goblin_grunt.json" to "recipes/goblin_grunt.json".
func recipePath(name string) string {
	s := cleanPrefabPath(name)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "recipes/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return "recipes/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
