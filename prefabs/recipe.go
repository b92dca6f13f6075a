package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/scene"
	"gopkg.in/yaml.v3"
)

// Shape names accepted in recipe documents.
const (
	ShapeBox      = "Box"
	ShapeSphere   = "Sphere"
	ShapeCylinder = "Cylinder"
	ShapeCone     = "Cone"
	ShapeCapsule  = "Capsule"
	ShapeTorus    = "Torus"
)

// KnownShape reports whether shape is one of the recipe primitives.
func KnownShape(shape string) bool {
	switch shape {
	case ShapeBox, ShapeSphere, ShapeCylinder, ShapeCone, ShapeCapsule, ShapeTorus:
		return true
	}
	return false
}

// RecipePart is one primitive of a recipe. Position and Rotation are relative
// to the parent; Rotation is in degrees.
type RecipePart struct {
	ID       string
	Shape    string
	Scale    mgl64.Vec3
	Position mgl64.Vec3
	Rotation *mgl64.Vec3
	ColorHex string
	Material scene.MaterialKind
	ParentID string
}

// Recipe is an ordered list of parts. Order matters: a part can only be
// parented to a part that appears before it.
type Recipe struct {
	Name  string
	Parts []RecipePart
}

type partDoc struct {
	Id       string    `yaml:"Id"`
	Shape    string    `yaml:"Shape"`
	Scale    []float64 `yaml:"Scale"`
	Position []float64 `yaml:"Position"`
	Rotation []float64 `yaml:"Rotation"`
	ColorHex string    `yaml:"ColorHex"`
	Material string    `yaml:"Material"`
	ParentId string    `yaml:"ParentId"`
}

type recipeDoc struct {
	Name  string    `yaml:"Name"`
	Parts []partDoc `yaml:"Parts"`
}

// ParseRecipe decodes and validates a recipe document. JSON documents are
// accepted as YAML. Unknown shapes pass validation; the assembler substitutes
// a placeholder for them.
func ParseRecipe(name string, data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc recipeDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Recipe: name, Err: ErrEmptyRecipe}
		}
		return nil, &ValidationError{Recipe: name, Err: err}
	}

	if doc.Name != "" && name == "" {
		name = doc.Name
	}
	if len(doc.Parts) == 0 {
		return nil, &ValidationError{Recipe: name, Path: "Parts", Err: ErrEmptyRecipe}
	}

	recipe := &Recipe{Name: name, Parts: make([]RecipePart, 0, len(doc.Parts))}
	seen := make(map[string]int, len(doc.Parts))

	for i, p := range doc.Parts {
		path := fmt.Sprintf("Parts[%d]", i)
		fail := func(field string, err error) error {
			return &ValidationError{Recipe: name, Path: path + field, Err: err}
		}

		if p.Id == "" {
			return nil, fail(".Id", errors.New("empty id"))
		}
		if prev, dup := seen[p.Id]; dup {
			return nil, fail(".Id", fmt.Errorf("duplicate id %q (first at Parts[%d])", p.Id, prev))
		}
		seen[p.Id] = i

		scale, err := vec3(p.Scale)
		if err != nil {
			return nil, fail(".Scale", err)
		}
		pos, err := vec3(p.Position)
		if err != nil {
			return nil, fail(".Position", err)
		}

		part := RecipePart{
			ID:       p.Id,
			Shape:    p.Shape,
			Scale:    scale,
			Position: pos,
			ColorHex: p.ColorHex,
			Material: scene.MaterialKind(p.Material),
			ParentID: p.ParentId,
		}

		if p.Rotation != nil {
			rot, err := vec3(p.Rotation)
			if err != nil {
				return nil, fail(".Rotation", err)
			}
			part.Rotation = &rot
		}
		if !part.Material.Valid() {
			return nil, fail(".Material", fmt.Errorf("unknown material %q", p.Material))
		}
		if p.ColorHex != "" {
			if _, err := scene.ParseHex(p.ColorHex); err != nil {
				return nil, fail(".ColorHex", err)
			}
		}

		recipe.Parts = append(recipe.Parts, part)
	}

	return recipe, nil
}

// LoadRecipe fetches a recipe by name from disk or the embedded set.
func LoadRecipe(name string) (*Recipe, error) {
	data, err := Load(recipePath(name))
	if err != nil {
		return nil, &AssetLoadError{Name: name, Err: err}
	}
	recipe, err := ParseRecipe(name, data)
	if err != nil {
		return nil, &AssetLoadError{Name: name, Err: err}
	}
	return recipe, nil
}

func vec3(v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}
