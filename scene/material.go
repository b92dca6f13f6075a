package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// MaterialKind selects extra shading applied on top of the base colour.
type MaterialKind string

const (
	MaterialStandard MaterialKind = "Standard"
	MaterialMetal    MaterialKind = "Metal"
	MaterialGlow     MaterialKind = "Glow"
)

// Valid reports whether k is a known kind. The empty kind means Standard.
func (k MaterialKind) Valid() bool {
	switch k {
	case "", MaterialStandard, MaterialMetal, MaterialGlow:
		return true
	}
	return false
}

func (k MaterialKind) orStandard() MaterialKind {
	if k == "" {
		return MaterialStandard
	}
	return k
}

// Color is a linear RGB triple in [0,1].
type Color struct {
	R, G, B float64
}

// ParseHex parses "#rrggbb" (the leading # is optional).
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color format: %q", s)
	}
	parse := func(start int) (float64, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return float64(v) / 255, err
	}
	r, err := parse(0)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	g, err := parse(2)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	b, err := parse(4)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Material is a standard material description.
type Material struct {
	Name      string
	Diffuse   Color
	Specular  Color
	Emissive  Color
	Roughness float64

	Texture      string
	TextureScale float64
}

// MaterialKey identifies a recipe material.
type MaterialKey struct {
	Hex  string
	Kind MaterialKind
}

func (k MaterialKey) String() string {
	return k.Hex + "_" + string(k.Kind.orStandard())
}

// Materials caches materials for the lifetime of a world. Recipe materials are
// keyed by colour and kind; structure materials by name.
type Materials struct {
	byKey  map[MaterialKey]*Material
	byName map[string]*Material
	allocs int
}

func NewMaterials() *Materials {
	return &Materials{
		byKey:  make(map[MaterialKey]*Material),
		byName: make(map[string]*Material),
	}
}

// ForColor returns the material for (hex, kind), creating it on first use.
func (m *Materials) ForColor(hex string, kind MaterialKind) (*Material, error) {
	if m == nil {
		return nil, fmt.Errorf("scene: materials cache is nil")
	}
	key := MaterialKey{Hex: strings.ToLower(hex), Kind: kind.orStandard()}
	if mat, ok := m.byKey[key]; ok {
		return mat, nil
	}
	diffuse, err := ParseHex(hex)
	if err != nil {
		return nil, fmt.Errorf("scene: material %s: %w", key, err)
	}
	mat := &Material{Name: key.String(), Diffuse: diffuse}
	switch key.Kind {
	case MaterialMetal:
		mat.Specular = Color{R: 1, G: 1, B: 1}
		mat.Roughness = 0.2
	case MaterialGlow:
		mat.Emissive = diffuse
	}
	m.byKey[key] = mat
	m.allocs++
	return mat, nil
}

// Named returns the material registered under name, building it once.
func (m *Materials) Named(name string, build func() *Material) *Material {
	if m == nil {
		return nil
	}
	if mat, ok := m.byName[name]; ok {
		return mat
	}
	mat := build()
	if mat.Name == "" {
		mat.Name = name
	}
	m.byName[name] = mat
	m.allocs++
	return mat
}

// Allocations is the number of materials ever created by this cache.
func (m *Materials) Allocations() int {
	if m == nil {
		return 0
	}
	return m.allocs
}
