package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec is the tunable layout of the world: who spawns where and how the
// hero, mobs and camera behave.
type WorldSpec struct {
	Seed          int64         `yaml:"seed"`
	TelemetryAddr string        `yaml:"telemetry_addr"`
	Ground        GroundSpec    `yaml:"ground"`
	Fort          FortSpec      `yaml:"fort"`
	Hero          HeroSpec      `yaml:"hero"`
	Combat        CombatSpec    `yaml:"combat"`
	Targeting     TargetingSpec `yaml:"targeting"`
	Mob           MobSpec       `yaml:"mob"`
	Camera        CameraSpec    `yaml:"camera"`
	Spawns        []SpawnSpec   `yaml:"spawns"`
	Props         []PropSpec    `yaml:"props"`
}

type GroundSpec struct {
	Size         float64    `yaml:"size"`
	Subdivisions int        `yaml:"subdivisions"`
	Color        *YAMLColor `yaml:"color"`
	Background   *YAMLColor `yaml:"background"`
}

type FortSpec struct {
	X          float64 `yaml:"x"`
	Z          float64 `yaml:"z"`
	BaseHeight float64 `yaml:"base_height"`
}

type HeroSpec struct {
	Recipe       string  `yaml:"recipe"`
	HP           int     `yaml:"hp"`
	Damage       int     `yaml:"damage"`
	Speed        float64 `yaml:"speed"`
	HeightOffset float64 `yaml:"height_offset"`
	Bob          float64 `yaml:"bob"`
}

type CombatSpec struct {
	Reach     float64 `yaml:"reach"`
	Arc       float64 `yaml:"arc"`
	Knockback float64 `yaml:"knockback"`
	SwingMS   int     `yaml:"swing_ms"`
	LockoutMS int     `yaml:"lockout_ms"`
}

type TargetingSpec struct {
	Range float64 `yaml:"range"`
	Arc   float64 `yaml:"arc"`
}

type MobSpec struct {
	Speed        float64 `yaml:"speed"`
	AggroRange   float64 `yaml:"aggro_range"`
	AttackRange  float64 `yaml:"attack_range"`
	HeightOffset float64 `yaml:"height_offset"`
}

type CameraSpec struct {
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Radius    float64 `yaml:"radius"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// RangeSpec is a uniform interval [Offset, Offset+Range).
type RangeSpec struct {
	Offset float64 `yaml:"offset"`
	Range  float64 `yaml:"range"`
}

type SpawnSpec struct {
	Recipe string    `yaml:"recipe"`
	Prefix string    `yaml:"prefix"`
	Count  int       `yaml:"count"`
	HP     int       `yaml:"hp"`
	Scale  float64   `yaml:"scale"`
	X      RangeSpec `yaml:"x"`
	Z      RangeSpec `yaml:"z"`
}

// PropSpec places a static recipe that never moves or fights.
type PropSpec struct {
	Recipe string  `yaml:"recipe"`
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *WorldSpec) applyDefaults() {
	if s.Ground.Size <= 0 {
		s.Ground.Size = 2000
	}
	if s.Ground.Subdivisions <= 0 {
		s.Ground.Subdivisions = 300
	}
	if s.Hero.HP <= 0 {
		s.Hero.HP = 100
	}
	if s.Hero.Speed <= 0 {
		s.Hero.Speed = 0.1
	}
	if s.Combat.Reach <= 0 {
		s.Combat.Reach = 4
	}
	if s.Combat.SwingMS <= 0 {
		s.Combat.SwingMS = 200
	}
	if s.Combat.LockoutMS <= 0 {
		s.Combat.LockoutMS = 500
	}
	if s.Targeting.Range <= 0 {
		s.Targeting.Range = 20
	}
	if s.Mob.Speed <= 0 {
		s.Mob.Speed = 0.05
	}
	if s.Mob.AggroRange <= 0 {
		s.Mob.AggroRange = 15
	}
	if s.Mob.AttackRange <= 0 {
		s.Mob.AttackRange = 1.5
	}
	if s.Camera.Radius <= 0 {
		s.Camera.Radius = 10
	}
	for i := range s.Spawns {
		if s.Spawns[i].Scale == 0 {
			s.Spawns[i].Scale = 1
		}
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the colour, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
