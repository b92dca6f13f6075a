// Package telemetry publishes per-frame world snapshots to the HUD, logs and
// remote viewers.
package telemetry

// Planar is a position on the ground plane.
type Planar struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Target describes the mob the hero is looking at.
type Target struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
}

// Snapshot is what the HUD needs for one frame.
type Snapshot struct {
	Tick      uint64   `json:"tick"`
	HeroHP    int      `json:"heroHp"`
	HeroMaxHP int      `json:"heroMaxHp"`
	Target    *Target  `json:"target,omitempty"`
	Mobs      []Planar `json:"mobs"`
	Hero      Planar   `json:"hero"`
	// Heading is the hero yaw in radians.
	Heading float64 `json:"heading"`
}

// Sink receives snapshots on the frame thread. Implementations must not block.
type Sink interface {
	Publish(s Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Snapshot)

func (f SinkFunc) Publish(s Snapshot) {
	if f != nil {
		f(s)
	}
}

// Multi fans a snapshot out to every non-nil sink.
type Multi []Sink

func (m Multi) Publish(s Snapshot) {
	for _, sink := range m {
		if sink != nil {
			sink.Publish(s)
		}
	}
}
