// Package input carries the per-tick input snapshot consumed by the world.
package input

// Key names used in Snapshot.Held.
const (
	KeyForward = "w"
	KeyBack    = "s"
	KeyLeft    = "a"
	KeyRight   = "d"

	KeyOrbitLeft  = "orbit_left"
	KeyOrbitRight = "orbit_right"
	KeyOrbitUp    = "orbit_up"
	KeyOrbitDown  = "orbit_down"
)

// Snapshot is the input state for one tick.
type Snapshot struct {
	Held    map[string]bool
	Primary bool
	// Zoom is the wheel delta this tick; positive zooms in.
	Zoom float64
	// Pause toggles the pause panel.
	Pause bool
}

// Down reports whether key is held.
func (s Snapshot) Down(key string) bool {
	return s.Held[key]
}

// Source produces one snapshot per tick.
type Source interface {
	Snapshot() Snapshot
}

// Static replays the same snapshot every tick. Primary and Pause are edge
// events, so they are cleared after being read once.
type Static struct {
	State Snapshot
}

func (s *Static) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	out := s.State
	out.Held = make(map[string]bool, len(s.State.Held))
	for k, v := range s.State.Held {
		out.Held[k] = v
	}
	s.State.Primary = false
	s.State.Pause = false
	s.State.Zoom = 0
	return out
}

// Hold returns a snapshot with the given keys held.
func Hold(keys ...string) Snapshot {
	held := make(map[string]bool, len(keys))
	for _, k := range keys {
		held[k] = true
	}
	return Snapshot{Held: held}
}
