package system

import (
	"testing"

	"github.com/milk9111/sandkeep/ecs/component"
)

func TestSensorEvents(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want []component.EventID
	}{
		{"out of sight", 15, []component.EventID{component.EventLosesHero}},
		{"in sight", 10, []component.EventID{component.EventSeesHero, component.EventOutAttackRange}},
		{"in reach", 1.5, []component.EventID{component.EventSeesHero, component.EventInAttackRange}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sensorEvents(tt.dist, 15, 1.5)
			if len(got) != len(tt.want) {
				t.Fatalf("sensorEvents(%v) = %v, want %v", tt.dist, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("sensorEvents(%v) = %v, want %v", tt.dist, got, tt.want)
				}
			}
		})
	}
}

func TestDefaultMobFSMTransitions(t *testing.T) {
	states := []component.StateID{component.StateIdle, component.StateChase, component.StateAttack}
	tests := []struct {
		name string
		dist float64
		want component.StateID
	}{
		{"hero far away", 20, component.StateIdle},
		{"hero in sight", 8, component.StateChase},
		{"hero in reach", 1, component.StateAttack},
	}
	fsm := DefaultMobFSM()
	for _, from := range states {
		for _, tt := range tests {
			t.Run(string(from)+" "+tt.name, func(t *testing.T) {
				state := &component.AIState{Current: from}
				processEvents(fsm, state, &AIActionContext{}, sensorEvents(tt.dist, 15, 1.5))
				if state.Current != tt.want {
					t.Fatalf("%s -> %s, want %s", from, state.Current, tt.want)
				}
			})
		}
	}
}

func TestProcessEventsStartsAtInitial(t *testing.T) {
	state := &component.AIState{}
	processEvents(DefaultMobFSM(), state, &AIActionContext{}, nil)
	if state.Current != component.StateIdle {
		t.Fatalf("state = %q, want IDLE", state.Current)
	}
}
