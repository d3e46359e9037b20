// internal/npc/enemy_manager.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/entity"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/types"
)

// EnemyManager owns the spawners and every live bird, both in insertion order.
type EnemyManager struct {
	spawners []Spawner
	enemies  []Enemy
	events   *event.Dispatcher
}

// NewEnemyManager creates an empty manager. events may be nil.
func NewEnemyManager(events *event.Dispatcher) *EnemyManager {
	return &EnemyManager{events: events}
}

// Add registers a spawner. Duplicates are allowed and tick twice.
func (m *EnemyManager) Add(spawner Spawner) {
	m.spawners = append(m.spawners, spawner)
}

func (m *EnemyManager) Spawners() []Spawner {
	out := make([]Spawner, len(m.spawners))
	copy(out, m.spawners)
	return out
}

func (m *EnemyManager) MkMagpie(at component.Position, target entity.Positioned) *Magpie {
	magpie := NewMagpie(at, target)
	m.add(magpie)
	return magpie
}

func (m *EnemyManager) MkEagle(at component.Position, target entity.Positioned) *Eagle {
	eagle := NewEagle(at, target)
	m.add(eagle)
	return eagle
}

func (m *EnemyManager) MkPigeon(at component.Position, target entity.Positioned) *Pigeon {
	pigeon := NewPigeon(at, target)
	m.add(pigeon)
	return pigeon
}

func (m *EnemyManager) add(e Enemy) {
	m.enemies = append(m.enemies, e)
	m.events.Dispatch(event.Event{Type: event.EnemySpawned, Data: infoOf(e)})
}

// Cleanup drops every flagged enemy, keeping the order of the rest.
func (m *EnemyManager) Cleanup() {
	for i := len(m.enemies) - 1; i >= 0; i-- {
		e := m.enemies[i]
		if !e.IsMarkedForRemoval() {
			continue
		}
		m.enemies = append(m.enemies[:i], m.enemies[i+1:]...)
		m.events.Dispatch(event.Event{Type: event.EnemyRemoved, Data: infoOf(e)})
	}
	clear(m.enemies[len(m.enemies):cap(m.enemies)])
}

// Tick cleans up, runs the spawners, then ticks the enemies that existed before the
// spawners ran. Birds spawned this tick make their first move on the next one.
func (m *EnemyManager) Tick(state engine.State, game *GameState) {
	m.Cleanup()
	n := len(m.enemies)
	for _, s := range m.spawners {
		s.Tick(state, game)
	}
	for _, e := range m.enemies[:n] {
		e.Tick(state, game)
	}
}

// Interact does nothing; birds act during Tick.
func (m *EnemyManager) Interact(engine.State, *GameState) {}

func (m *EnemyManager) Render() []component.Renderable {
	out := make([]component.Renderable, 0, len(m.enemies))
	for _, e := range m.enemies {
		out = append(out, e)
	}
	return out
}

// All returns a copy of the live list, flagged enemies included until the next cleanup.
func (m *EnemyManager) All() []Enemy {
	out := make([]Enemy, len(m.enemies))
	copy(out, m.enemies)
	return out
}

func (m *EnemyManager) Len() int { return len(m.enemies) }

func (m *EnemyManager) Magpies() []*Magpie {
	var out []*Magpie
	for _, e := range m.enemies {
		if magpie, ok := e.(*Magpie); ok {
			out = append(out, magpie)
		}
	}
	return out
}

// Find resolves a weak reference. Flagged enemies are treated as gone.
func (m *EnemyManager) Find(id types.EntityID) (Enemy, bool) {
	if id == types.NoEntity {
		return nil, false
	}
	for _, e := range m.enemies {
		if e.ID() == id && !e.IsMarkedForRemoval() {
			return e, true
		}
	}
	return nil, false
}

// CountByKind tallies live enemies per kind.
func (m *EnemyManager) CountByKind() map[string]int {
	counts := make(map[string]int)
	for _, e := range m.enemies {
		counts[e.Kind()]++
	}
	return counts
}

func infoOf(e Enemy) event.EnemyInfo {
	return event.EnemyInfo{ID: e.ID(), Kind: e.Kind(), X: e.X(), Y: e.Y()}
}
