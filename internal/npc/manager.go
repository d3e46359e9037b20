// internal/npc/manager.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/engine"
)

// NpcManager owns the non-enemy NPCs (hives, bees, scarecrows) in insertion order.
type NpcManager struct {
	npcs []NPC
}

func NewNpcManager() *NpcManager {
	return &NpcManager{}
}

// AddNpc appends npc. Nil is ignored.
func (m *NpcManager) AddNpc(npc NPC) {
	if npc == nil {
		return
	}
	m.npcs = append(m.npcs, npc)
}

// Cleanup drops every flagged NPC, keeping the order of the rest.
func (m *NpcManager) Cleanup() {
	for i := len(m.npcs) - 1; i >= 0; i-- {
		if m.npcs[i].IsMarkedForRemoval() {
			m.npcs = append(m.npcs[:i], m.npcs[i+1:]...)
		}
	}
	clear(m.npcs[len(m.npcs):cap(m.npcs)])
}

func (m *NpcManager) Tick(state engine.State, game *GameState) {
	m.Cleanup()
	for _, npc := range m.npcs {
		npc.Tick(state, game)
	}
}

// Interact runs Interact on every interactable NPC present when the call started.
// NPCs added meanwhile (bees from a hive) wait for the next frame. No cleanup happens here.
func (m *NpcManager) Interact(state engine.State, game *GameState) {
	n := len(m.npcs)
	for i := 0; i < n; i++ {
		if in, ok := m.npcs[i].(Interactable); ok {
			in.Interact(state, game)
		}
	}
}

func (m *NpcManager) Render() []component.Renderable {
	out := make([]component.Renderable, 0, len(m.npcs))
	for _, npc := range m.npcs {
		out = append(out, npc)
	}
	return out
}

func (m *NpcManager) All() []NPC {
	out := make([]NPC, len(m.npcs))
	copy(out, m.npcs)
	return out
}

func (m *NpcManager) Len() int { return len(m.npcs) }
