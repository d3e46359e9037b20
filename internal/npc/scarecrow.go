// internal/npc/scarecrow.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/engine"
)

const ScareDistance = 150

// Scarecrow sends every magpie within ScareDistance home.
type Scarecrow struct {
	Npc
}

func NewScarecrow(x, y int) *Scarecrow {
	s := &Scarecrow{Npc: NewNpc(x, y)}
	s.speed = 0
	s.SetSprite(component.SpriteScarecrow)
	return s
}

func (s *Scarecrow) Interact(_ engine.State, game *GameState) {
	if game == nil || game.Enemies == nil {
		return
	}
	for _, m := range game.Enemies.Magpies() {
		if s.DistanceTo(m) < ScareDistance {
			m.Scare()
		}
	}
}
