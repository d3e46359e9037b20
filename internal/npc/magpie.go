// internal/npc/magpie.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/entity"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/inventory"
)

// Magpie steals coins from the player and never expires on its own.
type Magpie struct {
	raider
}

func NewMagpie(at component.Position, target entity.Positioned) *Magpie {
	return &Magpie{raider: newRaider(defs.Magpie, at, target, component.SpriteMagpieUp, component.SpriteMagpieDown)}
}

func (m *Magpie) Tick(state engine.State, game *GameState) {
	m.raid(state, game, m.steal)
}

// Scare sends the magpie home without stealing.
func (m *Magpie) Scare() {
	m.retreating = true
}

func (m *Magpie) steal(inv *inventory.Inventory) event.Theft {
	taken := min(defs.Bird(defs.Magpie).Theft, inv.Coins())
	inv.AddCoins(-taken)
	return event.Theft{Kind: m.kind, Coins: taken}
}
