// internal/npc/eagle.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/entity"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/inventory"
)

// Eagle — ворует еду у игрока, улетает или исчезает по истечении срока жизни
type Eagle struct {
	raider
}

func NewEagle(at component.Position, target entity.Positioned) *Eagle {
	return &Eagle{raider: newRaider(defs.Eagle, at, target, component.SpriteEagleUp, component.SpriteEagleDown)}
}

func (e *Eagle) Tick(state engine.State, game *GameState) {
	e.raid(state, game, e.steal)
}

func (e *Eagle) steal(inv *inventory.Inventory) event.Theft {
	taken := min(defs.Bird(defs.Eagle).Theft, inv.Food())
	inv.AddFood(-taken)
	return event.Theft{Kind: e.kind, Food: taken}
}
