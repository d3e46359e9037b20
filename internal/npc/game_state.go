// internal/npc/game_state.go
package npc

import (
	"go-bean-farm/internal/entity"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/inventory"
	"go-bean-farm/internal/player"
	"go-bean-farm/internal/world"
)

// GameState is what every Tick and Interact can see of the game. It holds references only
// and is cheap to rebuild each frame.
type GameState struct {
	World     *world.World
	Player    *player.Player
	Inventory *inventory.Inventory
	Npcs      *NpcManager
	Enemies   *EnemyManager
	Events    *event.Dispatcher
}

func (g *GameState) dispatch(t event.EventType, data any) {
	if g == nil {
		return
	}
	g.Events.Dispatch(event.Event{Type: t, Data: data})
}

// playerTarget avoids handing a typed nil player to the birds.
func (g *GameState) playerTarget() entity.Positioned {
	if g.Player == nil {
		return nil
	}
	return g.Player
}
