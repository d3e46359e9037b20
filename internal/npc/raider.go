// internal/npc/raider.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/entity"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/inventory"
)

// raider chases a target (the player), robs the inventory once within a tile
// and then flies back to its spawn point, where it is removed.
type raider struct {
	enemyBase
	target     entity.Positioned
	retreating bool
}

func newRaider(kind string, at component.Position, target entity.Positioned, up, down component.Sprite) raider {
	return raider{enemyBase: newEnemyBase(kind, at, up, down), target: target}
}

func (r *raider) IsRetreating() bool { return r.retreating }

func (r *raider) Target() entity.Positioned { return r.target }

func (r *raider) raid(state engine.State, game *GameState, steal func(*inventory.Inventory) event.Theft) {
	tileSize := state.Dimensions().TileSize()
	if r.target == nil {
		r.retreating = true
	}

	if r.retreating {
		r.steer(r.spawn.X, r.spawn.Y)
		r.Move()
		r.tickLifespan()
		if r.nearSpawn(tileSize) {
			r.MarkForRemoval()
		}
		return
	}

	r.steer(r.target.X(), r.target.Y())
	r.Move()
	r.tickLifespan()
	if r.DistanceTo(r.target) >= tileSize {
		return
	}
	if game != nil && game.Inventory != nil {
		game.dispatch(event.ResourcesStolen, steal(game.Inventory))
	}
	r.retreating = true
}
