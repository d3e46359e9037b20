// internal/npc/pigeon.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/config"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/entity"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/world"
	"go-bean-farm/pkg/utils"
)

// Pigeon flies to the nearest crop, eats it and returns to its spawn point.
// The target is a copy of the crop tile position and is recomputed every tick.
type Pigeon struct {
	enemyBase
	attacking bool
	target    component.Position
	hasTarget bool
}

func NewPigeon(at component.Position, target entity.Positioned) *Pigeon {
	p := &Pigeon{
		enemyBase: newEnemyBase(defs.Pigeon, at, component.SpritePigeonUp, component.SpritePigeonDown),
		attacking: true,
	}
	if target != nil {
		p.target = entity.PositionOf(target)
		p.hasTarget = true
	}
	return p
}

func (p *Pigeon) Attacking() bool { return p.attacking }

func (p *Pigeon) SetAttacking(attacking bool) { p.attacking = attacking }

// Target returns the last known crop tile position.
func (p *Pigeon) Target() (component.Position, bool) { return p.target, p.hasTarget }

func (p *Pigeon) Tick(state engine.State, game *GameState) {
	tileSize := state.Dimensions().TileSize()

	switch {
	case !p.attacking:
		p.FaceToward(p.spawn.X, p.spawn.Y)
		p.checkHome(tileSize)
	case !p.hasTarget:
		x, y := p.stagingPoint()
		if p.FaceToward(x, y) > 0 {
			p.SetSprite(p.down)
		} else {
			p.SetSprite(p.up)
		}
	default:
		p.FaceToward(p.target.X, p.target.Y)
	}

	p.Move()
	p.tickLifespan()
	if !p.attacking {
		p.checkHome(tileSize)
	}

	if game == nil || game.World == nil {
		return
	}
	crops := game.World.TileSelector(world.HasCrop)
	if len(crops) == 0 {
		p.attacking = false
		return
	}
	closest := nearestTile(crops, p)
	p.target = entity.PositionOf(closest)
	p.hasTarget = true

	if !p.attacking || p.DistanceFrom(p.target.X, p.target.Y) >= tileSize {
		return
	}
	if crop, ok := closest.Crop(); ok {
		crop.MarkForRemoval()
		p.attacking = false
		game.dispatch(event.CropDestroyed, event.CropInfo{X: closest.X(), Y: closest.Y()})
	}
}

// checkHome flags the pigeon once it is back within a tile of its spawn point.
func (p *Pigeon) checkHome(tileSize int) {
	if p.nearSpawn(tileSize) {
		p.MarkForRemoval()
	}
	if p.spawn.Y < p.Y() {
		p.SetSprite(p.up)
	} else {
		p.SetSprite(p.down)
	}
}

// stagingPoint is where pigeons circle while they have no crop to go for.
func (p *Pigeon) stagingPoint() (int, int) {
	if p.X() < config.PigeonStagingSplitX {
		return config.PigeonStagingWestX, config.PigeonStagingWestY
	}
	return config.PigeonStagingEastX, config.PigeonStagingEastY
}

// nearestTile returns the closest tile to from. Ties go to the earliest tile in scan order.
func nearestTile(tiles []*world.Tile, from entity.Positioned) *world.Tile {
	var best *world.Tile
	bestDist := 0
	for _, t := range tiles {
		d := utils.Distance(from.X(), from.Y(), t.X(), t.Y())
		if best == nil || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}
