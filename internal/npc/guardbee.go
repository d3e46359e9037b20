// internal/npc/guardbee.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/entity"
	"go-bean-farm/internal/timing"
	"go-bean-farm/internal/types"
	"go-bean-farm/pkg/utils"
)

// GuardBee hunts one enemy, tracked by ID, and dies together with it on contact.
// If the enemy disappears it looks for another one near by, or flies home.
type GuardBee struct {
	Npc
	home     component.Position
	target   types.EntityID
	lifespan *timing.FixedTimer
}

func NewGuardBee(x, y int, home entity.Positioned, target types.EntityID) *GuardBee {
	def := defs.Bird(defs.GuardBee)
	b := &GuardBee{
		Npc:      NewNpc(x, y),
		home:     entity.PositionOf(home),
		target:   target,
		lifespan: timing.NewFixedTimer(def.Lifespan),
	}
	b.speed = def.Speed
	b.SetSprite(component.SpriteBeeUp)
	return b
}

func (b *GuardBee) Target() types.EntityID { return b.target }

func (b *GuardBee) Lifespan() *timing.FixedTimer { return b.lifespan }

func (b *GuardBee) Tick(state engine.State, game *GameState) {
	tileSize := state.Dimensions().TileSize()

	target, ok := b.resolveTarget(game)
	if ok {
		b.fly(target.X(), target.Y())
		if b.DistanceTo(target) < tileSize {
			target.MarkForRemoval()
			b.MarkForRemoval()
			return
		}
	} else {
		b.target = types.NoEntity
		b.fly(b.home.X, b.home.Y)
		if b.DistanceFrom(b.home.X, b.home.Y) < tileSize {
			b.MarkForRemoval()
			return
		}
	}

	b.lifespan.Tick()
	if b.lifespan.IsFinished() {
		b.MarkForRemoval()
	}
}

// resolveTarget follows the tracked ID, falling back to the nearest live enemy in range.
func (b *GuardBee) resolveTarget(game *GameState) (Enemy, bool) {
	if game == nil || game.Enemies == nil {
		return nil, false
	}
	if e, ok := game.Enemies.Find(b.target); ok {
		return e, true
	}
	e, ok := nearestEnemy(game.Enemies.All(), b, DetectionDistance)
	if ok {
		b.target = e.ID()
	}
	return e, ok
}

func (b *GuardBee) fly(x, y int) {
	dx, dy := x-b.X(), y-b.Y()
	b.FaceToward(x, y)
	switch {
	case utils.Abs(dx) > utils.Abs(dy) && dx < 0:
		b.SetSprite(component.SpriteBeeLeft)
	case utils.Abs(dx) > utils.Abs(dy):
		b.SetSprite(component.SpriteBeeRight)
	case dy < 0:
		b.SetSprite(component.SpriteBeeUp)
	default:
		b.SetSprite(component.SpriteBeeDown)
	}
	b.Move()
}

// nearestEnemy picks the closest unflagged enemy strictly within maxDist.
func nearestEnemy(enemies []Enemy, from entity.Positioned, maxDist int) (Enemy, bool) {
	var best Enemy
	bestDist := maxDist
	for _, e := range enemies {
		if e.IsMarkedForRemoval() {
			continue
		}
		d := utils.Distance(from.X(), from.Y(), e.X(), e.Y())
		if d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, best != nil
}
