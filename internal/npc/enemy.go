// internal/npc/enemy.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/timing"
)

// Enemy is one of *Magpie, *Eagle or *Pigeon. The set is closed by the unexported marker.
type Enemy interface {
	NPC
	Kind() string
	Spawn() component.Position
	enemy()
}

var (
	_ Enemy = (*Magpie)(nil)
	_ Enemy = (*Eagle)(nil)
	_ Enemy = (*Pigeon)(nil)
)

// enemyBase holds what every bird shares: where it came from and how long it may live.
type enemyBase struct {
	Npc
	kind     string
	spawn    component.Position
	lifespan *timing.FixedTimer // nil — живёт, пока не вернётся
	up, down component.Sprite
}

func newEnemyBase(kind string, at component.Position, up, down component.Sprite) enemyBase {
	def := defs.Bird(kind)
	e := enemyBase{
		Npc:   NewNpc(at.X, at.Y),
		kind:  kind,
		spawn: at,
		up:    up,
		down:  down,
	}
	e.speed = def.Speed
	if def.Lifespan > 0 {
		e.lifespan = timing.NewFixedTimer(def.Lifespan)
	}
	e.SetSprite(down)
	return e
}

func (e *enemyBase) enemy() {}

func (e *enemyBase) Kind() string { return e.kind }

func (e *enemyBase) Spawn() component.Position { return e.spawn }

// Lifespan returns nil for birds that never expire.
func (e *enemyBase) Lifespan() *timing.FixedTimer { return e.lifespan }

func (e *enemyBase) SetLifespan(timer *timing.FixedTimer) { e.lifespan = timer }

func (e *enemyBase) tickLifespan() {
	if e.lifespan == nil {
		return
	}
	e.lifespan.Tick()
	if e.lifespan.IsFinished() {
		e.MarkForRemoval()
	}
}

// nearSpawn reports whether the bird is within one tile of where it was created.
func (e *enemyBase) nearSpawn(tileSize int) bool {
	return e.DistanceFrom(e.spawn.X, e.spawn.Y) < tileSize
}

// steer faces (x, y) and picks the up sprite when the point is above.
func (e *enemyBase) steer(x, y int) {
	if e.FaceToward(x, y) < 0 {
		e.SetSprite(e.up)
	} else {
		e.SetSprite(e.down)
	}
}
