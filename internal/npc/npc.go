// internal/npc/npc.go
package npc

import (
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/entity"
	"go-bean-farm/pkg/utils"
)

// NPC is anything NpcManager or EnemyManager ticks once per frame.
type NPC interface {
	entity.Entity
	Tick(state engine.State, game *GameState)
}

// Interactable NPCs get a second pass after every manager has ticked.
type Interactable interface {
	Interact(state engine.State, game *GameState)
}

// Npc — подвижная сущность с направлением (градусы, без нормализации) и скоростью.
type Npc struct {
	entity.Base
	direction int
	speed     float64
}

func NewNpc(x, y int) Npc {
	return Npc{Base: entity.NewBase(x, y), speed: 1}
}

func (n *Npc) Direction() int { return n.direction }

func (n *Npc) SetDirection(direction int) { n.direction = direction }

func (n *Npc) Speed() float64 { return n.speed }

func (n *Npc) SetSpeed(speed float64) { n.speed = speed }

// Move shifts the position by the rounded speed vector along the current direction.
func (n *Npc) Move() {
	dx, dy := utils.Step(n.direction, n.speed)
	n.SetX(n.X() + dx)
	n.SetY(n.Y() + dy)
}

// Tick just moves. Concrete NPCs replace it.
func (n *Npc) Tick(engine.State, *GameState) {
	n.Move()
}

// FaceToward points the NPC at (x, y) and returns the vertical delta.
func (n *Npc) FaceToward(x, y int) int {
	dx, dy := x-n.X(), y-n.Y()
	n.direction = utils.Heading(float64(dx), float64(dy))
	return dy
}

// DistanceTo is the truncated Euclidean distance to p.
func (n *Npc) DistanceTo(p entity.Positioned) int {
	return utils.Distance(n.X(), n.Y(), p.X(), p.Y())
}

func (n *Npc) DistanceFrom(x, y int) int {
	return utils.Distance(n.X(), n.Y(), x, y)
}
