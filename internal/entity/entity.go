// internal/entity/entity.go
package entity

import (
	"sync/atomic"

	"go-bean-farm/internal/component"
	"go-bean-farm/internal/types"
)

var nextID atomic.Uint64

// NewID выдаёт следующий идентификатор сущности. Ноль никогда не выдаётся.
func NewID() types.EntityID {
	return types.EntityID(nextID.Add(1))
}

// Positioned — всё, у чего можно прочитать позицию
type Positioned interface {
	X() int
	Y() int
}

// Entity — базовый контракт всех объектов мира
type Entity interface {
	component.Renderable
	ID() types.EntityID
	SetX(x int)
	SetY(y int)
	SetSprite(sprite component.Sprite)
	MarkForRemoval()
	IsMarkedForRemoval() bool
}

// Base реализует Entity; встраивается в конкретные сущности.
type Base struct {
	id      types.EntityID
	pos     component.Position
	sprite  component.Sprite
	removed bool
}

func NewBase(x, y int) Base {
	return Base{id: NewID(), pos: component.At(x, y)}
}

func (b *Base) ID() types.EntityID { return b.id }

func (b *Base) X() int { return b.pos.X }

func (b *Base) Y() int { return b.pos.Y }

func (b *Base) SetX(x int) { b.pos.X = x }

func (b *Base) SetY(y int) { b.pos.Y = y }

// Position возвращает копию позиции
func (b *Base) Position() component.Position { return b.pos }

func (b *Base) Sprite() component.Sprite { return b.sprite }

func (b *Base) SetSprite(sprite component.Sprite) { b.sprite = sprite }

// MarkForRemoval ставит флаг удаления. Флаг никогда не снимается.
func (b *Base) MarkForRemoval() { b.removed = true }

func (b *Base) IsMarkedForRemoval() bool { return b.removed }

// PositionOf копирует позицию любого Positioned
func PositionOf(p Positioned) component.Position {
	return component.At(p.X(), p.Y())
}
