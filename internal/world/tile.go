// internal/world/tile.go
package world

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/entity"
)

// Kind — тип тайла
type Kind int

const (
	Grass Kind = iota
	Dirt
	Water
)

func (k Kind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Dirt:
		return "dirt"
	case Water:
		return "water"
	}
	return "unknown"
}

// Tile is one grid cell. Its position is the cell's top-left corner in world pixels.
// Entities stacked on a tile (crops) are owned by it and evicted by Tick once flagged.
type Tile struct {
	entity.Base
	kind    Kind
	tilled  bool
	stacked []entity.Entity
}

func NewTile(kind Kind, x, y int) *Tile {
	t := &Tile{Base: entity.NewBase(x, y), kind: kind}
	t.updateSprite()
	return t
}

func (t *Tile) Kind() Kind { return t.kind }

func (t *Tile) IsTilled() bool { return t.tilled }

// Till turns dirt into a plantable bed. Other kinds are unaffected.
func (t *Tile) Till() bool {
	if t.kind != Dirt {
		return false
	}
	t.tilled = true
	t.updateSprite()
	return true
}

// StackedEntities returns a copy of the entities sitting on this tile.
func (t *Tile) StackedEntities() []entity.Entity {
	out := make([]entity.Entity, len(t.stacked))
	copy(out, t.stacked)
	return out
}

// Stack places an entity on this tile.
func (t *Tile) Stack(e entity.Entity) {
	t.stacked = append(t.stacked, e)
}

// Crop returns the first live cabbage on the tile.
func (t *Tile) Crop() (*Cabbage, bool) {
	for _, e := range t.stacked {
		if c, ok := e.(*Cabbage); ok && !c.IsMarkedForRemoval() {
			return c, true
		}
	}
	return nil, false
}

// Plant tills dirt if needed and stacks a new cabbage. Fails on non-dirt or occupied tiles.
func (t *Tile) Plant() (*Cabbage, bool) {
	if t.kind != Dirt {
		return nil, false
	}
	if _, occupied := t.Crop(); occupied {
		return nil, false
	}
	t.Till()
	c := NewCabbage(t.X(), t.Y())
	t.Stack(c)
	return c, true
}

// HasCrop is the selector used by pigeons and their spawners.
func HasCrop(t *Tile) bool {
	_, ok := t.Crop()
	return ok
}

func (t *Tile) tick() {
	kept := t.stacked[:0]
	for _, e := range t.stacked {
		if e.IsMarkedForRemoval() {
			continue
		}
		if c, ok := e.(*Cabbage); ok {
			c.Tick()
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(t.stacked); i++ {
		t.stacked[i] = nil
	}
	t.stacked = kept
}

func (t *Tile) updateSprite() {
	switch {
	case t.kind == Dirt && t.tilled:
		t.SetSprite(component.SpriteTilled)
	case t.kind == Dirt:
		t.SetSprite(component.SpriteDirt)
	case t.kind == Water:
		t.SetSprite(component.SpriteWater)
	default:
		t.SetSprite(component.SpriteGrass)
	}
}
