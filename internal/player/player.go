// internal/player/player.go
package player

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/config"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/entity"
	"go-bean-farm/internal/inventory"
	"go-bean-farm/internal/world"
	"go-bean-farm/pkg/utils"
)

// Player — фермер, которым управляет игрок
type Player struct {
	entity.Base
	speed int
}

func New(x, y int) *Player {
	p := &Player{Base: entity.NewBase(x, y), speed: config.PlayerSpeed}
	p.SetSprite(component.SpritePlayer)
	return p
}

func (p *Player) Speed() int { return p.speed }

// Tick handles movement, slot selection and the farming keys for one frame.
func (p *Player) Tick(state engine.State, w *world.World, inv *inventory.Inventory) {
	keys := state.Keys()
	p.move(keys, state.Dimensions())

	if inv == nil {
		return
	}
	for slot := 0; slot < inv.Size() && slot < 9; slot++ {
		if keys.IsDown(rune('1' + slot)) {
			inv.Select(slot)
		}
	}

	if w == nil {
		return
	}
	if keys.IsDown(config.KeyHarvest) {
		p.harvest(state.Dimensions(), w, inv)
	}
	if keys.IsDown(config.KeyPlant) {
		p.plant(state.Dimensions(), w, inv)
	}
}

func (p *Player) move(keys engine.Keys, dims engine.Dimensions) {
	dx, dy := 0, 0
	if keys.IsDown(config.KeyUp) {
		dy -= p.speed
	}
	if keys.IsDown(config.KeyDown) {
		dy += p.speed
	}
	if keys.IsDown(config.KeyLeft) {
		dx -= p.speed
	}
	if keys.IsDown(config.KeyRight) {
		dx += p.speed
	}
	if dx == 0 && dy == 0 {
		return
	}
	limit := dims.WindowSize - dims.TileSize()
	p.SetX(utils.Clamp(p.X()+dx, 0, limit))
	p.SetY(utils.Clamp(p.Y()+dy, 0, limit))
}

// Plant buys a cabbage for the dirt tile under the player. Returns false if nothing was planted.
func (p *Player) plant(dims engine.Dimensions, w *world.World, inv *inventory.Inventory) bool {
	if inv.Coins() < config.CabbageCost {
		return false
	}
	for _, tile := range w.TilesAtPosition(p.X(), p.Y(), dims) {
		if _, ok := tile.Plant(); ok {
			inv.AddCoins(-config.CabbageCost)
			return true
		}
	}
	return false
}

func (p *Player) harvest(dims engine.Dimensions, w *world.World, inv *inventory.Inventory) bool {
	for _, tile := range w.TilesAtPosition(p.X(), p.Y(), dims) {
		crop, ok := tile.Crop()
		if !ok || !crop.IsGrown() {
			continue
		}
		crop.MarkForRemoval()
		inv.AddFood(config.CabbageYield)
		return true
	}
	return false
}
