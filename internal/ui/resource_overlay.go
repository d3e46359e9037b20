// internal/ui/resource_overlay.go
package ui

import (
	"fmt"

	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/npc"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ResourceOverlay shows the farmer's food and coins in the top-left corner.
type ResourceOverlay struct {
	X, Y  float32
	face  font.Face
	coins int
	food  int
}

func NewResourceOverlay(x, y float32) *ResourceOverlay {
	return &ResourceOverlay{X: x, Y: y, face: DefaultFace}
}

func (o *ResourceOverlay) Tick(_ engine.State, game *npc.GameState) {
	if game == nil || game.Inventory == nil {
		return
	}
	o.coins = game.Inventory.Coins()
	o.food = game.Inventory.Food()
}

func (o *ResourceOverlay) Draw(screen *ebiten.Image) {
	drawPanel(screen, o.face, o.X, o.Y, []string{
		fmt.Sprintf("Food:  %d", o.food),
		fmt.Sprintf("Coins: %d", o.coins),
	})
}
