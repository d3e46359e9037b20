// internal/ui/inventory_overlay.go
package ui

import (
	"go-bean-farm/internal/config"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/inventory"
	"go-bean-farm/internal/npc"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// InventoryOverlay draws the hotbar centred at the bottom of the screen.
type InventoryOverlay struct {
	face     font.Face
	items    []inventory.Item
	selected int
}

func NewInventoryOverlay() *InventoryOverlay {
	return &InventoryOverlay{face: DefaultFace}
}

func (o *InventoryOverlay) Tick(_ engine.State, game *npc.GameState) {
	if game == nil || game.Inventory == nil {
		return
	}
	inv := game.Inventory
	o.items = o.items[:0]
	for i := 0; i < inv.Size(); i++ {
		o.items = append(o.items, inv.Item(i))
	}
	o.selected = inv.SelectedSlot()
}

func (o *InventoryOverlay) Draw(screen *ebiten.Image) {
	if len(o.items) == 0 {
		return
	}
	slot := float32(config.SlotSize)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x0 := (float32(w) - slot*float32(len(o.items))) / 2
	y := float32(h) - slot - config.OverlayPadding

	for i, item := range o.items {
		x := x0 + slot*float32(i)
		vector.DrawFilledRect(screen, x+1, y+1, slot-2, slot-2, config.SlotColor, false)
		if i == o.selected {
			vector.StrokeRect(screen, x+1, y+1, slot-2, slot-2, 2, config.SelectedColor, false)
		}
		if item != nil {
			label := item.Name()
			if len(label) > 5 {
				label = label[:5]
			}
			drawOutlined(screen, o.face, label, int(x)+3, int(y+slot/2)+4, config.TextLightColor)
		}
	}
}
