// internal/system/render.go
package system

import (
	"go-bean-farm/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSource resolves sprite handles to images.
type SpriteSource interface {
	Image(sprite component.Sprite) *ebiten.Image
}

// RenderSystem рисует сущности в том порядке, в котором их отдали
type RenderSystem struct {
	sprites SpriteSource
}

func NewRenderSystem(sprites SpriteSource) *RenderSystem {
	return &RenderSystem{sprites: sprites}
}

// Draw paints each renderable with its top-left corner at its position.
func (s *RenderSystem) Draw(screen *ebiten.Image, items []component.Renderable) {
	op := &ebiten.DrawImageOptions{}
	for _, item := range items {
		img := s.sprites.Image(item.Sprite())
		if img == nil {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(float64(item.X()), float64(item.Y()))
		screen.DrawImage(img, op)
	}
}
