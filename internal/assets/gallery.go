// internal/assets/gallery.go
package assets

import (
	"image/color"

	"go-bean-farm/internal/component"
	"go-bean-farm/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Gallery paints sprites procedurally on first use and caches them.
type Gallery struct {
	size    int
	palette render.Palette
	images  map[component.Sprite]*ebiten.Image
}

func NewGallery(tileSize int, palette render.Palette) *Gallery {
	return &Gallery{
		size:    tileSize,
		palette: palette,
		images:  make(map[component.Sprite]*ebiten.Image),
	}
}

// Image returns the picture for a sprite, or nil for SpriteNone.
func (g *Gallery) Image(sprite component.Sprite) *ebiten.Image {
	if sprite == component.SpriteNone {
		return nil
	}
	if img, ok := g.images[sprite]; ok {
		return img
	}
	img := ebiten.NewImage(g.size, g.size)
	g.paint(img, sprite)
	g.images[sprite] = img
	return img
}

func (g *Gallery) paint(img *ebiten.Image, sprite component.Sprite) {
	s := float32(g.size)
	c := s / 2
	p := g.palette

	switch sprite {
	case component.SpriteGrass:
		img.Fill(p.Grass)
	case component.SpriteDirt:
		img.Fill(p.Dirt)
	case component.SpriteTilled:
		img.Fill(p.Tilled)
		for y := s / 4; y < s; y += s / 4 {
			vector.StrokeLine(img, 0, y, s, y, 1, render.DarkenColor(p.Tilled), false)
		}
	case component.SpriteWater:
		img.Fill(p.Water)
		vector.StrokeLine(img, s/5, c, s*2/5, c, 1, render.LightenColor(p.Water), false)

	case component.SpriteCabbageSeed:
		vector.DrawFilledCircle(img, c, c, s*0.12, p.Cabbage, true)
	case component.SpriteCabbageSmall:
		vector.DrawFilledCircle(img, c, c, s*0.25, p.Cabbage, true)
	case component.SpriteCabbageGrown:
		vector.DrawFilledCircle(img, c, c, s*0.42, p.Cabbage, true)
		vector.DrawFilledCircle(img, c, c, s*0.2, render.LightenColor(p.Cabbage), true)

	case component.SpritePlayer:
		vector.DrawFilledRect(img, s*0.25, s*0.15, s*0.5, s*0.7, p.Player, false)
		vector.DrawFilledCircle(img, c, s*0.2, s*0.15, render.DarkenColor(p.Player), true)

	case component.SpriteMagpieUp, component.SpriteMagpieDown:
		bird(img, s, p.Magpie, sprite == component.SpriteMagpieUp)
	case component.SpriteEagleUp, component.SpriteEagleDown:
		bird(img, s, p.Eagle, sprite == component.SpriteEagleUp)
	case component.SpritePigeonUp, component.SpritePigeonDown:
		bird(img, s, p.Pigeon, sprite == component.SpritePigeonUp)

	case component.SpriteBeeHive:
		vector.DrawFilledRect(img, s*0.15, s*0.2, s*0.7, s*0.7, p.Hive, false)
		vector.DrawFilledCircle(img, c, s*0.6, s*0.1, color.Black, true)
	case component.SpriteBeeHiveEmpty:
		vector.DrawFilledRect(img, s*0.15, s*0.2, s*0.7, s*0.7, render.DarkenColor(p.Hive), false)
	case component.SpriteBeeUp:
		bee(img, s, p.Bee, 0, -1)
	case component.SpriteBeeDown:
		bee(img, s, p.Bee, 0, 1)
	case component.SpriteBeeLeft:
		bee(img, s, p.Bee, -1, 0)
	case component.SpriteBeeRight:
		bee(img, s, p.Bee, 1, 0)

	case component.SpriteScarecrow:
		vector.StrokeLine(img, c, s*0.1, c, s*0.95, 3, p.Scarecrow, false)
		vector.StrokeLine(img, s*0.15, s*0.35, s*0.85, s*0.35, 3, p.Scarecrow, false)
		vector.DrawFilledCircle(img, c, s*0.15, s*0.12, render.LightenColor(p.Scarecrow), true)

	default:
		// Неизвестный спрайт — розовый квадрат, чтобы сразу было видно
		img.Fill(color.RGBA{255, 0, 255, 255})
	}
}

func bird(img *ebiten.Image, s float32, body color.RGBA, up bool) {
	c := s / 2
	vector.DrawFilledCircle(img, c, c, s*0.3, body, true)
	beakY := s * 0.8
	if up {
		beakY = s * 0.1
	}
	vector.DrawFilledRect(img, c-s*0.06, beakY, s*0.12, s*0.1, render.LightenColor(body), false)
}

func bee(img *ebiten.Image, s float32, body color.RGBA, dx, dy float32) {
	c := s / 2
	vector.DrawFilledCircle(img, c, c, s*0.18, body, true)
	vector.DrawFilledCircle(img, c+dx*s*0.25, c+dy*s*0.25, s*0.06, color.Black, true)
}
