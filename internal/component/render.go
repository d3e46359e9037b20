// component/render.go
package component

// Sprite — непрозрачный идентификатор спрайта; рендерер сопоставляет его с картинкой
type Sprite string

const (
	SpriteNone Sprite = ""

	SpriteGrass  Sprite = "tile/grass"
	SpriteDirt   Sprite = "tile/dirt"
	SpriteTilled Sprite = "tile/tilled"
	SpriteWater  Sprite = "tile/water"

	SpriteCabbageSeed  Sprite = "cabbage/seed"
	SpriteCabbageSmall Sprite = "cabbage/small"
	SpriteCabbageGrown Sprite = "cabbage/grown"

	SpritePlayer Sprite = "player"

	SpriteMagpieUp   Sprite = "magpie/up"
	SpriteMagpieDown Sprite = "magpie/down"
	SpriteEagleUp    Sprite = "eagle/up"
	SpriteEagleDown  Sprite = "eagle/down"
	SpritePigeonUp   Sprite = "pigeon/up"
	SpritePigeonDown Sprite = "pigeon/down"

	SpriteBeeHive      Sprite = "hive/default"
	SpriteBeeHiveEmpty Sprite = "hive/empty"
	SpriteBeeUp        Sprite = "bee/up"
	SpriteBeeDown      Sprite = "bee/down"
	SpriteBeeLeft      Sprite = "bee/left"
	SpriteBeeRight     Sprite = "bee/right"
	SpriteScarecrow    Sprite = "scarecrow"
)

// Renderable — всё, что может быть отрисовано: спрайт и позиция
type Renderable interface {
	Sprite() Sprite
	X() int
	Y() int
}
