// internal/state/input.go
package state

import (
	"go-bean-farm/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps the runes the simulation asks about to physical keys.
var keyBindings = map[rune]ebiten.Key{
	'w': ebiten.KeyW,
	'a': ebiten.KeyA,
	's': ebiten.KeyS,
	'd': ebiten.KeyD,
	'p': ebiten.KeyP,
	'r': ebiten.KeyR,
	'h': ebiten.KeyH,
	'c': ebiten.KeyC,
	'1': ebiten.Key1,
	'2': ebiten.Key2,
	'3': ebiten.Key3,
	'4': ebiten.Key4,
	'5': ebiten.Key5,
}

// Capture reads the keyboard and mouse once so every system sees the same frame.
func Capture(dims engine.Dimensions, frame int) *engine.Snapshot {
	keys := engine.KeySet{}
	for r, k := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			keys[r] = true
		}
	}
	mx, my := ebiten.CursorPosition()
	return &engine.Snapshot{
		KeyState: keys,
		MouseState: engine.MouseState{
			PosX: mx,
			PosY: my,
			Left: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		},
		Dims: dims,
		Tick: frame,
	}
}
