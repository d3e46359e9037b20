// internal/engine/state.go
package engine

import "unicode"

//go:generate mockgen -destination=mock/mock_keys.go -package=enginemock go-bean-farm/internal/engine Keys

// Keys reports which keys are held down this frame.
type Keys interface {
	IsDown(key rune) bool
}

// Mouse reports the cursor position and the left button.
type Mouse interface {
	X() int
	Y() int
	IsDown() bool
}

// Dimensions describes a square tile grid: TileCount tiles per side drawn in WindowSize pixels.
type Dimensions struct {
	TileCount  int
	WindowSize int
}

// TileSize is the side of one grid cell in pixels. It is also the proximity threshold used by
// the bird and bee AI.
func (d Dimensions) TileSize() int {
	if d.TileCount <= 0 {
		return d.WindowSize
	}
	return d.WindowSize / d.TileCount
}

// State is the per-frame view of the host engine handed to every Tick and Interact.
type State interface {
	Keys() Keys
	Mouse() Mouse
	Dimensions() Dimensions
	Frame() int
}

// KeySet is a Keys backed by a set of lower-case runes.
type KeySet map[rune]bool

func NewKeySet(keys ...rune) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[unicode.ToLower(k)] = true
	}
	return ks
}

func (ks KeySet) IsDown(key rune) bool {
	return ks[unicode.ToLower(key)]
}

// MouseState is a plain Mouse value.
type MouseState struct {
	PosX, PosY int
	Left       bool
}

func (m MouseState) X() int       { return m.PosX }
func (m MouseState) Y() int       { return m.PosY }
func (m MouseState) IsDown() bool { return m.Left }

// Snapshot is an immutable State captured once per frame.
type Snapshot struct {
	KeyState   Keys
	MouseState MouseState
	Dims       Dimensions
	Tick       int
}

var _ State = (*Snapshot)(nil)

func (s *Snapshot) Keys() Keys {
	if s.KeyState == nil {
		return KeySet{}
	}
	return s.KeyState
}

func (s *Snapshot) Mouse() Mouse { return s.MouseState }

func (s *Snapshot) Dimensions() Dimensions { return s.Dims }

func (s *Snapshot) Frame() int { return s.Tick }
