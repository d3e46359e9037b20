// internal/world/world.go
package world

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/engine"
)

// World stores the tile grid in scan order (row by row, left to right as built).
// Selection results always follow that order, which makes tie-breaking deterministic.
type World struct {
	tiles []*Tile
}

func New(tiles []*Tile) *World {
	w := &World{tiles: make([]*Tile, 0, len(tiles))}
	for _, t := range tiles {
		w.Place(t)
	}
	return w
}

// Place appends a tile. Nil tiles are ignored.
func (w *World) Place(tile *Tile) {
	if tile == nil {
		return
	}
	w.tiles = append(w.tiles, tile)
}

func (w *World) AllTiles() []*Tile {
	out := make([]*Tile, len(w.tiles))
	copy(out, w.tiles)
	return out
}

// TileSelector returns every tile matching pred, in scan order.
func (w *World) TileSelector(pred func(*Tile) bool) []*Tile {
	var out []*Tile
	for _, t := range w.tiles {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// TilesAtPosition returns the tiles whose cell contains the pixel (x, y).
func (w *World) TilesAtPosition(x, y int, dims engine.Dimensions) []*Tile {
	size := dims.TileSize()
	return w.TileSelector(func(t *Tile) bool {
		return x >= t.X() && x < t.X()+size && y >= t.Y() && y < t.Y()+size
	})
}

// Tick grows crops and evicts stacked entities flagged for removal.
func (w *World) Tick(engine.State) {
	for _, t := range w.tiles {
		t.tick()
	}
}

// Render lists all tiles first and then everything stacked on them.
func (w *World) Render() []component.Renderable {
	out := make([]component.Renderable, 0, len(w.tiles))
	for _, t := range w.tiles {
		out = append(out, t)
	}
	for _, t := range w.tiles {
		for _, e := range t.stacked {
			out = append(out, e)
		}
	}
	return out
}
