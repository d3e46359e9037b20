// internal/world/builder.go
package world

import (
	"fmt"
	"strings"

	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/utils"
)

// LoadError reports a malformed map.
type LoadError struct {
	Row, Col int
	Reason   string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("map row %d col %d: %s", e.Row, e.Col, e.Reason)
}

func kindOf(ch rune) (Kind, bool) {
	switch ch {
	case 'g', '.':
		return Grass, true
	case 'd':
		return Dirt, true
	case 'w':
		return Water, true
	}
	return 0, false
}

// FromString builds tiles from a map with one character per tile, one line per row.
// The map must be exactly dims.TileCount by dims.TileCount.
func FromString(dims engine.Dimensions, content string) ([]*Tile, error) {
	lines := strings.Split(strings.TrimRight(strings.ReplaceAll(content, "\r\n", "\n"), "\n"), "\n")
	if len(lines) != dims.TileCount {
		return nil, &LoadError{Row: len(lines), Reason: fmt.Sprintf("expected %d rows, got %d", dims.TileCount, len(lines))}
	}

	size := dims.TileSize()
	tiles := make([]*Tile, 0, dims.TileCount*dims.TileCount)
	for row, line := range lines {
		cells := []rune(strings.TrimSpace(line))
		if len(cells) != dims.TileCount {
			return nil, &LoadError{Row: row, Col: len(cells), Reason: fmt.Sprintf("expected %d columns, got %d", dims.TileCount, len(cells))}
		}
		for col, ch := range cells {
			kind, ok := kindOf(ch)
			if !ok {
				return nil, &LoadError{Row: row, Col: col, Reason: fmt.Sprintf("unknown tile %q", ch)}
			}
			tiles = append(tiles, NewTile(kind, col*size, row*size))
		}
	}
	return tiles, nil
}

// Generate builds a random map from the weighted tile table.
func Generate(rng *utils.PRNGService, dims engine.Dimensions) []*Tile {
	size := dims.TileSize()
	tiles := make([]*Tile, 0, dims.TileCount*dims.TileCount)
	for row := 0; row < dims.TileCount; row++ {
		for col := 0; col < dims.TileCount; col++ {
			kind, _ := kindOf(rng.ChooseWeighted(defs.GeneratedTiles))
			tiles = append(tiles, NewTile(kind, col*size, row*size))
		}
	}
	return tiles
}
