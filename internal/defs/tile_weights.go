// internal/defs/tile_weights.go
package defs

// TileWeight — одна запись таблицы генерации карты.
// Tile — символ тайла из формата карты, Weight — относительный шанс.
type TileWeight struct {
	Tile   rune `json:"tile"`
	Weight int  `json:"weight"`
}

// GeneratedTiles is the table used when no map file is supplied.
var GeneratedTiles = []TileWeight{
	{Tile: 'g', Weight: 70},
	{Tile: 'd', Weight: 25},
	{Tile: 'w', Weight: 5},
}
