// internal/app/setup.go
package app

import (
	"fmt"
	"log"
	"os"

	"go-bean-farm/internal/config"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/world"
	"go-bean-farm/pkg/utils"
)

// DefaultDetails is used when no .details file is given: the farmer in the middle,
// magpies and eagles from the top corners, pigeons from the bottom edge.
func DefaultDetails() *defs.Details {
	return &defs.Details{
		Player: defs.PlayerDetails{
			X:     config.DefaultStartX,
			Y:     config.DefaultStartY,
			Coins: config.DefaultStartCoins,
			Food:  config.DefaultStartFood,
		},
		Magpies: []defs.SpawnerDetails{{X: 0, Y: 0, Duration: config.MagpieSpawnInterval}},
		Eagles:  []defs.SpawnerDetails{{X: config.ScreenWidth, Y: 0, Duration: config.EagleSpawnInterval}},
		Pigeons: []defs.SpawnerDetails{{X: config.ScreenWidth / 2, Y: config.ScreenHeight, Duration: config.PigeonSpawnInterval}},
	}
}

// LoadDetails reads and parses a .details file.
func LoadDetails(path string) (*defs.Details, error) {
	contents, err := defs.ReadDetailsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load details: %w", err)
	}
	details, err := defs.ParseDetails(contents)
	if err != nil {
		return nil, fmt.Errorf("failed to parse details %s: %w", path, err)
	}
	log.Printf("Loaded details: %s, %d cabbages, %d magpie, %d eagle, %d pigeon spawners",
		details.Player, len(details.Cabbages), len(details.Magpies), len(details.Eagles), len(details.Pigeons))
	return details, nil
}

// LoadMap reads a map file and builds its tiles.
func LoadMap(path string, dims engine.Dimensions) ([]*world.Tile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	tiles, err := world.FromString(dims, string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build map %s: %w", path, err)
	}
	log.Printf("Loaded map %s: %d tiles", path, len(tiles))
	return tiles, nil
}

// plantCabbages puts the starting crops on the dirt tiles under the given points.
func (g *Game) plantCabbages(cabbages []defs.CabbageDetails) int {
	planted := 0
	for _, c := range cabbages {
		ok := false
		for _, tile := range g.World.TilesAtPosition(c.X, c.Y, g.Dims) {
			if _, ok = tile.Plant(); ok {
				break
			}
		}
		if ok {
			planted++
		} else {
			log.Printf("Cabbage at (%d, %d) is not on free dirt, skipped", c.X, c.Y)
		}
	}
	return planted
}

// scatterCrops plants up to count cabbages on random dirt, each as far as possible
// from the ones already placed.
func (g *Game) scatterCrops(count int) int {
	dirt := g.World.TileSelector(func(t *world.Tile) bool { return t.Kind() == world.Dirt })
	var placed []*world.Tile
	for len(placed) < count && len(dirt) > 0 {
		var pick *world.Tile
		if len(placed) == 0 {
			pick = dirt[g.Rng.Intn(len(dirt))]
		} else {
			pick = findFarthestTile(dirt, placed)
		}
		if _, ok := pick.Plant(); !ok {
			break
		}
		placed = append(placed, pick)
		dirt = removeTile(dirt, pick)
	}
	return len(placed)
}

func findFarthestTile(candidates, existing []*world.Tile) *world.Tile {
	var best *world.Tile
	maxTotal := -1
	for _, c := range candidates {
		total := 0
		for _, e := range existing {
			total += utils.Distance(c.X(), c.Y(), e.X(), e.Y())
		}
		if total > maxTotal {
			maxTotal = total
			best = c
		}
	}
	return best
}

func removeTile(tiles []*world.Tile, t *world.Tile) []*world.Tile {
	for i, x := range tiles {
		if x == t {
			return append(tiles[:i], tiles[i+1:]...)
		}
	}
	return tiles
}
