// internal/npc/spawner_defender.go
package npc

import (
	"go-bean-farm/internal/config"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/event"
)

// Названия защитников в событиях DefenderPlaced
const (
	DefenderHive      = "beehive"
	DefenderScarecrow = "scarecrow"
)

// BeeHiveSpawner places a hive at the player's feet when the hive key is held and the
// player can pay for it. The timer is kept for bookkeeping only; there is no debounce.
type BeeHiveSpawner struct {
	spawnPoint
}

func NewBeeHiveSpawner(x, y, duration int) *BeeHiveSpawner {
	return &BeeHiveSpawner{spawnPoint: newSpawnPoint(x, y, duration)}
}

func (s *BeeHiveSpawner) Tick(state engine.State, game *GameState) {
	s.timer.Tick()
	inv := game.Inventory
	if inv == nil || game.Player == nil {
		return
	}
	if inv.Food() < config.HiveFoodCost || inv.Coins() < config.HiveCoinCost {
		return
	}
	if !state.Keys().IsDown(config.KeyHive) {
		return
	}
	inv.AddFood(-config.HiveFoodCost)
	inv.AddCoins(-config.HiveCoinCost)
	hive := NewBeeHive(game.Player.X(), game.Player.Y())
	game.Npcs.AddNpc(hive)
	game.dispatch(event.DefenderPlaced, event.DefenderInfo{Kind: DefenderHive, X: hive.X(), Y: hive.Y()})
}

// ScarecrowSpawner places a scarecrow at the player's feet for coins, same rules as BeeHiveSpawner.
type ScarecrowSpawner struct {
	spawnPoint
}

func NewScarecrowSpawner(x, y, duration int) *ScarecrowSpawner {
	return &ScarecrowSpawner{spawnPoint: newSpawnPoint(x, y, duration)}
}

func (s *ScarecrowSpawner) Tick(state engine.State, game *GameState) {
	s.timer.Tick()
	inv := game.Inventory
	if inv == nil || game.Player == nil {
		return
	}
	if inv.Coins() < config.ScarecrowCoinCost || !state.Keys().IsDown(config.KeyScarecrow) {
		return
	}
	inv.AddCoins(-config.ScarecrowCoinCost)
	crow := NewScarecrow(game.Player.X(), game.Player.Y())
	game.Npcs.AddNpc(crow)
	game.dispatch(event.DefenderPlaced, event.DefenderInfo{Kind: DefenderScarecrow, X: crow.X(), Y: crow.Y()})
}

// FromDetails builds every spawner listed in a details file, in file order:
// magpies, eagles, pigeons, hives, scarecrows.
func FromDetails(d *defs.Details) []Spawner {
	var out []Spawner
	for _, s := range d.Magpies {
		out = append(out, NewMagpieSpawner(s.X, s.Y, s.Duration))
	}
	for _, s := range d.Eagles {
		out = append(out, NewEagleSpawner(s.X, s.Y, s.Duration))
	}
	for _, s := range d.Pigeons {
		out = append(out, NewPigeonSpawner(s.X, s.Y, s.Duration))
	}
	for _, s := range d.Hives {
		out = append(out, NewBeeHiveSpawner(s.X, s.Y, s.Duration))
	}
	for _, s := range d.Scarecrows {
		out = append(out, NewScarecrowSpawner(s.X, s.Y, s.Duration))
	}
	return out
}
