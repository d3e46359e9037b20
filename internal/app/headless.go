// internal/app/headless.go
package app

import (
	"fmt"

	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/event"
)

// Summary describes the state of a game after a headless run.
type Summary struct {
	Frames      int
	Enemies     int
	Npcs        int
	Crops       int
	Coins       int
	Food        int
	Spawned     int
	CropsEaten  int
	StolenCoins int
	StolenFood  int
}

func (s Summary) String() string {
	return fmt.Sprintf("frames=%d enemies=%d npcs=%d crops=%d coins=%d food=%d spawned=%d eaten=%d stolen=%d/%d",
		s.Frames, s.Enemies, s.Npcs, s.Crops, s.Coins, s.Food, s.Spawned, s.CropsEaten, s.StolenCoins, s.StolenFood)
}

// Run advances the game ticks frames with no keys held, as if nobody were playing.
func (g *Game) Run(ticks int) Summary {
	for i := 0; i < ticks; i++ {
		g.Tick(&engine.Snapshot{Dims: g.Dims, Tick: g.frame})
	}
	return g.Summary()
}

func (g *Game) Summary() Summary {
	coins, food := g.Stats.Stolen()
	return Summary{
		Frames:      g.frame,
		Enemies:     g.Enemies.Len(),
		Npcs:        g.Npcs.Len(),
		Crops:       g.Crops(),
		Coins:       g.Inventory.Coins(),
		Food:        g.Inventory.Food(),
		Spawned:     g.Stats.Count(event.EnemySpawned),
		CropsEaten:  g.Stats.Count(event.CropDestroyed),
		StolenCoins: coins,
		StolenFood:  food,
	}
}
