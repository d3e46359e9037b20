// internal/npc/spawner_pigeon.go
package npc

import (
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/world"
)

// PigeonSpawner sends a pigeon at the crop closest to the spawner.
// A finished timer with no crops in the world is simply wasted.
type PigeonSpawner struct {
	spawnPoint
}

func NewPigeonSpawner(x, y, duration int) *PigeonSpawner {
	return &PigeonSpawner{spawnPoint: newSpawnPoint(x, y, duration)}
}

func (s *PigeonSpawner) Tick(_ engine.State, game *GameState) {
	s.timer.Tick()
	if game.World == nil {
		return
	}
	crops := game.World.TileSelector(world.HasCrop)
	if len(crops) == 0 {
		return
	}
	target := nearestTile(crops, s)
	if s.timer.IsFinished() {
		game.Enemies.MkPigeon(s.pos, target)
	}
}
