// internal/npc/spawner.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/timing"
)

// Spawner is a fixed point in the world that creates entities on its own timer.
// Spawners are ticked by EnemyManager before the enemies.
type Spawner interface {
	X() int
	Y() int
	SetX(x int)
	SetY(y int)
	Timer() timing.TickTimer
	Tick(state engine.State, game *GameState)
}

// spawnPoint — общая часть спавнеров: позиция и собственный таймер
type spawnPoint struct {
	pos   component.Position
	timer timing.TickTimer
}

func newSpawnPoint(x, y, duration int) spawnPoint {
	return spawnPoint{pos: component.At(x, y), timer: timing.NewRepeatingTimer(duration)}
}

func (s *spawnPoint) X() int { return s.pos.X }

func (s *spawnPoint) Y() int { return s.pos.Y }

func (s *spawnPoint) SetX(x int) { s.pos.X = x }

func (s *spawnPoint) SetY(y int) { s.pos.Y = y }

func (s *spawnPoint) Timer() timing.TickTimer { return s.timer }

// MagpieSpawner sends a magpie after the player every time its timer finishes.
type MagpieSpawner struct {
	spawnPoint
}

func NewMagpieSpawner(x, y, duration int) *MagpieSpawner {
	return &MagpieSpawner{spawnPoint: newSpawnPoint(x, y, duration)}
}

func (s *MagpieSpawner) Tick(_ engine.State, game *GameState) {
	s.timer.Tick()
	if s.timer.IsFinished() {
		game.Enemies.MkMagpie(s.pos, game.playerTarget())
	}
}

// EagleSpawner sends an eagle after the player every time its timer finishes.
type EagleSpawner struct {
	spawnPoint
}

func NewEagleSpawner(x, y, duration int) *EagleSpawner {
	return &EagleSpawner{spawnPoint: newSpawnPoint(x, y, duration)}
}

func (s *EagleSpawner) Tick(_ engine.State, game *GameState) {
	s.timer.Tick()
	if s.timer.IsFinished() {
		game.Enemies.MkEagle(s.pos, game.playerTarget())
	}
}
