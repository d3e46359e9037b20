// internal/npc/beehive.go
package npc

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/timing"
	"go-bean-farm/pkg/utils"
)

const (
	HiveTimer         = 240 // тиков перезарядки после вылета пчелы
	DetectionDistance = 350
)

// BeeHive launches a GuardBee at the first enemy within DetectionDistance, then reloads.
type BeeHive struct {
	Npc
	loaded   bool
	cooldown *timing.FixedTimer
}

func NewBeeHive(x, y int) *BeeHive {
	h := &BeeHive{
		Npc:      NewNpc(x, y),
		loaded:   true,
		cooldown: timing.NewFixedTimer(HiveTimer),
	}
	h.speed = 0
	h.SetSprite(component.SpriteBeeHive)
	return h
}

func (h *BeeHive) IsLoaded() bool { return h.loaded }

func (h *BeeHive) Cooldown() timing.TickTimer { return h.cooldown }

// CheckAndSpawnBee returns a new bee aimed at the first enemy in range, or nil.
// Enemies are considered in list order; flagged ones are skipped.
func (h *BeeHive) CheckAndSpawnBee(enemies []Enemy) *GuardBee {
	if !h.loaded {
		return nil
	}
	for _, e := range enemies {
		if e.IsMarkedForRemoval() {
			continue
		}
		if utils.Distance(h.X(), h.Y(), e.X(), e.Y()) >= DetectionDistance {
			continue
		}
		h.loaded = false
		h.cooldown.Reset()
		h.SetSprite(component.SpriteBeeHiveEmpty)
		return NewGuardBee(h.X(), h.Y(), h, e.ID())
	}
	return nil
}

func (h *BeeHive) Interact(_ engine.State, game *GameState) {
	if game != nil && game.Enemies != nil && game.Npcs != nil {
		if bee := h.CheckAndSpawnBee(game.Enemies.All()); bee != nil {
			game.Npcs.AddNpc(bee)
			game.dispatch(event.GuardDispatched, event.DefenderInfo{Kind: defs.GuardBee, X: h.X(), Y: h.Y(), Target: bee.Target()})
		}
	}

	h.cooldown.Tick()
	if h.cooldown.IsFinished() {
		h.loaded = true
		h.cooldown.Reset()
		h.SetSprite(component.SpriteBeeHive)
	}
}
