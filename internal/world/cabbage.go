// internal/world/cabbage.go
package world

import (
	"go-bean-farm/internal/component"
	"go-bean-farm/internal/config"
	"go-bean-farm/internal/entity"
	"go-bean-farm/internal/timing"
)

// Cabbage — урожай, растёт по стадиям на вспаханной земле
type Cabbage struct {
	entity.Base
	stage  int
	growth *timing.FixedTimer
}

func NewCabbage(x, y int) *Cabbage {
	c := &Cabbage{
		Base:   entity.NewBase(x, y),
		growth: timing.NewFixedTimer(config.CabbageGrowth),
	}
	c.SetSprite(component.SpriteCabbageSeed)
	return c
}

func (c *Cabbage) Stage() int { return c.stage }

func (c *Cabbage) IsGrown() bool { return c.stage >= config.CabbageStages-1 }

// Tick advances growth by one tick.
func (c *Cabbage) Tick() {
	if c.IsGrown() {
		return
	}
	c.growth.Tick()
	if !c.growth.IsFinished() {
		return
	}
	c.stage++
	c.growth.Reset()
	if c.IsGrown() {
		c.SetSprite(component.SpriteCabbageGrown)
	} else {
		c.SetSprite(component.SpriteCabbageSmall)
	}
}
