// internal/ui/stats_overlay.go
package ui

import (
	"fmt"

	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/npc"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Counter is anything that counts events by type.
type Counter interface {
	Count(t event.EventType) int
}

// StatsOverlay shows live birds and event totals in the top-right corner.
type StatsOverlay struct {
	face    font.Face
	counter Counter
	lines   []string
}

func NewStatsOverlay(counter Counter) *StatsOverlay {
	return &StatsOverlay{face: DefaultFace, counter: counter}
}

func (o *StatsOverlay) Tick(state engine.State, game *npc.GameState) {
	o.lines = o.lines[:0]
	if game != nil && game.Enemies != nil {
		kinds := game.Enemies.CountByKind()
		o.lines = append(o.lines, fmt.Sprintf("Birds: %d/%d/%d", kinds["magpie"], kinds["eagle"], kinds["pigeon"]))
	}
	if game != nil && game.Npcs != nil {
		o.lines = append(o.lines, fmt.Sprintf("Defenders: %d", game.Npcs.Len()))
	}
	if o.counter != nil {
		o.lines = append(o.lines,
			fmt.Sprintf("Eaten: %d", o.counter.Count(event.CropDestroyed)),
			fmt.Sprintf("Raids: %d", o.counter.Count(event.ResourcesStolen)),
			fmt.Sprintf("Stings: %d", o.counter.Count(event.GuardDispatched)),
		)
	}
	o.lines = append(o.lines, fmt.Sprintf("Tick: %d", state.Frame()))
}

func (o *StatsOverlay) Draw(screen *ebiten.Image) {
	if len(o.lines) == 0 {
		return
	}
	x := float32(screen.Bounds().Dx()) - 150
	drawPanel(screen, o.face, x, 4, o.lines)
}
