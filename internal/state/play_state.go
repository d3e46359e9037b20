// internal/state/play_state.go
package state

import (
	"go-bean-farm/internal/app"
	"go-bean-farm/internal/assets"
	"go-bean-farm/internal/config"
	"go-bean-farm/internal/system"
	"go-bean-farm/internal/ui"
	"go-bean-farm/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// drawable overlays are ticked by the game and drawn here on top of the world.
type drawable interface {
	app.Overlay
	Draw(screen *ebiten.Image)
}

// PlayState runs one simulation tick per ebiten update and draws the farm.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *system.RenderSystem
	overlays []drawable
}

var _ State = (*PlayState)(nil)

func NewPlayState(sm *StateMachine, game *app.Game) *PlayState {
	palette := render.Palette{
		Grass:     config.GrassColor,
		Dirt:      config.DirtColor,
		Tilled:    config.TilledColor,
		Water:     config.WaterColor,
		Cabbage:   config.CabbageColor,
		Player:    config.PlayerColor,
		Magpie:    config.MagpieColor,
		Eagle:     config.EagleColor,
		Pigeon:    config.PigeonColor,
		Hive:      config.HiveColor,
		Bee:       config.BeeColor,
		Scarecrow: config.ScarecrowColor,
	}
	ps := &PlayState{
		sm:       sm,
		game:     game,
		renderer: system.NewRenderSystem(assets.NewGallery(game.Dims.TileSize(), palette)),
		overlays: []drawable{
			ui.NewResourceOverlay(4, 4),
			ui.NewInventoryOverlay(),
			ui.NewStatsOverlay(game.Stats),
		},
	}
	for _, o := range ps.overlays {
		game.AddOverlay(o)
	}
	return ps
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	s.game.Tick(Capture(s.game.Dims, s.game.Frame()))
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.Draw(screen, s.game.Render())
	for _, o := range s.overlays {
		o.Draw(screen)
	}
}

func (s *PlayState) Exit() {}
