// internal/state/menu_state.go
package state

import (
	"go-bean-farm/internal/app"
	"go-bean-farm/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"BEAN FARM",
	"",
	"WASD   move",
	"P      plant a cabbage (2 coins)",
	"R      harvest a grown cabbage",
	"H      build a bee hive (3 food, 3 coins)",
	"C      build a scarecrow (2 coins)",
	"1-5    select a slot",
	"Esc    pause",
	"",
	"Press Space to start",
}

// MenuState — стартовый экран с подсказкой по клавишам
type MenuState struct {
	sm   *StateMachine
	game *app.Game
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewPlayState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	for i, line := range helpLines {
		text.Draw(screen, line, basicfont.Face7x13, 200, 250+i*20, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
