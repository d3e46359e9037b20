package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bean-farm/internal/component"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/player"
	"go-bean-farm/internal/timing"
)

func TestMagpie_StealsCoinThenGoesHome(t *testing.T) {
	game := newGame()
	rec := listen(game, event.ResourcesStolen)
	game.Player = player.New(100, 100)

	m := game.Enemies.MkMagpie(component.At(100, 120), game.Player)
	assert.Nil(t, m.Lifespan())

	m.Tick(frame(nil), game)
	assert.Equal(t, component.SpriteMagpieUp, m.Sprite())
	assert.Equal(t, 119, m.Y())
	assert.Equal(t, 9, game.Inventory.Coins())
	assert.True(t, m.IsRetreating())
	require.Len(t, rec.events, 1)
	assert.Equal(t, event.Theft{Kind: "magpie", Coins: 1}, rec.events[0].Data)

	m.Tick(frame(nil), game)
	assert.True(t, m.IsMarkedForRemoval())
	assert.Equal(t, 9, game.Inventory.Coins(), "steals only once")
}

func TestMagpie_ChasesPlayer(t *testing.T) {
	game := newGame()
	game.Player = player.New(500, 100)
	m := game.Enemies.MkMagpie(component.At(100, 100), game.Player)

	m.Tick(frame(nil), game)
	assert.Equal(t, 101, m.X())
	assert.Equal(t, 0, m.Direction())
	assert.False(t, m.IsRetreating())
	assert.Equal(t, component.SpriteMagpieDown, m.Sprite())
}

func TestMagpie_Scare(t *testing.T) {
	game := newGame()
	m := game.Enemies.MkMagpie(component.At(100, 100), game.Player)
	m.SetX(300)
	m.Scare()

	m.Tick(frame(nil), game)
	assert.Equal(t, 299, m.X())
	assert.Equal(t, 10, game.Inventory.Coins())
}

func TestEagle_StealsWhatIsLeft(t *testing.T) {
	game := newGame()
	rec := listen(game, event.ResourcesStolen)
	game.Player = player.New(100, 100)
	game.Inventory.AddFood(-8)

	e := game.Enemies.MkEagle(component.At(110, 100), game.Player)
	assert.Equal(t, 2.0, e.Speed())
	e.Tick(frame(nil), game)

	assert.Zero(t, game.Inventory.Food())
	assert.True(t, e.IsRetreating())
	require.Len(t, rec.events, 1)
	assert.Equal(t, event.Theft{Kind: "eagle", Food: 2}, rec.events[0].Data)
}

func TestEagle_Expires(t *testing.T) {
	game := newGame()
	e := game.Enemies.MkEagle(component.At(0, 0), game.Player)
	require.Equal(t, 5000, e.Lifespan().Duration())

	e.SetLifespan(timing.NewFixedTimer(2))
	e.Tick(frame(nil), game)
	assert.False(t, e.IsMarkedForRemoval())
	e.Tick(frame(nil), game)
	assert.True(t, e.IsMarkedForRemoval())
}

func TestRaider_WithoutTargetGoesHome(t *testing.T) {
	game := newGame()
	e := game.Enemies.MkEagle(component.At(100, 100), nil)
	e.Tick(frame(nil), game)
	assert.True(t, e.IsRetreating())
	assert.True(t, e.IsMarkedForRemoval(), "already at its spawn point")
}
