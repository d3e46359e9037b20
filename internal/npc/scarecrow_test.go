package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-bean-farm/internal/component"
)

func TestScarecrow_ScaresNearbyMagpies(t *testing.T) {
	game := newGame()
	near := game.Enemies.MkMagpie(component.At(200, 100), game.Player)
	edge := game.Enemies.MkMagpie(component.At(100+ScareDistance, 100), game.Player)
	eagle := game.Enemies.MkEagle(component.At(110, 100), game.Player)
	crow := NewScarecrow(100, 100)
	game.Npcs.AddNpc(crow)

	game.Npcs.Interact(frame(nil), game)

	assert.True(t, near.IsRetreating())
	assert.False(t, edge.IsRetreating())
	assert.False(t, eagle.IsRetreating())
	assert.Equal(t, 0.0, crow.Speed())
	assert.Equal(t, component.SpriteScarecrow, crow.Sprite())
}
