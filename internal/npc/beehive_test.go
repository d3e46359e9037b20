package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bean-farm/internal/component"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/types"
)

func TestBeeHive_Defaults(t *testing.T) {
	h := NewBeeHive(100, 200)
	assert.Equal(t, 0.0, h.Speed())
	assert.True(t, h.IsLoaded())
	assert.Equal(t, HiveTimer, h.Cooldown().Duration())
	assert.Equal(t, component.SpriteBeeHive, h.Sprite())

	h.Tick(frame(nil), newGame())
	assert.Equal(t, 100, h.X())
	assert.Equal(t, 200, h.Y())
}

func TestBeeHive_DetectionIsStrict(t *testing.T) {
	game := newGame()
	h := NewBeeHive(0, 0)

	game.Enemies.MkPigeon(component.At(DetectionDistance, 0), nil)
	assert.Nil(t, h.CheckAndSpawnBee(game.Enemies.All()))
	assert.True(t, h.IsLoaded())

	inRange := game.Enemies.MkPigeon(component.At(DetectionDistance-1, 0), nil)
	bee := h.CheckAndSpawnBee(game.Enemies.All())
	require.NotNil(t, bee)
	assert.Equal(t, inRange.ID(), bee.Target())
	assert.Equal(t, 0, bee.X())
	assert.False(t, h.IsLoaded())
	assert.Equal(t, component.SpriteBeeHiveEmpty, h.Sprite())

	assert.Nil(t, h.CheckAndSpawnBee(game.Enemies.All()), "unloaded")
}

func TestBeeHive_PicksFirstLiveEnemyInListOrder(t *testing.T) {
	game := newGame()
	h := NewBeeHive(0, 0)
	flagged := game.Enemies.MkPigeon(component.At(10, 0), nil)
	flagged.MarkForRemoval()
	second := game.Enemies.MkPigeon(component.At(300, 0), nil)
	game.Enemies.MkPigeon(component.At(5, 0), nil)

	bee := h.CheckAndSpawnBee(game.Enemies.All())
	require.NotNil(t, bee)
	assert.Equal(t, second.ID(), bee.Target())
}

func TestBeeHive_CooldownGatesSecondBee(t *testing.T) {
	game := newGame()
	rec := listen(game, event.GuardDispatched)
	game.Enemies.MkEagle(component.At(150, 150), game.Player)
	h := NewBeeHive(100, 100)

	h.Interact(frame(nil), game)
	assert.Equal(t, 1, game.Npcs.Len())
	assert.False(t, h.IsLoaded())

	for i := 0; i < HiveTimer-1; i++ {
		h.Interact(frame(nil), game)
	}
	assert.Equal(t, 1, game.Npcs.Len())
	assert.True(t, h.IsLoaded())

	h.Interact(frame(nil), game)
	assert.Equal(t, 2, game.Npcs.Len())
	assert.Equal(t, 2, rec.count(event.GuardDispatched))
}

func TestBeeHive_IdleWithoutEnemies(t *testing.T) {
	game := newGame()
	h := NewBeeHive(100, 100)
	for i := 0; i < HiveTimer*2; i++ {
		h.Interact(frame(nil), game)
	}
	assert.Zero(t, game.Npcs.Len())
	assert.True(t, h.IsLoaded())
}

func TestGuardBee_KillsTargetOnContact(t *testing.T) {
	game := newGame()
	enemy := game.Enemies.MkMagpie(component.At(200, 100), game.Player)
	bee := NewGuardBee(190, 100, NewBeeHive(0, 0), enemy.ID())

	bee.Tick(frame(nil), game)
	assert.Equal(t, 193, bee.X())
	assert.Equal(t, component.SpriteBeeRight, bee.Sprite())
	assert.True(t, enemy.IsMarkedForRemoval())
	assert.True(t, bee.IsMarkedForRemoval())
}

func TestGuardBee_Retargets(t *testing.T) {
	game := newGame()
	gone := game.Enemies.MkPigeon(component.At(100, 100), nil)
	gone.MarkForRemoval()
	other := game.Enemies.MkPigeon(component.At(100, 300), nil)
	bee := NewGuardBee(100, 200, NewBeeHive(500, 500), gone.ID())

	bee.Tick(frame(nil), game)
	assert.Equal(t, other.ID(), bee.Target())
	assert.Equal(t, 203, bee.Y())
	assert.Equal(t, component.SpriteBeeDown, bee.Sprite())
	assert.False(t, bee.IsMarkedForRemoval())
}

func TestGuardBee_ReturnsHome(t *testing.T) {
	game := newGame()
	game.Enemies.MkPigeon(component.At(700, 700), nil)
	bee := NewGuardBee(120, 100, NewBeeHive(100, 100), types.NoEntity)

	bee.Tick(frame(nil), game)
	assert.Equal(t, types.NoEntity, bee.Target(), "enemy out of range")
	assert.Equal(t, 117, bee.X())
	assert.Equal(t, component.SpriteBeeLeft, bee.Sprite())
	assert.True(t, bee.IsMarkedForRemoval())
}

func TestGuardBee_Expires(t *testing.T) {
	game := newGame()
	bee := NewGuardBee(750, 750, NewBeeHive(0, 0), types.NoEntity)
	require.Equal(t, 300, bee.Lifespan().Duration())

	for i := 0; i < 299; i++ {
		bee.Tick(frame(nil), game)
	}
	assert.False(t, bee.IsMarkedForRemoval())
	bee.Tick(frame(nil), game)
	assert.True(t, bee.IsMarkedForRemoval())
}
