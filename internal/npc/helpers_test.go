package npc

import (
	"go-bean-farm/internal/config"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/inventory"
	"go-bean-farm/internal/player"
	"go-bean-farm/internal/world"
)

var dims = engine.Dimensions{TileCount: config.TileCount, WindowSize: config.ScreenWidth}

func frame(keys engine.Keys) *engine.Snapshot {
	return &engine.Snapshot{KeyState: keys, Dims: dims}
}

func newGame(tiles ...*world.Tile) *GameState {
	events := event.NewDispatcher()
	return &GameState{
		World:     world.New(tiles),
		Player:    player.New(400, 400),
		Inventory: inventory.New(config.InventorySize, 10, 10),
		Npcs:      NewNpcManager(),
		Enemies:   NewEnemyManager(events),
		Events:    events,
	}
}

// cropAt returns a dirt tile at (x, y) with a fresh cabbage on it.
func cropAt(x, y int) *world.Tile {
	t := world.NewTile(world.Dirt, x, y)
	t.Plant()
	return t
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(game *GameState, types ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range types {
		game.Events.Subscribe(t, r)
	}
	return r
}
