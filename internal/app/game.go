// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-bean-farm/internal/component"
	"go-bean-farm/internal/config"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/inventory"
	"go-bean-farm/internal/npc"
	"go-bean-farm/internal/player"
	"go-bean-farm/internal/utils"
	"go-bean-farm/internal/world"
)

// Overlay is a HUD element that follows the game every frame. Drawing happens elsewhere.
type Overlay interface {
	Tick(state engine.State, game *npc.GameState)
}

// Options configures NewGame. Zero values fall back to defaults.
type Options struct {
	Dims    engine.Dimensions
	Details *defs.Details // nil — DefaultDetails()
	Tiles   []*world.Tile // nil — случайная карта
	Seed    int64         // 0 — от текущего времени
}

// Game is the composition root: it owns every collaborator and runs the frame.
type Game struct {
	Dims            engine.Dimensions
	World           *world.World
	Player          *player.Player
	Inventory       *inventory.Inventory
	Npcs            *npc.NpcManager
	Enemies         *npc.EnemyManager
	EventDispatcher *event.Dispatcher
	Stats           *StatsListener
	Rng             *utils.PRNGService

	overlays []Overlay
	frame    int
}

// NewGame builds a game from details data and a tile set.
func NewGame(opts Options) (*Game, error) {
	dims := opts.Dims
	if dims.TileCount == 0 {
		dims = engine.Dimensions{TileCount: config.TileCount, WindowSize: config.ScreenWidth}
	}
	details := opts.Details
	if details == nil {
		details = DefaultDetails()
	}

	rng := utils.NewPRNGService(opts.Seed)
	tiles, generated := opts.Tiles, false
	if tiles == nil {
		tiles, generated = world.Generate(rng, dims), true
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("failed to create game: empty map")
	}

	dispatcher := event.NewDispatcher()
	g := &Game{
		Dims:            dims,
		World:           world.New(tiles),
		Player:          player.New(details.Player.X, details.Player.Y),
		Inventory:       inventory.New(config.InventorySize, details.Player.Coins, details.Player.Food),
		Npcs:            npc.NewNpcManager(),
		Enemies:         npc.NewEnemyManager(dispatcher),
		EventDispatcher: dispatcher,
		Stats:           NewStatsListener(dispatcher),
		Rng:             rng,
	}
	for i, tool := range inventory.DefaultTools {
		g.Inventory.SetItem(i, tool)
	}

	planted := g.plantCabbages(details.Cabbages)
	if generated && len(details.Cabbages) == 0 {
		planted += g.scatterCrops(config.StartingCrops)
	}
	g.addSpawners(details)

	log.Printf("Game ready: %d tiles, %d cabbages, %d spawners", len(tiles), planted, len(g.Enemies.Spawners()))
	return g, nil
}

// addSpawners registers the spawners from details. Hive and scarecrow spawners are always present
// so the player can build defenders on any map.
func (g *Game) addSpawners(details *defs.Details) {
	for _, s := range npc.FromDetails(details) {
		g.Enemies.Add(s)
	}
	if len(details.Hives) == 0 {
		g.Enemies.Add(npc.NewBeeHiveSpawner(details.Player.X, details.Player.Y, config.HiveSpawnerCooldown))
	}
	if len(details.Scarecrows) == 0 {
		g.Enemies.Add(npc.NewScarecrowSpawner(details.Player.X, details.Player.Y, config.ScarecrowSpawnCooldown))
	}
}

// AddOverlay registers a HUD element; overlays tick in registration order.
func (g *Game) AddOverlay(o Overlay) {
	g.overlays = append(g.overlays, o)
}

// State builds the view handed to every Tick and Interact this frame.
func (g *Game) State() *npc.GameState {
	return &npc.GameState{
		World:     g.World,
		Player:    g.Player,
		Inventory: g.Inventory,
		Npcs:      g.Npcs,
		Enemies:   g.Enemies,
		Events:    g.EventDispatcher,
	}
}

// Tick runs one frame: player, npcs, enemies, world, overlays, interactions, cleanup.
func (g *Game) Tick(state engine.State) {
	game := g.State()

	g.Player.Tick(state, g.World, g.Inventory)
	g.Npcs.Tick(state, game)
	g.Enemies.Tick(state, game)
	g.World.Tick(state)
	for _, o := range g.overlays {
		o.Tick(state, game)
	}

	g.Npcs.Interact(state, game)
	g.Enemies.Interact(state, game)

	g.Npcs.Cleanup()
	g.Enemies.Cleanup()
	g.frame++
}

// Render lists everything to draw, back to front: world, npcs, enemies, player.
func (g *Game) Render() []component.Renderable {
	out := g.World.Render()
	out = append(out, g.Npcs.Render()...)
	out = append(out, g.Enemies.Render()...)
	out = append(out, g.Player)
	return out
}

func (g *Game) Frame() int { return g.frame }

// Crops counts the live cabbages in the world.
func (g *Game) Crops() int {
	return len(g.World.TileSelector(world.HasCrop))
}
