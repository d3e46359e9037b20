package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bean-farm/internal/component"
	"go-bean-farm/internal/defs"
	"go-bean-farm/internal/engine"
	"go-bean-farm/internal/event"
	"go-bean-farm/internal/inventory"
	"go-bean-farm/internal/npc"
	"go-bean-farm/internal/world"
)

var smallDims = engine.Dimensions{TileCount: 5, WindowSize: 160}

const smallMap = `ggddg
ggddg
ggggg
wwggg
ggggg
`

func smallDetails(pigeonEvery int) *defs.Details {
	return &defs.Details{
		Player:   defs.PlayerDetails{X: 64, Y: 0, Coins: 10, Food: 10},
		Cabbages: []defs.CabbageDetails{{X: 96, Y: 32}, {X: 0, Y: 0}},
		Magpies:  []defs.SpawnerDetails{{X: 0, Y: 150, Duration: 10000}},
		Eagles:   []defs.SpawnerDetails{{X: 150, Y: 0, Duration: 10000}},
		Pigeons:  []defs.SpawnerDetails{{X: 96, Y: 100, Duration: pigeonEvery}},
	}
}

func newSmallGame(t *testing.T, pigeonEvery int) *Game {
	t.Helper()
	tiles, err := world.FromString(smallDims, smallMap)
	require.NoError(t, err)
	g, err := NewGame(Options{Dims: smallDims, Details: smallDetails(pigeonEvery), Tiles: tiles, Seed: 1})
	require.NoError(t, err)
	return g
}

func keys(k ...rune) *engine.Snapshot {
	return &engine.Snapshot{KeyState: engine.NewKeySet(k...), Dims: smallDims}
}

func TestNewGame_FromDetails(t *testing.T) {
	g := newSmallGame(t, 10000)

	assert.Equal(t, 1, g.Crops(), "cabbage on grass is skipped")
	assert.Equal(t, 64, g.Player.X())
	assert.Equal(t, 10, g.Inventory.Coins())
	assert.Equal(t, inventory.Hoe, g.Inventory.Item(1))

	spawners := g.Enemies.Spawners()
	require.Len(t, spawners, 5)
	assert.IsType(t, &npc.MagpieSpawner{}, spawners[0])
	assert.IsType(t, &npc.EagleSpawner{}, spawners[1])
	assert.IsType(t, &npc.PigeonSpawner{}, spawners[2])
	assert.IsType(t, &npc.BeeHiveSpawner{}, spawners[3], "default hive spawner")
	assert.IsType(t, &npc.ScarecrowSpawner{}, spawners[4], "default scarecrow spawner")
}

func TestNewGame_Defaults(t *testing.T) {
	g, err := NewGame(Options{Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 25, g.Dims.TileCount)
	assert.Len(t, g.World.AllTiles(), 625)
	assert.Equal(t, 400, g.Player.X())
	assert.Len(t, g.Enemies.Spawners(), 5)
	assert.LessOrEqual(t, g.Crops(), 3)
}

func TestNewGame_EmptyMap(t *testing.T) {
	_, err := NewGame(Options{Tiles: []*world.Tile{}})
	assert.Error(t, err)
}

func TestGame_NewEnemiesMoveNextFrame(t *testing.T) {
	g := newSmallGame(t, 1)

	g.Tick(keys())
	require.Equal(t, 1, g.Enemies.Len())
	pigeon := g.Enemies.All()[0]
	assert.Equal(t, 96, pigeon.X())
	assert.Equal(t, 100, pigeon.Y())

	g.Tick(keys())
	assert.Equal(t, 96, pigeon.X())
	assert.Equal(t, 96, pigeon.Y())
	assert.Equal(t, 2, g.Enemies.Len())
	assert.Equal(t, 2, g.Frame())
}

func TestGame_PlaceHiveWithKey(t *testing.T) {
	g := newSmallGame(t, 10000)

	g.Tick(keys('h'))

	require.Equal(t, 1, g.Npcs.Len())
	assert.IsType(t, &npc.BeeHive{}, g.Npcs.All()[0])
	assert.Equal(t, 7, g.Inventory.Food())
	assert.Equal(t, 7, g.Inventory.Coins())
	assert.Equal(t, 1, g.Stats.Count(event.DefenderPlaced))
}

func TestGame_RenderOrder(t *testing.T) {
	g := newSmallGame(t, 1)
	g.Tick(keys('c'))

	r := g.Render()
	require.Len(t, r, 25+1+1+1+1)
	assert.Equal(t, component.SpriteGrass, r[0].Sprite())
	assert.Equal(t, component.SpriteCabbageSeed, r[25].Sprite())
	assert.Equal(t, component.SpriteScarecrow, r[26].Sprite())
	assert.Equal(t, component.SpritePigeonDown, r[27].Sprite())
	assert.Same(t, g.Player, r[28])
}

type countingOverlay struct {
	ticks int
	seen  *npc.GameState
}

func (o *countingOverlay) Tick(_ engine.State, game *npc.GameState) {
	o.ticks++
	o.seen = game
}

func TestGame_TicksOverlays(t *testing.T) {
	g := newSmallGame(t, 10000)
	o := &countingOverlay{}
	g.AddOverlay(o)

	g.Tick(keys())
	g.Tick(keys())
	assert.Equal(t, 2, o.ticks)
	require.NotNil(t, o.seen)
	assert.Same(t, g.Inventory, o.seen.Inventory)
}

func TestRun_PigeonsEatTheCrop(t *testing.T) {
	g := newSmallGame(t, 1)
	s := g.Run(40)

	assert.Equal(t, 40, s.Frames)
	assert.Equal(t, 0, s.Crops)
	assert.Equal(t, 1, s.CropsEaten)
	assert.Positive(t, s.Spawned)
	assert.Contains(t, s.String(), "frames=40")
}

func TestRun_IsDeterministicForASeed(t *testing.T) {
	a, err := NewGame(Options{Seed: 9})
	require.NoError(t, err)
	b, err := NewGame(Options{Seed: 9})
	require.NoError(t, err)

	assert.Equal(t, a.Run(600), b.Run(600))
}

func TestLoadDetails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "farm.details")
	content := ":chickenFarmer:\nx:10 y:20 coins:5 food:6\nend;\n:cabbages:\nend;\n" +
		":magpieSpawner:\nend;\n:eagleSpawner:\nend;\n:pigeonSpawner:\nx:1 y:2 duration:3\nend;\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	d, err := LoadDetails(path)
	require.NoError(t, err)
	assert.Equal(t, defs.PlayerDetails{X: 10, Y: 20, Coins: 5, Food: 6}, d.Player)
	assert.Len(t, d.Pigeons, 1)

	_, err = LoadDetails(filepath.Join(dir, "farm.txt"))
	assert.ErrorIs(t, err, defs.ErrBadExtension)

	broken := filepath.Join(dir, "broken.details")
	require.NoError(t, os.WriteFile(broken, []byte(":cabbages:\nend;\n"), 0o644))
	_, err = LoadDetails(broken)
	assert.ErrorIs(t, err, defs.ErrSectionNotFound)
}

func TestLoadMap(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.map")
	require.NoError(t, os.WriteFile(good, []byte(smallMap), 0o644))
	tiles, err := LoadMap(good, smallDims)
	require.NoError(t, err)
	assert.Len(t, tiles, 25)

	bad := filepath.Join(dir, "bad.map")
	require.NoError(t, os.WriteFile(bad, []byte("gg\n"), 0o644))
	_, err = LoadMap(bad, smallDims)
	var loadErr *world.LoadError
	assert.ErrorAs(t, err, &loadErr)

	_, err = LoadMap(filepath.Join(dir, "missing.map"), smallDims)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStatsListener(t *testing.T) {
	d := event.NewDispatcher()
	l := NewStatsListener(d)

	d.Dispatch(event.Event{Type: event.ResourcesStolen, Data: event.Theft{Kind: "magpie", Coins: 1}})
	d.Dispatch(event.Event{Type: event.ResourcesStolen, Data: event.Theft{Kind: "eagle", Food: 3}})
	d.Dispatch(event.Event{Type: event.CropDestroyed, Data: event.CropInfo{X: 1, Y: 2}})

	assert.Equal(t, 2, l.Count(event.ResourcesStolen))
	coins, food := l.Stolen()
	assert.Equal(t, 1, coins)
	assert.Equal(t, 3, food)
	assert.Equal(t, map[event.EventType]int{event.ResourcesStolen: 2, event.CropDestroyed: 1}, l.Counts())
}
