// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 800
	TileCount    = 25 // тайлов на сторону карты
	MaxDeltaTime = 0.06
	TicksPerSec  = 60

	InventorySize = 5

	// Стартовые ресурсы, если в .details нет фермера
	DefaultStartX     = 400
	DefaultStartY     = 400
	DefaultStartCoins = 10
	DefaultStartFood  = 10

	PlayerSpeed = 3

	CabbageCost   = 2
	CabbageYield  = 3
	CabbageGrowth = 600 // тиков на стадию роста
	CabbageStages = 3
	StartingCrops = 3 // капуста на случайной карте без .details

	HiveFoodCost      = 3
	HiveCoinCost      = 3
	ScarecrowCoinCost = 2

	// Длительности таймеров спавнеров по умолчанию
	MagpieSpawnInterval    = 360
	EagleSpawnInterval     = 1000
	PigeonSpawnInterval    = 100
	HiveSpawnerCooldown    = 300
	ScarecrowSpawnCooldown = 300

	// Точки сбора голубей, пока нет капусты
	PigeonStagingSplitX = 400
	PigeonStagingWestX  = 450
	PigeonStagingWestY  = 900
	PigeonStagingEastX  = 850
	PigeonStagingEastY  = 850

	OverlayPadding = 8
	SlotSize       = 40
)

// Клавиши управления
const (
	KeyHive      = 'h'
	KeyScarecrow = 'c'
	KeyPlant     = 'p'
	KeyHarvest   = 'r'
	KeyUp        = 'w'
	KeyDown      = 's'
	KeyLeft      = 'a'
	KeyRight     = 'd'
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GrassColor      = color.RGBA{86, 150, 70, 255}
	DirtColor       = color.RGBA{120, 85, 55, 255}
	TilledColor     = color.RGBA{90, 60, 35, 255}
	WaterColor      = color.RGBA{60, 110, 190, 255}
	CabbageColor    = color.RGBA{150, 220, 120, 255}
	PlayerColor     = color.RGBA{245, 245, 235, 255}
	MagpieColor     = color.RGBA{30, 30, 40, 255}
	EagleColor      = color.RGBA{140, 90, 40, 255}
	PigeonColor     = color.RGBA{150, 150, 170, 255}
	HiveColor       = color.RGBA{230, 180, 40, 255}
	BeeColor        = color.RGBA{250, 220, 0, 255}
	ScarecrowColor  = color.RGBA{200, 160, 100, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PanelColor      = color.RGBA{20, 20, 30, 200}
	SelectedColor   = color.RGBA{255, 215, 0, 255}
	SlotColor       = color.RGBA{70, 100, 120, 220}
	PauseShade      = color.RGBA{0, 0, 0, 128}
)
