// internal/event/types.go
package event

import "go-bean-farm/internal/types"

const (
	EnemySpawned    EventType = "EnemySpawned"    // Птица появилась
	EnemyRemoved    EventType = "EnemyRemoved"    // Птица убрана из мира
	CropDestroyed   EventType = "CropDestroyed"   // Голубь съел капусту
	ResourcesStolen EventType = "ResourcesStolen" // Сорока или орёл унесли ресурсы
	DefenderPlaced  EventType = "DefenderPlaced"  // Улей или пугало куплены
	GuardDispatched EventType = "GuardDispatched"
)

// EnemyInfo is the payload of EnemySpawned and EnemyRemoved.
type EnemyInfo struct {
	ID   types.EntityID
	Kind string
	X, Y int
}

// Theft is the payload of ResourcesStolen. Amounts are what was actually taken.
type Theft struct {
	Kind  string
	Coins int
	Food  int
}

// CropInfo is the payload of CropDestroyed.
type CropInfo struct {
	X, Y int
}

// DefenderInfo is the payload of DefenderPlaced and GuardDispatched.
type DefenderInfo struct {
	Kind   string
	X, Y   int
	Target types.EntityID
}
