// internal/defs/birds.go
package defs

// Идентификаторы подвижных юнитов из BirdLibrary
const (
	Magpie   = "magpie"
	Eagle    = "eagle"
	Pigeon   = "pigeon"
	GuardBee = "guard_bee"
)

// BirdDefinition holds the static tunables for one kind of flying unit.
type BirdDefinition struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Speed    float64 `json:"speed"`
	Lifespan int     `json:"lifespan"` // в тиках, 0 — без срока жизни
	Theft    int     `json:"theft"`    // сколько ресурса уносит за один налёт
}

// BirdLibrary is keyed by ID and always holds every built-in kind.
var BirdLibrary = DefaultBirds()

// DefaultBirds returns a fresh copy of the built-in definitions.
func DefaultBirds() map[string]BirdDefinition {
	return map[string]BirdDefinition{
		Magpie:   {ID: Magpie, Name: "Magpie", Speed: 1, Lifespan: 0, Theft: 1},
		Eagle:    {ID: Eagle, Name: "Eagle", Speed: 2, Lifespan: 5000, Theft: 3},
		Pigeon:   {ID: Pigeon, Name: "Pigeon", Speed: 4, Lifespan: 3000},
		GuardBee: {ID: GuardBee, Name: "Guard Bee", Speed: 3, Lifespan: 300},
	}
}

// Bird looks up a definition, falling back to the built-in one for unknown overrides.
func Bird(id string) BirdDefinition {
	if def, ok := BirdLibrary[id]; ok {
		return def
	}
	return DefaultBirds()[id]
}
