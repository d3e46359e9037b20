// internal/app/stats.go
package app

import (
	"log"

	"go-bean-farm/internal/event"
)

// AllEvents lists every gameplay event the stats listener follows.
var AllEvents = []event.EventType{
	event.EnemySpawned,
	event.EnemyRemoved,
	event.CropDestroyed,
	event.ResourcesStolen,
	event.DefenderPlaced,
	event.GuardDispatched,
}

// StatsListener counts gameplay events and logs the ones a player would notice.
type StatsListener struct {
	counts map[event.EventType]int
	stolen event.Theft
}

func NewStatsListener(dispatcher *event.Dispatcher) *StatsListener {
	l := &StatsListener{counts: make(map[event.EventType]int)}
	for _, t := range AllEvents {
		dispatcher.Subscribe(t, l)
	}
	return l
}

// OnEvent реализует интерфейс event.Listener.
func (l *StatsListener) OnEvent(e event.Event) {
	l.counts[e.Type]++
	switch data := e.Data.(type) {
	case event.CropInfo:
		log.Printf("Cabbage at (%d, %d) was eaten", data.X, data.Y)
	case event.Theft:
		l.stolen.Coins += data.Coins
		l.stolen.Food += data.Food
		if data.Coins > 0 || data.Food > 0 {
			log.Printf("A %s stole %d coins and %d food", data.Kind, data.Coins, data.Food)
		}
	case event.DefenderInfo:
		if e.Type == event.DefenderPlaced {
			log.Printf("Placed %s at (%d, %d)", data.Kind, data.X, data.Y)
		}
	}
}

func (l *StatsListener) Count(t event.EventType) int { return l.counts[t] }

// Stolen returns the running total of resources taken by birds.
func (l *StatsListener) Stolen() (coins, food int) { return l.stolen.Coins, l.stolen.Food }

// Counts returns a copy of all counters.
func (l *StatsListener) Counts() map[event.EventType]int {
	out := make(map[event.EventType]int, len(l.counts))
	for k, v := range l.counts {
		out[k] = v
	}
	return out
}
