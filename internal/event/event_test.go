package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(CropDestroyed, a)
	d.Subscribe(CropDestroyed, b)
	d.Subscribe(EnemySpawned, b)

	d.Dispatch(Event{Type: CropDestroyed, Data: CropInfo{X: 1, Y: 2}})
	d.Dispatch(Event{Type: DefenderPlaced})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	assert.Equal(t, CropInfo{X: 1, Y: 2}, a.got[0].Data)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	d.Subscribe(EnemyRemoved, a)
	d.Unsubscribe(EnemyRemoved, a)
	d.Unsubscribe(EnemySpawned, a)

	d.Dispatch(Event{Type: EnemyRemoved})
	assert.Empty(t, a.got)
}

func TestDispatcher_NilAndFuncListener(t *testing.T) {
	var nilDispatcher *Dispatcher
	assert.NotPanics(t, func() { nilDispatcher.Dispatch(Event{Type: EnemySpawned}) })

	d := NewDispatcher()
	count := 0
	d.Subscribe(GuardDispatched, ListenerFunc(func(Event) { count++ }))
	d.Dispatch(Event{Type: GuardDispatched})
	d.Dispatch(Event{Type: GuardDispatched})
	assert.Equal(t, 2, count)
}
