package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesOnlySubscribedType(t *testing.T) {
	d := NewDispatcher()
	lost := &recorder{}
	over := &recorder{}
	d.Subscribe(LifeLost, lost)
	d.Subscribe(GameOver, over)

	d.Dispatch(Event{Type: LifeLost, Data: LifeLostData{PlayerID: 1, LivesLeft: 2}})

	assert.Len(t, lost.got, 1)
	assert.Empty(t, over.got)
	assert.Equal(t, LifeLostData{PlayerID: 1, LivesLeft: 2}, lost.got[0].Data)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	b := &recorder{}
	d.SubscribeAll(a, LifeLost, PlayerRevived)
	d.Subscribe(LifeLost, b)

	d.Unsubscribe(LifeLost, a)
	d.Dispatch(Event{Type: LifeLost})
	d.Dispatch(Event{Type: PlayerRevived})

	assert.Len(t, a.got, 1, "a still listens to PlayerRevived")
	assert.Equal(t, PlayerRevived, a.got[0].Type)
	assert.Len(t, b.got, 1)

	// отписка незарегистрированного слушателя ничего не ломает
	d.Unsubscribe(GameOver, a)
	d.Unsubscribe(LifeLost, a)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(PointsScored, ListenerFunc(func(e Event) { calls++ }))

	d.Dispatch(Event{Type: PointsScored})
	d.Dispatch(Event{Type: PointsScored})

	assert.Equal(t, 2, calls)
}
