package ecs

import (
	"github.com/phanxgames/nothofagus"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TriggerEventType is the Donburi event type for processed keyboard triggers.
var TriggerEventType = events.NewEventType[nothofagus.KeyboardTrigger]()

// BellotaComponent links an entity to a Bellota on a Canvas.
var BellotaComponent = donburi.NewComponentType[nothofagus.BellotaID]()

// TransformComponent holds the transform SyncTransforms writes to the
// linked Bellota.
var TransformComponent = donburi.NewComponentType[nothofagus.Transform]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a TriggerSink backed by a Donburi world. Triggers
// are published to TriggerEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) nothofagus.TriggerSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTrigger(trigger nothofagus.KeyboardTrigger) {
	TriggerEventType.Publish(s.world, trigger)
}

var linkedQuery = donburi.NewQuery(filter.Contains(BellotaComponent, TransformComponent))

// SyncTransforms writes each linked entity's transform to its Bellota.
// Entities whose Bellota was removed from canvas are skipped. It returns the
// number of Bellotas updated.
func SyncTransforms(world donburi.World, canvas *nothofagus.Canvas) int {
	n := 0
	linkedQuery.Each(world, func(e *donburi.Entry) {
		id := *BellotaComponent.Get(e)
		if !canvas.HasBellota(id) {
			return
		}
		canvas.Bellota(id).Transform = *TransformComponent.Get(e)
		n++
	})
	return n
}
