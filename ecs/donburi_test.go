package ecs

import (
	"testing"

	"github.com/phanxgames/nothofagus"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// nopDevice satisfies nothofagus.Device without touching a GPU.
type nopDevice struct{ next uint64 }

func (d *nopDevice) UploadTexture(nothofagus.TextureData) nothofagus.TextureHandle {
	d.next++
	return nothofagus.TextureHandle(d.next)
}
func (d *nopDevice) ReleaseTexture(nothofagus.TextureHandle) {}
func (d *nopDevice) CreateMesh(nothofagus.Mesh) nothofagus.MeshHandle {
	d.next++
	return nothofagus.MeshHandle(d.next)
}
func (d *nopDevice) DestroyMesh(nothofagus.MeshHandle) {}
func (d *nopDevice) Draw(nothofagus.DrawCall) {}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitTrigger(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []nothofagus.KeyboardTrigger
	TriggerEventType.Subscribe(world, func(w donburi.World, e nothofagus.KeyboardTrigger) {
		received = append(received, e)
	})

	sink.EmitTrigger(nothofagus.KeyboardTrigger{Key: nothofagus.KeyW, Trigger: nothofagus.Press})
	sink.EmitTrigger(nothofagus.KeyboardTrigger{Key: nothofagus.KeyW, Trigger: nothofagus.Release})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	TriggerEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Trigger != nothofagus.Press || received[1].Trigger != nothofagus.Release {
		t.Errorf("events out of order: %+v", received)
	}
}

func TestDonburiSink_FromController(t *testing.T) {
	world := donburi.NewWorld()
	ctrl := nothofagus.NewController()
	ctrl.SetTriggerSink(NewDonburiSink(world))

	var actions, got int
	ctrl.MustRegisterAction(nothofagus.KeyboardTrigger{Key: nothofagus.KeySpace, Trigger: nothofagus.Press}, func() { actions++ })
	TriggerEventType.Subscribe(world, func(w donburi.World, e nothofagus.KeyboardTrigger) { got++ })

	// Bound and unbound triggers both reach the sink.
	ctrl.Activate(nothofagus.KeyboardTrigger{Key: nothofagus.KeySpace, Trigger: nothofagus.Press})
	ctrl.Activate(nothofagus.KeyboardTrigger{Key: nothofagus.KeyQ, Trigger: nothofagus.Press})
	ctrl.ProcessInputs()
	events.ProcessAllEvents(world)

	if actions != 1 {
		t.Errorf("actions = %d, want 1", actions)
	}
	if got != 2 {
		t.Errorf("events = %d, want 2", got)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	TriggerEventType.Subscribe(world, func(w donburi.World, e nothofagus.KeyboardTrigger) {
		count1++
	})
	TriggerEventType.Subscribe(world, func(w donburi.World, e nothofagus.KeyboardTrigger) {
		count2++
	})

	sink.EmitTrigger(nothofagus.KeyboardTrigger{Key: nothofagus.KeyEnter})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestSyncTransforms(t *testing.T) {
	world := donburi.NewWorld()
	cfg := nothofagus.DefaultConfig()
	cfg.Device = &nopDevice{}
	canvas := nothofagus.NewCanvas(cfg)

	tex := canvas.AddTexture(nothofagus.NewTexture(2, 2, nothofagus.ColorWhite))
	kept := canvas.AddBellota(nothofagus.NewBellota(nothofagus.NewTransform(nothofagus.Vec2{}), tex))
	gone := canvas.AddBellota(nothofagus.NewBellota(nothofagus.NewTransform(nothofagus.Vec2{}), tex))

	for _, id := range []nothofagus.BellotaID{kept, gone} {
		entry := world.Entry(world.Create(BellotaComponent, TransformComponent))
		BellotaComponent.SetValue(entry, id)
		TransformComponent.SetValue(entry, nothofagus.NewTransform(nothofagus.Vec2{X: 10, Y: 20}))
	}
	canvas.RemoveBellota(gone)

	if n := SyncTransforms(world, canvas); n != 1 {
		t.Fatalf("SyncTransforms = %d, want 1", n)
	}
	if loc := canvas.Bellota(kept).Transform.Location; loc != (nothofagus.Vec2{X: 10, Y: 20}) {
		t.Errorf("location = %+v, want (10, 20)", loc)
	}
}
