package nothofagus

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedCanvas(t *testing.T) (*Canvas, *fakeDevice, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	dev := newFakeDevice()
	cfg := DefaultConfig()
	cfg.Device = dev
	cfg.Logger = zap.New(core)
	return NewCanvas(cfg), dev, logs
}

func TestDebugModeFrameStats(t *testing.T) {
	c, _, logs := newObservedCanvas(t)
	addSprite(c, 2, 2)

	c.Render()
	if n := logs.FilterMessage("frame").Len(); n != 0 {
		t.Fatalf("frame stats logged with debug off: %d", n)
	}

	c.SetDebugMode(true)
	c.Render()
	frames := logs.FilterMessage("frame").All()
	if len(frames) != 1 {
		t.Fatalf("frame records = %d, want 1", len(frames))
	}
	fields := frames[0].ContextMap()
	if fields["drawCalls"] != int64(1) {
		t.Errorf("drawCalls = %v, want 1", fields["drawCalls"])
	}
	// Everything was materialized on the first frame.
	if fields["uploads"] != int64(0) {
		t.Errorf("uploads = %v, want 0", fields["uploads"])
	}
}

func TestDebugLogsResourceLifecycle(t *testing.T) {
	c, _, logs := newObservedCanvas(t)
	tex := c.AddTexture(NewTexture(1, 1, ColorWhite))
	c.RemoveTexture(tex)
	c.Close()

	for _, msg := range []string{"texture added", "texture removed", "canvas closed"} {
		if logs.FilterMessage(msg).Len() != 1 {
			t.Errorf("missing %q record", msg)
		}
	}
}

func TestDebugOrphanedTexturesReported(t *testing.T) {
	c, _, logs := newObservedCanvas(t)
	tex, b := addSprite(c, 2, 2)
	c.Render()
	c.RemoveTexture(tex)
	c.Bellota(b).Visible = false
	c.SetDebugMode(true)
	c.Render()
	if logs.FilterMessage("removed textures still referenced").Len() != 1 {
		t.Error("orphan count not logged")
	}
}
