package nothofagus

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "press", "key": "Right"},
			{"action": "wait", "frames": 3},
			{"action": "release", "key": "Right"},
			{"action": "tap", "key": "Space"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].key != KeyRight {
		t.Errorf("step 1 key = %v, want Right", runner.steps[1].key)
	}
	if runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[4].key != KeySpace {
		t.Errorf("step 4 key = %v, want Space", runner.steps[4].key)
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	if _, err := LoadTestScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	if _, err := LoadTestScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_ReportsEveryBadStep(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "press", "key": "F13"},
		{"action": "fly"},
		{"action": "wait", "frames": -2}
	]}`)
	_, err := LoadTestScript(data)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"step 0", "step 1", "step 2"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestRunnerDrivesController(t *testing.T) {
	c, _ := newTestCanvas(t)
	ctrl := NewController()
	c.SetController(ctrl)

	var got []KeyboardTrigger
	sink := &recordingSink{}
	ctrl.SetTriggerSink(sink)

	data := []byte(`{"steps": [
		{"action": "press", "key": "W"},
		{"action": "wait", "frames": 2},
		{"action": "release", "key": "W"}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	c.SetTestRunner(runner)

	for i := 0; i < 10 && !runner.Done(); i++ {
		c.Update(16)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	// Drain the last injected trigger.
	c.Update(16)
	got = sink.got
	if len(got) != 2 || got[0] != (KeyboardTrigger{KeyW, Press}) || got[1] != (KeyboardTrigger{KeyW, Release}) {
		t.Errorf("triggers = %v", got)
	}
}

func TestRunnerScreenshotQueues(t *testing.T) {
	c, _ := newTestCanvas(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(c)
	if len(c.screenshotQueue) != 1 || c.screenshotQueue[0] != "x" {
		t.Errorf("queue = %v", c.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}
