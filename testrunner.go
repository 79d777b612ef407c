package nothofagus

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Test script actions.
const (
	stepPress      = "press"
	stepRelease    = "release"
	stepTap        = "tap"
	stepWait       = "wait"
	stepScreenshot = "screenshot"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`

	key Key
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected key triggers and screenshots across frames
// for automated visual testing. Attach to a Canvas via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script such as
//
//	{"steps": [
//	  {"action": "press", "key": "Right"},
//	  {"action": "wait", "frames": 10},
//	  {"action": "release", "key": "Right"},
//	  {"action": "screenshot", "label": "moved"}
//	]}
//
// Every invalid step is reported in the returned error.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	var errs error
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case stepPress, stepRelease, stepTap:
			k, err := ParseKey(st.Key)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("step %d: %w", i, err))
				continue
			}
			st.key = k
		case stepWait:
			if st.Frames < 0 {
				errs = multierr.Append(errs, fmt.Errorf("step %d: negative frame count %d", i, st.Frames))
			}
		case stepScreenshot:
		default:
			errs = multierr.Append(errs, fmt.Errorf("step %d: unknown action %q", i, st.Action))
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("parse test script: %w", errs)
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the canvas. The runner steps once
// per frame before inputs are processed.
func (c *Canvas) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(c *Canvas) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case stepScreenshot:
		c.Screenshot(st.Label)
	case stepPress:
		c.InjectPress(st.key)
	case stepRelease:
		c.InjectRelease(st.key)
	case stepTap:
		c.InjectTap(st.key)
	case stepWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
