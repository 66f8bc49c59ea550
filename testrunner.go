package circlecrop

import (
	"encoding/json"
	"fmt"

	"github.com/tanema/gween/ease"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	DX      float64 `json:"dx,omitempty"`
	DY      float64 `json:"dy,omitempty"`
	Factor  float64 `json:"factor,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	From    float64 `json:"from,omitempty"`
	To      float64 `json:"to,omitempty"`
	Notches float64 `json:"notches,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"pan": true, "scale": true, "drag": true, "pinch": true,
	"tap": true, "wheel": true, "reset": true, "wait": true, "export": true,
}

// TestRunner sequences gestures, injected input and exports across frames
// for automated testing. Attach to a Cropper via SetTestRunner.
//
// Actions:
//   - pan {dx, dy} and scale {factor, x, y} send gesture events directly
//   - drag {fromX, fromY, toX, toY, frames} injects a mouse drag
//   - pinch {x, y, from, to, frames} injects a two-finger pinch
//   - tap {x, y} injects a tap; wheel {x, y, notches} a wheel scroll
//   - reset animates back to minimum scale; wait {frames} idles
//   - export {label} queues an export of the crop
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready to
// be attached to a Cropper via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method is called from Update
// before input processing each frame.
func (c *Cropper) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(c *Cropper) {
	if r.done {
		return
	}
	// Wait for pending injections and animations to drain before advancing.
	if len(c.injectQueue) > 0 || c.zoom != nil {
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
	case "pan":
		c.OnPanGesture(st.DX, st.DY)
	case "scale":
		c.OnScaleGesture(st.Factor, st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		c.InjectPinch(st.X, st.Y, st.From, st.To, st.Frames)
	case "tap":
		c.InjectTap(st.X, st.Y)
	case "wheel":
		c.InjectWheel(st.X, st.Y, st.Notches)
	case "reset":
		c.ResetZoom(c.opts.ResetDuration, ease.OutQuad)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "export":
		c.Export(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 && c.zoom == nil {
		r.done = true
	}
}
