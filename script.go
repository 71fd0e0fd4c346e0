package strobe

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action  string       `json:"action"`
	Rect    *Rect        `json:"rect,omitempty"`
	Seconds float64      `json:"seconds,omitempty"`
	Frames  int          `json:"frames,omitempty"`
	Config  ConfigValues `json:"config,omitempty"`
	Label   string       `json:"label,omitempty"`
}

// script is the top-level JSON structure of a script.
type script struct {
	FrameTime float64      `json:"frameTime,omitempty"`
	Steps     []scriptStep `json:"steps"`
}

var scriptActions = []string{"source", "dest", "activate", "deactivate", "cancel", "config", "advance", "wait", "screenshot"}

// ScriptRunner replays a sequence of controller inputs, one step per frame,
// for automated checks of transitions. Attach it with Stage.SetUpdateFunc or
// call Step from a custom loop.
//
// Actions:
//
//	{"action": "source", "rect": {"X":0,"Y":0,"Width":100,"Height":100}}
//	{"action": "dest", "rect": {...}}      // omit rect to clear the anchor
//	{"action": "activate"} / {"action": "deactivate"} / {"action": "cancel"}
//	{"action": "config", "config": {"steps": 3}}
//	{"action": "advance", "seconds": 0.5}  // move the stage clock directly
//	{"action": "wait", "frames": 10}       // let frames pass
//	{"action": "screenshot", "label": "mid-run"}
type ScriptRunner struct {
	steps     []scriptStep
	frameTime float64
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a runner ready to drive a
// controller.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !validAction(st.Action) {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q%s", i, st.Action, suggest(st.Action, scriptActions))
		}
		if st.Action == "config" {
			if _, err := ConfigFromValues(st.Config); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
		}
	}
	ft := s.FrameTime
	if ft <= 0 {
		ft = 1.0 / 60
	}
	return &ScriptRunner{steps: s.Steps, frameTime: ft}, nil
}

func validAction(a string) bool {
	for _, v := range scriptActions {
		if v == a {
			return true
		}
	}
	return false
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// FrameTime returns the seconds one frame represents.
func (r *ScriptRunner) FrameTime() float64 {
	return r.frameTime
}

// Step executes the next action, or counts down a wait. Call once per frame.
func (r *ScriptRunner) Step(stage *Stage, c *Controller) {
	if r.done {
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
	case "source":
		if st.Rect == nil {
			c.SetSource(nil)
		} else {
			c.SetSource(&RectAnchor{Rect: *st.Rect})
		}
	case "dest":
		if st.Rect == nil {
			c.SetDestination(nil)
		} else {
			c.SetDestination(&RectAnchor{Rect: *st.Rect})
		}
	case "activate":
		c.SetActive(true)
	case "deactivate":
		c.SetActive(false)
	case "cancel":
		c.Cancel()
	case "config":
		// Validated by LoadScript.
		cfg, _ := ConfigFromValues(st.Config)
		c.SetConfig(cfg)
	case "advance":
		stage.Timeline().Advance(st.Seconds)
	case "screenshot":
		stage.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// Play runs the whole script, advancing the stage by one frame time after
// every step.
func (r *ScriptRunner) Play(stage *Stage, c *Controller) error {
	for !r.done {
		r.Step(stage, c)
		if err := stage.Advance(r.frameTime); err != nil {
			return err
		}
	}
	return nil
}
