package strobe

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s := NewStage()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		parent := NewLayer("many_children")
		s.Root().AddChild(parent)
		for i := 0; i < debugMaxChildCount+1; i++ {
			parent.AddChild(NewLayer(fmt.Sprintf("c_%d", i)))
		}
	})

	if !strings.Contains(output, "warning: node") || !strings.Contains(output, "children") {
		t.Errorf("expected child count warning in stderr, got: %q", output)
	}
}

func TestDebugMode_RunLifecycleLogged(t *testing.T) {
	s := NewStage()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		c := NewController(s)
		c.SetSource(&RectAnchor{Rect: Rect{Width: 10, Height: 10}})
		c.SetDestination(&RectAnchor{Rect: Rect{X: 100, Width: 10, Height: 10}})
		c.SetActive(true)
		advanceFor(s.Timeline(), 0.2)
		c.SetActive(false)
	})

	for _, want := range []string{"[strobe] run ", "started: 6 movers", "cancelled after"} {
		if !strings.Contains(output, want) {
			t.Errorf("stderr missing %q, got: %q", want, output)
		}
	}
}

func TestDebugMode_MissingGeometryLogged(t *testing.T) {
	s := NewStage()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		c := NewController(s)
		c.SetSource(AnchorFor(NewLayer("detached")))
		c.SetDestination(&RectAnchor{})
		c.SetActive(true)
	})

	if !strings.Contains(output, "source has no geometry") {
		t.Errorf("expected missing geometry note, got: %q", output)
	}
}

func TestReleaseMode_Silent(t *testing.T) {
	s := NewStage()
	s.SetDebugMode(false)

	output := captureStderr(t, func() {
		c := NewController(s)
		c.SetSource(&RectAnchor{Rect: Rect{Width: 10, Height: 10}})
		c.SetDestination(&RectAnchor{Rect: Rect{X: 100, Width: 10, Height: 10}})
		c.SetActive(true)
		advanceFor(s.Timeline(), 2)
	})

	if output != "" {
		t.Errorf("release mode wrote to stderr: %q", output)
	}
}
