package strobe

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Stage is the shared rendering surface. It owns a node tree with two fixed
// layers, Content for the host application's own pictures and Overlay for
// transient movers, plus the Timeline that drives every run on it.
type Stage struct {
	root    *Node
	content *Node
	overlay *Node

	timeline *Timeline

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color
	// ScreenshotDir is the directory Screenshot writes PNG files to.
	ScreenshotDir string

	screenshots []string

	updateFunc func() error
	debug      bool
	drawn      int
}

// NewStage creates a stage with empty content and overlay layers and a
// fresh timeline.
func NewStage() *Stage {
	root := NewLayer("root")
	content := NewLayer("content")
	overlay := NewLayer("overlay")
	overlay.ZIndex = 1
	root.AddChild(content)
	root.AddChild(overlay)
	return &Stage{
		root:          root,
		content:       content,
		overlay:       overlay,
		timeline:      NewTimeline(),
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node { return s.root }

// Content returns the layer for host pictures such as thumbnails and panels.
func (s *Stage) Content() *Node { return s.content }

// Overlay returns the layer movers are attached to. It always draws above
// Content.
func (s *Stage) Overlay() *Node { return s.overlay }

// Timeline returns the scheduler advanced by Update.
func (s *Stage) Timeline() *Timeline { return s.timeline }

// SetUpdateFunc sets a callback run at the start of every Update, before the
// timeline advances.
func (s *Stage) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the stage by one game tick.
func (s *Stage) Update() error {
	return s.Advance(1.0 / float64(ebiten.TPS()))
}

// Advance runs the update callback and moves the timeline forward by dt
// seconds.
func (s *Stage) Advance(dt float64) error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.timeline.Advance(dt)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	return nil
}

// Draw renders the node tree onto screen.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.drawn = 0
	s.drawTree(screen, s.root, identityTransform, 1.0, false)
	if s.debug {
		s.debugFrame(time.Since(t0))
	}
	s.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode. When enabled, run lifecycle
// events and per-frame draw stats are logged to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Stage debug flag so that code
// without a Stage pointer can check it cheaply.
var globalDebug bool
