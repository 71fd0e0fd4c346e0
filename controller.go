package strobe

import "github.com/hajimehoshi/ebiten/v2"

// Anchor supplies a rectangle on the stage, resolved at the moment a run
// starts. ok is false when the anchor currently has no geometry. Anchors are
// compared with == to detect changes, so use pointer types.
type Anchor interface {
	Bounds() (r Rect, ok bool)
}

// Source is an Anchor whose image the movers copy.
type Source interface {
	Anchor
	Image() *ebiten.Image
}

// ControllerState is the trigger controller's position.
type ControllerState uint8

const (
	ControllerIdle    ControllerState = iota // no run alive
	ControllerRunning                        // one run alive
)

func (s ControllerState) String() string {
	if s == ControllerRunning {
		return "running"
	}
	return "idle"
}

// Controller starts and tears down runs in response to an activation flag and
// to changes of its source and destination anchors. At most one run is alive
// at a time: every restart cancels the previous run, and its movers are gone,
// before the new path is built.
//
// Controller is not safe for concurrent use.
type Controller struct {
	sched Scheduler
	layer *Node

	active bool
	source Source
	dest   Anchor

	cfg    Config
	rng    Rand
	events EventSink

	run        *Run
	onComplete func()
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithConfig sets the initial configuration.
func WithConfig(cfg Config) ControllerOption {
	return func(c *Controller) { c.cfg = cfg }
}

// WithRand injects the random source for wobble and rotation.
func WithRand(r Rand) ControllerOption {
	return func(c *Controller) { c.rng = r }
}

// WithEvents sets the sink that receives run lifecycle events.
func WithEvents(sink EventSink) ControllerOption {
	return func(c *Controller) { c.events = sink }
}

// WithScheduler overrides the stage timeline as the scheduler for runs.
func WithScheduler(s Scheduler) ControllerOption {
	return func(c *Controller) { c.sched = s }
}

// NewController creates an idle controller that places movers on the stage's
// overlay layer and drives them with the stage timeline.
func NewController(stage *Stage, opts ...ControllerOption) *Controller {
	c := &Controller{
		sched: stage.Timeline(),
		layer: stage.Overlay(),
		cfg:   DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports whether a run is alive.
func (c *Controller) State() ControllerState {
	if c.run != nil && !c.run.Done() {
		return ControllerRunning
	}
	return ControllerIdle
}

// Run returns the current run, or nil. The run may already be completed.
func (c *Controller) Run() *Run {
	return c.run
}

// Config returns the configuration the next run will use.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration for later runs. A run in flight keeps
// the snapshot it started with.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
}

// OnComplete sets the callback invoked when a run finishes without being
// cancelled.
func (c *Controller) OnComplete(fn func()) {
	c.onComplete = fn
}

// Active returns the activation flag.
func (c *Controller) Active() bool {
	return c.active
}

// SetActive sets the activation flag. Turning it on starts a run when both
// anchors resolve; turning it off cancels any run. Setting the current value
// again does nothing.
func (c *Controller) SetActive(active bool) {
	if c.active == active {
		return
	}
	c.active = active
	c.sync()
}

// SetSource replaces the source anchor. While active, this restarts the run
// from the new source.
func (c *Controller) SetSource(src Source) {
	if c.source == src {
		return
	}
	c.source = src
	c.sync()
}

// SetDestination replaces the destination anchor. While active, this
// restarts the run toward the new destination.
func (c *Controller) SetDestination(dst Anchor) {
	if c.dest == dst {
		return
	}
	c.dest = dst
	c.sync()
}

// Cancel tears down the current run, if any, without changing the
// activation flag.
func (c *Controller) Cancel() {
	if c.run != nil {
		c.run.Cancel()
		c.run = nil
	}
}

// Restart cancels the current run and, when active, starts a new one with
// freshly captured geometry.
func (c *Controller) Restart() {
	c.sync()
}

// sync is the single serialization point: cancel whatever is alive, then
// start again if the inputs allow it.
func (c *Controller) sync() {
	c.Cancel()
	if !c.active || c.source == nil || c.dest == nil {
		return
	}
	src, ok := c.source.Bounds()
	if !ok {
		debugf("activation ignored: source has no geometry")
		return
	}
	dst, ok := c.dest.Bounds()
	if !ok {
		debugf("activation ignored: destination has no geometry")
		return
	}

	var run *Run
	run = StartRun(c.sched, c.layer, RunSpec{
		Source: src,
		Dest:   dst,
		Image:  c.source.Image(),
		Config: c.cfg,
		Rand:   c.rng,
		Events: c.events,
		OnComplete: func() {
			if c.run != run {
				return
			}
			if fn := c.onComplete; fn != nil {
				fn()
			}
		},
	})
	c.run = run
}
