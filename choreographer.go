package strobe

import (
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// RunState is the lifecycle position of a Run.
type RunState uint8

const (
	RunActive    RunState = iota // movers are scheduled or animating
	RunCompleted                 // the last mover finished its exit
	RunCancelled                 // torn down before completion
)

func (s RunState) String() string {
	switch s {
	case RunActive:
		return "active"
	case RunCompleted:
		return "completed"
	case RunCancelled:
		return "cancelled"
	}
	return "unknown"
}

// RunSpec describes one transition to start.
type RunSpec struct {
	Source Rect
	Dest   Rect
	Image  *ebiten.Image
	Config Config
	Rand   Rand

	// OnComplete runs once when the run finishes naturally. It never runs
	// for a cancelled run.
	OnComplete func()
	// Events, when set, receives start, completion and cancellation events.
	Events EventSink
}

// Run is one choreographed transition: a set of movers walking through
// Pending -> Entering -> Revealed -> Exiting -> Disposed on a shared
// scheduler. Cancel is authoritative: once called, no callback of the run
// has any further effect. Completion does not cut short the other movers'
// exits; it only reports that the last one has finished.
type Run struct {
	id       string
	cfg      Config
	sched    Scheduler
	set      *MoverSet
	start    float64
	duration float64
	state    RunState

	enterEase ease.TweenFunc
	exitEase  ease.TweenFunc

	tasks  []*Task
	ticker *Task
	sweep  *Task

	// animating holds movers with an active tween, keyed by the time their
	// current phase started.
	animating map[*Mover]float64

	onComplete func()
	events     EventSink
}

// StartRun generates the path for spec, materializes its movers on layer and
// schedules every phase on sched. The returned Run is already active.
func StartRun(sched Scheduler, layer *Node, spec RunSpec) *Run {
	cfg := spec.Config.sanitized()
	rng := orDefault(spec.Rand)

	enter, _ := EaseByName(cfg.MoverEnterEase)
	exit, _ := EaseByName(cfg.MoverExitEase)

	r := &Run{
		id:         uuid.NewString(),
		cfg:        cfg,
		sched:      sched,
		set:        NewMoverSet(layer),
		start:      sched.Now(),
		duration:   cfg.Duration(),
		enterEase:  enter,
		exitEase:   exit,
		animating:  make(map[*Mover]float64),
		onComplete: spec.OnComplete,
		events:     spec.Events,
	}

	frames := GeneratePath(spec.Source, spec.Dest, cfg.Steps, cfg, rng)
	movers := r.set.Materialize(frames, spec.Image, cfg, rng)

	debugf("run %s started: %d movers, duration %.3fs", r.id, len(movers), r.duration)
	r.emit(TransitionStarted)

	if len(movers) == 0 {
		r.tasks = append(r.tasks, sched.After(0, r.complete))
		return r
	}

	for _, m := range movers {
		r.tasks = append(r.tasks, sched.After(float64(m.Index)*cfg.StepInterval, func() { r.enter(m) }))
	}
	r.ticker = sched.Every(r.tick)
	r.sweep = sched.After(r.duration+SafetySweepMargin, r.safetySweep)
	return r
}

// ID returns the run's unique identifier.
func (r *Run) ID() string { return r.id }

// State returns the run's lifecycle state.
func (r *Run) State() RunState { return r.state }

// Config returns the configuration snapshot the run was started with.
func (r *Run) Config() Config { return r.cfg }

// Duration returns the nominal run length in seconds.
func (r *Run) Duration() float64 { return r.duration }

// Movers returns the movers of the run, including disposed ones. The
// returned slice MUST NOT be mutated by the caller.
func (r *Run) Movers() []*Mover { return r.set.Movers() }

// LiveMovers returns how many of the run's movers are still on the stage.
func (r *Run) LiveMovers() int { return r.set.Len() }

// Done reports whether the run has completed or been cancelled.
func (r *Run) Done() bool { return r.state != RunActive }

func (r *Run) elapsed() float64 { return r.sched.Now() - r.start }

// enter starts mover m's entry: its clip jumps to the Hide edge at low
// opacity and tweens to fully revealed.
func (r *Run) enter(m *Mover) {
	if r.state == RunCancelled || m.state != MoverPending {
		return
	}
	m.state = MoverEntering
	m.node.Clip = m.mask.Hide
	m.node.SetAlpha(moverEntryAlpha)
	m.tween = TweenReveal(m.node, m.mask.Reveal, moverFullAlpha, float32(r.cfg.StepDuration), r.enterEase)
	r.animating[m] = r.sched.Now()
	r.tasks = append(r.tasks, r.sched.After(r.cfg.StepDuration, func() { r.revealed(m) }))
}

// revealed snaps m to the Reveal mask and holds it before the exit.
func (r *Run) revealed(m *Mover) {
	if r.state == RunCancelled || m.state != MoverEntering {
		return
	}
	m.state = MoverRevealed
	m.tween = nil
	delete(r.animating, m)
	m.node.Clip = m.mask.Reveal
	m.node.SetAlpha(moverFullAlpha)
	r.tasks = append(r.tasks, r.sched.After(r.cfg.MoverPauseBeforeExit, func() { r.exit(m) }))
}

// exit tweens m back to the From mask.
func (r *Run) exit(m *Mover) {
	if r.state == RunCancelled || m.state != MoverRevealed {
		return
	}
	m.state = MoverExiting
	m.tween = TweenClip(m.node, m.mask.From, float32(r.cfg.StepDuration), r.exitEase)
	r.animating[m] = r.sched.Now()
	r.tasks = append(r.tasks, r.sched.After(r.cfg.StepDuration, func() { r.exited(m) }))
}

// exited disposes m. The last mover's exit completes the run.
func (r *Run) exited(m *Mover) {
	if r.state == RunCancelled || m.state != MoverExiting {
		return
	}
	delete(r.animating, m)
	m.node.Clip = m.mask.From
	m.dispose()
	if m.Index == len(r.set.movers)-1 {
		r.complete()
	}
}

// tick advances the tweens of every animating mover to the current time.
func (r *Run) tick(now float64) {
	for m, started := range r.animating {
		if m.tween == nil || m.state == MoverDisposed {
			delete(r.animating, m)
			continue
		}
		m.tween.Seek(float32(now - started))
	}
}

// complete marks the run finished and notifies the owner exactly once. The
// movers are left to their own exits; the safety sweep removes stragglers.
func (r *Run) complete() {
	if r.state != RunActive {
		return
	}
	r.state = RunCompleted
	debugf("run %s completed after %.3fs", r.id, r.elapsed())
	r.emit(TransitionCompleted)
	if r.set.Len() == 0 {
		r.stopAll()
	}
	if fn := r.onComplete; fn != nil {
		r.onComplete = nil
		fn()
	}
}

// safetySweep disposes whatever is still on the stage once the run should
// long be over, and completes the run if its last exit never reported.
func (r *Run) safetySweep() {
	if r.state == RunCancelled {
		return
	}
	if n := r.set.Len(); n > 0 {
		debugf("run %s safety sweep disposed %d movers", r.id, n)
	}
	r.set.DisposeAll()
	r.complete()
	r.stopAll()
}

// Cancel halts every pending phase, disposes every mover regardless of its
// state and suppresses the completion callback. Cancelling a completed run
// only removes movers still finishing their exits and keeps its state.
func (r *Run) Cancel() {
	switch r.state {
	case RunCancelled:
		return
	case RunCompleted:
		r.stopAll()
		r.set.DisposeAll()
		return
	}
	r.state = RunCancelled
	r.onComplete = nil
	r.stopAll()
	r.set.DisposeAll()
	debugf("run %s cancelled after %.3fs", r.id, r.elapsed())
	r.emit(TransitionCancelled)
}

func (r *Run) stopAll() {
	for _, t := range r.tasks {
		t.Stop()
	}
	r.tasks = nil
	r.ticker.Stop()
	r.sweep.Stop()
	clear(r.animating)
}

func (r *Run) emit(typ TransitionEventType) {
	if r.events == nil {
		return
	}
	r.events.EmitTransition(TransitionEvent{
		Type:    typ,
		RunID:   r.id,
		Movers:  len(r.set.movers),
		Elapsed: r.elapsed(),
	})
}
