package strobe

import (
	"container/heap"
	"math"
)

// Scheduler runs callbacks at points in time. All callbacks execute on the
// goroutine that advances the scheduler; nothing blocks.
type Scheduler interface {
	// Now returns the scheduler clock in seconds.
	Now() float64
	// After schedules fn to run delay seconds from now.
	After(delay float64, fn func()) *Task
	// Every registers fn to run on every advance, after due tasks, with the
	// clock at the end of the step.
	Every(fn func(now float64)) *Task
}

// Task is a handle to a scheduled callback.
type Task struct {
	at      float64
	seq     uint64
	fn      func()
	tick    func(now float64)
	index   int // heap index, -1 when not queued
	stopped bool
	owner   *Timeline
}

// Stop cancels the task. It reports whether the task was still pending.
// Stopping a nil or already stopped task is a no-op.
func (t *Task) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	if t.owner != nil && t.index >= 0 {
		heap.Remove(&t.owner.queue, t.index)
	}
	return true
}

// Timeline is a delayed-task queue with a manually advanced clock. Call
// Advance once per frame (Stage.Update does this) or directly from tests.
//
// Timeline is not safe for concurrent use.
type Timeline struct {
	now     float64
	seq     uint64
	queue   taskQueue
	tickers []*Task
}

// NewTimeline creates a timeline with its clock at zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Now returns the timeline clock in seconds.
func (tl *Timeline) Now() float64 {
	return tl.now
}

// Pending returns the number of queued one-shot tasks.
func (tl *Timeline) Pending() int {
	return len(tl.queue)
}

// After schedules fn to run delay seconds from now. Negative and NaN delays
// are treated as zero; a zero-delay task runs on the next Advance.
func (tl *Timeline) After(delay float64, fn func()) *Task {
	if !(delay > 0) {
		delay = 0
	}
	tl.seq++
	t := &Task{at: tl.now + delay, seq: tl.seq, fn: fn, owner: tl}
	heap.Push(&tl.queue, t)
	return t
}

// Every registers fn as a frame ticker.
func (tl *Timeline) Every(fn func(now float64)) *Task {
	t := &Task{tick: fn, index: -1}
	tl.tickers = append(tl.tickers, t)
	return t
}

// Advance moves the clock forward by dt seconds. Negative, NaN and infinite
// steps leave the clock where it is. Due tasks run in order of
// their due time, ties broken by scheduling order, with the clock set to each
// task's due time while it runs. Tasks scheduled by a callback run within the
// same Advance if they fall due before its end. Tickers run last.
func (tl *Timeline) Advance(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		dt = 0
	}
	target := tl.now + dt
	for len(tl.queue) > 0 && tl.queue[0].at <= target {
		t := heap.Pop(&tl.queue).(*Task)
		t.stopped = true
		if t.at > tl.now {
			tl.now = t.at
		}
		t.fn()
	}
	tl.now = target

	live := tl.tickers[:0]
	for _, t := range tl.tickers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	clear(tl.tickers[len(live):])
	tl.tickers = live

	// Tickers added during this loop wait for the next Advance.
	n := len(tl.tickers)
	for i := 0; i < n; i++ {
		t := tl.tickers[i]
		if !t.stopped {
			t.tick(tl.now)
		}
	}
}

// taskQueue is a min-heap of tasks ordered by (at, seq).
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
