package async

import (
	"sync"
	"time"
)

// After spawns a coroutine to work on t once d has elapsed.
//
// The timer always fires; there is no way to cancel it.
// Use [Sleep] or a [Debouncer] for timers that can be stopped.
//
// After is safe for concurrent use.
func (e *Executor) After(d time.Duration, t Task) {
	must(t)
	time.AfterFunc(d, func() { e.Spawn(t) })
}

// A Debouncer runs a [Task] once a burst of triggers has been quiet for
// a given delay.
//
// A Debouncer owns at most one pending timer.
// The first Trigger creates it; every later Trigger stops the pending
// timer and replaces it with a fresh one.
//
// A Debouncer is safe for concurrent use.
type Debouncer struct {
	mu       sync.Mutex
	executor *Executor
	delay    time.Duration
	task     Task
	timer    *time.Timer
	gen      uint64
}

// NewDebouncer returns a [Debouncer] that spawns t on e after delay.
func NewDebouncer(e *Executor, delay time.Duration, t Task) *Debouncer {
	return &Debouncer{executor: e, delay: delay, task: must(t)}
}

// Trigger records an event and restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		// Replaced by a later Trigger after this timer had already fired.
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.executor.Spawn(d.task)
}

// Stop stops the pending timer, if any.
// Stop reports whether a pending timer was stopped.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}

	d.gen++
	d.timer.Stop()
	d.timer = nil
	return true
}

// Pending reports whether d has a pending timer.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
