package async

import "sync"

// An Executor is a coroutine spawner, and a coroutine runner.
//
// When a coroutine is spawned or resumed, it is added into an internal queue.
// The Run method then pops and runs each of them from the queue until
// the queue is emptied.
// It is done in a single-threaded manner.
// If one coroutine blocks, no other coroutines can run.
// The best practice is not to block.
//
// The internal queue is a priority queue.
// Coroutines with greater weights come first.
// Coroutines with the same weight are sorted by the order in which they were
// spawned.
//
// Manually calling the Run method is usually not desired.
// One would instead use the Autorun method to set up an autorun function to
// calling the Run method automatically whenever a coroutine is spawned or
// resumed.
// The Executor never calls the autorun function twice at the same time.
type Executor struct {
	mu      sync.Mutex
	pq      priorityqueue[*Coroutine]
	seq     uint64
	running bool
	autorun func()
	ps      panicstack
}

// Autorun sets up an autorun function to calling the Run method automatically
// whenever a coroutine is spawned or resumed.
//
// One must pass a function that calls the Run method.
//
// If f blocks, the Spawn method may block too.
// The best practice is not to block.
func (e *Executor) Autorun(f func()) {
	e.autorun = f
}

// Run pops and runs every coroutine in the queue until the queue is emptied.
//
// If any coroutine panics without recovering, Run panics too, after
// the queue is emptied.
//
// Run must not be called twice at the same time.
func (e *Executor) Run() {
	e.mu.Lock()
	e.running = true

	for !e.pq.Empty() {
		co := e.pq.Pop()
		e.runCoroutine(co)
	}

	e.running = false
	ps := e.ps
	e.ps = nil
	e.mu.Unlock()

	ps.Repanic()
}

// Spawn creates a coroutine with default weight to work on t.
//
// The coroutine is added in a queue. To run it, either call the Run method,
// or call the Autorun method to set up an autorun function beforehand.
//
// Spawn is safe for concurrent use.
func (e *Executor) Spawn(t Task) {
	e.SpawnWeighted(0, t)
}

// SpawnWeighted creates a coroutine with weight w to work on t.
//
// Coroutines with greater weights run first.
// See [Microtask] for the weight used by [Promise] continuations.
//
// SpawnWeighted is safe for concurrent use.
func (e *Executor) SpawnWeighted(w Weight, t Task) {
	co := new(Coroutine).init(e, must(t)).withWeight(w)
	e.resumeCoroutine(co, true)
}

func (e *Executor) resumeCoroutine(co *Coroutine, lock bool) {
	var autorun func()

	if lock {
		e.mu.Lock()
	}

	switch flag := co.flag; {
	case flag&flagEnded != 0:
	case flag&flagEnqueued != 0:
		co.flag = flag | flagResumed
	default:
		if co.seq == 0 {
			e.seq++
			co.seq = e.seq
		}
		co.flag = flag | flagResumed | flagEnqueued
		e.pq.Push(co)
		if !e.running && e.autorun != nil {
			e.running = true
			autorun = e.autorun
		}
	}

	if lock {
		e.mu.Unlock()
	}

	if autorun != nil {
		autorun()
	}
}

func (e *Executor) runCoroutine(co *Coroutine) {
	flag := co.flag
	flag &^= flagEnqueued
	co.flag = flag
	if flag&(flagEnded|flagResumed) == flagResumed {
		e.mu.Unlock()
		co.run()
		e.mu.Lock()
	}
}
