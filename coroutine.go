package async

import "slices"

type action int

const (
	_ action = iota
	doYield
	doTransition
	doEnd
)

const (
	flagResumed = 1 << iota
	flagEnqueued
	flagEnded
	flagPanicking
)

// A Coroutine is an execution of code, similar to a goroutine but cooperative
// and stackless.
//
// A coroutine is created with a function called [Task].
// A coroutine's job is to end the task.
// When an [Executor] spawns a coroutine with a task, it runs the coroutine by
// calling the task function with the coroutine as the argument.
// The return value determines whether to end the coroutine or to yield it
// so that it could resume later.
//
// In order for a coroutine to resume, the coroutine must watch at least one
// [Event] (e.g. [Signal], [State], [Future], etc.), when calling the task
// function.
// A notification of such an event resumes the coroutine.
// When a coroutine is resumed, the executor runs the coroutine again.
//
// A coroutine can also make a transition to work on another task according to
// the return value of the task function.
// A coroutine can transition from one task to another until a task ends it.
type Coroutine struct {
	flag     uint8
	weight   Weight
	seq      uint64
	executor *Executor
	task     Task
	deps     map[Event]struct{}
	cleanups []Cleanup
}

// Weight is the type of weight for use when spawning a weighted coroutine.
type Weight int

// Microtask is the weight of coroutines that run [Promise] continuations.
// They are run before any coroutine of default weight that is still in
// the queue.
const Microtask Weight = 1

func (co *Coroutine) init(e *Executor, t Task) *Coroutine {
	co.executor = e
	co.task = t
	return co
}

func (co *Coroutine) withWeight(w Weight) *Coroutine {
	co.weight = w
	return co
}

func (co *Coroutine) less(other *Coroutine) bool {
	if co.weight != other.weight {
		return co.weight > other.weight
	}
	return co.seq < other.seq
}

// Resume resumes co.
func (co *Coroutine) Resume() {
	co.executor.resumeCoroutine(co, true)
}

func (co *Coroutine) run() {
	var res Result

	for {
		co.clearDeps()
		co.clearCleanups()

		co.flag &^= flagResumed

		if !co.executor.ps.Try(func() { res = co.task(co) }) {
			co.flag |= flagPanicking
			res = Result{action: doEnd}
		}

		if res.task != nil {
			co.task = res.task
		}

		if res.action != doTransition {
			break
		}
	}

	if res.action == doYield && len(co.deps) != 0 {
		return
	}

	// A coroutine that yields without watching anything can never resume.
	co.flag |= flagEnded

	co.clearDeps()
	co.clearCleanups()
}

func (co *Coroutine) clearDeps() {
	deps := co.deps
	for d := range deps {
		delete(deps, d)
		d.removeListener(co)
	}
}

func (co *Coroutine) clearCleanups() {
	for len(co.cleanups) != 0 {
		cleanups := co.cleanups
		co.cleanups = nil
		for _, c := range slices.Backward(cleanups) {
			if !co.executor.ps.Try(c.Cleanup) {
				co.flag |= flagPanicking
			}
		}
	}
}

// Weight returns the weight of co.
func (co *Coroutine) Weight() Weight {
	return co.weight
}

// Executor returns the executor that spawned co.
func (co *Coroutine) Executor() *Executor {
	return co.executor
}

// Ended reports whether co has already ended.
func (co *Coroutine) Ended() bool {
	return co.flag&flagEnded != 0
}

// Panicking reports whether co ended because its task panicked.
func (co *Coroutine) Panicking() bool {
	return co.flag&flagPanicking != 0
}

// Resumed reports whether co has been resumed.
func (co *Coroutine) Resumed() bool {
	return co.flag&flagResumed != 0
}

// Watch watches some events so that, when any of them notifies, co resumes.
func (co *Coroutine) Watch(ev ...Event) {
	if co.flag&flagEnded != 0 {
		return
	}
	for _, d := range ev {
		deps := co.deps
		if deps == nil {
			deps = make(map[Event]struct{})
			co.deps = deps
		}
		deps[d] = struct{}{}
		d.addListener(co)
	}
}

// Cleanup represents any type that carries a Cleanup method.
// A Cleanup can be added to a coroutine in a [Task] function for making
// an effect some time later when the coroutine resumes or ends, or when
// the coroutine is making a transition to work on another [Task].
type Cleanup interface {
	Cleanup()
}

// A CleanupFunc is a func() that implements the [Cleanup] interface.
type CleanupFunc func()

// Cleanup implements the [Cleanup] interface.
func (f CleanupFunc) Cleanup() { f() }

// Cleanup adds something to clean up when co resumes or ends, or when
// co is making a transition to work on another [Task].
func (co *Coroutine) Cleanup(c Cleanup) {
	if co.Ended() {
		panic("async: coroutine has already ended")
	}
	if c == nil {
		return
	}
	co.cleanups = append(co.cleanups, c)
}

// CleanupFunc adds a function call when co resumes or ends, or when
// co is making a transition to work on another [Task].
func (co *Coroutine) CleanupFunc(f func()) {
	if f == nil {
		return
	}
	co.Cleanup(CleanupFunc(f))
}

// Result is the type of the return value of a [Task] function.
// A Result determines what next for a coroutine to do after running a task.
//
// A Result can be created by calling one of the following methods:
//   - [Coroutine.Await]: for creating a [PendingResult] that can be transformed
//     into a [Result] with one of its methods, which will then cause
//     the running coroutine to yield;
//   - [Coroutine.Yield]: for yielding a coroutine with additional events to
//     watch and, when resumed, reiterating the running task;
//   - [Coroutine.Transition]: for making a transition to work on another task;
//   - [Coroutine.End]: for ending the running task of a coroutine.
type Result struct {
	action action
	task   Task
}

// PendingResult is the return type of the [Coroutine.Await] method.
// A PendingResult is an intermediate value that must be transformed into
// a [Result] with one of its methods before returning from a [Task].
type PendingResult struct {
	res Result
}

// Reiterate returns a [Result] that will cause the running coroutine to yield
// and, when resumed, reiterate the running task.
func (pr PendingResult) Reiterate() Result {
	return pr.res
}

// Then returns a [Result] that will cause the running coroutine to yield and,
// when resumed, make a transition to work on another [Task].
func (pr PendingResult) Then(t Task) Result {
	pr.res.task = must(t)
	return pr.res
}

// End returns a [Result] that will cause the running coroutine to yield and,
// when resumed, end the running task.
func (pr PendingResult) End() Result {
	return pr.Then(End())
}

// Await returns a [PendingResult] that can be transformed into a [Result]
// with one of its methods, which will then cause co to yield.
// Await also accepts additional events to watch.
func (co *Coroutine) Await(ev ...Event) PendingResult {
	if len(ev) != 0 {
		co.Watch(ev...)
	}
	return PendingResult{res: Result{action: doYield}}
}

// Yield returns a [Result] that will cause co to yield and, when co is resumed,
// reiterate the running task.
// Yield also accepts additional events to watch.
func (co *Coroutine) Yield(ev ...Event) Result {
	return co.Await(ev...).Reiterate()
}

// Transition returns a [Result] that will cause co to make a transition to
// work on t.
func (co *Coroutine) Transition(t Task) Result {
	return Result{action: doTransition, task: must(t)}
}

// End returns a [Result] that will cause co to end its current running task.
func (co *Coroutine) End() Result {
	return Result{action: doEnd}
}
