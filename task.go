package async

import "time"

// A Task is a piece of work that a coroutine is given to do when it is spawned.
// The return value of a task, a [Result], determines what next for a coroutine
// to do.
//
// co must not escape to another goroutine.
type Task func(co *Coroutine) Result

// Then returns a [Task] that first works on t, then next after t ends.
//
// To chain multiple tasks, use [Block] function.
func (t Task) Then(next Task) Task {
	must(next)
	return func(co *Coroutine) Result {
		res := t(co)
		switch res.action {
		case doEnd:
			return co.Transition(next)
		case doYield, doTransition:
			if res.task != nil {
				res.task = res.task.Then(next)
			}
			return res
		default:
			panic("async: internal error: unknown action")
		}
	}
}

// Do returns a [Task] that calls f, and then ends.
func Do(f func()) Task {
	return func(co *Coroutine) Result {
		f()
		return co.End()
	}
}

// End returns a [Task] that ends without doing anything.
func End() Task {
	return (*Coroutine).End
}

// Await returns a [Task] that awaits some events until any of them notifies,
// and then ends.
// If ev is empty, the coroutine running the returned task stops for good,
// since nothing could ever resume it.
func Await(ev ...Event) Task {
	return func(co *Coroutine) Result {
		return co.Await(ev...).End()
	}
}

// Block returns a [Task] that runs each of the given tasks in sequence.
// When one task ends, Block runs another.
func Block(s ...Task) Task {
	switch len(s) {
	case 0:
		return End()
	case 1:
		return must(s[0])
	}
	return must(s[0]).Then(Block(s[1:]...))
}

// Sleep returns a [Task] that awaits until d has elapsed, and then ends.
//
// The timer is stopped if the coroutine running the returned task is
// resumed by anything else before d has elapsed.
func Sleep(d time.Duration) Task {
	return func(co *Coroutine) Result {
		var sig Signal
		e, w := co.Executor(), co.Weight()
		tm := time.AfterFunc(d, func() {
			e.SpawnWeighted(w, Do(sig.Notify))
		})
		co.CleanupFunc(func() { tm.Stop() })
		return co.Await(&sig).End()
	}
}

func must(t Task) Task {
	if t == nil {
		panic("async: nil Task")
	}
	return t
}
