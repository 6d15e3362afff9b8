package async

import "context"

// A Future is a [Signal] that settles exactly once, either with a value or
// with an error.
//
// Calling the Resolve or Reject method of a Future, in a [Task] function,
// settles it and resumes any coroutine that is watching it.
// Only the first call takes effect; later calls report false and change
// nothing.
//
// A Future must not be shared by more than one [Executor].
type Future[T any] struct {
	Signal
	settled bool
	value   T
	err     error
}

// NewFuture creates a new pending [Future].
func NewFuture[T any]() *Future[T] {
	return new(Future[T])
}

// Resolve settles f with v.
// Resolve reports whether f was still pending.
//
// One should only call this method in a [Task] function.
func (f *Future[T]) Resolve(v T) bool {
	if f.settled {
		return false
	}
	f.settled = true
	f.value = v
	f.Notify()
	return true
}

// Reject settles f with err.
// Reject reports whether f was still pending.
// Reject panics if err is nil.
//
// One should only call this method in a [Task] function.
func (f *Future[T]) Reject(err error) bool {
	if err == nil {
		panic("async: Reject called with nil error")
	}
	if f.settled {
		return false
	}
	f.settled = true
	f.err = err
	f.Notify()
	return true
}

// Settled reports whether f has been settled.
//
// Without proper synchronization, one should only call this method in
// a [Task] function.
func (f *Future[T]) Settled() bool {
	return f.settled
}

// Result returns the value and the error f settled with.
// Exactly one of them is meaningful: err is nil if and only if f was
// resolved.
// If f is still pending, Result returns the zero value and a nil error.
//
// Without proper synchronization, one should only call this method in
// a [Task] function.
func (f *Future[T]) Result() (v T, err error) {
	return f.value, f.err
}

// Await returns a [Task] that awaits until f settles, calls then with
// the outcome, and then ends.
func (f *Future[T]) Await(then func(v T, err error)) Task {
	return func(co *Coroutine) Result {
		if !f.settled {
			return co.Yield(f)
		}
		then(f.value, f.err)
		return co.End()
	}
}

// Wait blocks the calling goroutine until f settles, and then returns
// the outcome.
//
// If ctx is done first, Wait returns ctx.Err() instead.
// Giving up waiting does not affect f; it still settles as usual.
//
// Wait must not be called in a [Task] function of e, otherwise it blocks
// forever.
func Wait[T any](ctx context.Context, e *Executor, f *Future[T]) (T, error) {
	type outcome struct {
		v   T
		err error
	}

	ch := make(chan outcome, 1)

	e.Spawn(f.Await(func(v T, err error) {
		ch <- outcome{v, err}
	}))

	select {
	case o := <-ch:
		return o.v, o.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
