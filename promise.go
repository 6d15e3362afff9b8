package async

import "context"

// A Promise is a handle on a [Future] that is settled by an [Executor].
//
// Continuations attached with Then, Catch and Finally run on the executor,
// at [Microtask] weight, in the order they were attached.
// A continuation attached after the Future has settled still runs.
//
// Unlike a Future, a Promise is safe for use by any goroutine: attaching
// a continuation only spawns a coroutine on the executor.
type Promise[T any] struct {
	executor *Executor
	future   *Future[T]
}

// NewPromise returns a [Promise] for f, which must be settled by e.
func NewPromise[T any](e *Executor, f *Future[T]) *Promise[T] {
	return &Promise[T]{executor: e, future: f}
}

// Future returns the underlying [Future] of p.
func (p *Promise[T]) Future() *Future[T] {
	return p.future
}

// Then attaches onValue to be called if p resolves.
// Then returns p for chaining.
func (p *Promise[T]) Then(onValue func(v T)) *Promise[T] {
	return p.attach(func(v T, err error) {
		if err == nil {
			onValue(v)
		}
	})
}

// Catch attaches onError to be called if p rejects.
// Catch returns p for chaining.
func (p *Promise[T]) Catch(onError func(err error)) *Promise[T] {
	return p.attach(func(v T, err error) {
		if err != nil {
			onError(err)
		}
	})
}

// Finally attaches f to be called once p settles, whatever the outcome.
// Finally returns p for chaining.
func (p *Promise[T]) Finally(f func()) *Promise[T] {
	return p.attach(func(T, error) { f() })
}

func (p *Promise[T]) attach(then func(v T, err error)) *Promise[T] {
	p.executor.SpawnWeighted(Microtask, p.future.Await(then))
	return p
}

// Wait blocks the calling goroutine until p settles, and then returns
// the outcome. See [Wait] for details.
func (p *Promise[T]) Wait(ctx context.Context) (T, error) {
	return Wait(ctx, p.executor, p.future)
}
