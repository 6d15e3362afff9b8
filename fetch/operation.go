// Package fetch models a fetch-like operation with simulated latency and
// a binary outcome, and exposes it through three equivalent calling
// conventions: callbacks, promises and await.
//
// Every convention is layered on [Operation.Start], which owns the only
// timer and settles a single [async.Future] per call.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/asyncdemo/async"
)

// Resolver decides the outcome of an [Operation] once its delay has
// elapsed. It must return either a value or a non-nil error.
type Resolver[T any] func(id int) (T, error)

// Operation is a simulated asynchronous operation: after a fixed delay it
// either produces a value or fails.
//
// There is no retry, no jitter and no cancellation; the timer always fires.
type Operation[T any] struct {
	name     string
	executor *async.Executor
	delay    time.Duration
	resolve  Resolver[T]
}

// NewOperation returns an [Operation] named name whose outcome is decided by
// r after delay, and delivered through e.
func NewOperation[T any](e *async.Executor, name string, delay time.Duration, r Resolver[T]) *Operation[T] {
	if e == nil {
		panic("fetch: nil executor")
	}
	if r == nil {
		panic("fetch: nil resolver")
	}
	return &Operation[T]{name: name, executor: e, delay: delay, resolve: r}
}

// Name returns the name of op.
func (op *Operation[T]) Name() string {
	return op.name
}

// Delay returns the simulated latency of op.
func (op *Operation[T]) Delay() time.Duration {
	return op.delay
}

// Executor returns the executor op delivers its outcomes through.
func (op *Operation[T]) Executor() *async.Executor {
	return op.executor
}

// Start begins one invocation of op and returns its pending outcome.
// Start does not block; the Future settles on the executor once the delay
// has elapsed.
func (op *Operation[T]) Start(id int) *async.Future[T] {
	f := async.NewFuture[T]()

	logrus.WithFields(logrus.Fields{
		"function":  "Start",
		"operation": op.name,
		"id":        id,
		"delay":     op.delay,
	}).Debug("Scheduling operation")

	op.executor.After(op.delay, async.Do(func() {
		op.settle(f, id)
	}))

	return f
}

func (op *Operation[T]) settle(f *async.Future[T], id int) {
	v, err := op.resolve(id)

	fields := logrus.Fields{
		"function":  "settle",
		"operation": op.name,
		"id":        id,
	}

	if err != nil {
		f.Reject(err)
		logrus.WithFields(fields).WithError(err).Debug("Operation rejected")
		return
	}

	f.Resolve(v)
	logrus.WithFields(fields).Debug("Operation resolved")
}

// Callback starts op and calls cb exactly once with its outcome, on
// the executor. Callback does not block.
func (op *Operation[T]) Callback(id int, cb func(v T, err error)) {
	op.executor.Spawn(op.Start(id).Await(cb))
}

// Notify is the simplest callback form: cb receives a single message, with
// no separate error channel.
// On success the message is the value formatted with %v; on failure it is
// "<reason> with id <id>".
func (op *Operation[T]) Notify(id int, cb func(msg string)) {
	op.Callback(id, func(v T, err error) {
		if err != nil {
			cb(fmt.Sprintf("%v with id %d", err, id))
			return
		}
		cb(fmt.Sprint(v))
	})
}

// Promise starts op and returns a handle on its outcome.
// Promise does not block.
func (op *Operation[T]) Promise(id int) *async.Promise[T] {
	return async.NewPromise(op.executor, op.Start(id))
}

// Await starts op and blocks the calling goroutine until the outcome is
// available.
// A failure is returned as the error, identical to the one delivered by
// Callback and Promise for the same id.
//
// Await must not be called in a task function of op's executor.
func (op *Operation[T]) Await(ctx context.Context, id int) (T, error) {
	return async.Wait(ctx, op.executor, op.Start(id))
}

// AwaitTask returns an [async.Task] that starts op, suspends the coroutine
// running it until the outcome is available, and then calls then with it.
//
// Unlike Await, the returned task is meant to run on op's executor, for
// example as one step of an [async.Block].
func (op *Operation[T]) AwaitTask(id int, then func(v T, err error)) async.Task {
	return func(co *async.Coroutine) async.Result {
		return co.Transition(op.Start(id).Await(then))
	}
}
