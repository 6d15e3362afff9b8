// Package async is a small single-threaded async runtime for Go, built around
// a deferred value that settles exactly once.
//
// # Executor
//
// An [Executor] is a task queue. Coroutines spawned on it run one at a time,
// in a single-threaded manner, even when they are spawned from many
// goroutines or from timers. Code that runs inside a [Task] function can
// therefore read and update [State], [Signal], [WaitGroup] and [Future]
// values without further synchronization.
//
// Because only one coroutine runs at a time, everything a task function does
// before it returns happens before any other coroutine runs. A timer that
// fires in the middle of a task merely queues its work. This is what gives
// asynchronous code its familiar ordering: statements around an asynchronous
// call always complete before the call's continuation runs.
//
// # Futures and Promises
//
// A [Future] is the outcome of one asynchronous operation: a value on
// success, or an error on failure, never both and never neither.
// There are three ways to consume one, all delivering the same outcome:
//
//   - callback: spawn [Future.Await] with a completion function;
//   - promise: wrap it in a [Promise] and attach Then, Catch and Finally
//     continuations;
//   - await: block a goroutine with [Wait] (or [Promise.Wait]), or suspend
//     a coroutine on [Future.Await] inside a [Block].
//
// Promise continuations run at [Microtask] weight, ahead of ordinary queued
// coroutines, in the order they were attached.
//
// # Timers
//
// [Executor.After] queues a task once a delay has elapsed, [Sleep] suspends
// a coroutine for a while, and a [Debouncer] runs a task once a burst of
// triggers has gone quiet.
//
// # Panic Propagation
//
// Coroutines that panic are ended. The panic is recovered, recorded along
// with its stack trace, and re-raised by [Executor.Run] once the queue has
// been emptied.
package async
