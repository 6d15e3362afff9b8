package demo

import (
	"context"
	"time"

	"github.com/asyncdemo/async"
	"github.com/asyncdemo/async/fetch"
)

// CallbackScenario prints Start and End around a callback-style call of op.
// The callback receives a single message, with no separate error channel.
func CallbackScenario(ctx context.Context, e *async.Executor, c *Console, op *fetch.Operation[string], id int) error {
	return run(ctx, "callback", e, func(done func()) {
		c.Println("Start")
		op.Notify(id, func(msg string) {
			c.Println(msg)
			done()
		})
		c.Println("End")
	})
}

// PromiseScenario prints Start and End around a promise-style call of op,
// with continuations for both outcomes.
func PromiseScenario(ctx context.Context, e *async.Executor, c *Console, op *fetch.Operation[string], id int) error {
	return run(ctx, "promise", e, func(done func()) {
		c.Println("Start")
		op.Promise(id).
			Then(func(msg string) { c.Println(msg) }).
			Catch(func(err error) { c.Println("Error:" + err.Error()) }).
			Finally(done)
		c.Println("End")
	})
}

// AwaitScenario prints Start and End around an await-style call of op made
// from its own coroutine, which handles a failure locally.
func AwaitScenario(ctx context.Context, e *async.Executor, c *Console, op *fetch.Operation[string], id int) error {
	return run(ctx, "await", e, func(done func()) {
		c.Println("Start")
		e.Spawn(op.AwaitTask(id, func(msg string, err error) {
			if err != nil {
				c.Println(err)
				return
			}
			c.Println(msg)
		}).Then(async.Do(done)))
		c.Println("End")
	})
}

// MessageScenario prints 1, 2 and 3 around a promise-style call of op, whose
// message is printed last.
func MessageScenario(ctx context.Context, e *async.Executor, c *Console, op *fetch.Operation[string]) error {
	return run(ctx, "message", e, func(done func()) {
		c.Println("1")
		c.Println("2")
		op.Promise(0).
			Then(func(msg string) { c.Println("MSG:", msg) }).
			Catch(func(err error) { c.Println("Error:", err) }).
			Finally(done)
		c.Println("3")
	})
}

// UserScenario fetches the user id twice, once with promise continuations
// and once from an awaiting coroutine, and returns after both outcomes have
// been printed.
func UserScenario(ctx context.Context, e *async.Executor, c *Console, op *fetch.Operation[fetch.UserRecord], id int) error {
	return run(ctx, "user", e, func(done func()) {
		var wg async.WaitGroup

		wg.Add(2)

		c.Println("1")
		c.Println("2")

		op.Promise(id).
			Then(func(u fetch.UserRecord) { c.Println("MSG:", u) }).
			Catch(func(err error) { c.Println("Error:", err) }).
			Finally(wg.Done)

		c.Println("3")

		getUser := op.AwaitTask(id, func(u fetch.UserRecord, err error) {
			if err != nil {
				c.Println("Async Error:", err)
				return
			}
			c.Println("Async User:", u)
		})

		e.Spawn(getUser.Then(async.Do(wg.Done)))
		e.Spawn(wg.Await().Then(async.Do(done)))
	})
}

// ScrollScenario feeds scroll events, gap apart, into a debouncer and
// prints "User scrolling..." whenever the events have been quiet for quiet.
// It returns once the debouncer has handled the last event.
// With no events, nothing is printed.
func ScrollScenario(ctx context.Context, e *async.Executor, c *Console, quiet time.Duration, events int, gap time.Duration) error {
	return run(ctx, "scroll", e, func(done func()) {
		if events <= 0 {
			done()
			return
		}

		scrolled := async.NewState(0) // Events received.
		handled := async.NewState(0)  // Events seen when the debouncer last fired.

		d := async.NewDebouncer(e, quiet, async.Do(func() {
			c.Println("User scrolling...")
			handled.Set(scrolled.Get())
		}))

		e.Spawn(handled.Await(func(n int) bool { return n == events }).Then(async.Do(done)))

		go func() {
			for range events {
				e.Spawn(async.Do(func() {
					scrolled.Update(func(n int) int { return n + 1 })
					d.Trigger()
				}))
				time.Sleep(gap)
			}
		}()
	})
}
