// Package demo reproduces console sessions that show how asynchronous
// results are delivered after the synchronous code around the call.
package demo

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/asyncdemo/async"
)

// Console writes whole lines to an io.Writer.
// It is safe for concurrent use.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole returns a Console that writes to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Println writes its operands like fmt.Println.
func (c *Console) Println(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, a...)
}

// run spawns body as a single task on e, so that everything body prints
// synchronously comes before any continuation it schedules.
// run returns once body's continuations call done, or when ctx ends.
func run(ctx context.Context, name string, e *async.Executor, body func(done func())) error {
	ch := make(chan struct{})

	var once sync.Once
	done := func() { once.Do(func() { close(ch) }) }

	log := logrus.WithFields(logrus.Fields{
		"function": "run",
		"scenario": name,
	})
	log.Debug("Scenario started")

	e.Spawn(async.Do(func() { body(done) }))

	select {
	case <-ch:
		log.Debug("Scenario finished")
		return nil
	case <-ctx.Done():
		log.WithError(ctx.Err()).Warn("Scenario abandoned")
		return fmt.Errorf("scenario %s: %w", name, ctx.Err())
	}
}
