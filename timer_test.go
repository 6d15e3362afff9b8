package async_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asyncdemo/async"
)

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
}

func TestAfter(t *testing.T) {
	e := newGoroutineExecutor(t)

	done := make(chan struct{})
	start := time.Now()

	var elapsed time.Duration

	e.After(20*time.Millisecond, async.Do(func() {
		elapsed = time.Since(start)
		close(done)
	}))

	waitFor(t, done)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestSleep(t *testing.T) {
	e := newGoroutineExecutor(t)

	done := make(chan struct{})
	start := time.Now()

	var elapsed time.Duration

	e.Spawn(async.Block(
		async.Sleep(20*time.Millisecond),
		async.Do(func() {
			elapsed = time.Since(start)
			close(done)
		}),
	))

	waitFor(t, done)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestSignal(t *testing.T) {
	e := newGoroutineExecutor(t)

	var sig async.Signal

	var woken atomic.Int32

	done := make(chan struct{})

	for range 3 {
		e.Spawn(async.Await(&sig).Then(async.Do(func() {
			if woken.Add(1) == 3 {
				close(done)
			}
		})))
	}

	e.Spawn(async.Block(
		async.Sleep(10*time.Millisecond),
		async.Do(sig.Notify),
	))

	waitFor(t, done)
	assert.Equal(t, int32(3), woken.Load())
}

func TestDebouncer(t *testing.T) {
	t.Run("Burst", func(t *testing.T) {
		e := newGoroutineExecutor(t)

		var fired atomic.Int32

		done := make(chan struct{}, 10)

		d := async.NewDebouncer(e, 50*time.Millisecond, async.Do(func() {
			fired.Add(1)
			done <- struct{}{}
		}))

		assert.False(t, d.Pending())

		for range 5 {
			d.Trigger()
			time.Sleep(time.Millisecond)
		}

		require.True(t, d.Pending())

		waitFor(t, done)
		time.Sleep(100 * time.Millisecond)

		assert.Equal(t, int32(1), fired.Load())
		assert.False(t, d.Pending())
	})

	t.Run("Stop", func(t *testing.T) {
		e := newGoroutineExecutor(t)

		var fired atomic.Int32

		d := async.NewDebouncer(e, 20*time.Millisecond, async.Do(func() { fired.Add(1) }))

		d.Trigger()
		assert.True(t, d.Stop())
		assert.False(t, d.Stop())

		time.Sleep(60 * time.Millisecond)
		assert.Zero(t, fired.Load())
	})

	t.Run("Reusable", func(t *testing.T) {
		e := newGoroutineExecutor(t)

		done := make(chan struct{}, 2)

		d := async.NewDebouncer(e, 10*time.Millisecond, async.Do(func() { done <- struct{}{} }))

		d.Trigger()
		waitFor(t, done)

		d.Trigger()
		waitFor(t, done)
	})
}
