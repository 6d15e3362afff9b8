package async

import "testing"

func TestPriorityQueue(t *testing.T) {
	t.Run("Overall", func(t *testing.T) {
		var pq priorityqueue[*Coroutine]

		for i := range 8 {
			pq.Push(&Coroutine{seq: uint64(i + 1)})
		}

		for i := range 4 {
			if u := pq.Pop(); u.seq != uint64(i+1) {
				t.FailNow()
			}
		}

		for i := 9; i <= 11; i++ {
			pq.Push(&Coroutine{seq: uint64(i)})
		}

		pq.Push(&Coroutine{seq: 4})

		if u := pq.Pop(); u.seq != 4 {
			t.FailNow()
		}

		for _, want := range []uint64{5, 6, 7, 8, 9, 10, 11} {
			if u := pq.Pop(); u.seq != want {
				t.FailNow()
			}
		}

		if !pq.Empty() || pq.Len() != 0 {
			t.FailNow()
		}
	})
	t.Run("Shuffled", func(t *testing.T) {
		var pq priorityqueue[*Coroutine]

		for _, seq := range []uint64{7, 3, 9, 1, 5, 2, 8, 6, 4} {
			pq.Push(&Coroutine{seq: seq})
		}

		if pq.Len() != 9 {
			t.FailNow()
		}

		for want := uint64(1); want <= 9; want++ {
			if u := pq.Pop(); u.seq != want {
				t.Fatalf("Pop() = %d, want %d", u.seq, want)
			}
		}
	})
	t.Run("Weight", func(t *testing.T) {
		var pq priorityqueue[*Coroutine]

		u := &Coroutine{seq: 1}
		v := &Coroutine{seq: 2, weight: Microtask}
		w := &Coroutine{seq: 3}
		x := &Coroutine{seq: 4, weight: Microtask}

		pq.Push(u)
		pq.Push(v)
		pq.Push(w)
		pq.Push(x)

		if pq.Pop() != v || pq.Pop() != x || pq.Pop() != u || pq.Pop() != w {
			t.FailNow()
		}
	})
}
