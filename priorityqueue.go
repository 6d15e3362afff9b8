package async

type lesser[E any] interface {
	less(v E) bool
}

// priorityqueue is a binary min-heap ordered by less.
// Elements must be totally ordered; coroutines are, by weight and then
// by spawn sequence.
type priorityqueue[E lesser[E]] struct {
	s []E
}

func (q *priorityqueue[E]) Empty() bool {
	return len(q.s) == 0
}

func (q *priorityqueue[E]) Len() int {
	return len(q.s)
}

func (q *priorityqueue[E]) Push(v E) {
	q.s = append(q.s, v)
	q.up(len(q.s) - 1)
}

func (q *priorityqueue[E]) Pop() (v E) {
	n := len(q.s) - 1
	v = q.s[0]
	q.s[0] = q.s[n]

	var zero E

	q.s[n] = zero
	q.s = q.s[:n]

	if n > 0 {
		q.down(0)
	}

	return v
}

func (q *priorityqueue[E]) up(i int) {
	s := q.s
	for i > 0 {
		parent := (i - 1) / 2
		if !s[i].less(s[parent]) {
			break
		}
		s[i], s[parent] = s[parent], s[i]
		i = parent
	}
}

func (q *priorityqueue[E]) down(i int) {
	s := q.s
	n := len(s)
	for {
		least := i
		if l := 2*i + 1; l < n && s[l].less(s[least]) {
			least = l
		}
		if r := 2*i + 2; r < n && s[r].less(s[least]) {
			least = r
		}
		if least == i {
			return
		}
		s[i], s[least] = s[least], s[i]
		i = least
	}
}
