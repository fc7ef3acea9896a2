// Package timer is a one-shot deadline queue for toolkits that emulate timer callbacks.
package timer

import (
	"container/heap"
	"time"
)

type entry struct {
	due   time.Time
	seq   uint64
	fn    func(int)
	value int
}

type entries []*entry

func (e entries) Len() int { return len(e) }
func (e entries) Less(i, j int) bool {
	if e[i].due.Equal(e[j].due) {
		return e[i].seq < e[j].seq
	}
	return e[i].due.Before(e[j].due)
}
func (e entries) Swap(i, j int) { e[i], e[j] = e[j], e[i] }
func (e *entries) Push(x any)   { *e = append(*e, x.(*entry)) }
func (e *entries) Pop() any {
	old := *e
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*e = old[:n-1]
	return x
}

// Queue holds pending timers. It is not safe for concurrent use.
type Queue struct {
	now     func() time.Time
	pending entries
	seq     uint64
}

// New returns an empty queue reading time from now, or time.Now when nil.
func New(now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{now: now}
}

// Add schedules fn(value) to run once after the delay.
func (q *Queue) Add(after time.Duration, fn func(int), value int) {
	q.seq++
	heap.Push(&q.pending, &entry{
		due:   q.now().Add(after),
		seq:   q.seq,
		fn:    fn,
		value: value,
	})
}

// Len reports the number of pending timers.
func (q *Queue) Len() int { return len(q.pending) }

// Next reports how long until the earliest timer is due.
func (q *Queue) Next() (time.Duration, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	d := q.pending[0].due.Sub(q.now())
	if d < 0 {
		d = 0
	}
	return d, true
}

// Fire runs every timer that is due and returns how many ran.
// Timers added while firing are not run until the next call.
func (q *Queue) Fire() int {
	now := q.now()
	var due []*entry
	for len(q.pending) > 0 && !q.pending[0].due.After(now) {
		due = append(due, heap.Pop(&q.pending).(*entry))
	}
	for _, e := range due {
		e.fn(e.value)
	}
	return len(due)
}

// Clear drops every pending timer.
func (q *Queue) Clear() {
	q.pending = nil
}
