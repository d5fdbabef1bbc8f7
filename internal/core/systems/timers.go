package systems

import (
	"github.com/zeusync/flightrig/pkg/sequence"
)

type TimerID uint64

type timer struct {
	id  TimerID
	due float64
	fn  func()
}

// Timers runs one-shot callbacks after a delay measured in simulated time.
// Every scheduled callback fires exactly once unless cancelled first.
type Timers struct {
	now     float64
	nextID  TimerID
	queue   *sequence.PriorityQueue[*timer]
	pending map[TimerID]*sequence.PriorityItem[*timer]
}

func NewTimers() *Timers {
	return &Timers{
		queue: sequence.NewPriorityQueue(func(a, b *timer) bool {
			if a.due != b.due {
				return a.due < b.due
			}
			return a.id < b.id
		}),
		pending: make(map[TimerID]*sequence.PriorityItem[*timer]),
	}
}

// After schedules fn to run once delay seconds from now. A negative delay
// is treated as zero; such timers fire on the next Advance.
func (t *Timers) After(delay float64, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	t.nextID++
	tm := &timer{id: t.nextID, due: t.now + delay, fn: fn}
	t.pending[tm.id] = t.queue.Enqueue(tm)
	return tm.id
}

// Cancel stops a pending timer. It reports false if the timer already fired
// or was cancelled.
func (t *Timers) Cancel(id TimerID) bool {
	item, ok := t.pending[id]
	if !ok {
		return false
	}
	delete(t.pending, id)
	return t.queue.Remove(item)
}

// Advance moves the clock forward by dt and fires every timer that became
// due, in due order. The clock reads each timer's due time while its callback
// runs, so a callback that reschedules itself keeps its period, and timers
// scheduled inside the window fire in the same call. It returns the number
// fired.
func (t *Timers) Advance(dt float64) int {
	end := t.now
	if dt > 0 {
		end += dt
	}
	fired := 0
	for {
		next, ok := t.queue.Peek()
		if !ok || next.due > end {
			t.now = end
			return fired
		}
		_, _ = t.queue.Dequeue()
		delete(t.pending, next.id)
		if next.due > t.now {
			t.now = next.due
		}
		if next.fn != nil {
			next.fn()
		}
		fired++
	}
}

func (t *Timers) Now() float64 { return t.now }

func (t *Timers) Pending() int { return t.queue.Len() }
