package core

import "time"

// TimerEvent is a callback scheduled on a Scheduler.
type TimerEvent struct {
	due      time.Duration
	interval time.Duration
	removed  bool
	seq      int
	fn       func()
}

// Scheduler runs callbacks against simulated time. Time only moves when
// Advance is called, so runs are reproducible tick for tick.
type Scheduler struct {
	now    time.Duration
	events []*TimerEvent
	seq    int
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time elapsed since creation or the last Reset.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Loop schedules fn to run every interval. The first call happens one
// interval from now. A non-positive interval is treated as one nanosecond.
func (s *Scheduler) Loop(interval time.Duration, fn func()) *TimerEvent {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	s.seq++
	e := &TimerEvent{
		due:      s.now + interval,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.events = append(s.events, e)
	return e
}

// Remove cancels an event. It is safe to call from inside a callback and
// on events that were already removed.
func (s *Scheduler) Remove(e *TimerEvent) {
	if e == nil {
		return
	}
	e.removed = true
}

// Len returns the number of pending events.
func (s *Scheduler) Len() int {
	n := 0
	for _, e := range s.events {
		if !e.removed {
			n++
		}
	}
	return n
}

// Advance moves simulated time forward by dt. See AdvanceTo.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	s.AdvanceTo(s.now + dt)
}

// AdvanceTo moves simulated time to target and fires every event that
// became due, in due order. An event fires once per elapsed interval.
// Targets in the past are ignored.
func (s *Scheduler) AdvanceTo(target time.Duration) {
	if target < s.now {
		return
	}

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.due += next.interval
		next.fn()
	}

	s.now = target
	s.compact()
}

// nextDue returns the earliest pending event due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *TimerEvent {
	var best *TimerEvent
	for _, e := range s.events {
		if e.removed || e.due > target {
			continue
		}
		if best == nil || e.due < best.due || (e.due == best.due && e.seq < best.seq) {
			best = e
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.events[:0]
	for _, e := range s.events {
		if !e.removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.events); i++ {
		s.events[i] = nil
	}
	s.events = live
}

// Reset removes every event and rewinds time to zero.
func (s *Scheduler) Reset() {
	for _, e := range s.events {
		e.removed = true
	}
	s.events = s.events[:0]
	s.now = 0
}
