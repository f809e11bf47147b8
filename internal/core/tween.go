package core

import "time"

// Tween linearly interpolates a value over a fixed duration.
type Tween struct {
	from     float64
	to       float64
	duration time.Duration
	elapsed  time.Duration
	running  bool
}

// NewTween creates a running tween from one value to another.
// A non-positive duration completes on the first Advance.
func NewTween(from, to float64, duration time.Duration) *Tween {
	return &Tween{from: from, to: to, duration: duration, running: true}
}

// Advance moves the tween forward by dt and returns the current value.
func (t *Tween) Advance(dt time.Duration) float64 {
	if !t.running {
		return t.Value()
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.running = false
	}
	return t.Value()
}

// Value returns the interpolated value at the current position.
func (t *Tween) Value() float64 {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to
	}
	progress := float64(t.elapsed) / float64(t.duration)
	return t.from + (t.to-t.from)*progress
}

// Running reports whether the tween has not reached its end value yet.
// A nil tween is not running.
func (t *Tween) Running() bool {
	return t != nil && t.running
}

// Stop halts the tween at its current value. Stopping a nil tween is a no-op.
func (t *Tween) Stop() {
	if t != nil {
		t.running = false
	}
}
