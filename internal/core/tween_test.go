package core

import (
	"math"
	"testing"
	"time"
)

func TestTweenInterpolates(t *testing.T) {
	tw := NewTween(10, -20, 100*time.Millisecond)

	if v := tw.Advance(50 * time.Millisecond); math.Abs(v-(-5)) > 1e-9 {
		t.Errorf("halfway value = %f, expected -5", v)
	}
	if !tw.Running() {
		t.Error("tween should still be running halfway")
	}

	if v := tw.Advance(80 * time.Millisecond); v != -20 {
		t.Errorf("final value = %f, expected -20", v)
	}
	if tw.Running() {
		t.Error("tween should stop at its end")
	}
	if v := tw.Advance(time.Second); v != -20 {
		t.Errorf("finished tween should hold its end value, got %f", v)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	tw := NewTween(0, 5, 0)
	if v := tw.Advance(0); v != 5 || tw.Running() {
		t.Errorf("zero-duration tween should complete immediately, value=%f running=%v", v, tw.Running())
	}

	var nilTween *Tween
	nilTween.Stop()
	if nilTween.Running() {
		t.Error("nil tween should not be running")
	}
}

func TestTweenStopHoldsValue(t *testing.T) {
	tw := NewTween(0, -20, 100*time.Millisecond)
	tw.Advance(50 * time.Millisecond)
	tw.Stop()

	if tw.Running() {
		t.Fatal("stopped tween should not be running")
	}
	if v := tw.Value(); v != -10 {
		t.Errorf("stopped tween value = %f, expected -10", v)
	}
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation([]int{0, 1, 2, 1}, 30, true)
	if a.Frame() != 0 {
		t.Fatalf("stopped animation should show first frame, got %d", a.Frame())
	}

	a.Advance(time.Second) // not playing yet
	if a.Frame() != 0 {
		t.Fatal("animation advanced before Play")
	}

	a.Play()
	step := time.Second / 30
	want := []int{0, 1, 2, 1, 0, 1}
	for i, w := range want {
		if got := a.Frame(); got != w {
			t.Fatalf("frame %d = %d, expected %d", i, got, w)
		}
		a.Advance(step + time.Microsecond)
	}
}

func TestAnimationOnceStopsOnLastFrame(t *testing.T) {
	a := NewAnimation([]int{3, 4, 5}, 10, false)
	a.Play()
	a.Advance(5 * time.Second)

	if a.Playing() {
		t.Error("non-looping animation should stop")
	}
	if a.Frame() != 5 {
		t.Errorf("frame = %d, expected last frame 5", a.Frame())
	}
}
