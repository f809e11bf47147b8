package core

import "time"

// Animation cycles through sprite-sheet frame indices at a fixed rate.
type Animation struct {
	frames  []int
	step    time.Duration
	loop    bool
	elapsed time.Duration
	playing bool
}

// NewAnimation creates a stopped animation over frames at fps frames per
// second.
func NewAnimation(frames []int, fps float64, loop bool) *Animation {
	step := time.Duration(0)
	if fps > 0 {
		step = time.Duration(float64(time.Second) / fps)
	}
	return &Animation{
		frames: append([]int(nil), frames...),
		step:   step,
		loop:   loop,
	}
}

// Play starts the animation from its first frame.
func (a *Animation) Play() {
	a.elapsed = 0
	a.playing = true
}

// Stop freezes the animation on its current frame.
func (a *Animation) Stop() {
	a.playing = false
}

// Playing reports whether the animation is advancing.
func (a *Animation) Playing() bool {
	return a.playing
}

// Advance moves the animation forward by dt.
func (a *Animation) Advance(dt time.Duration) {
	if !a.playing || a.step <= 0 || len(a.frames) == 0 {
		return
	}
	a.elapsed += dt
	total := a.step * time.Duration(len(a.frames))
	if a.elapsed >= total {
		if a.loop {
			a.elapsed %= total
		} else {
			a.elapsed = total - a.step
			a.playing = false
		}
	}
}

// Frame returns the sprite-sheet index to draw, or 0 when there are no frames.
func (a *Animation) Frame() int {
	if len(a.frames) == 0 {
		return 0
	}
	if a.step <= 0 {
		return a.frames[0]
	}
	i := int(a.elapsed / a.step)
	if i >= len(a.frames) {
		i = len(a.frames) - 1
	}
	return a.frames[i]
}
