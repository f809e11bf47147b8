package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Plane is the player sprite: a physics body plus cosmetic rotation and a
// looping motor animation.
type Plane struct {
	body  *core.Body
	angle float64 // Degrees, positive = nose down
	tween *core.Tween
	motor *core.Animation
	cfg   config.FlappyPlayer
}

// NewPlane creates a live plane at its spawn point with the motor running.
func NewPlane(cfg config.FlappyPlayer, gravity float64) *Plane {
	body := core.NewBody(cfg.X, cfg.Y, cfg.Width, cfg.Height)
	body.AnchorX = cfg.AnchorX
	body.AnchorY = cfg.AnchorY
	body.GravityY = gravity

	motor := core.NewAnimation(cfg.Frames, cfg.FrameRate, true)
	motor.Play()

	return &Plane{
		body:  body,
		motor: motor,
		cfg:   cfg,
	}
}

// Alive reports whether the plane has not hit an obstacle yet.
func (p *Plane) Alive() bool {
	return p.body.Alive
}

// Kill marks the plane dead. The motor and any jump rotation stop; the
// plane keeps falling under gravity and tilts nose down.
func (p *Plane) Kill() {
	p.body.Alive = false
	p.motor.Stop()
	p.tween.Stop()
}

// MotorRunning reports whether the propeller animation is playing.
func (p *Plane) MotorRunning() bool {
	return p.motor.Playing()
}

// Y returns the vertical position of the plane's anchor.
func (p *Plane) Y() float64 {
	return p.body.Y
}

// Velocity returns the vertical velocity.
func (p *Plane) Velocity() float64 {
	return p.body.VelY
}

// Angle returns the rotation in degrees.
func (p *Plane) Angle() float64 {
	return p.angle
}

// Frame returns the sprite-sheet frame of the motor animation.
func (p *Plane) Frame() int {
	return p.motor.Frame()
}

// Bounds returns the hitbox in world coordinates.
func (p *Plane) Bounds() core.RectF {
	return p.body.Bounds()
}

// Jump sets the upward velocity and starts the nose-up rotation tween.
func (p *Plane) Jump(velocity float64) {
	p.body.VelY = velocity
	p.tween = core.NewTween(p.angle, p.cfg.JumpAngle, p.cfg.JumpTween)
}

// Update advances the rotation tween, the motor animation and the body.
func (p *Plane) Update(dt time.Duration) {
	if p.tween.Running() {
		p.angle = p.tween.Advance(dt)
	}
	p.motor.Advance(dt)
	p.body.Integrate(dt.Seconds())
}

// Tilt rotates the nose down by one step, up to MaxAngle. It does nothing
// while a jump tween is running.
func (p *Plane) Tilt() {
	if p.tween.Running() {
		return
	}
	if p.angle < p.cfg.MaxAngle {
		p.angle = math.Min(p.angle+p.cfg.AngleStep, p.cfg.MaxAngle)
	}
}
