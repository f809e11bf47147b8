// Package config provides YAML-based game configuration loading for the
// arcade. All distances are world units (pixels of the 400x490 playfield),
// velocities are units per second.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is matched by every ValidationError.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrInvalidConfig) report true.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Sound     FlappySound     `yaml:"sound"`
}

// FlappyWorld defines the playfield.
type FlappyWorld struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"` // #rrggbb, used by the window host
}

// FlappyPhysics defines the plane's physics.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration
	JumpVelocity float64 `yaml:"jump_velocity"` // Vertical velocity set by a jump (negative = up)
}

// FlappyPlayer defines the plane sprite.
type FlappyPlayer struct {
	X         float64       `yaml:"x"`
	Y         float64       `yaml:"y"`
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	AnchorX   float64       `yaml:"anchor_x"`
	AnchorY   float64       `yaml:"anchor_y"`
	MaxAngle  float64       `yaml:"max_angle"`  // Nose-down rotation cap in degrees
	AngleStep float64       `yaml:"angle_step"` // Degrees added per tick
	JumpAngle float64       `yaml:"jump_angle"` // Rotation a jump tweens to
	JumpTween time.Duration `yaml:"jump_tween"`
	Frames    []int         `yaml:"frames"`     // Motor animation sprite-sheet frames
	FrameRate float64       `yaml:"frame_rate"` // Motor animation frames per second
}

// FlappyObstacles defines obstacle rows.
type FlappyObstacles struct {
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	SpawnX        float64       `yaml:"spawn_x"`
	Velocity      float64       `yaml:"velocity"`
	Segments      int           `yaml:"segments"`       // Segments per row, gap included
	SegmentPitch  float64       `yaml:"segment_pitch"`  // Vertical distance between segment tops
	SegmentOffset float64       `yaml:"segment_offset"` // Top of the first segment
	SegmentWidth  float64       `yaml:"segment_width"`
	SegmentHeight float64       `yaml:"segment_height"`
	GapSize       int           `yaml:"gap_size"` // Consecutive segments left out
	MinHole       int           `yaml:"min_hole"` // Lowest index the gap may start at
	MaxHole       int           `yaml:"max_hole"` // Highest index the gap may start at
}

// FlappySound defines sound effect levels.
type FlappySound struct {
	JumpVolume float64 `yaml:"jump_volume"`
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return ValidationError{"world", "width and height must be positive"}
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return ValidationError{"player", "width and height must be positive"}
	case c.Player.JumpTween < 0:
		return ValidationError{"player.jump_tween", "must not be negative"}
	case c.Player.FrameRate < 0:
		return ValidationError{"player.frame_rate", "must not be negative"}
	case c.Obstacles.SpawnInterval <= 0:
		return ValidationError{"obstacles.spawn_interval", "must be positive"}
	case c.Obstacles.Segments <= 0:
		return ValidationError{"obstacles.segments", "must be positive"}
	case c.Obstacles.SegmentWidth <= 0 || c.Obstacles.SegmentHeight <= 0:
		return ValidationError{"obstacles", "segment width and height must be positive"}
	case c.Obstacles.GapSize <= 0 || c.Obstacles.GapSize >= c.Obstacles.Segments:
		return ValidationError{"obstacles.gap_size", fmt.Sprintf("must be in [1, %d]", c.Obstacles.Segments-1)}
	case c.Obstacles.MinHole < 0 || c.Obstacles.MinHole > c.Obstacles.MaxHole:
		return ValidationError{"obstacles.min_hole", "must be in [0, max_hole]"}
	case c.Obstacles.MaxHole+c.Obstacles.GapSize > c.Obstacles.Segments:
		return ValidationError{"obstacles.max_hole", fmt.Sprintf("gap would extend past segment %d", c.Obstacles.Segments-1)}
	case c.Sound.JumpVolume < 0 || c.Sound.JumpVolume > 1:
		return ValidationError{"sound.jump_volume", "must be in [0, 1]"}
	}
	return nil
}
