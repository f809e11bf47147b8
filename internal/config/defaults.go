package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:      400,
			Height:     490,
			Background: "#71c5cf",
		},
		Physics: FlappyPhysics{
			Gravity:      1000,
			JumpVelocity: -350,
		},
		Player: FlappyPlayer{
			X:         100,
			Y:         245,
			Width:     50,
			Height:    43,
			AnchorX:   -0.2,
			AnchorY:   0.5,
			MaxAngle:  20,
			AngleStep: 1,
			JumpAngle: -20,
			JumpTween: 100 * time.Millisecond,
			Frames:    []int{0, 1, 2, 1},
			FrameRate: 30,
		},
		Obstacles: FlappyObstacles{
			SpawnInterval: 1500 * time.Millisecond,
			SpawnX:        400,
			Velocity:      -200,
			Segments:      8,
			SegmentPitch:  60,
			SegmentOffset: 10,
			SegmentWidth:  50,
			SegmentHeight: 50,
			GapSize:       2,
			MinHole:       1,
			MaxHole:       5,
		},
		Sound: FlappySound{
			JumpVolume: 0.2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
