package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Scene is a host-independent snapshot of everything a renderer needs, in
// world units.
type Scene struct {
	Width, Height float64
	Background    string

	Plane    PlaneSprite
	Segments []core.RectF

	Score    int
	Paused   bool
	GameOver bool
}

// PlaneSprite describes how to draw the plane.
type PlaneSprite struct {
	X, Y             float64 // Anchor position
	W, H             float64
	AnchorX, AnchorY float64
	Angle            float64 // Degrees
	Frame            int
	Alive            bool
}

// Scene returns a snapshot of the current run.
func (g *Game) Scene() Scene {
	s := Scene{
		Width:      g.cfg.World.Width,
		Height:     g.cfg.World.Height,
		Background: g.cfg.World.Background,
		Score:      g.score,
		Paused:     g.paused,
	}
	if g.plane == nil {
		return s
	}

	s.GameOver = !g.plane.Alive()
	s.Plane = PlaneSprite{
		X:       g.plane.body.X,
		Y:       g.plane.body.Y,
		W:       g.plane.body.W,
		H:       g.plane.body.H,
		AnchorX: g.plane.body.AnchorX,
		AnchorY: g.plane.body.AnchorY,
		Angle:   g.plane.Angle(),
		Frame:   g.plane.Frame(),
		Alive:   g.plane.Alive(),
	}

	segs := g.spawner.Segments()
	s.Segments = make([]core.RectF, 0, len(segs))
	for _, b := range segs {
		s.Segments = append(s.Segments, b.Bounds())
	}
	return s
}
