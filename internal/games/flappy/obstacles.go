package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// ObstacleSpawner adds obstacle rows and moves, freezes and removes their
// segments.
type ObstacleSpawner struct {
	cfg     config.FlappyObstacles
	group   *core.Group
	rows    int
	lastGap int
}

// NewObstacleSpawner creates a spawner with no obstacles.
func NewObstacleSpawner(cfg config.FlappyObstacles) *ObstacleSpawner {
	return &ObstacleSpawner{
		cfg:     cfg,
		group:   core.NewGroup(),
		lastGap: -1,
	}
}

// AddRow adds a column of segments at the spawn line with one gap of
// GapSize segments starting at a random index in [MinHole, MaxHole].
// It returns the gap's first index.
func (s *ObstacleSpawner) AddRow(rng *rand.Rand) int {
	hole := s.cfg.MinHole
	if span := s.cfg.MaxHole - s.cfg.MinHole; span > 0 {
		hole += rng.Intn(span + 1)
	}

	for i := 0; i < s.cfg.Segments; i++ {
		if i >= hole && i < hole+s.cfg.GapSize {
			continue
		}
		s.addOne(s.cfg.SpawnX, float64(i)*s.cfg.SegmentPitch+s.cfg.SegmentOffset)
	}

	s.rows++
	s.lastGap = hole
	return hole
}

// addOne adds a single segment with its top-left corner at (x, y).
func (s *ObstacleSpawner) addOne(x, y float64) {
	seg := core.NewBody(x, y, s.cfg.SegmentWidth, s.cfg.SegmentHeight)
	seg.VelX = s.cfg.Velocity
	seg.OutOfBoundsKill = true
	s.group.Add(seg)
}

// Update moves every segment by dt seconds and drops those that left the
// world.
func (s *ObstacleSpawner) Update(dt float64, world core.RectF) {
	s.group.Update(dt, world)
}

// Freeze stops every segment in place.
func (s *ObstacleSpawner) Freeze() {
	s.group.ForEach(func(b *core.Body) {
		b.Stop()
	})
}

// Overlaps reports whether r touches any segment.
func (s *ObstacleSpawner) Overlaps(r core.RectF) bool {
	return s.group.Overlaps(r)
}

// Segments returns the live segments. The slice must not be modified.
func (s *ObstacleSpawner) Segments() []*core.Body {
	return s.group.Bodies()
}

// Clear removes all segments and resets the row count.
func (s *ObstacleSpawner) Clear() {
	s.group.Clear()
	s.rows = 0
	s.lastGap = -1
}
