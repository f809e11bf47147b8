package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestAddRowLeavesOneGap(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	rng := rand.New(rand.NewSource(42))
	seen := make(map[int]bool)

	for n := 0; n < 500; n++ {
		s := NewObstacleSpawner(cfg)
		hole := s.AddRow(rng)
		seen[hole] = true

		if hole < cfg.MinHole || hole > cfg.MaxHole {
			t.Fatalf("hole %d outside [%d, %d]", hole, cfg.MinHole, cfg.MaxHole)
		}
		if got, want := len(s.Segments()), cfg.Segments-cfg.GapSize; got != want {
			t.Fatalf("row has %d segments, want %d", got, want)
		}

		present := make(map[int]bool)
		for _, seg := range s.Segments() {
			if seg.X != cfg.SpawnX {
				t.Fatalf("segment x = %v, want %v", seg.X, cfg.SpawnX)
			}
			i := int((seg.Y - cfg.SegmentOffset) / cfg.SegmentPitch)
			present[i] = true
		}
		for i := 0; i < cfg.Segments; i++ {
			inGap := i >= hole && i < hole+cfg.GapSize
			if present[i] == inGap {
				t.Fatalf("hole %d: slot %d present=%v", hole, i, present[i])
			}
		}
	}

	for h := cfg.MinHole; h <= cfg.MaxHole; h++ {
		if !seen[h] {
			t.Errorf("hole %d never chosen in 500 rows", h)
		}
	}
}

func TestSegmentsMoveAndLeave(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	world := core.NewRectF(0, 0, 400, 490)
	s := NewObstacleSpawner(cfg)
	s.AddRow(rand.New(rand.NewSource(1)))

	s.Update(0.5, world)
	for _, seg := range s.Segments() {
		if seg.X != 300 {
			t.Fatalf("segment x = %v after 0.5s, want 300", seg.X)
		}
	}

	// 400 + 50 wide at -200/s is fully off the left edge after 2.25s.
	for i := 0; i < 20; i++ {
		s.Update(0.1, world)
	}
	if n := len(s.Segments()); n != 0 {
		t.Errorf("%d segments left after leaving the world", n)
	}
	if s.rows != 1 {
		t.Errorf("rows = %d, want 1", s.rows)
	}
}

func TestSegmentsSurviveBeforeEnteringWorld(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	cfg.SpawnX = 500 // Off-screen to the right
	s := NewObstacleSpawner(cfg)
	s.AddRow(rand.New(rand.NewSource(1)))

	s.Update(0.1, core.NewRectF(0, 0, 400, 490))
	if n := len(s.Segments()); n != cfg.Segments-cfg.GapSize {
		t.Errorf("segments killed before entering the world: %d left", n)
	}
}

func TestFreezeAndClear(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	s := NewObstacleSpawner(cfg)
	rng := rand.New(rand.NewSource(9))
	s.AddRow(rng)
	s.AddRow(rng)

	s.Freeze()
	s.Update(1, core.NewRectF(0, 0, 400, 490))
	for _, seg := range s.Segments() {
		if seg.X != cfg.SpawnX {
			t.Fatalf("frozen segment moved to %v", seg.X)
		}
	}

	s.Clear()
	if len(s.Segments()) != 0 || s.rows != 0 || s.lastGap != -1 {
		t.Errorf("clear left segments=%d rows=%d lastGap=%d", len(s.Segments()), s.rows, s.lastGap)
	}
}
