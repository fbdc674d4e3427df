package particle

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/rng"
)

const (
	surfaceW = 720.0
	surfaceH = 640.0
)

func TestBurstSpawnsAboveSurface(t *testing.T) {
	s := NewSystem(rng.NewSeeded(1), nil)
	s.Burst(config.ParticleWinBurst, surfaceW, surfaceH)

	if s.Len() != config.ParticleWinBurst {
		t.Fatalf("Len = %d, want %d", s.Len(), config.ParticleWinBurst)
	}
	shapes := make(map[Shape]int)
	for _, p := range s.Snapshots() {
		if p.X < 0 || p.X >= surfaceW {
			t.Fatalf("x = %v outside surface", p.X)
		}
		if p.Y >= 0 || p.Y < config.ParticleSpawnTop {
			t.Fatalf("y = %v, want just above the top edge", p.Y)
		}
		if p.Size < config.ParticleMinSize || p.Size >= config.ParticleMaxSize {
			t.Fatalf("size = %v out of range", p.Size)
		}
		shapes[p.Shape]++
	}
	if len(shapes) != shapeCount {
		t.Fatalf("expected every shape in a burst of 100, got %v", shapes)
	}
}

func TestBurstsCompose(t *testing.T) {
	s := NewSystem(rng.NewSeeded(2), nil)
	s.Burst(10, surfaceW, surfaceH)
	s.Burst(5, surfaceW, surfaceH)
	if s.Len() != 15 {
		t.Fatalf("Len = %d, want 15", s.Len())
	}
}

func TestBurstIgnoresDegenerateInput(t *testing.T) {
	s := NewSystem(rng.NewSeeded(3), nil)
	s.Burst(0, surfaceW, surfaceH)
	s.Burst(-4, surfaceW, surfaceH)
	s.Burst(10, 0, surfaceH)
	s.Burst(10, surfaceW, 0)
	if !s.Empty() {
		t.Fatalf("expected no particles, got %d", s.Len())
	}
}

func TestTickDrainsMonotonically(t *testing.T) {
	s := NewSystem(rng.NewSeeded(4), nil)
	s.Burst(config.ParticleWinBurst, surfaceW, surfaceH)

	// slowest particle starts at the top of the spawn band
	bound := int(math.Ceil((surfaceH-config.ParticleSpawnTop)/config.ParticleMinSpeed)) + 1

	prev := s.Len()
	ticks := 0
	for !s.Empty() {
		live := s.Tick(config.TickDuration, surfaceH)
		ticks++
		if len(live) > prev {
			t.Fatalf("tick %d: live set grew %d -> %d", ticks, prev, len(live))
		}
		for _, p := range live {
			if p.Y > surfaceH {
				t.Fatalf("stale particle at y=%v survived pruning", p.Y)
			}
		}
		prev = len(live)
		if ticks > bound {
			t.Fatalf("not empty after %d ticks", bound)
		}
	}

	// re-entrant ticks on an empty set are harmless
	if got := s.Tick(config.TickDuration, surfaceH); len(got) != 0 {
		t.Fatalf("empty tick returned %d particles", len(got))
	}
}

func TestTickScalesWithDt(t *testing.T) {
	a := NewSystem(rng.NewSeeded(5), nil)
	b := NewSystem(rng.NewSeeded(5), nil)
	a.Burst(1, surfaceW, surfaceH)
	b.Burst(1, surfaceW, surfaceH)

	a.Tick(config.TickDuration, surfaceH)
	a.Tick(config.TickDuration, surfaceH)
	got := b.Tick(2*config.TickDuration, surfaceH)

	want := a.Snapshots()
	if math.Abs(got[0].Y-want[0].Y) > 1e-9 {
		t.Fatalf("double dt y = %v, two ticks y = %v", got[0].Y, want[0].Y)
	}

	c := NewSystem(rng.NewSeeded(5), nil)
	c.Burst(1, surfaceW, surfaceH)
	before := c.Snapshots()[0].Y
	after := c.Tick(0, surfaceH)[0].Y
	if after <= before {
		t.Fatalf("dt=0 should count as one reference tick")
	}
}

func TestRotationStaysNormalized(t *testing.T) {
	s := NewSystem(rng.NewSeeded(6), nil)
	s.Burst(50, surfaceW, surfaceH)
	for i := 0; i < 40; i++ {
		for _, p := range s.Tick(time.Duration(i)*time.Millisecond, surfaceH) {
			if p.Rotation < 0 || p.Rotation >= 360 {
				t.Fatalf("rotation %v out of [0,360)", p.Rotation)
			}
		}
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewSystem(rng.NewSeeded(7), nil)
	s.Burst(3, surfaceW, surfaceH)
	snap := s.Snapshots()
	snap[0].Y = 1e6
	if s.Tick(config.TickDuration, surfaceH); s.Len() != 3 {
		t.Fatalf("mutating a snapshot affected the live set")
	}
}

func TestPaletteIsUsed(t *testing.T) {
	only := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	s := NewSystem(rng.NewSeeded(8), []color.RGBA{only})
	s.Burst(20, surfaceW, surfaceH)
	for _, p := range s.Snapshots() {
		if p.Color != only {
			t.Fatalf("color = %v, want %v", p.Color, only)
		}
	}
}

func TestReset(t *testing.T) {
	s := NewSystem(rng.NewSeeded(9), nil)
	s.Burst(20, surfaceW, surfaceH)
	s.Reset()
	if !s.Empty() {
		t.Fatalf("Reset left %d particles", s.Len())
	}
}
