package particle

import (
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/rng"
)

// System owns the live confetti. Like the wheel it is mutated only by the
// goroutine that ticks it.
type System struct {
	src       rng.Source
	palette   []color.RGBA
	particles []Particle
}

// NewSystem creates an empty system. A nil src falls back to rng.Default()
// and an empty palette to DefaultPalette.
func NewSystem(src rng.Source, palette []color.RGBA) *System {
	if src == nil {
		src = rng.Default()
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &System{
		src:     src,
		palette: append([]color.RGBA(nil), palette...),
	}
}

// Burst adds count particles spread across width, just above the top edge.
// Existing particles are kept. A surface with no area gets nothing.
func (s *System) Burst(count int, width, height float64) {
	if count <= 0 || width <= 0 || height <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		s.particles = append(s.particles, Particle{
			X:             rng.Range(s.src, 0, width),
			Y:             rng.Range(s.src, config.ParticleSpawnTop, config.ParticleSpawnBottom),
			Size:          rng.Range(s.src, config.ParticleMinSize, config.ParticleMaxSize),
			Color:         s.palette[rng.IntN(s.src, len(s.palette))],
			Speed:         rng.Range(s.src, config.ParticleMinSpeed, config.ParticleMaxSpeed),
			Rotation:      rng.Range(s.src, 0, 360),
			RotationSpeed: rng.Range(s.src, -config.ParticleMaxSpin, config.ParticleMaxSpin),
			Shape:         Shape(rng.IntN(s.src, shapeCount)),
		})
	}
}

// Tick moves every particle by dt and drops the ones that fell past height.
// The returned snapshots are copies. dt <= 0 counts as one reference tick.
func (s *System) Tick(dt time.Duration, height float64) []Snapshot {
	steps := 1.0
	if dt > 0 {
		steps = float64(dt) / float64(config.TickDuration)
	}

	live := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		p.Y += p.Speed * steps
		p.Rotation = math.Mod(p.Rotation+p.RotationSpeed*steps, 360)
		if p.Rotation < 0 {
			p.Rotation += 360
		}
		if p.Y > height {
			continue
		}
		live = append(live, p)
	}
	// clear the tail so dropped particles are not retained
	for i := len(live); i < len(s.particles); i++ {
		s.particles[i] = Particle{}
	}
	s.particles = live

	return s.Snapshots()
}

// Snapshots returns copies of the live particles without advancing them.
func (s *System) Snapshots() []Snapshot {
	out := make([]Snapshot, len(s.particles))
	for i := range s.particles {
		out[i] = s.particles[i].snapshot()
	}
	return out
}

// Len returns the number of live particles.
func (s *System) Len() int { return len(s.particles) }

// Empty reports whether the confetti has finished.
func (s *System) Empty() bool { return len(s.particles) == 0 }

// Reset drops every particle.
func (s *System) Reset() {
	clear(s.particles)
	s.particles = s.particles[:0]
}
