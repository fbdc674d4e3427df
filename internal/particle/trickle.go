package particle

import (
	"time"

	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/rng"
)

// Trickle keeps a light ambient drizzle of confetti going after a win. It is
// a host-side timer: it only decides when to burst and never touches the
// wheel.
type Trickle struct {
	Every  time.Duration
	Chance float64
	Count  int

	src     rng.Source
	elapsed time.Duration
}

// NewTrickle returns the reference policy: a 10% roll once per second for a
// burst of five.
func NewTrickle(src rng.Source) *Trickle {
	if src == nil {
		src = rng.Default()
	}
	return &Trickle{
		Every:  config.ParticleTrickleEvery,
		Chance: config.ParticleTrickleChance,
		Count:  config.ParticleTrickleBurst,
		src:    src,
	}
}

// Advance accumulates dt and returns how many particles to burst now, or 0.
// Rolls happen only while eligible (wheel idle and a result on screen); time
// spent ineligible does not bank extra rolls.
func (t *Trickle) Advance(dt time.Duration, eligible bool) int {
	if !eligible {
		t.elapsed = 0
		return 0
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.Every <= 0 || t.elapsed < t.Every {
		return 0
	}
	t.elapsed -= t.Every
	if rng.Chance(t.src, t.Chance) {
		return t.Count
	}
	return 0
}
