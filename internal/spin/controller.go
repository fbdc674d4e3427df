// Package spin drives the wheel through its spin, decelerate and settle
// lifecycle and picks the winning option.
//
// A Controller is mutated only by the goroutine that ticks it. It never
// blocks, sleeps or performs I/O, and invalid requests are reported as
// Ignored instead of failing.
package spin

import (
	"math"
	"time"

	"github.com/iburimskiy/wheel-of-luck/internal/clock"
	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/rng"
)

// Tuning holds the physical constants of a spin. Velocities are in degrees
// per tick.
type Tuning struct {
	MinVelocity   float64
	MaxVelocity   float64
	AutoStopAfter time.Duration
	DecayFactor   float64
	JitterChance  float64
	JitterBand    float64
	// MaxDecayRatio caps a single Stopping tick at this fraction of the
	// previous velocity, so jitter can never speed the wheel back up. With
	// the default constants the cap cuts off most of the upper half of the
	// jitter band, so jitter slows the wheel more often than it eases it.
	MaxDecayRatio float64
	StopThreshold float64
}

// DefaultTuning matches the reference 20ms cadence.
func DefaultTuning() Tuning {
	return Tuning{
		MinVelocity:   config.SpinMinVelocity,
		MaxVelocity:   config.SpinMaxVelocity,
		AutoStopAfter: config.SpinAutoStopAfter,
		DecayFactor:   config.SpinDecayFactor,
		JitterChance:  config.SpinJitterChance,
		JitterBand:    config.SpinJitterBand,
		MaxDecayRatio: config.SpinMaxDecayRatio,
		StopThreshold: config.SpinStopThreshold,
	}
}

// Controller owns the wheel rotation state.
type Controller struct {
	tuning Tuning
	src    rng.Source
	clk    clock.Clock

	state     State
	angle     float64
	velocity  float64
	elapsed   time.Duration
	startedAt time.Time
	options   []string

	last    Result
	hasLast bool

	subscribers []func(Event)
}

// Option configures a Controller.
type Option func(*Controller)

// WithTuning replaces the default constants.
func WithTuning(t Tuning) Option {
	return func(c *Controller) { c.tuning = t }
}

// WithClock sets the time source used for event timestamps.
func WithClock(clk clock.Clock) Option {
	return func(c *Controller) { c.clk = clk }
}

// WithAngle sets the initial rotation.
func WithAngle(angle float64) Option {
	return func(c *Controller) { c.angle = normalize(angle) }
}

// NewController creates an idle controller drawing randomness from src.
// A nil src falls back to rng.Default().
func NewController(src rng.Source, opts ...Option) *Controller {
	if src == nil {
		src = rng.Default()
	}
	c := &Controller{
		tuning: DefaultTuning(),
		src:    src,
		clk:    clock.System{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn for every transition. Subscribers run synchronously
// on the ticking goroutine in registration order, so they must not block.
// The controller is already Idle when EventSettled is delivered, so a
// subscriber may Start the next spin from it.
func (c *Controller) Subscribe(fn func(Event)) {
	if fn != nil {
		c.subscribers = append(c.subscribers, fn)
	}
}

// Start begins a spin over a private copy of options.
func (c *Controller) Start(options []string) Status {
	if c.state != Idle || len(options) == 0 {
		return Ignored
	}
	c.options = append(c.options[:0:0], options...)
	c.velocity = rng.Range(c.src, c.tuning.MinVelocity, c.tuning.MaxVelocity)
	c.elapsed = 0
	c.startedAt = c.clk.Now()
	c.state = Spinning
	c.emit(Event{
		Kind:     EventSpinStarted,
		At:       c.startedAt,
		Options:  len(c.options),
		Velocity: c.velocity,
	})
	return Accepted
}

// RequestStop moves a spinning wheel into deceleration, which starts on the
// next tick. Repeated calls are ignored.
func (c *Controller) RequestStop() Status {
	if c.state != Spinning {
		return Ignored
	}
	c.stop(false)
	return Accepted
}

// Tick advances the wheel by one step and returns the angle to draw. The
// status is Ignored when the wheel is at rest.
func (c *Controller) Tick(dt time.Duration) (float64, Status) {
	switch c.state {
	case Spinning:
		if dt > 0 {
			c.elapsed += dt
		}
		if c.elapsed >= c.tuning.AutoStopAfter {
			c.stop(true)
		}
		c.advance()
		return c.angle, Accepted
	case Stopping:
		if dt > 0 {
			c.elapsed += dt
		}
		c.advance()
		c.decelerate()
		if c.velocity < c.tuning.StopThreshold {
			c.settle()
		}
		return c.angle, Accepted
	default:
		return c.angle, Ignored
	}
}

func (c *Controller) stop(auto bool) {
	c.state = Stopping
	c.emit(Event{
		Kind:     EventStopRequested,
		At:       c.clk.Now(),
		Options:  len(c.options),
		Velocity: c.velocity,
		Auto:     auto,
	})
}

func (c *Controller) advance() {
	c.angle = math.Mod(c.angle+c.velocity, 360)
}

func (c *Controller) decelerate() {
	prev := c.velocity
	v := prev * c.tuning.DecayFactor
	if rng.Chance(c.src, c.tuning.JitterChance) {
		v *= rng.Range(c.src, 1-c.tuning.JitterBand, 1+c.tuning.JitterBand)
	}
	if ceiling := prev * c.tuning.MaxDecayRatio; v > ceiling {
		v = ceiling
	}
	if v < 0 {
		v = 0
	}
	c.velocity = v
}

func (c *Controller) settle() {
	c.velocity = 0
	c.state = Settled

	idx := WinningIndex(c.angle, len(c.options))
	c.last = Result{
		Label: c.options[idx],
		Index: idx,
		At:    c.clk.Now(),
		Angle: c.angle,
	}
	c.hasLast = true
	c.state = Idle

	c.emit(Event{
		Kind:    EventSettled,
		At:      c.last.At,
		Label:   c.last.Label,
		Index:   idx,
		Options: len(c.options),
	})
}

func (c *Controller) emit(ev Event) {
	for _, fn := range c.subscribers {
		fn(ev)
	}
}

// State returns the current lifecycle phase.
func (c *Controller) State() State { return c.state }

// Angle returns the current rotation in [0, 360).
func (c *Controller) Angle() float64 { return c.angle }

// Velocity returns the current angular velocity in degrees per tick.
func (c *Controller) Velocity() float64 { return c.velocity }

// Elapsed returns the tick time accumulated since the current spin started.
func (c *Controller) Elapsed() time.Duration { return c.elapsed }

// Busy reports whether a spin is in progress.
func (c *Controller) Busy() bool { return c.state == Spinning || c.state == Stopping }

// Options returns a copy of the snapshot taken at the last Start.
func (c *Controller) Options() []string {
	return append([]string(nil), c.options...)
}

// OptionCount is the size of the snapshot taken at the last Start.
func (c *Controller) OptionCount() int { return len(c.options) }

// LastResult returns the most recent settlement, if any.
func (c *Controller) LastResult() (Result, bool) { return c.last, c.hasLast }
