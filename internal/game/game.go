// Package game hosts the wheel in an ebiten window: it feeds input to the
// spin controller, ticks the controller and the confetti at a fixed rate,
// and draws both.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/history"
	"github.com/iburimskiy/wheel-of-luck/internal/metrics"
	"github.com/iburimskiy/wheel-of-luck/internal/options"
	"github.com/iburimskiy/wheel-of-luck/internal/particle"
	"github.com/iburimskiy/wheel-of-luck/internal/rng"
	"github.com/iburimskiy/wheel-of-luck/internal/sound"
	"github.com/iburimskiy/wheel-of-luck/internal/spin"
)

// Deps are the collaborators the window drives. Metrics may be nil.
type Deps struct {
	Config     config.Config
	Options    *options.List
	Controller *spin.Controller
	Particles  *particle.System
	Trickle    *particle.Trickle
	History    *history.Recorder
	Sound      *sound.Player
	Metrics    *metrics.Metrics
	Rand       rng.Source
	Log        *zap.Logger
}

type game struct {
	Deps

	buttons []*button

	// wheel
	angle       float64
	lastSegment int
	pulse       float64
	time        float64

	// confetti
	confetti []particle.Snapshot

	// input edge detection
	prevKey map[ebiten.Key]bool

	// status line
	result  string
	message string
	lastErr error
}

// New wires the window to d and subscribes it to the controller.
func New(d Deps) ebiten.Game {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	g := &game{
		Deps:        d,
		buttons:     newButtons(),
		angle:       d.Controller.Angle(),
		lastSegment: -1,
		prevKey:     map[ebiten.Key]bool{},
	}
	d.Controller.Subscribe(g.onSpinEvent)
	return g
}

func (g *game) onSpinEvent(ev spin.Event) {
	switch ev.Kind {
	case spin.EventSpinStarted:
		g.result = ""
		g.message = ""
		g.lastErr = nil
		g.Log.Info("spin started", zap.Int("options", ev.Options), zap.Float64("velocity", ev.Velocity))
	case spin.EventStopRequested:
		g.Log.Debug("stop requested", zap.Bool("auto", ev.Auto), zap.Float64("velocity", ev.Velocity))
	case spin.EventSettled:
		g.result = ev.Label
		g.Particles.Burst(g.Config.Particles.WinBurst, config.WindowWidth, config.WindowHeight)
		g.Log.Info("spin settled", zap.String("label", ev.Label), zap.Int("index", ev.Index))
	}
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.refreshButtons()
	if act, ok := g.clickedButton(); ok {
		g.perform(act)
	}

	if justPressed(ebiten.KeySpace) {
		if g.Controller.Busy() {
			g.perform(actStop)
		} else {
			g.perform(actSpin)
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step()
	return nil
}

// step advances every simulation by one fixed tick.
func (g *game) step() {
	dt := config.TickDuration
	g.time += dt.Seconds()

	angle, st := g.Controller.Tick(dt)
	g.angle = angle
	if st == spin.Accepted && g.Controller.Busy() {
		if seg := spin.WinningIndex(angle, g.Controller.OptionCount()); seg != g.lastSegment {
			if g.lastSegment >= 0 {
				g.Sound.Play(sound.CueClick)
			}
			g.lastSegment = seg
		}
	} else {
		g.lastSegment = -1
	}

	_, hasResult := g.Controller.LastResult()
	if n := g.Trickle.Advance(dt, !g.Controller.Busy() && hasResult); n > 0 {
		g.Particles.Burst(n, config.WindowWidth, config.WindowHeight)
	}
	if !g.Particles.Empty() || len(g.confetti) > 0 {
		g.confetti = g.Particles.Tick(dt, config.WindowHeight)
	}
	if g.Metrics != nil {
		g.Metrics.SetParticles(g.Particles.Len())
	}

	g.pulse = clamp01(g.Sound.Level() * config.PointerPulseGain)
}

func (g *game) refreshButtons() {
	busy := g.Controller.Busy()
	mouseX, mouseY := ebiten.CursorPosition()
	for _, b := range g.buttons {
		switch b.act {
		case actSpin:
			b.enabled = !busy && g.Options.Len() > 0
		case actStop:
			b.enabled = g.Controller.State() == spin.Spinning
		default:
			b.enabled = !busy
		}
		b.hovered = b.rect.Contains(mouseX, mouseY)
	}
}

func (g *game) clickedButton() (action, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, b := range g.buttons {
			b.pressed = b.hovered
		}
	}
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return 0, false
	}
	var (
		clicked action
		ok      bool
	)
	for _, b := range g.buttons {
		if b.pressed && b.hovered && b.enabled {
			clicked, ok = b.act, true
		}
		b.pressed = false
	}
	return clicked, ok
}

func (g *game) perform(act action) {
	var err error
	switch act {
	case actSpin:
		if g.Controller.Start(g.Options.Labels()) == spin.Ignored {
			g.message = "Add at least one option to spin"
		}
	case actStop:
		g.Controller.RequestStop()
	case actAdd:
		err = g.addOption()
	case actRemove:
		err = g.removeOption()
	case actShuffle:
		if !g.Controller.Busy() {
			g.Options.Shuffle(g.Rand)
		}
	case actSave:
		err = g.saveOptions()
	case actLoad:
		err = g.loadOptions()
	case actImport:
		err = g.importOptions()
	case actExport:
		err = g.exportOptions()
	}
	if err != nil {
		g.lastErr = err
		g.Log.Warn("action failed", zap.Stringer("action", act), zap.Error(err))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
