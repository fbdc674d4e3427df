// Package sound plays short cues on wheel transitions. Playback is
// fire-and-forget: cues are handed to a mixer that the speaker drains on its
// own goroutine, so nothing here blocks a tick.
package sound

import (
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/spin"
)

// Player owns the output chain: mixer -> volume -> tap -> speaker.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	tap     *Tap
	win     *beep.Buffer
	started bool
	log     *zap.Logger

	// lock/unlock guard the mixer against the speaker goroutine
	lock     func()
	unlock   func()
	shutdown func()
}

// New builds the chain without opening an audio device.
func New(cfg config.SoundConfig, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	rate := beep.SampleRate(config.SampleRate)
	mixer := &beep.Mixer{}
	p := &Player{
		rate:   rate,
		mixer:  mixer,
		tap:    NewTap(newVolume(mixer, cfg.Volume), config.SoundTapRingSize),
		log:    log,
		lock:     speaker.Lock,
		unlock:   speaker.Unlock,
		shutdown: speaker.Close,
	}
	if cfg.WinFile != "" {
		buf, err := LoadFile(cfg.WinFile, rate)
		if err != nil {
			log.Warn("win sound unavailable, using fanfare", zap.String("file", cfg.WinFile), zap.Error(err))
		} else {
			p.win = buf
		}
	}
	return p
}

// Start opens the speaker. On failure the player stays silent and the error
// is returned for logging; every Play becomes a no-op.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(config.SoundBufferTime)); err != nil {
		return err
	}
	speaker.Play(p.tap)
	p.started = true
	return nil
}

// Play queues c. It never waits for the sound to finish.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	s := p.streamer(c)
	if s == nil {
		return
	}
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

func (p *Player) streamer(c Cue) beep.Streamer {
	switch c {
	case CueSpinStart:
		return Whoosh(p.rate)
	case CueClick:
		return Click(p.rate)
	case CueWin:
		if p.win != nil {
			return p.win.Streamer(0, p.win.Len())
		}
		return Fanfare(p.rate)
	default:
		return nil
	}
}

// Observe is a spin.Controller subscriber.
func (p *Player) Observe(ev spin.Event) {
	switch ev.Kind {
	case spin.EventSpinStarted:
		p.Play(CueSpinStart)
	case spin.EventSettled:
		p.Play(CueWin)
	}
}

// Level is the recent output loudness, roughly 0..1.
func (p *Player) Level() float64 {
	return p.tap.Level(p.rate.N(config.SoundBufferTime))
}

// Close silences everything still queued and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.shutdown()
	p.started = false
}
