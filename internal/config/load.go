package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no -config flag is given.
const DefaultPath = "wheel.yaml"

// Config is the runtime configuration. Every field has a usable default, so
// the file only needs the keys being changed.
type Config struct {
	Options   OptionsConfig   `yaml:"options"`
	Spin      SpinConfig      `yaml:"spin"`
	Particles ParticlesConfig `yaml:"particles"`
	Sound     SoundConfig     `yaml:"sound"`
	Log       LogConfig       `yaml:"log"`
	History   HistoryConfig   `yaml:"history"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type OptionsConfig struct {
	File string `yaml:"file"`
}

type SpinConfig struct {
	// Seed pins the random source; 0 draws a fresh seed every run.
	Seed uint64 `yaml:"seed"`
}

type ParticlesConfig struct {
	WinBurst     int `yaml:"win_burst"`
	TrickleBurst int `yaml:"trickle_burst"`
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	// WinFile replaces the synthesised fanfare with a wav, mp3 or flac file.
	WinFile string `yaml:"win_file"`
}

type LogConfig struct {
	App   string `yaml:"app"`
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
	File  bool   `yaml:"file"`
}

type HistoryConfig struct {
	File     string `yaml:"file"`
	Capacity int    `yaml:"capacity"`
}

type MetricsConfig struct {
	// Listen is the address for /metrics; empty disables the endpoint.
	Listen string `yaml:"listen"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Options:   OptionsConfig{File: "options.txt"},
		Particles: ParticlesConfig{WinBurst: ParticleWinBurst, TrickleBurst: ParticleTrickleBurst},
		Sound:     SoundConfig{Enabled: true, Volume: 0.8},
		Log:       LogConfig{App: "wheel", Level: "info", Dir: "logs"},
		History:   HistoryConfig{File: "history.log", Capacity: HistoryCapacity},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Options.File == "" {
		errs = append(errs, errors.New("options.file must not be empty"))
	}
	if c.Particles.WinBurst < 0 {
		errs = append(errs, fmt.Errorf("particles.win_burst must be >= 0, got %d", c.Particles.WinBurst))
	}
	if c.Particles.TrickleBurst < 0 {
		errs = append(errs, fmt.Errorf("particles.trickle_burst must be >= 0, got %d", c.Particles.TrickleBurst))
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound.volume must be in [0,1], got %v", c.Sound.Volume))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.History.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("history.capacity must be > 0, got %d", c.History.Capacity))
	}
	return errors.Join(errs...)
}
