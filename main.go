package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/wheel-of-luck/internal/config"
	"github.com/iburimskiy/wheel-of-luck/internal/game"
	"github.com/iburimskiy/wheel-of-luck/internal/history"
	"github.com/iburimskiy/wheel-of-luck/internal/logger"
	"github.com/iburimskiy/wheel-of-luck/internal/metrics"
	"github.com/iburimskiy/wheel-of-luck/internal/options"
	"github.com/iburimskiy/wheel-of-luck/internal/particle"
	"github.com/iburimskiy/wheel-of-luck/internal/rng"
	"github.com/iburimskiy/wheel-of-luck/internal/sound"
	"github.com/iburimskiy/wheel-of-luck/internal/spin"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("wheel exited", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	list, err := options.LoadOrDefault(cfg.Options.File)
	if err != nil {
		// keep going with the default prizes rather than an empty wheel
		log.Warn("options file unreadable, using defaults", zap.String("file", cfg.Options.File), zap.Error(err))
		list = options.New(options.Defaults...)
	}

	src := rng.Default()
	if cfg.Spin.Seed != 0 {
		src = rng.NewSeeded(cfg.Spin.Seed)
		log.Info("using fixed seed", zap.Uint64("seed", cfg.Spin.Seed))
	}

	ctrl := spin.NewController(src)

	recorder := history.NewFileRecorder(cfg.History.Capacity, cfg.History.File)
	defer func() { _ = recorder.Close() }()
	ctrl.Subscribe(recorder.Observe)

	m := metrics.New()
	ctrl.Subscribe(m.Observe)

	player := sound.New(cfg.Sound, log)
	if cfg.Sound.Enabled {
		if err := player.Start(); err != nil {
			log.Warn("sound disabled", zap.Error(err))
		}
	}
	defer player.Close()
	ctrl.Subscribe(player.Observe)

	trickle := particle.NewTrickle(src)
	trickle.Count = cfg.Particles.TrickleBurst

	g := game.New(game.Deps{
		Config:     cfg,
		Options:    list,
		Controller: ctrl,
		Particles:  particle.NewSystem(src, particle.DefaultPalette),
		Trickle:    trickle,
		History:    recorder,
		Sound:      player,
		Metrics:    m,
		Rand:       src,
		Log:        log,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, egCtx := errgroup.WithContext(ctx)
	if cfg.Metrics.Listen != "" {
		eg.Go(func() error {
			log.Info("serving metrics", zap.String("addr", cfg.Metrics.Listen))
			return m.Serve(egCtx, cfg.Metrics.Listen)
		})
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Wheel of Luck - Space: Spin/Stop, Esc/Q: Quit")
	ebiten.SetTPS(config.TicksPerSecond)

	log.Info("wheel ready", zap.Int("options", list.Len()))
	runErr := ebiten.RunGame(g)
	cancel()
	if err := eg.Wait(); err != nil {
		log.Warn("metrics server stopped", zap.Error(err))
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	return nil
}
