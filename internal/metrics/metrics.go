// Package metrics exports spin and confetti counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iburimskiy/wheel-of-luck/internal/spin"
)

const (
	labelCause = "cause"
	labelLabel = "label"
)

// Metrics is a private registry plus the wheel's collectors.
type Metrics struct {
	Registry *prometheus.Registry

	spinsStarted prometheus.Counter
	stops        *prometheus.CounterVec
	results      *prometheus.CounterVec
	spinSeconds  prometheus.Histogram
	particles    prometheus.Gauge

	startedAt time.Time
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		spinsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wheel_spins_started_total",
			Help: "Spins accepted by the controller.",
		}),
		stops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wheel_stops_total",
			Help: "Stop transitions by cause (manual or auto).",
		}, []string{labelCause}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wheel_results_total",
			Help: "Settled spins by winning label.",
		}, []string{labelLabel}),
		spinSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wheel_spin_duration_seconds",
			Help:    "Time from spin start to settlement.",
			Buckets: []float64{2, 4, 5, 6, 8, 10, 15},
		}),
		particles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wheel_live_particles",
			Help: "Confetti particles currently on screen.",
		}),
	}
	reg.MustRegister(m.spinsStarted, m.stops, m.results, m.spinSeconds, m.particles)
	return m
}

// Observe is a spin.Controller subscriber.
func (m *Metrics) Observe(ev spin.Event) {
	switch ev.Kind {
	case spin.EventSpinStarted:
		m.startedAt = ev.At
		m.spinsStarted.Inc()
	case spin.EventStopRequested:
		cause := "manual"
		if ev.Auto {
			cause = "auto"
		}
		m.stops.WithLabelValues(cause).Inc()
	case spin.EventSettled:
		m.results.WithLabelValues(ev.Label).Inc()
		if !m.startedAt.IsZero() {
			m.spinSeconds.Observe(ev.At.Sub(m.startedAt).Seconds())
		}
	}
}

// SetParticles records the live confetti count.
func (m *Metrics) SetParticles(n int) {
	m.particles.Set(float64(n))
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
