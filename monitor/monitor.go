// monitor/monitor.go
package monitor

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wfunc/numberguess/game"
	"github.com/wfunc/numberguess/logger"
)

type Metrics struct {
	GamesStarted  prometheus.Counter
	GamesWon      prometheus.Counter
	Guesses       *prometheus.CounterVec
	Rejected      *prometheus.CounterVec
	AttemptsToWin prometheus.Histogram
	Bound         prometheus.Gauge
}

func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Number of games started or restarted",
		}),
		GamesWon: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_won_total",
			Help:      "Number of games finished with a correct guess",
		}),
		Guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guesses_total",
			Help:      "Accepted guesses by outcome",
		}, []string{"outcome"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Rejected calls by error kind",
		}, []string{"kind"}),
		AttemptsToWin: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attempts_to_win",
			Help:      "Attempts needed to find the secret",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		Bound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bound",
			Help:      "Upper limit of the current guessing range",
		}),
	}

	reg.MustRegister(
		m.GamesStarted,
		m.GamesWon,
		m.Guesses,
		m.Rejected,
		m.AttemptsToWin,
		m.Bound,
	)

	return m
}

// Monitor records game activity and can expose it over HTTP.
type Monitor struct {
	metrics   *Metrics
	registry  *prometheus.Registry
	startTime time.Time
	server    *http.Server
	addr      string
}

func NewMonitor(namespace string) *Monitor {
	reg := prometheus.NewRegistry()
	m := &Monitor{
		metrics:   NewMetrics(namespace, reg),
		registry:  reg,
		startTime: time.Now(),
	}
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "uptime_seconds",
		Help:      "Seconds since the process started",
	}, func() float64 {
		return time.Since(m.startTime).Seconds()
	}))
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

// Metrics returns the collectors.
func (m *Monitor) Metrics() *Metrics {
	return m.metrics
}

// StartServer serves /metrics on addr in the background.
func (m *Monitor) StartServer(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	m.addr = ln.Addr().String()

	logger.Log.Infof("Metrics server listening on %s", m.addr)
	go func() {
		if err := m.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("Metrics server exited: %v", err)
		}
	}()
	return nil
}

// Addr is the address the metrics server is bound to, empty until started.
func (m *Monitor) Addr() string {
	return m.addr
}

// Stop shuts the metrics server down if it was started.
func (m *Monitor) Stop() {
	if m.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := m.server.Shutdown(ctx); err != nil {
		logger.Log.Warnf("Metrics server shutdown: %v", err)
	}
}

func (m *Monitor) ObserveStart(bound int) {
	m.metrics.GamesStarted.Inc()
	m.metrics.Bound.Set(float64(bound))
}

func (m *Monitor) ObserveGuess(res game.Result) {
	m.metrics.Guesses.WithLabelValues(string(res.Outcome)).Inc()
	if res.Outcome == game.OutcomeCorrect {
		m.metrics.GamesWon.Inc()
		m.metrics.AttemptsToWin.Observe(float64(res.Attempts))
	}
}

func (m *Monitor) ObserveRejected(kind game.Kind) {
	m.metrics.Rejected.WithLabelValues(string(kind)).Inc()
}
