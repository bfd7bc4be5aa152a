// Package observability wires structured logging and metrics for every
// binary. Tracing is intentionally absent; the engine has no fan-out calls
// worth a span graph.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/franchizelabs/franchize/internal/config"
)

var Module = fx.Module("observability",
	fx.Provide(NewLogger),
	fx.Provide(NewRegistry),
	fx.Provide(NewMetrics),
)

func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Logging.Level); err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	if cfg.App.Environment == "development" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Metrics holds the engine's domain counters.
type Metrics struct {
	PurchasesAdmitted prometheus.Counter
	PurchasesRejected *prometheus.CounterVec
	DistributionRuns  *prometheus.CounterVec
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		PurchasesAdmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "franchize_purchases_admitted_total",
			Help: "Share purchases admitted to the ledger.",
		}),
		PurchasesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "franchize_purchases_rejected_total",
			Help: "Share purchases rejected by admission rules.",
		}, []string{"reason"}),
		DistributionRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "franchize_distribution_runs_total",
			Help: "Payout distribution runs by selected tier rule.",
		}, []string{"rule"}),
	}
	reg.MustRegister(m.PurchasesAdmitted, m.PurchasesRejected, m.DistributionRuns)
	return m
}
