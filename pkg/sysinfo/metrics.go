package sysinfo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// refreshTotal counts snapshot reads per subsystem. Template
	// formatting batches field resolution, so one invocation should
	// account for at most one refresh per subsystem it touches.
	refreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dshw_provider_refresh_total",
			Help: "Total number of provider snapshot reads",
		},
		[]string{"subsystem"},
	)

	// cpuSampleDuration tracks the two-phase CPU usage sampling, which
	// dominates invocation latency.
	cpuSampleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dshw_cpu_sample_duration_seconds",
			Help:    "Duration of two-phase CPU usage sampling in seconds",
			Buckets: []float64{0.2, 0.25, 0.5, 1, 2, 5},
		},
	)
)
