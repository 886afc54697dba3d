package keyqueue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Keys are session ids, so none of these carry a per-key label.
var (
	submissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "echotutor",
		Subsystem: "keyqueue",
		Name:      "submissions_total",
		Help:      "Jobs accepted for execution.",
	})

	queueFullTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "echotutor",
		Subsystem: "keyqueue",
		Name:      "queue_full_total",
		Help:      "Submissions refused because the key's queue was full.",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "echotutor",
		Subsystem: "keyqueue",
		Name:      "run_duration_seconds",
		Help:      "Job execution latency per attempt.",
		Buckets:   prometheus.DefBuckets,
	})

	activeLanes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "echotutor",
		Subsystem: "keyqueue",
		Name:      "active_lanes",
		Help:      "Keys that currently have queued or running jobs.",
	})

	queuedJobs = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "echotutor",
		Subsystem: "keyqueue",
		Name:      "queued_jobs",
		Help:      "Jobs accepted but not yet started.",
	})
)
