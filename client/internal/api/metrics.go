package api

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	sdkerrors "github.com/miracles123-max/echo-tutor/client/internal/errors"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "echotutor_client",
			Name:      "requests_total",
			Help:      "Backend calls by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	enqueueFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "echotutor_client",
			Name:      "enqueue_failures_total",
			Help:      "Calls the executor refused (queue full, closed or canceled).",
		},
		[]string{"key_bucket"},
	)
)

func observe(op string, err error) {
	requestsTotal.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	var ce *sdkerrors.ClassifiedError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ce) && ce.StatusCode > 0:
		return "http_error"
	case errors.As(err, &ce):
		return "network_error"
	default:
		return "error"
	}
}
