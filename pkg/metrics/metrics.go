// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-keygate.
//
// go-keygate is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package metrics provides Prometheus instrumentation for client requests.
// Collectors are registered with the default registry; applications that
// expose a /metrics endpoint pick them up automatically, everyone else pays
// only the cost of a counter increment per call.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all client metrics
	Namespace = "keygate"

	// Label names
	LabelMethod     = "method"
	LabelStatusCode = "status_code"
	LabelErrorCode  = "error_code"
)

var (
	// RequestsTotal tracks the total number of API requests by HTTP method
	// and status code.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of Keygate API requests by method and status code",
		},
		[]string{LabelMethod, LabelStatusCode},
	)

	// RequestDuration tracks the duration of API requests in seconds.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Duration of Keygate API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{LabelMethod},
	)

	// ErrorsTotal tracks the total number of failed operations by error
	// code, including local transport and decode failures (UNKNOWN).
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "client",
			Name:      "errors_total",
			Help:      "Total number of failed Keygate API operations by error code",
		},
		[]string{LabelErrorCode},
	)
)

// RecordRequest records a completed HTTP round trip.
func RecordRequest(method, statusCode string, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, statusCode).Inc()
	RequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordError records a failed operation by error code.
func RecordError(errorCode string) {
	ErrorsTotal.WithLabelValues(errorCode).Inc()
}
