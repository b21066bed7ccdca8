// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by middleware and services.
type Recorder interface {
	RecordRequest(method, route string, statusCode int, duration time.Duration)
	RecordAuthEvent(event, outcome string)
	RecordTasksReturned(count int)
}

// Auth event names.
const (
	EventRegister  = "register"
	EventLogin     = "login"
	EventFederated = "federated"
	EventLogout    = "logout"
	EventSession   = "session"
)

// Auth event outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collector is the Prometheus implementation of [Recorder].
type Collector struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	authEvents    *prometheus.CounterVec
	tasksReturned prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "todo_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "todo_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "todo_auth_events_total",
			Help: "Authentication events by kind and outcome.",
		}, []string{"event", "outcome"}),
		tasksReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "todo_tasks_returned",
			Help:    "Number of tasks returned per list query.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.authEvents,
		c.tasksReturned,
	)

	return c
}

// RecordRequest counts a finished request and observes its latency.
func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAuthEvent counts an authentication event.
func (c *Collector) RecordAuthEvent(event, outcome string) {
	c.authEvents.WithLabelValues(event, outcome).Inc()
}

// RecordTasksReturned observes the size of a task list response.
func (c *Collector) RecordTasksReturned(count int) {
	c.tasksReturned.Observe(float64(count))
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a [Recorder] that discards everything.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordAuthEvent(string, string)                    {}
func (Nop) RecordTasksReturned(int)                           {}
