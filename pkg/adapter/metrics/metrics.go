// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package metrics collects prometheus metrics of the REST API requests
// and the delayed squaring computations. All metrics are namespaced by
// "cuweb" and registered in the registerer which is passed to New.
//
// Metrics:
//  1. http_requests_total (counter) labeled by method, route, and
//     status code,
//  2. http_request_duration_seconds (histogram) labeled by method and
//     route,
//  3. squares_total (counter) labeled by outcome (resolved/rejected),
//  4. square_delay_seconds (histogram) of the elapsed time between
//     a squaring request and its completion.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cuweb"

// Metrics holds the registered collectors. It implements the
// squareuc.Observer interface, so it can be passed to the squaring
// use case with the squareuc.WithObserver option.
type Metrics struct {
	requests    *prometheus.CounterVec
	reqDuration *prometheus.HistogramVec
	squares     *prometheus.CounterVec
	squareDelay prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New creates all metrics and registers them with the reg registry.
// A nil reg causes the prometheus.DefaultRegisterer to be used.
func New(reg *prometheus.Registry) *Metrics {
	var r prometheus.Registerer = reg
	var g prometheus.Gatherer = reg
	if reg == nil {
		r = prometheus.DefaultRegisterer
		g = prometheus.DefaultGatherer
	}
	factory := promauto.With(r)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of handled REST API requests",
		}, []string{"method", "route", "code"}),
		reqDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of REST API requests handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		squares: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "squares_total",
			Help:      "Number of completed squaring computations",
		}, []string{"outcome"}),
		squareDelay: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "square_delay_seconds",
			Help:      "Time between squaring requests and their completion",
			Buckets:   []float64{.01, .05, .1, .5, 1, 2, 5, 10},
		}),
		gatherer: g,
	}
}

// Middleware returns a gin middleware which counts the requests and
// measures their handling duration. Requests which match no route are
// labeled by an empty route in order to bound the labels cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		method := c.Request.Method
		code := strconv.Itoa(c.Writer.Status())
		m.requests.WithLabelValues(method, route, code).Inc()
		m.reqDuration.WithLabelValues(method, route).Observe(
			time.Since(start).Seconds(),
		)
	}
}

// Observe records the outcome of one squaring computation.
func (m *Metrics) Observe(n float64, err error, elapsed time.Duration) {
	outcome := "resolved"
	if err != nil {
		outcome = "rejected"
	}
	m.squares.WithLabelValues(outcome).Inc()
	m.squareDelay.Observe(elapsed.Seconds())
}

// Handler returns an http handler which exposes the gathered metrics
// in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
