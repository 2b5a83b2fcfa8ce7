/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package server exposes a read-only HTTP and WebSocket query surface
over a graph.Manager: degree/balance queries, a node lookup endpoint,
Prometheus metrics and a streaming endpoint reporting task runner
progress. It never mutates the store it serves.
*/
package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/krotik/tempograph/config"
	"github.com/krotik/tempograph/graph"
)

/*
Using a custom consolelogger type, same as the core database's server
package, so log.Fatal calls can be swapped out under test.
*/
type consolelogger func(v ...interface{})

var fatal = consolelogger(log.Fatal)
var print = consolelogger(log.Print)

/*
Server serves queries over a fixed graph.Manager. It holds no mutation
path: every handler builds a tgview.View and reads through it.
*/
type Server struct {
	m   *graph.Manager
	cfg *config.Config

	registry     *prometheus.Registry
	queriesTotal *prometheus.CounterVec
	requestTime  prometheus.Histogram

	startTime time.Time
}

/*
New creates a Server over m using cfg for its listen address and runner
defaults.
*/
func New(m *graph.Manager, cfg *config.Config) *Server {
	registry := prometheus.NewRegistry()

	queriesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tempograph_queries_total",
		Help: "Total number of query endpoint requests, by route.",
	}, []string{"route"})

	requestTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tempograph_request_duration_seconds",
		Help:    "Request handling latency in seconds.",
		Buckets: prometheus.DefBuckets,
	})

	registry.MustRegister(queriesTotal, requestTime)

	return &Server{
		m:            m,
		cfg:          cfg,
		registry:     registry,
		queriesTotal: queriesTotal,
		requestTime:  requestTime,
		startTime:    time.Now(),
	}
}

/*
Mux builds the server's http.Handler. Exposed separately from Start so
tests can drive it with httptest without binding a port.
*/
func (s *Server) Mux() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("/nodes/", s.instrument("nodes", s.handleNode))
	mux.HandleFunc("/query/degree", s.instrument("degree", s.handleDegree))
	mux.HandleFunc("/query/balance", s.instrument("balance", s.handleBalance))
	mux.HandleFunc("/query/neighbours", s.instrument("neighbours", s.handleNeighbours))

	mux.HandleFunc("/stream/runner", s.handleRunnerStream)

	return mux
}

func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		w.Header().Set("X-Request-Id", reqID)

		start := time.Now()
		h(w, r)
		elapsed := time.Since(start)

		s.queriesTotal.WithLabelValues(route).Inc()
		s.requestTime.Observe(elapsed.Seconds())
		print(fmt.Sprintf("%s %s %s %s", reqID, route, r.URL.Path, elapsed))
	}
}

/*
Start runs the HTTP server on cfg.Server.ListenAddr. It blocks until the
server stops.
*/
func (s *Server) Start() error {
	print(fmt.Sprintf("tempograph server listening on %s", s.cfg.Server.ListenAddr))

	httpServer := &http.Server{
		Addr:         s.cfg.Server.ListenAddr,
		Handler:      s.Mux(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fatal(err)
		return err
	}
	return nil
}
