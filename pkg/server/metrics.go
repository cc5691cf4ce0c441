/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(endpoint, status string)
	ObserveResponseNS(endpoint string, t int64)
	AddTokens(category string, n int)
	IncLexErrors(kind string)
	AddSourceBytes(n int)
}

type metricsStore struct {
	registry    *prometheus.Registry
	Requests    *prometheus.CounterVec
	ResponseNS  *prometheus.HistogramVec
	Tokens      *prometheus.CounterVec
	LexErrors   *prometheus.CounterVec
	SourceBytes prometheus.Counter
}

var (
	EndpointLabel = "endpoint"
	StatusLabel   = "status"
	CategoryLabel = "category"
	KindLabel     = "kind"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Millisecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lextab_requests",
			Help: "Request counts per endpoint and response status",
		}, []string{EndpointLabel, StatusLabel}),
		ResponseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lextab_response_ns",
			Help:    "Response times per endpoint",
			Buckets: buckets,
		}, []string{EndpointLabel}),
		Tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lextab_tokens",
			Help: "Tokens produced per category",
		}, []string{CategoryLabel}),
		LexErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lextab_lex_errors",
			Help: "Rejected sources per lexical error kind",
		}, []string{KindLabel}),
		SourceBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "lextab_source_bytes",
			Help: "Total bytes of source received",
		}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(endpoint, status string) {
	ms.Requests.With(prometheus.Labels{EndpointLabel: endpoint, StatusLabel: status}).Inc()
}

func (ms *metricsStore) ObserveResponseNS(endpoint string, t int64) {
	ms.ResponseNS.
		With(prometheus.Labels{EndpointLabel: endpoint}).
		Observe(float64(t))
}

func (ms *metricsStore) AddTokens(category string, n int) {
	ms.Tokens.With(prometheus.Labels{CategoryLabel: category}).Add(float64(n))
}

func (ms *metricsStore) IncLexErrors(kind string) {
	ms.LexErrors.With(prometheus.Labels{KindLabel: kind}).Inc()
}

func (ms *metricsStore) AddSourceBytes(n int) {
	ms.SourceBytes.Add(float64(n))
}
