/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dburkart/lextab/pkg/common/parse"
	"github.com/dburkart/lextab/pkg/pipeline"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MaxSourceBytes bounds the size of a single request body.
const MaxSourceBytes = 4 << 20

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore
	options pipeline.Options

	port        int
	metricsPort int
}

func New(log zerolog.Logger, options pipeline.Options, port, metricsPort int) Server {
	return Server{
		log,
		NewMetricsStore(),
		options,
		port,
		metricsPort,
	}
}

func (s *Server) Metrics() MetricsStore {
	return s.metrics
}

// Handler routes the analysis endpoints. Every request gets its own pipeline
// run; nothing is shared between them.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", s.instrument("analyze", s.handleAnalyze))
	mux.HandleFunc("/strip", s.instrument("strip", s.handleStrip))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	return mux
}

func (s *Server) ServeAnalysis() error {
	s.log.Info().Int("port", s.port).Msg("listening for analysis requests")
	err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Handler())
	return errors.Wrap(err, "analysis listener stopped")
}

func (s *Server) ServeMetrics() error {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	err := http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), mux)
	return errors.Wrap(err, "metrics listener stopped")
}

type handlerFunc func(log zerolog.Logger, w http.ResponseWriter, source string) int

func (s *Server) instrument(endpoint string, f handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()

		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		log := s.log.With().Str("request", id).Str("endpoint", endpoint).Logger()

		status := http.StatusOK
		defer func() {
			s.metrics.IncRequests(endpoint, strconv.Itoa(status))
			s.metrics.ObserveResponseNS(endpoint, time.Since(t).Nanoseconds())
			log.Debug().Int("status", status).Str("dur", time.Since(t).String()).Msg("handled request")
		}()

		if r.Method != http.MethodPost {
			status = http.StatusMethodNotAllowed
			s.writeJSON(log, w, status, NewErrResponse(status, errors.Errorf("method %s not allowed", r.Method)))
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxSourceBytes))
		if err != nil {
			status = http.StatusRequestEntityTooLarge
			s.writeJSON(log, w, status, NewErrResponse(status, errors.Wrap(err, "unable to read source")))
			return
		}

		s.metrics.AddSourceBytes(len(body))
		log.Trace().Str("size", humanize.Bytes(uint64(len(body)))).Msg("read source")

		status = f(log, w, string(body))
	}
}

func (s *Server) handleStrip(log zerolog.Logger, w http.ResponseWriter, source string) int {
	r, _ := s.options.Run(source)
	return s.writeJSON(log, w, http.StatusOK, StripResponse{Stripped: r.Stripped})
}

func (s *Server) handleAnalyze(log zerolog.Logger, w http.ResponseWriter, source string) int {
	r, err := s.options.Run(source)

	var lexErr *parse.LexError
	if errors.As(err, &lexErr) {
		s.metrics.IncLexErrors(lexErr.Kind.ToString())
		log.Debug().Err(err).Msg("rejected source")
		return s.writeJSON(log, w, http.StatusUnprocessableEntity, LexErrResponse(http.StatusUnprocessableEntity, lexErr, r))
	}
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return s.writeJSON(log, w, http.StatusInternalServerError, NewErrResponse(http.StatusInternalServerError, err))
	}

	counts := map[string]int{}
	for _, tok := range r.Tokens {
		counts[tok.Type.Name()]++
	}
	for category, n := range counts {
		s.metrics.AddTokens(category, n)
	}

	log.Debug().Str("tokens", humanize.Comma(int64(len(r.Tokens)))).Msg("analyzed source")
	return s.writeJSON(log, w, http.StatusOK, r)
}

func (s *Server) writeJSON(log zerolog.Logger, w http.ResponseWriter, status int, v interface{}) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Error().Err(err).Msg("unable to write response")
	}
	return status
}
