// Package api exposes the debug HTTP interface for the scraping service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dhkim-dev/boardwatch/internal/board"
	"github.com/dhkim-dev/boardwatch/internal/metrics"
)

// Server wires HTTP handlers to the board service and page cache.
type Server struct {
	router  chi.Router
	service *board.Service
	fetcher board.PageFetcher
	log     *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(service *board.Service, fetcher board.PageFetcher, log *zap.Logger) *Server {
	s := &Server{
		service: service,
		fetcher: fetcher,
		log:     log,
	}
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(log))
	r.Use(recoverMiddleware(log))
	r.Use(timeoutMiddleware(60 * time.Second))

	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/groups", s.listGroups)
		r.Route("/groups/{group}", func(r chi.Router) {
			r.Get("/targets", s.listTargets)
			r.Route("/targets/{target}", func(r chi.Router) {
				r.Get("/list", s.getList)
				r.Get("/detail", s.getDetail)
			})
		})
		r.Get("/cache/stats", s.cacheStats)
		r.Post("/cache/clear", s.cacheClear)
	})

	s.router = r
	return s
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(s.log, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listGroups(w http.ResponseWriter, _ *http.Request) {
	type groupView struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Targets int    `json:"targets"`
	}
	groups := s.service.Registry().Groups()
	out := make([]groupView, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupView{ID: g.ID, Name: g.Name, Targets: len(g.Targets)})
	}
	writeJSON(s.log, w, http.StatusOK, map[string]any{"groups": out})
}

func (s *Server) listTargets(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "group")
	g, err := s.service.Registry().Group(groupID)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	type targetView struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		SourceURL string `json:"source_url"`
	}
	out := make([]targetView, 0, len(g.Targets))
	for _, t := range g.Targets {
		out = append(out, targetView{ID: t.ID, Name: t.Name, SourceURL: t.SourceURL})
	}
	writeJSON(s.log, w, http.StatusOK, map[string]any{"group": g.ID, "targets": out})
}

func (s *Server) getList(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "group")
	targetID := chi.URLParam(r, "target")
	items, err := s.service.List(r.Context(), groupID, targetID, useCache(r))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(s.log, w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (s *Server) getDetail(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "group")
	targetID := chi.URLParam(r, "target")
	detailURL := r.URL.Query().Get("url")
	record, err := s.service.Detail(r.Context(), groupID, targetID, detailURL, useCache(r))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(s.log, w, http.StatusOK, record)
}

func (s *Server) cacheStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.fetcher.Stats())
}

func (s *Server) cacheClear(w http.ResponseWriter, _ *http.Request) {
	s.fetcher.Clear()
	writeJSON(s.log, w, http.StatusOK, map[string]string{"status": "cleared"})
}

// useCache defaults to true; ?cache=false forces a fresh fetch.
func useCache(r *http.Request) bool {
	raw := r.URL.Query().Get("cache")
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

// writeErr maps the tagged error kinds onto HTTP statuses.
func (s *Server) writeErr(w http.ResponseWriter, err error) {
	var (
		notFound   *board.NotFoundError
		validation *board.ValidationError
		fetch      *board.FetchError
	)
	switch {
	case errors.As(err, &notFound):
		writeError(s.log, w, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		writeError(s.log, w, http.StatusBadRequest, err.Error())
	case errors.As(err, &fetch):
		writeError(s.log, w, http.StatusBadGateway, err.Error())
	default:
		writeError(s.log, w, http.StatusInternalServerError, err.Error())
	}
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func loggingMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			log.Info("request completed",
				zap.String("request_id", requestIDFrom(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.status),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

func recoverMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", zap.Any("error", rec))
					writeError(log, w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

type requestIDKey struct{}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func writeJSON(log *zap.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("write JSON failed", zap.Error(err))
	}
}

func writeError(log *zap.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(log, w, status, map[string]string{"error": msg})
}
