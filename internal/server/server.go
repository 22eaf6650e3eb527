// Package server exposes the catalog view over a small local JSON API.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cristianoliveira/dexview/internal/app"
	"github.com/cristianoliveira/dexview/internal/domain"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/format"
	"github.com/cristianoliveira/dexview/internal/logging"
	"github.com/cristianoliveira/dexview/internal/search"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options configures a Server.
type Options struct {
	PageSize int
	Provider search.Provider
}

// Server handles HTTP requests against a loaded session.
type Server struct {
	session  *app.Session
	router   chi.Router
	pageSize int
	provider search.Provider
}

// New creates a new API server.
func New(session *app.Session, opts Options) *Server {
	if session == nil {
		panic("server.New: session dependency cannot be nil")
	}
	if opts.PageSize <= 0 {
		opts.PageSize = domain.DefaultPageSize
	}
	if opts.Provider == nil {
		opts.Provider = search.NewSubstringProvider()
	}
	s := &Server{
		session:  session,
		router:   chi.NewRouter(),
		pageSize: opts.PageSize,
		provider: opts.Provider,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", s.handleListItems)
			r.Get("/{id}", s.handleGetItem)
		})
		r.Get("/types", s.handleGetTypes)
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", s.handleGetFavorites)
			r.Post("/{id}/toggle", s.handleToggleFavorite)
		})
	})
}

// requestLogger writes one structured debug entry per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logging.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Warn("failed to encode response", "error", err.Error())
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusFor maps a domain error to an HTTP status.
func statusFor(err error) int {
	switch {
	case dexerrors.Is(err, dexerrors.ErrNotFound):
		return http.StatusNotFound
	case dexerrors.Is(err, dexerrors.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// detailResponse pairs the catalog entry with its full detail record.
type detailResponse struct {
	Item   *domain.Item        `json:"item,omitempty"`
	Detail format.DetailRecord `json:"detail"`
}
