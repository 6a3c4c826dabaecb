package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"weather-card/datasource"
	"weather-card/logger"
	"weather-card/lookup"
	"weather-card/render"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server represents the web UI and JSON API server
type Server struct {
	service *lookup.Service
	html    *render.HTML
	logger  *logger.Logger
	server  *http.Server
	router  chi.Router
}

// NewServer creates a new server listening on addr and serving assets from staticDir
func NewServer(service *lookup.Service, addr, staticDir string, log *logger.Logger) *Server {
	s := &Server{
		service: service,
		html:    render.NewHTML(),
		logger:  log.Named("api"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/api/weather", s.handleGetWeather)
	r.Get("/api/health", s.handleHealthCheck)

	// Icons and backgrounds are referenced with paths relative to the page
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))

	s.router = r
	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router returns the HTTP handler, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins the API server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", logger.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight lookups
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleIndex serves the search page, performing a lookup when a city was submitted
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := render.NewState()
	query := r.URL.Query()
	city := query.Get("city")

	status := http.StatusOK
	if query.Has("city") {
		status = statusFor(s.service.FetchWeather(r.Context(), city, state))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.html.Render(w, state, city); err != nil {
		s.logger.Error("Failed to render page", logger.Error(err))
	}
}

// handleGetWeather performs a lookup and returns the resulting page state as JSON
func (s *Server) handleGetWeather(w http.ResponseWriter, r *http.Request) {
	state := render.NewState()
	err := s.service.FetchWeather(r.Context(), r.URL.Query().Get("city"), state)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(err))
	if err := json.NewEncoder(w).Encode(state); err != nil {
		s.logger.Warn("Failed to encode weather response", logger.Error(err))
	}
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// statusFor maps a lookup outcome to the HTTP status of our own response
func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, lookup.ErrEmptyCity) {
		return http.StatusBadRequest
	}
	var statusErr *datasource.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	return http.StatusServiceUnavailable
}
