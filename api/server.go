package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Samandar-Komilov/voidpdev/config"
	"github.com/Samandar-Komilov/voidpdev/content"
	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/media"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Database   database.Database
	Normalizer *content.Normalizer
	// Sanitizer cleans rich HTML on the admin write path. Nil stores it as sent.
	Sanitizer *content.Sanitizer
	Media     media.Resolver
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(c map[string]string, deps Dependencies) (Server, error) {
	if deps.Normalizer == nil {
		return Server{}, fmt.Errorf("api: a content normalizer is required")
	}

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(deps, withConfig(c), withStartupTime(startupTime))

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Dependencies, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.startupTime.IsZero() {
		router.startupTime = time.Now()
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(HTTPLoggingMiddleware)
	chiRouter.Use(MetricsMiddleware)

	// Apply CORS middleware
	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	chiRouter.Use(middleware.StripSlashes)
	chiRouter.Use(FragmentMiddleware)

	// Initialize all handlers
	handlers := initializeHandlers(deps, router)

	// Setup all route types
	setupPublicRoutes(chiRouter, handlers)
	setupOpsRoutes(chiRouter, handlers)
	if config.GetBool(router.config, "ADMIN_API_ENABLED", false) {
		log.Warn().Msg("Admin API enabled without authentication; keep it off public networks")
		setupAdminRoutes(chiRouter, handlers)
	}

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
