// Package server provides the HTTP server and route tree for the REST API
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/application/session"
	"github.com/mixmas/v2/internal/infrastructure/config"
	"github.com/mixmas/v2/internal/infrastructure/http/handlers"
	"github.com/mixmas/v2/internal/infrastructure/http/middleware"
	"github.com/mixmas/v2/internal/infrastructure/persistence/localstore"
	"github.com/mixmas/v2/internal/infrastructure/share"
	"github.com/mixmas/v2/internal/ports/inbound"
	"github.com/mixmas/v2/pkg/healthcheck"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
	server *http.Server
	health *healthcheck.HealthCheck

	recipes *handlers.RecipeHandlers
	saved   *handlers.SavedHandlers
	shares  *handlers.ShareHandlers
	session *handlers.SessionHandlers
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	generator inbound.RecipeGenerator,
	library inbound.RecipeLibrary,
	sess *session.Service,
	codec *share.Codec,
	store *localstore.Store,
	health *healthcheck.HealthCheck,
) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger,
		health:  health,
		recipes: handlers.NewRecipeHandlers(generator, sess, logger),
		saved:   handlers.NewSavedHandlers(library, logger),
		shares:  handlers.NewShareHandlers(codec, logger),
		session: handlers.NewSessionHandlers(sess, store, logger),
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.RateLimit(s.config.RateLimit.RequestsPerMin, s.config.RateLimit.BurstSize))
	r.Use(chimiddleware.Timeout(90 * time.Second))

	r.Get("/health", s.health.Handler())
	r.Get("/health/live", s.health.LivenessHandler())
	r.Get("/health/ready", s.health.ReadinessHandler())

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIRoutes(r)
	})

	return r
}

// setupAPIRoutes configures the versioned API route tree
func (s *Server) setupAPIRoutes(r chi.Router) {
	r.Route("/recipes", func(r chi.Router) {
		r.Post("/generate", s.recipes.Generate)
		r.Post("/generate/batch", s.recipes.GenerateBatch)
		r.Post("/scale", s.recipes.Scale)
	})

	r.Get("/spice/{level}", s.recipes.SpiceInfo)

	r.Route("/saved", func(r chi.Router) {
		r.Get("/", s.saved.List)
		r.Post("/", s.saved.Save)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.saved.Get)
			r.Patch("/", s.saved.Update)
			r.Delete("/", s.saved.Delete)
			r.Post("/favorite", s.saved.ToggleFavorite)
			r.Post("/tags", s.saved.AddTag)
			r.Delete("/tags/{tag}", s.saved.RemoveTag)
			r.Put("/collection", s.saved.SetCollection)
			r.Put("/rating", s.saved.SetRating)
		})
	})

	r.Route("/share", func(r chi.Router) {
		r.Post("/links", s.shares.Links)
		r.Post("/decode", s.shares.Decode)
		r.Post("/qr", s.shares.QRCode)
	})

	r.Route("/session", func(r chi.Router) {
		r.Get("/view", s.session.GetView)
		r.Put("/view", s.session.SetView)
		r.Get("/outcome", s.session.Outcome)
		r.Delete("/outcome", s.session.ClearOutcome)
		r.Get("/preferences", s.session.GetPreferences)
		r.Put("/preferences", s.session.PutPreferences)
	})
}

// Router exposes the route tree for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
