package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/0xsj/overwatch-pkg/log"

	"github.com/azkarapp/azkar-backend/internal/app/service"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the server address.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate validates the server configuration.
func (c ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// Server wraps the HTTP server and its router.
type Server struct {
	server *http.Server
	logger log.Logger
}

// NewServer creates a new HTTP server with all routes registered.
func NewServer(
	cfg ServerConfig,
	handler *Handler,
	tokenService service.TokenService,
	logger log.Logger,
) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(Logging(logger))
	router.Use(Authenticate(tokenService))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Login must be reachable anonymously; everything below RequireUser
	// needs a valid credential.
	router.Put("/login/facebook", handler.LoginWithFacebook)

	router.Group(func(r chi.Router) {
		r.Use(RequireUser)

		r.Put("/connect/facebook", handler.ConnectFacebook)

		r.Get("/users/me", handler.GetCurrentUser)
		r.Get("/users/{id}", handler.GetUser)
		r.Get("/users/username/{username}", handler.GetUserByUsername)
		r.Get("/users/facebook/{facebookUserID}", handler.GetUserByFacebookID)

		r.Post("/groups", handler.CreateGroup)

		r.Post("/challenges/personal", handler.CreatePersonalChallenge)
		r.Get("/challenges/personal", handler.ListPersonalChallenges)
	})

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		server: server,
		logger: logger,
	}, nil
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("starting http server",
		log.String("address", s.server.Addr),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully stops the server, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping http server")
	return s.server.Shutdown(ctx)
}

// Address returns the server's listen address.
func (s *Server) Address() string {
	return s.server.Addr
}
