// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the "wiring" layer — the composition root where the
// whole dependency chain is assembled in one place:
//
//	main.go reads config → server.New() creates:
//	  sqlite.DB → QueryService / RecommendationService → handlers
//	  TokenService → AuthService → AuthHandler + route guard
//
// Handlers never touch the database directly and services never touch
// HTTP; this package is the only one that sees every layer at once.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mahdirahman356/electro-evo-server/internal/auth"
	"github.com/mahdirahman356/electro-evo-server/internal/handler"
	"github.com/mahdirahman356/electro-evo-server/internal/middleware"
	sqliteRepo "github.com/mahdirahman356/electro-evo-server/internal/repository/sqlite"
	"github.com/mahdirahman356/electro-evo-server/internal/service"
)

// Config holds server configuration, loaded from the environment in main.
type Config struct {
	Port        int
	DBPath      string
	TokenSecret string
	// CORSOrigins lists the browser origins allowed to call the API with
	// credentials. With cookie auth the wildcard origin is not an option —
	// browsers refuse credentialed requests against "*" — so every
	// deployed frontend origin must be named here.
	CORSOrigins []string
}

// Server represents the HTTP server and all its dependencies.
//
// The Server owns the database connection: it is opened in New and closed
// during graceful shutdown in Start, after in-flight requests drain.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server with the given config, opening the database and
// wiring every handler to its route. The sqlite package is imported as
// sqliteRepo so it doesn't read like the driver package.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close() // clean up the DB if route setup fails
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
//
//	GET    /                                 → liveness text
//	POST   /jwt                              → issue session cookie
//	POST   /signout                          → clear session cookie
//	GET    /queries                          → list/search queries
//	GET    /queries/{id}                     → single query (null if absent)
//	GET    /queries/email/{email}            → owner's queries      [guarded]
//	POST   /queries                          → create query
//	PUT    /queries/{id}                     → replace query
//	PATCH  /queries/{id}                     → counter +1
//	PATCH  /queries/desRecom/{id}            → counter −1
//	DELETE /queries/{id}                     → delete query
//	POST   /recommend                        → create recommendation
//	GET    /recommend                        → list all recommendations
//	GET    /recommend/{queriesId}            → recommendations for a query
//	GET    /recommend/myRecommrnd/{email}    → endorser's recommendations [guarded]
//	GET    /recommend/RecommendForMe/{email} → recs on owner's queries    [guarded]
//	DELETE /recommend/{id}                   → delete recommendation
//
// Guarded routes require a valid session cookie whose email matches the
// {email} path parameter. Static path segments win over wildcards in chi,
// so /recommend/myRecommrnd/... never falls into /recommend/{queriesId}.
//
// MIDDLEWARE ORDER MATTERS — it executes in the order added:
// RequestID → RealIP → CORS → Logger → Recoverer. CORS sits before the
// logger so preflight OPTIONS requests are answered (and logged) early.
func (s *Server) setupRoutes() error {
	tokens, err := auth.NewTokenService(s.config.TokenSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}

	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true, // required for the session cookie to travel
		MaxAge:           300,
	}))
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	authService := service.NewAuthService(tokens, s.logger)
	queryService := service.NewQueryService(s.db, s.logger)
	recommendationService := service.NewRecommendationService(s.db, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	queryHandler := handler.NewQueryHandler(queryService, s.logger)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, s.logger)

	// Guard for routes that carry an owner email in the path.
	guard := auth.RequireOwner(tokens)

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ElectroEvo server"))
	})

	s.router.Post("/jwt", authHandler.HandleIssueToken)
	s.router.Post("/signout", authHandler.HandleSignOut)

	s.router.Route("/queries", func(r chi.Router) {
		r.Get("/", queryHandler.HandleList)
		r.Get("/{id}", queryHandler.HandleGetByID)
		r.With(guard).Get("/email/{email}", queryHandler.HandleListByOwner)
		r.Post("/", queryHandler.HandleCreate)
		r.Put("/{id}", queryHandler.HandleReplace)
		r.Patch("/{id}", queryHandler.HandleIncrementRecommendation)
		r.Patch("/desRecom/{id}", queryHandler.HandleDecrementRecommendation)
		r.Delete("/{id}", queryHandler.HandleDelete)
	})

	s.router.Route("/recommend", func(r chi.Router) {
		r.Post("/", recommendationHandler.HandleCreate)
		r.Get("/", recommendationHandler.HandleListAll)
		r.With(guard).Get("/myRecommrnd/{email}", recommendationHandler.HandleListByEndorser)
		r.With(guard).Get("/RecommendForMe/{email}", recommendationHandler.HandleListByOwner)
		// Same wildcard name as the DELETE route below; chi dislikes two
		// param names at one tree position.
		r.Get("/{id}", recommendationHandler.HandleListByQuery)
		r.Delete("/{id}", recommendationHandler.HandleDelete)
	})

	return nil
}

// Start starts the HTTP server and handles graceful shutdown.
//
// On SIGINT/SIGTERM we stop accepting connections, give in-flight
// requests 30 seconds to finish, then close the database — skipping that
// last step could leave the WAL unflushed, so it's deferred here rather
// than left to the OS.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}

// Router exposes the configured chi router for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Close releases the database connection. Start does this itself on
// shutdown; Close is for callers that never Start, such as tests.
func (s *Server) Close() error {
	return s.db.Close()
}
