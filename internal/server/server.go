// Package server ties the bootstrapped application to an HTTP listener and
// owns its lifecycle: startup, signal handling and graceful teardown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/alumnet/api/internal/bootstrap"
	"github.com/alumnet/api/internal/config"
)

const drainTimeout = 10 * time.Second

// Server is the assembled application plus its HTTP listener.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	pool   *pgxpool.Pool
	log    zerolog.Logger
	http   *http.Server
}

// New builds a ready-to-run server: config and logger, database with
// migrations and seed data, then the full dependency graph and route table.
func New() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	pool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, pool, lgr)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("dependencies: %w", err)
	}

	return &Server{
		cfg:    cfg,
		router: bootstrap.SetupRouter(cfg, deps, lgr),
		pool:   pool,
		log:    lgr,
	}, nil
}

// Run serves until the listener fails or the process receives SIGINT or
// SIGTERM, then drains in-flight requests and releases the database pool.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	failed := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		failed <- s.http.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-failed:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listener: %w", err)
		}
	case sig := <-stop:
		s.log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.shutdown(context.Background())
}

func (s *Server) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()

	var drainErr error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.log.Error().Err(err).Msg("HTTP drain failed")
			drainErr = err
		}
	}

	if s.pool != nil {
		s.pool.Close()
	}

	s.log.Info().Msg("Shutdown complete")
	if drainErr != nil {
		return fmt.Errorf("shutdown: %w", drainErr)
	}
	return nil
}
