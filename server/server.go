// Copyright 2026 Mike Arbuzov
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mike-arbuzov/findmyangel-backend/index"
	"github.com/mike-arbuzov/findmyangel-backend/search"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = ":8000"

	shutdownTimeout = 10 * time.Second
)

var (
	// ErrSearcherRequired is returned when a searcher is not provided.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")
)

// Server exposes the search engine over HTTP.
type Server struct {
	searcher          *search.Searcher
	profileRepository storage.ProfileRepository
	vectorIndex       *index.Flat
	engine            *gin.Engine
	addr              string
	logger            *slog.Logger
	httpServer        *http.Server
}

// Option configures a Server.
type Option func(*Server) error

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) error {
		if addr != "" {
			s.addr = addr
		}
		return nil
	}
}

// WithLogger sets the logger used for request-level events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// NewServer creates an HTTP server around the given searcher and repository.
// The vector index is only consulted for readiness reporting; all query
// traffic goes through the searcher.
func NewServer(
	searcher *search.Searcher,
	profileRepository storage.ProfileRepository,
	vectorIndex *index.Flat,
	opts ...Option,
) (*Server, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if profileRepository == nil {
		return nil, ErrProfileRepositoryRequired
	}

	s := &Server{
		searcher:          searcher,
		profileRepository: profileRepository,
		vectorIndex:       vectorIndex,
		addr:              DefaultAddr,
		logger:            slog.Default().With("component", "server"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	s.setupRoutes()

	return s, nil
}

// Engine returns the underlying gin engine. Exposed for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) setupRoutes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/search", s.handleSearch)
	s.engine.GET("/search/get", s.handleSearchGet)
	s.engine.GET("/profiles", s.handleListProfiles)
	s.engine.GET("/profiles/:id", s.handleGetProfile)
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully, draining in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
