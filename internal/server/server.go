package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server wraps the HTTP server around the gin engine
type Server struct {
	http   *http.Server
	logger zerolog.Logger
}

// New creates a new server instance
func New(router *gin.Engine, host, port string, logger zerolog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:    net.JoinHostPort(host, port),
			Handler: router,
		},
		logger: logger,
	}
}

// Start runs the server until Shutdown is called or the listener fails
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
