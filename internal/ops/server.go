// Package ops exposes the operational HTTP surface: liveness probe and
// Prometheus metrics. It carries no registry functionality.
package ops

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the Echo instance serving /health and /metrics.
type Server struct {
	echo *echo.Echo
	addr string
}

// NewServer builds the ops server with all routes registered.
func NewServer(addr string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())

	// Liveness probe: is the process alive? The registry is in-memory, so
	// there are no external dependencies to check for readiness.
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &Server{echo: e, addr: addr}
}

// Start serves until Shutdown is called. It blocks; run it on its own
// goroutine.
func (s *Server) Start() error {
	err := s.echo.Start(s.addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
