// Package server exposes the operational HTTP endpoints: health, version and
// Prometheus metrics. The display pipeline itself has no HTTP surface.
package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	echo      *echo.Echo
	addr      string
	startTime time.Time
}

func New(addr string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	srv := &Server{
		echo:      e,
		addr:      addr,
		startTime: time.Now(),
	}

	e.GET("/healthz", srv.handleHealth)
	e.GET("/version", srv.handleVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
