package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Kolpa/ulanzi-election/internal/version"
)

func (s *Server) handleHealth(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
