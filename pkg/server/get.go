package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GET /api/status
func (s *Server) handleGetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Storybook",
		"status":  "ok",
	})
}
