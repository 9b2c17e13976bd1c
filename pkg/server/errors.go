package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"storybook/pkg/utils"
)

type errorPage struct {
	page
	Code    int
	Message string
}

// handleError renders failures as a generic page, or JSON under /api.
// Server-side failures never expose the underlying provider error.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}
	if code >= http.StatusInternalServerError {
		log.Error("request failed", "method", c.Request().Method, "path", c.Request().URL.Path,
			"request_id", requestID(c), "error", err)
		msg = http.StatusText(code)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		err = c.JSON(code, utils.ErrJSON(msg))
	} else {
		err = c.Render(code, "error.html", errorPage{page: newPage(c, "Error"), Code: code, Message: msg})
	}
	if err != nil {
		log.Error("failed to write error response", "error", err)
	}
}
