package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"storybook/pkg/utils"
)

// POST /api/story
func (s *Server) handlePostStory(c echo.Context) error {
	var req promptForm
	if err := bindForm(c, &req); err != nil {
		if _, ok := fieldErrors(err); ok {
			return c.JSON(http.StatusUnprocessableEntity, utils.ErrJSON("prompt is required"))
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	turn, err := s.Story.Generate(c.Request().Context(), req.Prompt)
	if err != nil {
		log.Error("story generation failed", "request_id", requestID(c), "error", err)
		return err
	}
	return c.JSON(http.StatusOK, turn)
}

// POST /api/image
func (s *Server) handlePostImage(c echo.Context) error {
	var req promptForm
	if err := bindForm(c, &req); err != nil {
		if _, ok := fieldErrors(err); ok {
			return c.JSON(http.StatusUnprocessableEntity, utils.ErrJSON("prompt is required"))
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	img, err := s.Illustrator.Illustrate(c.Request().Context(), req.Prompt)
	if err != nil {
		log.Error("illustration failed", "request_id", requestID(c), "error", err)
		return err
	}
	return c.JSON(http.StatusOK, img)
}
