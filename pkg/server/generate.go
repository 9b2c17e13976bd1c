package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

type llmResponse struct {
	page
	Response string
	Idea     string
}

type imgResponse struct {
	page
	ImageURL    string
	ImagePrompt string
}

// POST /generate_text
func (s *Server) handleGenerateText(c echo.Context) error {
	var form promptForm
	if err := bindForm(c, &form); err != nil {
		errs, ok := fieldErrors(err)
		if !ok {
			return err
		}
		data := llmResponse{page: newPage(c, ""), Idea: form.Prompt}
		data.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, "llm_response.html", data)
	}

	turn, err := s.Story.Generate(c.Request().Context(), form.Prompt)
	if err != nil {
		log.Error("story generation failed", "request_id", requestID(c), "error", err)
		return err
	}

	return c.Render(http.StatusOK, "llm_response.html", llmResponse{
		page:     newPage(c, ""),
		Response: turn.Text,
		Idea:     turn.Prompt,
	})
}

// POST /generate_image
func (s *Server) handleGenerateImage(c echo.Context) error {
	var form promptForm
	if err := bindForm(c, &form); err != nil {
		errs, ok := fieldErrors(err)
		if !ok {
			return err
		}
		data := imgResponse{page: newPage(c, ""), ImagePrompt: form.Prompt}
		data.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, "img_response.html", data)
	}

	img, err := s.Illustrator.Illustrate(c.Request().Context(), form.Prompt)
	if err != nil {
		log.Error("illustration failed", "request_id", requestID(c), "error", err)
		return err
	}

	return c.Render(http.StatusOK, "img_response.html", imgResponse{
		page:        newPage(c, ""),
		ImageURL:    img.URL,
		ImagePrompt: img.Prompt,
	})
}
