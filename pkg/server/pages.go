package server

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"storybook/pkg/story"
)

type ideaPage struct {
	page
	Idea string
}

type storyPage struct {
	page
	Idea   string
	Prompt string
	Choice string
}

// GET|POST /
func (s *Server) handleSubmitIdea(c echo.Context) error {
	data := ideaPage{page: newPage(c, "")}
	if c.Request().Method != http.MethodPost {
		return c.Render(http.StatusOK, "submit_idea.html", data)
	}

	var form ideaForm
	err := bindForm(c, &form)
	if err == nil {
		return c.Redirect(http.StatusSeeOther, "/generate_story?"+url.Values{"idea": {form.Idea}}.Encode())
	}
	errs, ok := fieldErrors(err)
	if !ok {
		return err
	}
	data.Idea = form.Idea
	data.Errors = errs
	return c.Render(http.StatusUnprocessableEntity, "submit_idea.html", data)
}

// GET|POST /generate_story?idea=...
//
// The idea travels in the query string; a posted choice replaces it as the
// prompt for the next page.
func (s *Server) handleGenerateStory(c echo.Context) error {
	idea := c.QueryParam("idea")
	if idea == "" {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	data := storyPage{
		page:   newPage(c, "Your story"),
		Idea:   idea,
		Prompt: idea,
	}
	if c.Request().Method != http.MethodPost {
		return c.Render(http.StatusOK, "generate_story.html", data)
	}

	var form choiceForm
	err := bindForm(c, &form)
	if err == nil {
		data.Prompt = story.AdvanceStory(idea, form.Choice)
		return c.Render(http.StatusOK, "generate_story.html", data)
	}
	errs, ok := fieldErrors(err)
	if !ok {
		return err
	}
	data.Choice = form.Choice
	data.Errors = errs
	return c.Render(http.StatusUnprocessableEntity, "generate_story.html", data)
}
