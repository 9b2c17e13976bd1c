package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"

	"storybook/pkg/illustration"
	"storybook/pkg/story"
	"storybook/pkg/utils"
)

type Options struct {
	// CSRF enables echo's CSRF middleware on the HTML form routes.
	CSRF bool
}

type Server struct {
	Echo        *echo.Echo
	Story       *story.Orchestrator
	Illustrator *illustration.Illustrator
}

func NewServer(orch *story.Orchestrator, ill *illustration.Illustrator, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Renderer = NewRenderer()
	e.Validator = newFormValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if opts.CSRF {
		e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup:    "form:" + csrfField + ",header:" + echo.HeaderXCSRFToken,
			CookiePath:     "/",
			CookieHTTPOnly: true,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api/")
			},
		}))
	}

	s := &Server{
		Echo:        e,
		Story:       orch,
		Illustrator: ill,
	}
	e.HTTPErrorHandler = s.handleError

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.Match(formMethods, "/", s.handleSubmitIdea)
	s.Echo.Match(formMethods, "/generate_story", s.handleGenerateStory)
	s.Echo.POST("/generate_text", s.handleGenerateText)
	s.Echo.POST("/generate_image", s.handleGenerateImage)

	api := s.Echo.Group("/api")
	api.GET("/status", s.handleGetStatus)
	api.POST("/story", s.handlePostStory)
	api.POST("/image", s.handlePostImage)
}

var formMethods = []string{http.MethodGet, http.MethodPost}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")
	return s.Echo.Shutdown(ctx)
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
