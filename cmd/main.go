package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	charm "github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"storybook/pkg/config"
	"storybook/pkg/illustration"
	"storybook/pkg/imaging"
	"storybook/pkg/inference"
	"storybook/pkg/server"
	"storybook/pkg/story"
	"storybook/pkg/utils"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	inf, err := inference.New(cfg.Text)
	if err != nil {
		log.Fatal(err)
	}

	synth, err := imaging.New(cfg.Image)
	if err != nil {
		log.Fatal(err)
	}

	model := cfg.Text.Model
	if m, ok := inf.(interface{ Model() string }); ok && m.Model() != "" {
		model = m.Model()
	}

	orch := story.NewOrchestrator(inf, nil)
	if cfg.Debug {
		// the encoding is fetched on first use
		orch.CountTokens = utils.TokenCounter(model)
	}

	ill := illustration.NewIllustrator(synth, cfg.Image.ModelID())

	srv := server.NewServer(orch, ill, server.Options{CSRF: cfg.CSRF})
	if cfg.Debug {
		srv.Echo.Logger.SetLevel(log.DEBUG)
		charm.SetLevel(charm.DebugLevel)
	} else {
		srv.Echo.Logger.SetLevel(log.INFO)
	}

	log.Infof("Text provider %s (model %q), image provider %s (model %s)",
		cfg.Text.Provider, model, cfg.Image.Provider, cfg.Image.ModelID())

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
		done()
		return
	}
	<-finishedShutDown
}
