package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vit0-9/linkutils/config"
	"github.com/vit0-9/linkutils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.Env)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().
		Str("port", cfg.Port).
		Dur("resolver_timeout", cfg.ResolverTimeout).
		Dur("trim_timeout", cfg.TrimTimeout).
		Int("max_restarts", cfg.MaxRestarts).
		Bool("strip_known_tracking", cfg.StripKnownTracking).
		Msg("current configuration")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
