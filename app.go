// @title           Link Utilities API
// @version         1.0
// @description     Resolves shortened and redirecting links to canonical URLs, extracts registrable domains and fingerprints URLs.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vit0-9/linkutils/config"
	_ "github.com/vit0-9/linkutils/docs"
	"github.com/vit0-9/linkutils/handlers"
	"github.com/vit0-9/linkutils/logger"
	"github.com/vit0-9/linkutils/pkg/utils"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates all the components of the application
type App struct {
	Router          *gin.Engine
	Resolver        *utils.LinkResolver
	URLUtilHandlers *handlers.URLUtilitiesHandlers
	TextHandlers    *handlers.TextHandlers
	HealthHandler   *handlers.HealthHandler

	cfg config.Config
	log zerolog.Logger
}

// NewApp wires the resolver into the HTTP handlers. Extra resolver options
// are applied after the ones derived from cfg.
func NewApp(cfg config.Config, opts ...utils.ResolverOption) (*App, error) {
	resolverOpts := []utils.ResolverOption{
		utils.WithTimeout(cfg.ResolverTimeout),
		utils.WithTrimTimeout(cfg.TrimTimeout),
		utils.WithDomainTimeout(cfg.DomainTimeout),
		utils.WithMaxRestarts(cfg.MaxRestarts),
		utils.WithUserAgent(cfg.UserAgent),
		utils.WithLogger(logger.With("link_resolver")),
	}
	if cfg.StripKnownTracking {
		rules, err := utils.DefaultTrackingRules()
		if err != nil {
			return nil, fmt.Errorf("loading tracking rules: %w", err)
		}
		resolverOpts = append(resolverOpts, utils.WithKnownTrackingParams(rules))
	}

	resolver, err := utils.NewLinkResolver(append(resolverOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating link resolver: %w", err)
	}

	httpLog := logger.With("http")
	router := gin.New()
	router.Use(handlers.RequestLogger(httpLog), gin.Recovery())
	if err := router.SetTrustedProxies(nil); err != nil {
		httpLog.Warn().Err(err).Msg("could not set trusted proxies")
	}

	app := &App{
		Router:          router,
		Resolver:        resolver,
		URLUtilHandlers: handlers.NewURLUtilitiesHandlers(resolver, httpLog),
		TextHandlers:    handlers.NewTextHandlers(),
		HealthHandler:   handlers.NewHealthHandler(),
		cfg:             cfg,
		log:             httpLog,
	}

	app.setupRoutes()
	return app, nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	app.Router.GET("/api/v1/health", app.HealthHandler.HealthCheckHandler)

	urlUtilV1 := app.Router.Group("/api/v1/url")
	{
		urlUtilV1.GET("/canonical", app.URLUtilHandlers.CanonicalLinkHandler)
		urlUtilV1.GET("/trim", app.URLUtilHandlers.TrimParametersHandler)
		urlUtilV1.GET("/domain", app.URLUtilHandlers.DomainHandler)
		urlUtilV1.GET("/hash", app.URLUtilHandlers.HashHandler)
		urlUtilV1.GET("/normalize", app.URLUtilHandlers.NormalizeHandler)
		urlUtilV1.POST("/clean", app.URLUtilHandlers.CleanURLHandler)
		urlUtilV1.GET("/shorteners", app.URLUtilHandlers.ShortenersHandler)
	}

	app.Router.POST("/api/v1/text/strip-html", app.TextHandlers.StripHTMLHandler)

	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.cfg.Addr(),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		app.log.Info().Str("addr", srv.Addr).Msg("API server starting")
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.log.Info().Msg("shutdown signal received, gracefully shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-serverErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	app.log.Info().Msg("server stopped")
	return nil
}
