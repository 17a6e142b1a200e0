package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shop/internal/config"
	"shop/internal/handler"
	"shop/internal/middleware"
	"shop/internal/repository"
	"shop/internal/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// echoの組み立て
func New(cfg config.Config, logger zerolog.Logger, userRepo repository.UserRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = validator.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	//末尾スラッシュは無視
	e.Pre(echomw.RemoveTrailingSlash())

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.ContextLogger(logger))
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Recover(logger))
	e.Use(echomw.CORSWithConfig(corsConfig(cfg)))
	e.Use(echomw.BodyLimit(bodyLimit(cfg)))

	RegisterRoutes(e, cfg, userRepo, h)
	return e
}

func bodyLimit(cfg config.Config) string {
	if cfg.BodyLimit == "" {
		return "1M"
	}
	return cfg.BodyLimit
}

// FE_URL未設定なら全許可（credentialsなし）
func corsConfig(cfg config.Config) echomw.CORSConfig {
	c := echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}
	if cfg.FEURL != "" {
		c.AllowOrigins = []string{cfg.FEURL}
		c.AllowCredentials = true
	}
	return c
}

// SIGINT/SIGTERMまで動かし、ShutdownTimeout以内に止める
func Start(ctx context.Context, e *echo.Echo, cfg config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}

	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("address", addr).Msg("HTTP server started")
		serverErrors <- e.Start(addr)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := e.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return err
		}
		logger.Info().Msg("server shutdown completed")
	}
	return nil
}
