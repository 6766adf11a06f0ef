package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"shop/internal/config"
	"shop/internal/logger"
	"shop/internal/middleware"
	"shop/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はミドルウェア付きのechoを作る
func New(log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()

	// /product/ と /product を同じに扱う
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	return e
}

// Run はctxが終わるまでサーバを動かして、終わったらgraceful shutdownする
func Run(ctx context.Context, e *echo.Echo, cfg config.HTTPServerConfig, log *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      e,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", logger.Err(err))
		return err
	}
	log.Info("server gracefully stopped")
	return nil
}
