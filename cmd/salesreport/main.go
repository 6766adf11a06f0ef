package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop/internal/client"
	"shop/internal/config"
	"shop/internal/logger"
	"shop/internal/sales"

	"github.com/pkg/errors"
)

func main() {
	var days int
	flag.IntVar(&days, "days", sales.DefaultDays, "trailing window in days")

	cfg := config.MustLoad()
	// 表はstdoutに出すのでログはstderr
	log := logger.New(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, days, log); err != nil {
		log.Error("sales report failed", logger.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, days int, log *slog.Logger) error {
	c := client.New(cfg.Client.BaseURL, &http.Client{Timeout: cfg.Client.Timeout})

	ids, err := c.UserIDs(ctx)
	if err != nil {
		return errors.Wrap(err, "list users")
	}
	lines, err := sales.Collect(ctx, c, ids)
	if err != nil {
		return err
	}
	log.Debug("collected purchases", slog.Int("users", len(ids)), slog.Int("lines", len(lines)))

	report, err := sales.Build(lines, time.Now(), days)
	if err != nil {
		return err
	}
	report.Render(os.Stdout)
	return nil
}
