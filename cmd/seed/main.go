package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop/internal/config"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/logger"
	"shop/internal/migrations"
	"shop/internal/seed"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func main() {
	var reset bool
	flag.BoolVar(&reset, "reset", false, "drop and recreate all tables before seeding")

	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, reset, log); err != nil {
		log.Error("seed failed", logger.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, reset bool, log *slog.Logger) error {
	dsn := cfg.Database.DSN()
	if reset {
		if err := migrations.Down(dsn); err != nil {
			return errors.Wrap(err, "drop tables")
		}
		log.Info("tables dropped")
	}
	if err := migrations.Up(dsn); err != nil {
		return errors.Wrap(err, "create tables")
	}

	gormDB, err := db.Connect(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	var counts seed.Counts
	err = gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counts, err = seed.Load(ctx, gormRepos(tx), seed.Example(), time.Now().UTC())
		return err
	})
	if err != nil {
		return err
	}

	log.Info("example data inserted",
		slog.Int("users", counts.Users),
		slog.Int("allergies", counts.Allergies),
		slog.Int("user_allergies", counts.UserAllergies),
		slog.Int("interests", counts.Interests),
		slog.Int("dislikes", counts.Dislikes),
		slog.Int("products", counts.Products),
		slog.Int("orders", counts.Orders),
		slog.Int("purchases", counts.Purchases),
	)
	return nil
}

func gormRepos(tx *gorm.DB) seed.Repos {
	return seed.Repos{
		Users:     infraRepo.NewUserGormRepository(tx),
		Allergies: infraRepo.NewAllergyGormRepository(tx),
		Interests: infraRepo.NewInterestGormRepository(tx),
		Dislikes:  infraRepo.NewDislikeGormRepository(tx),
		Products:  infraRepo.NewProductGormRepository(tx),
		Orders:    infraRepo.NewOrderGormRepository(tx),
		Purchases: infraRepo.NewPurchaseGormRepository(tx),
	}
}
