package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"shop/internal/config"
	"shop/internal/handler"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/logger"
	"shop/internal/migrations"
	"shop/internal/server"
	"shop/internal/usecase"

	"github.com/pkg/errors"
)

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)
	log.Info("starting app", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("app stopped with error", logger.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	//テーブル作成
	if cfg.Migrations.AutoMigrate {
		if err := migrations.Up(cfg.Database.DSN()); err != nil {
			return errors.Wrap(err, "migrate")
		}
		log.Info("migrations applied")
	}

	//DB接続
	gormDB, err := db.Connect(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	//Repository（GORM実装）
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	allergyRepo := infraRepo.NewAllergyGormRepository(gormDB)
	interestRepo := infraRepo.NewInterestGormRepository(gormDB)
	dislikeRepo := infraRepo.NewDislikeGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase
	userUC := usecase.NewUserUsecase(userRepo, allergyRepo, log)
	allergyUC := usecase.NewAllergyUsecase(allergyRepo, log)
	interestUC := usecase.NewInterestUsecase(interestRepo, log)
	dislikeUC := usecase.NewDislikeUsecase(dislikeRepo, log)
	productUC := usecase.NewProductUsecase(productRepo, log)
	buyUC := usecase.NewBuyUsecase(txm, log, cfg.Cart.LockUserRow)

	//Handler
	e := server.New(log)
	server.RegisterRoutes(e,
		handler.NewHealthHandler(func(ctx context.Context) error { return db.Ping(ctx, gormDB) }),
		handler.NewUserHandler(userUC),
		handler.NewAllergyHandler(allergyUC),
		handler.NewInterestHandler(interestUC),
		handler.NewDislikeHandler(dislikeUC),
		handler.NewProductHandler(productUC),
		handler.NewBuyHandler(buyUC),
	)

	return server.Run(ctx, e, cfg.HTTPServer, log)
}
