package main

import (
	"context"
	"fmt"
	"os"

	"shop/internal/config"
	"shop/internal/handler"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/presenter"
	"shop/internal/server"
	"shop/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg)

	//DB接続
	gormDB, err := db.Connect(cfg, logger)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		return fmt.Errorf("db migrate: %w", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	tagRepo := infraRepo.NewTagGormRepository(gormDB)
	saleRepo := infraRepo.NewSaleGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	basketRepo := infraRepo.NewBasketGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	p := presenter.New(cfg.MediaURL, cfg.Location(), cfg.CatalogNestedItems)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo, tagRepo, saleRepo, p, cfg.CatalogPageSize)
	productUC := usecase.NewProductUsecase(productRepo, reviewRepo, p)
	basketUC := usecase.NewBasketUsecase(txm, basketRepo, p)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo, p)
	profileUC := usecase.NewProfileUsecase(txm, usecase.NewBcryptPasswordHasher(0), p)
	paymentUC := usecase.NewPaymentUsecase(txm, p)

	//Handler生成
	e := server.New(cfg, logger, userRepo, server.Handlers{
		Catalog: handler.NewCatalogHandler(catalogUC),
		Product: handler.NewProductHandler(productUC),
		Basket:  handler.NewBasketHandler(basketUC),
		Order:   handler.NewOrderHandler(orderUC),
		Profile: handler.NewProfileHandler(profileUC),
		Payment: handler.NewPaymentHandler(paymentUC),
	})

	//Server起動
	return server.Start(context.Background(), e, cfg, logger)
}
