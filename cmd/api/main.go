package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sitestock/sitestock-api/internal/application/document"
	appinventory "github.com/sitestock/sitestock-api/internal/application/inventory"
	apptransfer "github.com/sitestock/sitestock-api/internal/application/transfer"
	"github.com/sitestock/sitestock-api/internal/application/usecase"
	"github.com/sitestock/sitestock-api/internal/infrastructure/manifest"
	infrapdf "github.com/sitestock/sitestock-api/internal/infrastructure/pdf"
	"github.com/sitestock/sitestock-api/internal/infrastructure/postgres"
	httpRouter "github.com/sitestock/sitestock-api/internal/interfaces/http"
	"github.com/sitestock/sitestock-api/pkg/config"
	"github.com/sitestock/sitestock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("stock_policy", cfg.Inventory.StockPolicy).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventoryUC := appinventory.NewUseCase(inventoryRepo)
	reorderUC := appinventory.NewReorderUseCase(inventoryRepo)
	createTransferUC := apptransfer.NewCreateTransferUseCase(
		txRunner, userRepo, vehicleRepo,
		apptransfer.StockPolicy(cfg.Inventory.StockPolicy),
	)
	transferUC := apptransfer.NewUseCase(transferRepo, userRepo, vehicleRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)

	challanGen := infrapdf.NewMarotoChallanGenerator()
	manifestBuilder := manifest.NewXMLBuilder()
	documentUC := document.NewUseCase(
		transferRepo, userRepo, vehicleRepo, challanGen, manifestBuilder,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI when a spec file is present: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "SiteStock API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:      inventoryUC,
		ReorderUC:        reorderUC,
		CreateTransferUC: createTransferUC,
		TransferUC:       transferUC,
		UserUC:           userUC,
		VehicleUC:        vehicleUC,
		DocumentUC:       documentUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
