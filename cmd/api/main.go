package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/buildmate/buildmate-api/internal/application/auth"
	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
	infrapdf "github.com/buildmate/buildmate-api/internal/infrastructure/pdf"
	"github.com/buildmate/buildmate-api/internal/infrastructure/postgres"
	httpRouter "github.com/buildmate/buildmate-api/internal/interfaces/http"
	"github.com/buildmate/buildmate-api/pkg/config"
	"github.com/buildmate/buildmate-api/pkg/logger"
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
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema migration")
	}

	userRepo := postgres.NewUserRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	priceRepo := postgres.NewPriceRepository(pool)
	inquiryRepo := postgres.NewInquiryRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	priceUC := usecase.NewPriceUseCase(priceRepo, materialRepo, notificationRepo, log)
	inquiryUC := usecase.NewInquiryUseCase(inquiryRepo, materialRepo, notificationRepo, log)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)

	// PDF: printable rendition of the distributor's current price list
	pdfGenerator := infrapdf.NewPriceListGenerator()
	priceExportUC := usecase.NewPriceExportUseCase(priceRepo, userRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BuildMate API",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Version: cfg.App.Version})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		MaterialUC:     materialUC,
		InventoryUC:    inventoryUC,
		PriceUC:        priceUC,
		PriceExportUC:  priceExportUC,
		InquiryUC:      inquiryUC,
		NotificationUC: notificationUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	// SPA frontend: serve the build output, falling back to index.html so
	// client-side routes resolve on refresh.
	if cfg.App.StaticDir != "" {
		if _, statErr := os.Stat(cfg.App.StaticDir); statErr == nil {
			app.Static("/", cfg.App.StaticDir)
			index := filepath.Join(cfg.App.StaticDir, "index.html")
			app.Get("/*", func(c *fiber.Ctx) error {
				return c.SendFile(index)
			})
		}
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
