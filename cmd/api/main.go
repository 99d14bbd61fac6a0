package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/seefirst/seefirst-api/internal/application/auth"
	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/infrastructure/postgres"
	httpiface "github.com/seefirst/seefirst-api/internal/interfaces/http"
	"github.com/seefirst/seefirst-api/pkg/config"
	"github.com/seefirst/seefirst-api/pkg/logger"
	"github.com/seefirst/seefirst-api/pkg/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Evolución de esquema al arranque: idempotente, aborta ante cualquier
	// error que no sea una columna ya existente.
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("evolución de esquema")
	}

	uploads, err := upload.New(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}

	userRepo := postgres.NewUserRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	previewRepo := postgres.NewPreviewRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	}, auth.BootstrapAdmin{
		Email:    cfg.Admin.Email,
		Phone:    cfg.Admin.Phone,
		Password: cfg.Admin.Password,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	orderUC := usecase.NewOrderUseCase(txRunner, orderRepo)
	bannerUC := usecase.NewBannerUseCase(bannerRepo)
	previewUC := usecase.NewPreviewUseCase(previewRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, productRepo, orderRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    25 * 1024 * 1024, // multipart con hasta 5 imágenes
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Static("/uploads", uploads.Dir())

	httpiface.SetupRoutes(app, httpiface.Handlers{
		Auth:     httpiface.NewAuthHandler(authUC),
		Product:  httpiface.NewProductHandler(productUC, uploads),
		Category: httpiface.NewCategoryHandler(categoryUC, uploads),
		Banner:   httpiface.NewBannerHandler(bannerUC, uploads),
		Order:    httpiface.NewOrderHandler(orderUC),
		Preview:  httpiface.NewPreviewHandler(previewUC),
		Vendor:   httpiface.NewVendorHandler(vendorUC),
		User:     httpiface.NewUserHandler(userUC),
	}, cfg.JWT.Secret, userRepo, vendorRepo)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
