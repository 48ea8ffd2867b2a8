// @title        Inventory API
// @version      1.0
// @description  Backend de referencia /api/inventory (ítems con cantidad y umbral mínimo).
// @BasePath     /
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

	_ "github.com/jhoicas/inventory-dashboard/docs/api"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-dashboard/internal/interfaces/http"
	"github.com/jhoicas/inventory-dashboard/pkg/config"
	"github.com/jhoicas/inventory-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "inventory-api",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando backend de inventario")

	ctx := context.Background()

	var repo repository.InventoryItemRepository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración inventory_items")
		}
		repo = postgres.NewInventoryItemRepository(pool)
	default:
		repo = memory.NewInventoryItemRepository()
	}

	itemUC := inventory.NewItemUseCase(repo, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		UnescapePath: true,
	})
	app.Use(recover.New())
	app.Use(logger.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/api/swagger.json",
		Path:     "docs",
		Title:    "Inventory API",
	}))

	app.Get("/health", httpRouter.Health(cfg.App.Name))

	httpRouter.InventoryRouter(app, httpRouter.InventoryRouterDeps{
		ItemUC: itemUC,
	})

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
