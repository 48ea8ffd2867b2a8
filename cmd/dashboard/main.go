// @title        Inventory Dashboard API
// @version      1.0
// @description  View-model del dashboard de inventario sobre la API REST /api/inventory.
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

	_ "github.com/jhoicas/inventory-dashboard/docs/dashboard"
	"github.com/jhoicas/inventory-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/inventory-dashboard/internal/infrastructure/pdf"
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
		Service: "inventory-dashboard",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Inventory.BaseURL).
		Msg("iniciando dashboard de inventario")

	gateway := backend.NewRESTClient(cfg.Inventory.BaseURL, cfg.Inventory.Timeout())
	dashboardUC := dashboard.NewDashboardUseCase(gateway, dashboard.NewItemStore(), log.Zerolog())

	// Carga inicial; un fallo queda como error de página y no impide arrancar.
	initCtx, cancelInit := context.WithTimeout(context.Background(), cfg.Inventory.Timeout())
	if err := dashboardUC.Refresh(initCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial de inventario fallida")
	}
	cancelInit()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		UnescapePath: true,
	})
	app.Use(recover.New())
	app.Use(logger.RequestLogger(log))

	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/dashboard/swagger.json",
		Path:     "docs",
		Title:    "Inventory Dashboard",
	}))

	app.Get("/health", httpRouter.Health(cfg.App.Name))

	httpRouter.DashboardRouter(app, httpRouter.DashboardRouterDeps{
		DashboardUC: dashboardUC,
		Report:      infrapdf.NewMarotoReportGenerator(),
		Title:       "Inventory Dashboard",
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
