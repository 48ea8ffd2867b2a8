package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/application/ports"
)

// InventoryRouterDeps dependencias del backend de referencia.
type InventoryRouterDeps struct {
	ItemUC *inventory.ItemUseCase
}

// InventoryRouter registra /api/inventory.
func InventoryRouter(app *fiber.App, deps InventoryRouterDeps) {
	api := app.Group("/api")

	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ItemUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Patch("/:id/quantity", inventoryHandler.AdjustQuantity)
}

// DashboardRouterDeps dependencias del servicio de dashboard.
type DashboardRouterDeps struct {
	DashboardUC *dashboard.DashboardUseCase
	Report      ports.ReportGenerator
	Title       string
}

// DashboardRouter registra /api/dashboard.
func DashboardRouter(app *fiber.App, deps DashboardRouterDeps) {
	api := app.Group("/api")

	dash := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Report, deps.Title)
	dash.Get("/", dashboardHandler.View)
	dash.Post("/refresh", dashboardHandler.Refresh)
	dash.Get("/report.pdf", dashboardHandler.Report)
	dash.Put("/form", dashboardHandler.UpdateForm)
	dash.Post("/items", dashboardHandler.AddItem)
	dash.Put("/items/:id/pending", dashboardHandler.SetPending)
	dash.Patch("/items/:id/quantity", dashboardHandler.AdjustQuantity)
}

// Health responde el estado del proceso.
func Health(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
