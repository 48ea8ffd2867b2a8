package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
)

// InventoryHandler maneja /api/inventory del backend de referencia.
type InventoryHandler struct {
	uc *inventory.ItemUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.ItemUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar ítems de inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ItemListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateItemRequest  true  "name, category, quantity, minThreshold"
// @Success      201   {object}  entity.InventoryItem
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// AdjustQuantity godoc
// @Summary      Ajustar cantidad de un ítem
// @Description  Aplica un delta relativo (positivo o negativo, distinto de cero).
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID del ítem"
// @Param        body  body      dto.AdjustQuantityRequest  true  "delta"
// @Success      200   {object}  entity.InventoryItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/quantity [patch]
func (h *InventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.uc.AdjustQuantity(c.UserContext(), itemID(c), in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}
