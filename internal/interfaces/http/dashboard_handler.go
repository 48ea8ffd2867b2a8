package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/ports"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// DashboardHandler expone el view-model del dashboard sobre HTTP.
type DashboardHandler struct {
	uc     *dashboard.DashboardUseCase
	report ports.ReportGenerator
	title  string
	now    func() time.Time
}

// NewDashboardHandler construye el handler. report puede ser nil (sin endpoint PDF).
func NewDashboardHandler(uc *dashboard.DashboardUseCase, report ports.ReportGenerator, title string) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report, title: title, now: time.Now}
}

// criteriaFromQuery lee search, category y low_stock. low_stock acepta true/false/1/0.
func criteriaFromQuery(c *fiber.Ctx) entity.FilterCriteria {
	return entity.FilterCriteria{
		SearchText:   c.Query("search"),
		Category:     c.Query("category", entity.CategoryAll),
		LowStockOnly: c.QueryBool("low_stock", false),
	}
}

// View godoc
// @Summary      Vista del dashboard
// @Description  Ítems filtrados, alertas de bajo stock, categorías y estadísticas (estas tres sobre la lista completa).
// @Tags         dashboard
// @Produce      json
// @Param        search     query     string  false  "Texto a buscar en el nombre (sin distinguir mayúsculas)"
// @Param        category   query     string  false  "Categoría exacta o 'all'"
// @Param        low_stock  query     bool    false  "Solo ítems con cantidad <= umbral"
// @Success      200        {object}  dto.DashboardViewDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.uc.View(criteriaFromQuery(c)))
}

// Refresh godoc
// @Summary      Recargar inventario desde el backend
// @Description  Un fallo conserva la lista anterior y se refleja en el campo error de la vista.
// @Tags         dashboard
// @Produce      json
// @Param        search     query     string  false  "Texto a buscar en el nombre"
// @Param        category   query     string  false  "Categoría"
// @Param        low_stock  query     bool    false  "Solo bajo stock"
// @Success      200        {object}  dto.DashboardViewDTO
// @Router       /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	_ = h.uc.Refresh(c.UserContext())
	return c.JSON(h.uc.View(criteriaFromQuery(c)))
}

// AddItem godoc
// @Summary      Agregar ítem
// @Description  Valida el formulario localmente; si es válido lo envía al backend y recarga la lista.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddItemRequest  true  "name, category, quantity, minThreshold"
// @Success      201   {object}  dto.DashboardViewDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/dashboard/items [post]
func (h *DashboardHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.AddItem(c.UserContext(), in.ToForm()); err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "BACKEND_UNAVAILABLE", Message: h.uc.View(entity.FilterCriteria{}).Form.Error,
			})
		}
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.uc.View(criteriaFromQuery(c)))
}

// UpdateForm godoc
// @Summary      Guardar borrador del formulario
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddItemRequest  true  "valores crudos"
// @Success      200   {object}  dto.FormStateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/form [put]
func (h *DashboardHandler) UpdateForm(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	h.uc.UpdateForm(in.ToForm())
	return c.JSON(h.uc.View(entity.FilterCriteria{}).Form)
}

// SetPending godoc
// @Summary      Guardar ajuste pendiente de un ítem
// @Description  Guarda el texto escrito en el campo de ajuste; vacío lo elimina.
// @Tags         dashboard
// @Accept       json
// @Param        id    path  string                        true  "ID del ítem"
// @Param        body  body  dto.PendingAdjustmentRequest  true  "value"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/items/{id}/pending [put]
func (h *DashboardHandler) SetPending(c *fiber.Ctx) error {
	var in dto.PendingAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	h.uc.SetPendingAdjustment(itemID(c), in.Value)
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustQuantity godoc
// @Summary      Enviar ajuste de cantidad
// @Description  Usa el delta del body o, si se omite, el ajuste pendiente guardado. Un rechazo del
// @Description  backend no es un error HTTP: se informa con applied=false.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true   "ID del ítem"
// @Param        body  body      dto.DashboardAdjustRequest  false  "delta"
// @Success      202   {object}  dto.AdjustResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/items/{id}/quantity [patch]
func (h *DashboardHandler) AdjustQuantity(c *fiber.Ctx) error {
	var in dto.DashboardAdjustRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}

	id := itemID(c)
	var (
		out dashboard.AdjustOutcome
		err error
	)
	if raw, ok := in.RawDelta(); ok {
		out, err = h.uc.AdjustQuantity(c.UserContext(), id, raw)
	} else {
		out, err = h.uc.AdjustPending(c.UserContext(), id)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.AdjustResponse{
		Delta:   out.Delta,
		Applied: out.Applied,
		View:    h.uc.View(criteriaFromQuery(c)),
	})
}

// Report godoc
// @Summary      Reporte PDF del dashboard
// @Tags         dashboard
// @Produce      application/pdf
// @Param        search     query  string  false  "Texto a buscar en el nombre"
// @Param        category   query  string  false  "Categoría"
// @Param        low_stock  query  bool    false  "Solo bajo stock"
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report.pdf [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	if h.report == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "reporte no disponible"})
	}
	view := h.uc.View(criteriaFromQuery(c))
	pdfBytes, err := h.report.GenerateDashboardReport(c.UserContext(), view, dto.ReportMeta{
		Title:       h.title,
		GeneratedAt: h.now().Format("2006-01-02 15:04"),
	})
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventory-report.pdf"`)
	return c.Send(pdfBytes)
}
