// Package dashboard contiene el view-model del dashboard de inventario: el store
// de ítems, la puerta de mutaciones (alta y ajuste de cantidad) y la vista derivada.
package dashboard

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/ports"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
)

const (
	msgFetchFailed = "Failed to fetch inventory"
	msgAddFailed   = "Failed to add inventory item."
	msgAddSuccess  = "Item added successfully."
)

// formState estado del formulario de alta.
type formState struct {
	values     entity.ItemForm
	err        string
	success    string
	submitting bool
}

// DashboardUseCase orquesta store, gateway y derivación de vista.
// Toda mutación exitosa va seguida de una recarga completa desde el backend
// (sin reintentos, sin merge optimista). Los errores se convierten en estado
// local en el borde de cada operación; ninguno es fatal.
type DashboardUseCase struct {
	gateway ports.InventoryGateway
	store   *ItemStore
	log     zerolog.Logger

	mu      sync.Mutex
	form    formState
	pending map[string]string // id → valor de ajuste escrito y aún no enviado
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(gateway ports.InventoryGateway, store *ItemStore, log zerolog.Logger) *DashboardUseCase {
	if store == nil {
		store = NewItemStore()
	}
	return &DashboardUseCase{
		gateway: gateway,
		store:   store,
		log:     log.With().Str("component", "dashboard").Logger(),
		pending: make(map[string]string),
	}
}

// Refresh obtiene la lista completa y la aplica al store si sigue siendo la petición más reciente.
// Un fallo deja la lista anterior intacta y registra el error de página; también se devuelve al llamador.
func (uc *DashboardUseCase) Refresh(ctx context.Context) error {
	ticket := uc.store.Begin()
	items, err := uc.gateway.FetchItems(ctx)
	if err != nil {
		uc.log.Error().Err(err).Uint64("ticket", ticket).Msg("fetch de inventario fallido")
		uc.store.Fail(ticket, msgFetchFailed)
		return err
	}
	if !uc.store.Complete(ticket, items) {
		uc.log.Debug().Uint64("ticket", ticket).Msg("fetch obsoleto descartado")
	}
	return nil
}

// View deriva la vista completa del dashboard para los criterios dados.
func (uc *DashboardUseCase) View(criteria entity.FilterCriteria) *dto.DashboardViewDTO {
	snap := uc.store.Snapshot()
	view := inventory.DeriveView(snap.Items, criteria)

	uc.mu.Lock()
	form := uc.form
	pending := make(map[string]string, len(uc.pending))
	for id, v := range uc.pending {
		pending[id] = v
	}
	uc.mu.Unlock()

	return &dto.DashboardViewDTO{
		Criteria:      criteria,
		Items:         toItemRows(view.VisibleItems),
		LowStockItems: toItemRows(view.LowStockItems),
		Categories:    view.Categories,
		Stats:         view.Stats,
		Loading:       snap.Loading,
		Error:         snap.Error,
		Form: dto.FormStateDTO{
			Values:     form.values,
			Error:      form.err,
			Success:    form.success,
			Submitting: form.submitting,
		},
		Pending: pending,
	}
}

// UpdateForm guarda los valores crudos del formulario sin validarlos.
func (uc *DashboardUseCase) UpdateForm(form entity.ItemForm) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.form.values = form
}

// AddItem valida el formulario y, si es válido, lo envía al backend.
//   - Error de validación: error de formulario, formulario intacto, nada se envía.
//   - Error del backend: error de formulario, formulario intacto para corregir.
//   - Éxito: formulario limpio, mensaje de éxito y recarga completa.
//
// Devuelve el error de validación o de backend; un fallo de la recarga posterior
// solo se refleja en el error de página.
func (uc *DashboardUseCase) AddItem(ctx context.Context, form entity.ItemForm) error {
	uc.mu.Lock()
	uc.form.values = form
	uc.form.err = ""
	uc.form.success = ""
	uc.mu.Unlock()

	draft, err := inventory.ValidateForm(form)
	if err != nil {
		uc.setFormError(validationMessage(err))
		return err
	}

	uc.mu.Lock()
	uc.form.submitting = true
	uc.mu.Unlock()

	err = uc.gateway.CreateItem(ctx, draft)

	uc.mu.Lock()
	uc.form.submitting = false
	if err != nil {
		uc.form.err = msgAddFailed
		uc.mu.Unlock()
		uc.log.Error().Err(err).Str("name", draft.Name).Msg("alta de ítem fallida")
		return err
	}
	uc.form.values = entity.ItemForm{}
	uc.form.success = msgAddSuccess
	uc.mu.Unlock()

	uc.log.Info().Str("name", draft.Name).Str("category", draft.Category).Msg("ítem agregado")
	_ = uc.Refresh(ctx)
	return nil
}

// SetPendingAdjustment guarda el valor de ajuste escrito para un ítem.
func (uc *DashboardUseCase) SetPendingAdjustment(id, raw string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if raw == "" {
		delete(uc.pending, id)
		return
	}
	uc.pending[id] = raw
}

// PendingAdjustment devuelve el valor pendiente de un ítem.
func (uc *DashboardUseCase) PendingAdjustment(id string) (string, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	v, ok := uc.pending[id]
	return v, ok
}

// AdjustOutcome resultado de un ajuste ya enviado.
type AdjustOutcome struct {
	Delta   int  `json:"delta"`
	Applied bool `json:"applied"` // false si el backend rechazó o no respondió
}

// AdjustQuantity envía un ajuste relativo para el ítem id.
// Delta cero o no numérico: *domain.ValidationError, no se envía nada y el valor pendiente no cambia.
// Al completar (éxito o fallo) se limpia el valor pendiente del ítem; con éxito se recarga la lista.
// Un fallo del backend solo se registra en el log y se refleja en AdjustOutcome.Applied.
func (uc *DashboardUseCase) AdjustQuantity(ctx context.Context, id, raw string) (AdjustOutcome, error) {
	delta, err := inventory.ParseDelta(raw)
	if err != nil {
		return AdjustOutcome{}, err
	}
	if id == "" {
		return AdjustOutcome{}, domain.NewValidationError("id", "item id is required.")
	}

	err = uc.gateway.AdjustQuantity(ctx, id, delta)
	uc.SetPendingAdjustment(id, "")

	if err != nil {
		uc.log.Error().Err(err).Str("item_id", id).Int("delta", delta).Msg("ajuste de cantidad fallido")
		return AdjustOutcome{Delta: delta}, nil
	}
	_ = uc.Refresh(ctx)
	return AdjustOutcome{Delta: delta, Applied: true}, nil
}

// AdjustPending envía el valor pendiente guardado para el ítem.
func (uc *DashboardUseCase) AdjustPending(ctx context.Context, id string) (AdjustOutcome, error) {
	raw, _ := uc.PendingAdjustment(id)
	return uc.AdjustQuantity(ctx, id, raw)
}

// Items copia de la lista actual (sin filtrar).
func (uc *DashboardUseCase) Items() []entity.InventoryItem {
	return uc.store.Items()
}

func (uc *DashboardUseCase) setFormError(msg string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.form.err = msg
}

func validationMessage(err error) string {
	if ve, ok := err.(*domain.ValidationError); ok {
		return ve.Message
	}
	return err.Error()
}

func toItemRows(items []entity.InventoryItem) []dto.ItemRowDTO {
	rows := make([]dto.ItemRowDTO, 0, len(items))
	for _, it := range items {
		status := inventory.Classify(it.Quantity, it.MinThreshold)
		rows = append(rows, dto.ItemRowDTO{
			ID:           it.ID,
			Name:         it.Name,
			Category:     it.Category,
			Quantity:     it.Quantity,
			MinThreshold: it.MinThreshold,
			Status:       status,
			StatusLabel:  status.Label(),
		})
	}
	return rows
}
