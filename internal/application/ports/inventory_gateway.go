package ports

import (
	"context"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// InventoryGateway define el puerto de salida hacia el backend REST de inventario.
// El backend es la fuente de verdad; el dashboard nunca modifica su copia localmente.
type InventoryGateway interface {
	// FetchItems obtiene la lista completa de ítems.
	FetchItems(ctx context.Context) ([]entity.InventoryItem, error)
	// CreateItem envía un ítem nuevo ya validado.
	CreateItem(ctx context.Context, draft entity.ItemDraft) error
	// AdjustQuantity envía un ajuste relativo (delta != 0) para el ítem indicado.
	AdjustQuantity(ctx context.Context, id string, delta int) error
}

// ReportGenerator renderiza la vista del dashboard como documento (PDF).
type ReportGenerator interface {
	GenerateDashboardReport(ctx context.Context, view *dto.DashboardViewDTO, meta dto.ReportMeta) ([]byte, error)
}
