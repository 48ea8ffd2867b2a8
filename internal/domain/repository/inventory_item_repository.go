package repository

import (
	"context"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia del backend de referencia (DIP).
type InventoryItemRepository interface {
	// List devuelve todos los ítems en orden de creación.
	List(ctx context.Context) ([]entity.InventoryItem, error)
	Create(ctx context.Context, item *entity.InventoryItem) error
	// AdjustQuantity aplica delta de forma atómica y devuelve el ítem resultante.
	// domain.ErrNotFound si el id no existe; domain.ErrInsufficientStock si el resultado sería negativo.
	AdjustQuantity(ctx context.Context, id string, delta int) (*entity.InventoryItem, error)
}
