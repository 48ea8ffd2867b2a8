// Package memory implementa los repositorios en memoria del backend de referencia (STORAGE_DRIVER=memory).
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepository)(nil)

// InventoryItemRepository guarda los ítems en un slice protegido por RWMutex, en orden de creación.
type InventoryItemRepository struct {
	mu    sync.RWMutex
	items []entity.InventoryItem
	index map[string]int // id → posición en items
}

// NewInventoryItemRepository crea el repositorio, opcionalmente con ítems iniciales.
func NewInventoryItemRepository(seed ...entity.InventoryItem) *InventoryItemRepository {
	r := &InventoryItemRepository{index: make(map[string]int, len(seed))}
	for _, it := range seed {
		if _, dup := r.index[it.ID]; dup || it.ID == "" {
			continue
		}
		r.index[it.ID] = len(r.items)
		r.items = append(r.items, it)
	}
	return r
}

func (r *InventoryItemRepository) List(_ context.Context) ([]entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.InventoryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InventoryItemRepository) Create(_ context.Context, item *entity.InventoryItem) error {
	if item == nil || item.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.index[item.ID]; dup {
		return fmt.Errorf("ítem %s: %w", item.ID, domain.ErrDuplicate)
	}
	r.index[item.ID] = len(r.items)
	r.items = append(r.items, *item)
	return nil
}

func (r *InventoryItemRepository) AdjustQuantity(_ context.Context, id string, delta int) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	next, err := inventory.ApplyDelta(r.items[pos].Quantity, delta)
	if err != nil {
		return nil, err
	}
	r.items[pos].Quantity = next
	out := r.items[pos]
	return &out, nil
}
