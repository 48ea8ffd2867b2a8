// Package inventory contiene los casos de uso del backend de referencia que sirve /api/inventory.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	domaininv "github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

// ItemUseCase casos de uso de ítems: listar, crear y ajustar cantidad.
type ItemUseCase struct {
	repo repository.InventoryItemRepository
	log  zerolog.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.InventoryItemRepository, log zerolog.Logger) *ItemUseCase {
	return &ItemUseCase{repo: repo, log: log.With().Str("component", "inventory").Logger()}
}

// List devuelve todos los ítems en orden de creación.
func (uc *ItemUseCase) List(ctx context.Context) (*dto.ItemListResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar ítems: %w", err)
	}
	if items == nil {
		items = []entity.InventoryItem{}
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

// Create valida el borrador, asigna un UUID y persiste el ítem.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*entity.InventoryItem, error) {
	draft, err := domaininv.ValidateDraft(entity.ItemDraft{
		Name:         in.Name,
		Category:     in.Category,
		Quantity:     in.Quantity,
		MinThreshold: in.MinThreshold,
	})
	if err != nil {
		return nil, err
	}

	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         draft.Name,
		Category:     draft.Category,
		Quantity:     draft.Quantity,
		MinThreshold: draft.MinThreshold,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("crear ítem: %w", err)
	}
	uc.log.Info().Str("item_id", item.ID).Str("name", item.Name).Int("quantity", item.Quantity).Msg("ítem creado")
	return item, nil
}

// AdjustQuantity aplica un delta relativo. Delta cero o fuera de int32 → ValidationError; resultado negativo → ErrInsufficientStock.
func (uc *ItemUseCase) AdjustQuantity(ctx context.Context, id string, delta int) (*entity.InventoryItem, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "item id is required.")
	}
	if err := domaininv.CheckDelta(delta); err != nil {
		return nil, err
	}
	item, err := uc.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("item_id", id).Int("delta", delta).Int("quantity", item.Quantity).
		Bool("low_stock", domaininv.IsLowStock(*item)).Msg("cantidad ajustada")
	return item, nil
}
