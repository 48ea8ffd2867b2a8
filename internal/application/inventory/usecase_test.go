package inventory_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/memory"
)

func newItemUseCase() *inventory.ItemUseCase {
	return inventory.NewItemUseCase(memory.NewInventoryItemRepository(), zerolog.Nop())
}

func TestCreate_AsignaUUIDYRecorta(t *testing.T) {
	uc := newItemUseCase()
	item, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name: " Bolt ", Category: " Hardware", Quantity: 5, MinThreshold: 10,
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(item.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "Bolt", item.Name)
	assert.Equal(t, "Hardware", item.Category)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestCreate_Validacion(t *testing.T) {
	uc := newItemUseCase()
	_, err := uc.Create(context.Background(), dto.CreateItemRequest{Name: "Bolt", Quantity: 1})
	assert.True(t, domain.IsValidation(err))

	_, err = uc.Create(context.Background(), dto.CreateItemRequest{Name: "Bolt", Category: "H", MinThreshold: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, _ := uc.List(context.Background())
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
}

func TestAdjustQuantity_Reglas(t *testing.T) {
	ctx := context.Background()
	uc := newItemUseCase()
	item, err := uc.Create(ctx, dto.CreateItemRequest{Name: "Bolt", Category: "Hardware", Quantity: 5, MinThreshold: 10})
	require.NoError(t, err)

	_, err = uc.AdjustQuantity(ctx, item.ID, 0)
	assert.True(t, domain.IsValidation(err))

	_, err = uc.AdjustQuantity(ctx, item.ID, -6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = uc.AdjustQuantity(ctx, "", 1)
	assert.True(t, domain.IsValidation(err))

	updated, err := uc.AdjustQuantity(ctx, item.ID, -5)
	require.NoError(t, err)
	assert.Zero(t, updated.Quantity)
}

func TestLimitesInt32(t *testing.T) {
	ctx := context.Background()
	uc := newItemUseCase()

	_, err := uc.Create(ctx, dto.CreateItemRequest{Name: "Bolt", Category: "H", Quantity: math.MaxInt32 + 1})
	assert.True(t, domain.IsValidation(err))

	item, err := uc.Create(ctx, dto.CreateItemRequest{Name: "Bolt", Category: "H", Quantity: 5})
	require.NoError(t, err)

	for _, delta := range []int{math.MaxInt32 + 1, math.MinInt32 - 1, math.MaxInt} {
		_, err = uc.AdjustQuantity(ctx, item.ID, delta)
		assert.True(t, domain.IsValidation(err), "delta %d", delta)
	}

	_, err = uc.AdjustQuantity(ctx, item.ID, math.MaxInt32)
	assert.True(t, domain.IsValidation(err), "5 + MaxInt32 supera int32")

	list, _ := uc.List(ctx)
	assert.Equal(t, 5, list.Items[0].Quantity)
}
