package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gateway falso
// ──────────────────────────────────────────────────────────────────────────────

type adjustCall struct {
	ID    string
	Delta int
}

type fakeGateway struct {
	mu        sync.Mutex
	items     []entity.InventoryItem
	fetchErr  error
	createErr error
	adjustErr error

	fetches int
	creates []entity.ItemDraft
	adjusts []adjustCall
}

func (g *fakeGateway) FetchItems(context.Context) ([]entity.InventoryItem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fetches++
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	return append([]entity.InventoryItem(nil), g.items...), nil
}

func (g *fakeGateway) CreateItem(_ context.Context, d entity.ItemDraft) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.creates = append(g.creates, d)
	if g.createErr != nil {
		return g.createErr
	}
	g.items = append(g.items, entity.InventoryItem{
		ID: d.Name, Name: d.Name, Category: d.Category, Quantity: d.Quantity, MinThreshold: d.MinThreshold,
	})
	return nil
}

func (g *fakeGateway) AdjustQuantity(_ context.Context, id string, delta int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adjusts = append(g.adjusts, adjustCall{ID: id, Delta: delta})
	if g.adjustErr != nil {
		return g.adjustErr
	}
	for i := range g.items {
		if g.items[i].ID == id {
			g.items[i].Quantity += delta
		}
	}
	return nil
}

func newUseCase(g *fakeGateway) *dashboard.DashboardUseCase {
	return dashboard.NewDashboardUseCase(g, dashboard.NewItemStore(), zerolog.Nop())
}

func seeded() *fakeGateway {
	return &fakeGateway{items: []entity.InventoryItem{
		{ID: "1", Name: "Bolt", Category: "Hardware", Quantity: 5, MinThreshold: 10},
		{ID: "2", Name: "Nut", Category: "Hardware", Quantity: 50, MinThreshold: 10},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh / View
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_ReemplazaListaYDerivaVista(t *testing.T) {
	g := seeded()
	uc := newUseCase(g)
	require.NoError(t, uc.Refresh(context.Background()))

	view := uc.View(entity.FilterCriteria{})
	require.Len(t, view.Items, 2)
	require.Len(t, view.LowStockItems, 1)
	assert.Equal(t, "Bolt", view.LowStockItems[0].Name)
	assert.Equal(t, entity.StatusLowStock, view.LowStockItems[0].Status)
	assert.Equal(t, "LOW STOCK", view.LowStockItems[0].StatusLabel)
	assert.Equal(t, entity.Stats{TotalItems: 2, LowStockCount: 1, CategoryCount: 1}, view.Stats)
	assert.False(t, view.Loading)
	assert.Empty(t, view.Error)

	filtered := uc.View(entity.FilterCriteria{SearchText: "bolt"})
	require.Len(t, filtered.Items, 1)
	assert.Equal(t, "1", filtered.Items[0].ID)
	assert.Equal(t, view.Stats, filtered.Stats)
}

func TestRefresh_FalloConservaListaAnterior(t *testing.T) {
	g := seeded()
	uc := newUseCase(g)
	require.NoError(t, uc.Refresh(context.Background()))

	g.fetchErr = errors.New("connection refused")
	err := uc.Refresh(context.Background())
	require.Error(t, err)

	view := uc.View(entity.FilterCriteria{})
	assert.Len(t, view.Items, 2, "la lista anterior sigue visible")
	assert.Equal(t, "Failed to fetch inventory", view.Error)

	g.fetchErr = nil
	require.NoError(t, uc.Refresh(context.Background()))
	assert.Empty(t, uc.View(entity.FilterCriteria{}).Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_ExitoLimpiaFormularioYRecarga(t *testing.T) {
	g := seeded()
	uc := newUseCase(g)

	err := uc.AddItem(context.Background(), entity.ItemForm{
		Name: " Washer ", Category: "Hardware", Quantity: "3", MinThreshold: "4",
	})
	require.NoError(t, err)

	require.Len(t, g.creates, 1)
	assert.Equal(t, entity.ItemDraft{Name: "Washer", Category: "Hardware", Quantity: 3, MinThreshold: 4}, g.creates[0])
	assert.Equal(t, 1, g.fetches, "toda alta exitosa recarga la lista")

	view := uc.View(entity.FilterCriteria{})
	assert.True(t, view.Form.Values.IsZero())
	assert.Equal(t, "Item added successfully.", view.Form.Success)
	assert.Empty(t, view.Form.Error)
	assert.Len(t, view.Items, 3)
}

func TestAddItem_CantidadNegativaNoEnviaNada(t *testing.T) {
	g := seeded()
	uc := newUseCase(g)
	form := entity.ItemForm{Name: "Bolt", Category: "Hardware", Quantity: "-1", MinThreshold: "1"}

	err := uc.AddItem(context.Background(), form)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, g.creates, "no debe haber petición de red")
	assert.Zero(t, g.fetches)

	view := uc.View(entity.FilterCriteria{})
	assert.Equal(t, domain.MsgNegativeValues, view.Form.Error)
	assert.Equal(t, form, view.Form.Values, "el formulario se conserva")
}

func TestAddItem_FalloBackendConservaFormulario(t *testing.T) {
	g := seeded()
	g.createErr = &domain.BackendError{Op: "add", StatusCode: 500}
	uc := newUseCase(g)
	require.NoError(t, uc.Refresh(context.Background()))
	form := entity.ItemForm{Name: "Washer", Category: "Hardware", Quantity: "1", MinThreshold: "1"}

	err := uc.AddItem(context.Background(), form)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBackendUnavailable))

	view := uc.View(entity.FilterCriteria{})
	assert.Equal(t, "Failed to add inventory item.", view.Form.Error)
	assert.Equal(t, form, view.Form.Values)
	assert.False(t, view.Form.Submitting)
	assert.Len(t, view.Items, 2, "la lista no cambia")
	assert.Equal(t, 1, g.fetches, "sin recarga tras un fallo")
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustQuantity_DeltaCeroEsNoOp(t *testing.T) {
	g := seeded()
	uc := newUseCase(g)
	require.NoError(t, uc.Refresh(context.Background()))
	uc.SetPendingAdjustment("1", "0")

	for _, raw := range []string{"0", "", "abc"} {
		_, err := uc.AdjustQuantity(context.Background(), "1", raw)
		assert.True(t, domain.IsValidation(err), raw)
	}
	assert.Empty(t, g.adjusts, "ninguna petición enviada")
	assert.Equal(t, 1, g.fetches)

	pending, ok := uc.PendingAdjustment("1")
	assert.True(t, ok)
	assert.Equal(t, "0", pending, "el valor pendiente no cambia")
	assert.Equal(t, 5, uc.Items()[0].Quantity)
}

func TestAdjustQuantity_ExitoLimpiaPendienteYRecarga(t *testing.T) {
	g := seeded()
	uc := newUseCase(g)
	require.NoError(t, uc.Refresh(context.Background()))
	uc.SetPendingAdjustment("1", "7")

	out, err := uc.AdjustPending(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, dashboard.AdjustOutcome{Delta: 7, Applied: true}, out)
	assert.Equal(t, []adjustCall{{ID: "1", Delta: 7}}, g.adjusts)
	assert.Equal(t, 2, g.fetches)

	_, ok := uc.PendingAdjustment("1")
	assert.False(t, ok)

	view := uc.View(entity.FilterCriteria{LowStockOnly: true})
	assert.Empty(t, view.Items, "Bolt pasó a 12 > 10")
}

func TestAdjustQuantity_FalloSoloSeRegistraYLimpiaPendiente(t *testing.T) {
	g := seeded()
	g.adjustErr = &domain.BackendError{Op: "adjust", StatusCode: 409}
	uc := newUseCase(g)
	require.NoError(t, uc.Refresh(context.Background()))
	uc.SetPendingAdjustment("1", "-9")

	out, err := uc.AdjustQuantity(context.Background(), "1", "-9")
	require.NoError(t, err, "el fallo del ajuste no se propaga")
	assert.False(t, out.Applied)
	assert.Equal(t, -9, out.Delta)

	_, ok := uc.PendingAdjustment("1")
	assert.False(t, ok, "el pendiente se limpia también en fallo")
	assert.Equal(t, 1, g.fetches, "sin recarga tras un fallo")
	assert.Empty(t, uc.View(entity.FilterCriteria{}).Error, "sin error visible de página")
}

func TestAdjustQuantity_PeticionesConcurrentesIndependientes(t *testing.T) {
	g := seeded()
	uc := newUseCase(g)
	require.NoError(t, uc.Refresh(context.Background()))

	var wg sync.WaitGroup
	for _, id := range []string{"1", "2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := uc.AdjustQuantity(context.Background(), id, "1")
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	items := uc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, 51, items[1].Quantity)
}
