package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func boltAndNut() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: "1", Name: "Bolt", Category: "Hardware", Quantity: 5, MinThreshold: 10},
		{ID: "2", Name: "Nut", Category: "Hardware", Quantity: 50, MinThreshold: 10},
	}
}

func mixedItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: "a", Name: "Bolt M6", Category: "Hardware", Quantity: 2, MinThreshold: 10},
		{ID: "b", Name: "Paint White", Category: "Paint", Quantity: 40, MinThreshold: 5},
		{ID: "c", Name: "Bolt M8", Category: "Hardware", Quantity: 30, MinThreshold: 10},
		{ID: "d", Name: "Paint Black", Category: "Paint", Quantity: 5, MinThreshold: 5},
		{ID: "e", Name: "Glue", Category: "Adhesives", Quantity: 0, MinThreshold: 0},
	}
}

func ids(items []entity.InventoryItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Classify
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_LowStockSiCantidadMenorOIgualAlUmbral(t *testing.T) {
	for q := 0; q <= 12; q++ {
		for th := 0; th <= 12; th++ {
			want := entity.StatusOK
			if q <= th {
				want = entity.StatusLowStock
			}
			assert.Equal(t, want, inventory.Classify(q, th), "q=%d t=%d", q, th)
		}
	}
}

func TestClassify_CeroCeroEsLowStock(t *testing.T) {
	assert.Equal(t, entity.StatusLowStock, inventory.Classify(0, 0))
	assert.Equal(t, "LOW STOCK", inventory.Classify(0, 0).Label())
	assert.Equal(t, "OK", inventory.Classify(1, 0).Label())
}

// ──────────────────────────────────────────────────────────────────────────────
// DeriveView
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveView_CriteriosVacios(t *testing.T) {
	items := boltAndNut()
	view := inventory.DeriveView(items, entity.FilterCriteria{})

	assert.Equal(t, []string{"1", "2"}, ids(view.VisibleItems))
	assert.Equal(t, []string{"1"}, ids(view.LowStockItems))
	assert.Equal(t, entity.Stats{TotalItems: 2, LowStockCount: 1, CategoryCount: 1}, view.Stats)
	assert.Equal(t, []string{"Hardware"}, view.Categories)
}

func TestDeriveView_BusquedaSinDistinguirMayusculas(t *testing.T) {
	view := inventory.DeriveView(boltAndNut(), entity.FilterCriteria{SearchText: "bolt"})
	assert.Equal(t, []string{"1"}, ids(view.VisibleItems))

	view = inventory.DeriveView(boltAndNut(), entity.FilterCriteria{SearchText: "UT"})
	assert.Equal(t, []string{"2"}, ids(view.VisibleItems))
}

func TestDeriveView_BusquedaConPlegadoUnicode(t *testing.T) {
	items := []entity.InventoryItem{
		{ID: "x", Name: "Señal Ñandú", Category: "Signs", Quantity: 3, MinThreshold: 1},
		{ID: "y", Name: "ÁNGULO", Category: "Hardware", Quantity: 3, MinThreshold: 1},
	}
	view := inventory.DeriveView(items, entity.FilterCriteria{SearchText: "ñandú"})
	assert.Equal(t, []string{"x"}, ids(view.VisibleItems))

	view = inventory.DeriveView(items, entity.FilterCriteria{SearchText: "ángulo"})
	assert.Equal(t, []string{"y"}, ids(view.VisibleItems))
}

func TestDeriveView_FiltroCategoria(t *testing.T) {
	items := mixedItems()

	view := inventory.DeriveView(items, entity.FilterCriteria{Category: "Paint"})
	assert.Equal(t, []string{"b", "d"}, ids(view.VisibleItems))

	all := inventory.DeriveView(items, entity.FilterCriteria{Category: entity.CategoryAll})
	assert.Equal(t, ids(items), ids(all.VisibleItems), `"all" equivale a sin filtro`)

	// Coincidencia exacta: no es substring ni insensible a mayúsculas
	none := inventory.DeriveView(items, entity.FilterCriteria{Category: "paint"})
	assert.Empty(t, none.VisibleItems)
}

func TestDeriveView_SoloStockBajo(t *testing.T) {
	view := inventory.DeriveView(mixedItems(), entity.FilterCriteria{LowStockOnly: true})
	assert.Equal(t, []string{"a", "d", "e"}, ids(view.VisibleItems))
}

// Filtrado conjuntivo: un ítem aparece sii cumple los tres predicados a la vez.
func TestDeriveView_FiltroConjuntivo(t *testing.T) {
	items := mixedItems()
	searches := []string{"", "bolt", "paint", "m8", "zzz"}
	categories := []string{"", "all", "Hardware", "Paint", "Adhesives"}

	for _, s := range searches {
		for _, c := range categories {
			for _, low := range []bool{false, true} {
				criteria := entity.FilterCriteria{SearchText: s, Category: c, LowStockOnly: low}
				bySearch := ids(inventory.DeriveView(items, entity.FilterCriteria{SearchText: s}).VisibleItems)
				byCategory := ids(inventory.DeriveView(items, entity.FilterCriteria{Category: c}).VisibleItems)
				byLow := ids(inventory.DeriveView(items, entity.FilterCriteria{LowStockOnly: low}).VisibleItems)

				var want []string
				for _, it := range items {
					if contains(bySearch, it.ID) && contains(byCategory, it.ID) && contains(byLow, it.ID) {
						want = append(want, it.ID)
					}
				}
				got := ids(inventory.DeriveView(items, criteria).VisibleItems)
				if want == nil {
					assert.Empty(t, got, "%+v", criteria)
				} else {
					assert.Equal(t, want, got, "%+v", criteria)
				}
			}
		}
	}
}

// Categorías, stock bajo y estadísticas no dependen de los criterios.
func TestDeriveView_AgregadosInvariantesAlFiltro(t *testing.T) {
	items := mixedItems()
	base := inventory.DeriveView(items, entity.FilterCriteria{})

	for _, criteria := range []entity.FilterCriteria{
		{SearchText: "bolt"},
		{Category: "Paint"},
		{LowStockOnly: true},
		{SearchText: "zzz", Category: "Adhesives", LowStockOnly: true},
	} {
		view := inventory.DeriveView(items, criteria)
		assert.Equal(t, base.Categories, view.Categories)
		assert.Equal(t, base.LowStockItems, view.LowStockItems)
		assert.Equal(t, base.Stats, view.Stats)
	}
}

func TestDeriveView_EstadisticasConsistentes(t *testing.T) {
	items := mixedItems()
	view := inventory.DeriveView(items, entity.FilterCriteria{SearchText: "paint"})

	low := 0
	for _, it := range items {
		if inventory.Classify(it.Quantity, it.MinThreshold) == entity.StatusLowStock {
			low++
		}
	}
	assert.Equal(t, len(items), view.Stats.TotalItems)
	assert.Equal(t, low, view.Stats.LowStockCount)
	assert.Equal(t, 3, view.Stats.CategoryCount)
	assert.Equal(t, []string{"Hardware", "Paint", "Adhesives"}, view.Categories)
}

func TestDeriveView_PuraYDeterminista(t *testing.T) {
	items := mixedItems()
	snapshot := append([]entity.InventoryItem(nil), items...)
	criteria := entity.FilterCriteria{SearchText: "o", LowStockOnly: true}

	first := inventory.DeriveView(items, criteria)
	_ = inventory.DeriveView(items, entity.FilterCriteria{Category: "Paint"})
	second := inventory.DeriveView(items, criteria)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, items, "la entrada no se modifica")

	// Los resultados no comparten memoria con la entrada
	require.NotEmpty(t, first.VisibleItems)
	first.VisibleItems[0].Name = "mutado"
	assert.NotEqual(t, "mutado", items[0].Name)
}

func TestDeriveView_ListaVacia(t *testing.T) {
	view := inventory.DeriveView(nil, entity.FilterCriteria{SearchText: "x"})
	assert.Empty(t, view.VisibleItems)
	assert.Empty(t, view.LowStockItems)
	assert.Empty(t, view.Categories)
	assert.Equal(t, entity.Stats{}, view.Stats)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
