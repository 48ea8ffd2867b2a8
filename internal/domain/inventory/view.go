package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// DeriveView calcula la vista del dashboard (servicio de dominio puro).
//
//   - VisibleItems: filtro estable y conjuntivo (búsqueda ∧ categoría ∧ stock bajo).
//   - LowStockItems, Categories y Stats: siempre sobre el conjunto completo,
//     independientes de los criterios activos.
//
// No modifica items; los slices devueltos no comparten memoria con la entrada.
func DeriveView(items []entity.InventoryItem, criteria entity.FilterCriteria) entity.View {
	fold := cases.Fold()
	needle := fold.String(criteria.SearchText)
	category := criteria.Category
	if category == entity.CategoryAll {
		category = ""
	}

	view := entity.View{
		VisibleItems:  make([]entity.InventoryItem, 0, len(items)),
		LowStockItems: make([]entity.InventoryItem, 0),
		Categories:    make([]string, 0),
	}
	seen := make(map[string]struct{})

	for _, item := range items {
		if _, ok := seen[item.Category]; !ok {
			seen[item.Category] = struct{}{}
			view.Categories = append(view.Categories, item.Category)
		}

		low := IsLowStock(item)
		if low {
			view.LowStockItems = append(view.LowStockItems, item)
		}

		if needle != "" && !strings.Contains(fold.String(item.Name), needle) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		if criteria.LowStockOnly && !low {
			continue
		}
		view.VisibleItems = append(view.VisibleItems, item)
	}

	view.Stats = entity.Stats{
		TotalItems:    len(items),
		LowStockCount: len(view.LowStockItems),
		CategoryCount: len(view.Categories),
	}
	return view
}
