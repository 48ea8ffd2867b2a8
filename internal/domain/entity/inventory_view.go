package entity

// StockStatus clasificación binaria de un ítem según su umbral mínimo.
type StockStatus string

const (
	StatusLowStock StockStatus = "LOW_STOCK"
	StatusOK       StockStatus = "OK"
)

// Label texto mostrado en la tabla de inventario.
func (s StockStatus) Label() string {
	if s == StatusLowStock {
		return "LOW STOCK"
	}
	return "OK"
}

// CategoryAll valor equivalente a "sin filtro de categoría".
const CategoryAll = "all"

// FilterCriteria criterios efímeros del usuario; no se persisten.
type FilterCriteria struct {
	SearchText   string `json:"searchText" query:"search"`
	Category     string `json:"category" query:"category"`
	LowStockOnly bool   `json:"lowStockOnly" query:"low_stock"`
}

// Stats agregados calculados siempre sobre el conjunto completo (sin filtrar).
type Stats struct {
	TotalItems    int `json:"totalItems"`
	LowStockCount int `json:"lowStockCount"`
	CategoryCount int `json:"categoryCount"`
}

// View proyección derivada del store para unos criterios dados. Nunca se persiste.
type View struct {
	VisibleItems  []InventoryItem `json:"visibleItems"`
	LowStockItems []InventoryItem `json:"lowStockItems"`
	Categories    []string        `json:"categories"`
	Stats         Stats           `json:"stats"`
}
