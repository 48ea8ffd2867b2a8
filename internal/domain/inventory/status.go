package inventory

import "github.com/jhoicas/inventory-dashboard/internal/domain/entity"

// Classify devuelve LOW_STOCK cuando quantity <= minThreshold, OK en otro caso.
// Las entradas ya vienen saneadas desde la ingesta (ver entity.CoerceCount).
func Classify(quantity, minThreshold int) entity.StockStatus {
	if quantity <= minThreshold {
		return entity.StatusLowStock
	}
	return entity.StatusOK
}

// IsLowStock atajo de Classify sobre un ítem.
func IsLowStock(item entity.InventoryItem) bool {
	return Classify(item.Quantity, item.MinThreshold) == entity.StatusLowStock
}
