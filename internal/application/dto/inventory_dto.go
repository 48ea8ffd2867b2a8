package dto

import "github.com/jhoicas/inventory-dashboard/internal/domain/entity"

// CreateItemRequest body para POST /api/inventory (backend de referencia).
type CreateItemRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"minThreshold"`
}

// AdjustQuantityRequest body para PATCH /api/inventory/:id/quantity.
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// ItemListResponse respuesta de GET /api/inventory.
type ItemListResponse struct {
	Items []entity.InventoryItem `json:"items"`
	Total int                    `json:"total"`
}
