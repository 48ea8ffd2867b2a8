package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// DashboardViewDTO respuesta de GET /api/dashboard.
// Items respeta los criterios; LowStockItems, Categories y Stats se calculan
// siempre sobre la lista completa.
type DashboardViewDTO struct {
	Criteria      entity.FilterCriteria `json:"criteria"`
	Items         []ItemRowDTO          `json:"items"`
	LowStockItems []ItemRowDTO          `json:"lowStockItems"`
	Categories    []string              `json:"categories"`
	Stats         entity.Stats          `json:"stats"`
	Loading       bool                  `json:"loading"`
	Error         string                `json:"error,omitempty"` // error de página del último fetch
	Form          FormStateDTO          `json:"form"`
	Pending       map[string]string     `json:"pending"` // ajustes escritos y no enviados, por id
}

// ItemRowDTO fila de la tabla: el ítem más su estado de stock.
type ItemRowDTO struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Quantity     int                `json:"quantity"`
	MinThreshold int                `json:"minThreshold"`
	Status       entity.StockStatus `json:"status"`
	StatusLabel  string             `json:"statusLabel"`
}

// FormStateDTO estado del formulario de alta.
type FormStateDTO struct {
	Values     entity.ItemForm `json:"values"`
	Error      string          `json:"error,omitempty"`
	Success    string          `json:"success,omitempty"`
	Submitting bool            `json:"submitting"`
}

// PendingAdjustmentRequest body para PUT /api/dashboard/items/:id/pending.
type PendingAdjustmentRequest struct {
	Value string `json:"value"`
}

// DashboardAdjustRequest body para PATCH /api/dashboard/items/:id/quantity.
// Delta acepta número o texto tal como lo escribió el usuario; si se omite se usa el valor pendiente.
type DashboardAdjustRequest struct {
	Delta json.RawMessage `json:"delta,omitempty" swaggertype:"string"`
}

// RawDelta devuelve el delta como texto y si vino en el body.
func (r DashboardAdjustRequest) RawDelta() (string, bool) {
	return rawText(r.Delta)
}

// AddItemRequest body para POST /api/dashboard/items. Cantidad y umbral aceptan número o texto.
type AddItemRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     json.RawMessage `json:"quantity" swaggertype:"string"`
	MinThreshold json.RawMessage `json:"minThreshold" swaggertype:"string"`
}

// ToForm convierte el body en los valores crudos del formulario.
func (r AddItemRequest) ToForm() entity.ItemForm {
	qty, _ := rawText(r.Quantity)
	threshold, _ := rawText(r.MinThreshold)
	return entity.ItemForm{Name: r.Name, Category: r.Category, Quantity: qty, MinThreshold: threshold}
}

// rawText texto de un valor JSON escalar: un string se desescapa, cualquier otro literal se usa tal cual.
// Ausente o null → ("", false).
func rawText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", true
		}
		return s, true
	}
	return string(raw), true
}

// ReportMeta datos de cabecera del reporte PDF.
type ReportMeta struct {
	Title       string
	GeneratedAt string
}

// AdjustResponse respuesta de un ajuste enviado.
type AdjustResponse struct {
	Delta   int               `json:"delta"`
	Applied bool              `json:"applied"`
	View    *DashboardViewDTO `json:"view"`
}
