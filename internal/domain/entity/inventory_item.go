package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// InventoryItem representa un ítem de inventario tal como lo publica el backend.
// El cliente solo guarda una copia de lectura; toda la vida del ítem pertenece al backend.
// Quantity y MinThreshold son siempre enteros >= 0 después de la ingesta.
type InventoryItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"minThreshold"`
}

// rawInventoryItem forma laxa del payload: los campos numéricos pueden venir como
// número, string, null o no venir.
type rawInventoryItem struct {
	ID           json.RawMessage `json:"id"`
	MongoID      json.RawMessage `json:"_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     json.RawMessage `json:"quantity"`
	MinThreshold json.RawMessage `json:"minThreshold"`
}

// UnmarshalJSON es el único punto de coerción: valores no numéricos o ausentes
// pasan a 0, negativos se recortan a 0 e id cae en "_id" si "id" no viene.
func (i *InventoryItem) UnmarshalJSON(data []byte) error {
	var raw rawInventoryItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id := coerceID(raw.ID)
	if id == "" {
		id = coerceID(raw.MongoID)
	}
	*i = InventoryItem{
		ID:           id,
		Name:         raw.Name,
		Category:     raw.Category,
		Quantity:     CoerceCount(raw.Quantity),
		MinThreshold: CoerceCount(raw.MinThreshold),
	}
	return nil
}

// CoerceCount convierte un valor JSON arbitrario en un entero no negativo.
func CoerceCount(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = v
	} else if err := json.Unmarshal(raw, &f); err != nil {
		return 0
	}
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

func coerceID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	// {"$oid": "..."} u otras formas extendidas
	var oid struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(raw, &oid); err == nil {
		return oid.OID
	}
	return ""
}

// ItemDraft datos validados de un ítem nuevo, listos para enviarse al backend.
type ItemDraft struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"minThreshold"`
}

// ItemForm valores crudos del formulario de alta, tal como los escribe el usuario.
type ItemForm struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     string `json:"quantity"`
	MinThreshold string `json:"minThreshold"`
}

// IsZero indica si el formulario está vacío (estado inicial o tras un alta exitosa).
func (f ItemForm) IsZero() bool {
	return f == ItemForm{}
}
