package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

func TestInventoryItem_IngestaCoercionNumerica(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		qty     int
		min     int
	}{
		{"números", `{"quantity": 5, "minThreshold": 10}`, 5, 10},
		{"strings numéricos", `{"quantity": "7", "minThreshold": " 3 "}`, 7, 3},
		{"decimales se truncan", `{"quantity": 4.9, "minThreshold": "2.5"}`, 4, 2},
		{"ausentes", `{}`, 0, 0},
		{"null", `{"quantity": null, "minThreshold": null}`, 0, 0},
		{"basura", `{"quantity": "abc", "minThreshold": true}`, 0, 0},
		{"negativos se recortan", `{"quantity": -4, "minThreshold": "-1"}`, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var item entity.InventoryItem
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &item))
			assert.Equal(t, tc.qty, item.Quantity)
			assert.Equal(t, tc.min, item.MinThreshold)
		})
	}
}

func TestInventoryItem_IngestaID(t *testing.T) {
	var a, b, c, d entity.InventoryItem
	require.NoError(t, json.Unmarshal([]byte(`{"id": "abc", "_id": "zzz"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"_id": "65f0c2"}`), &b))
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &c))
	require.NoError(t, json.Unmarshal([]byte(`{"_id": {"$oid": "65f0c3"}}`), &d))

	assert.Equal(t, "abc", a.ID)
	assert.Equal(t, "65f0c2", b.ID)
	assert.Equal(t, "42", c.ID)
	assert.Equal(t, "65f0c3", d.ID)
}

func TestInventoryItem_SerializaConClavesDelContrato(t *testing.T) {
	raw, err := json.Marshal(entity.InventoryItem{ID: "1", Name: "Bolt", Category: "Hardware", Quantity: 5, MinThreshold: 10})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"Bolt","category":"Hardware","quantity":5,"minThreshold":10}`, string(raw))
}

func TestItemForm_IsZero(t *testing.T) {
	assert.True(t, entity.ItemForm{}.IsZero())
	assert.False(t, entity.ItemForm{Name: "x"}.IsZero())
}
