package dashboard_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/inventory-dashboard/docs/dashboard"
)

func TestDoc_SoloRutasDelBinario(t *testing.T) {
	raw, err := swag.ReadDoc("dashboard")
	require.NoError(t, err)

	var doc struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.NotEmpty(t, doc.Paths)
	for path := range doc.Paths {
		assert.True(t, strings.HasPrefix(path, "/api/dashboard"), path)
		assert.False(t, strings.HasPrefix(path, "/api/inventory"), path)
	}
}
