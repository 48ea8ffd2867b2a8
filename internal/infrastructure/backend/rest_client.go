package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/inventory-dashboard/internal/application/ports"
	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// Verificar en tiempo de compilación que RESTClient implementa InventoryGateway.
var _ ports.InventoryGateway = (*RESTClient)(nil)

const (
	inventoryPath   = "/api/inventory"
	maxResponseSize = 8 << 20
)

// RESTClient adaptador que implementa InventoryGateway contra la API REST de inventario.
// Sin reintentos ni cancelación propia: el timeout lo impone el http.Client y el ctx del llamador.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRESTClient construye el adaptador. baseURL sin barra final, p. ej. "http://localhost:5000".
func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Estructuras del protocolo ─────────────────────────────────────────────────

type itemsEnvelope struct {
	Items []entity.InventoryItem `json:"items"`
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// FetchItems GET /api/inventory. Acepta un array JSON o un objeto {"items": [...]};
// un objeto sin "items" (o null) equivale a lista vacía.
func (c *RESTClient) FetchItems(ctx context.Context) ([]entity.InventoryItem, error) {
	body, err := c.do(ctx, "fetch", http.MethodGet, c.baseURL+inventoryPath, nil)
	if err != nil {
		return nil, err
	}
	return decodeItemList(body)
}

// CreateItem POST /api/inventory. Cualquier 2xx es éxito; el cuerpo de la respuesta se ignora.
func (c *RESTClient) CreateItem(ctx context.Context, draft entity.ItemDraft) error {
	_, err := c.do(ctx, "add", http.MethodPost, c.baseURL+inventoryPath, draft)
	return err
}

// AdjustQuantity PATCH /api/inventory/{id}/quantity con {"delta": n}.
func (c *RESTClient) AdjustQuantity(ctx context.Context, id string, delta int) error {
	endpoint := fmt.Sprintf("%s%s/%s/quantity", c.baseURL, inventoryPath, url.PathEscape(id))
	_, err := c.do(ctx, "adjust", http.MethodPatch, endpoint, adjustRequest{Delta: delta})
	return err
}

func (c *RESTClient) do(ctx context.Context, op, method, endpoint string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("backend %s: serializar request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("backend %s: crear HTTP request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("backend %s: timeout o cancelación: %w: %w", op, domain.ErrBackendUnavailable, ctx.Err())
		}
		return nil, fmt.Errorf("backend %s: llamada HTTP fallida: %w: %w", op, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("backend %s: leer respuesta: %w: %w", op, domain.ErrBackendUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.BackendError{Op: op, StatusCode: resp.StatusCode}
	}
	return body, nil
}

// decodeItemList interpreta las dos formas aceptadas del listado.
func decodeItemList(body []byte) ([]entity.InventoryItem, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []entity.InventoryItem{}, nil
	}
	switch trimmed[0] {
	case '[':
		var items []entity.InventoryItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("backend fetch: deserializar lista: %w", err)
		}
		return nonNil(items), nil
	case '{':
		var env itemsEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("backend fetch: deserializar objeto: %w", err)
		}
		return nonNil(env.Items), nil
	default:
		// Ni array ni objeto: no hay ítems que mostrar.
		return []entity.InventoryItem{}, nil
	}
}

func nonNil(items []entity.InventoryItem) []entity.InventoryItem {
	if items == nil {
		return []entity.InventoryItem{}
	}
	return items
}
