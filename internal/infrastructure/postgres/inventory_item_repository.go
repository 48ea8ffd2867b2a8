package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventory-dashboard/internal/domain"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const createInventoryItemsTable = `
	CREATE TABLE IF NOT EXISTS inventory_items (
		seq           BIGSERIAL,
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		category      TEXT NOT NULL,
		quantity      INTEGER NOT NULL CHECK (quantity >= 0),
		min_threshold INTEGER NOT NULL CHECK (min_threshold >= 0),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// Migrate crea la tabla inventory_items si no existe.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, createInventoryItemsTable); err != nil {
		return fmt.Errorf("migrate inventory_items: %w", err)
	}
	return nil
}

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL.
type InventoryItemRepo struct {
	q  Querier
	tx *TxRunner
}

// NewInventoryItemRepository construye el adaptador de persistencia para ítems.
func NewInventoryItemRepository(pool *pgxpool.Pool) *InventoryItemRepo {
	return &InventoryItemRepo{q: pool, tx: NewTxRunner(pool)}
}

// List devuelve todos los ítems en orden de creación.
func (r *InventoryItemRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	query := `
		SELECT id, name, category, quantity, min_threshold
		FROM inventory_items ORDER BY seq`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory_items: %w", err)
	}
	defer rows.Close()

	items := make([]entity.InventoryItem, 0)
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Quantity, &it.MinThreshold); err != nil {
			return nil, fmt.Errorf("scan inventory_item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Create persiste un nuevo ítem.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, category, quantity, min_threshold)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, item.ID, item.Name, item.Category, item.Quantity, item.MinThreshold)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert inventory_item %s: %w", item.ID, domain.ErrDuplicate)
		}
		if isOutOfRange(err) {
			return domain.NewValidationError("quantity", domain.MsgValueTooLarge)
		}
		return fmt.Errorf("insert inventory_item: %w", err)
	}
	return nil
}

// AdjustQuantity bloquea la fila (SELECT FOR UPDATE), valida que el resultado no sea negativo y actualiza.
func (r *InventoryItemRepo) AdjustQuantity(ctx context.Context, id string, delta int) (*entity.InventoryItem, error) {
	var out entity.InventoryItem
	err := r.tx.Run(ctx, func(q Querier) error {
		err := q.QueryRow(ctx, `
			SELECT id, name, category, quantity, min_threshold
			FROM inventory_items WHERE id = $1
			FOR UPDATE`, id).Scan(&out.ID, &out.Name, &out.Category, &out.Quantity, &out.MinThreshold)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("get inventory_item for update: %w", err)
		}

		next, err := inventory.ApplyDelta(out.Quantity, delta)
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, `
			UPDATE inventory_items SET quantity = $2, updated_at = now()
			WHERE id = $1`, id, next); err != nil {
			return fmt.Errorf("update inventory_item quantity: %w", err)
		}
		out.Quantity = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
