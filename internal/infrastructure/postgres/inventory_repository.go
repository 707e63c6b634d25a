package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitestock/sitestock-api/internal/domain"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
	"github.com/sitestock/sitestock-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implements InventoryRepository over PostgreSQL (usable with
// pool or tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the adapter. Pass a pool or tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `
	id, created_by_id, item_code, item_name, item_type, quantity, unit, cost,
	category, location, reorder_level, safety_stock, max_stock, created_at, updated_at`

func scanInventoryRecord(row pgx.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(
		&rec.ID, &rec.CreatedByID, &rec.ItemCode, &rec.ItemName, &rec.ItemType,
		&rec.Quantity, &rec.Unit, &rec.Cost, &rec.Category, &rec.Location,
		&rec.ReorderLevel, &rec.SafetyStock, &rec.MaxStock, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create persists a new stock record. The (owner, item_code, item_name,
// item_type) tuple is unique.
func (r *InventoryRepo) Create(rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.CreatedByID, rec.ItemCode, rec.ItemName, rec.ItemType,
		rec.Quantity, rec.Unit, rec.Cost, rec.Category, rec.Location,
		rec.ReorderLevel, rec.SafetyStock, rec.MaxStock, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory record: %w", err)
	}
	return nil
}

// GetByID fetches a record by ID. Nil when absent.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_records WHERE id = $1`
	rec, err := scanInventoryRecord(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	return rec, nil
}

// GetByOwnerAndItem resolves the record keyed by (owner, itemCode, itemName, itemType).
func (r *InventoryRepo) GetByOwnerAndItem(ownerID, itemCode, itemName, itemType string) (*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventory_records
		WHERE created_by_id = $1 AND item_code = $2 AND item_name = $3 AND item_type = $4`
	rec, err := scanInventoryRecord(r.q.QueryRow(context.Background(), query, ownerID, itemCode, itemName, itemType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record by owner+item: %w", err)
	}
	return rec, nil
}

// GetByOwnerAndItemForUpdate is the same lookup with a row lock
// (SELECT ... FOR UPDATE) to serialize concurrent deductions.
func (r *InventoryRepo) GetByOwnerAndItemForUpdate(ownerID, itemCode, itemName, itemType string) (*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventory_records
		WHERE created_by_id = $1 AND item_code = $2 AND item_name = $3 AND item_type = $4
		FOR UPDATE`
	rec, err := scanInventoryRecord(r.q.QueryRow(context.Background(), query, ownerID, itemCode, itemName, itemType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record for update: %w", err)
	}
	return rec, nil
}

// ListByOwner lists records, newest first. Empty ownerID lists all owners.
func (r *InventoryRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_records`
	args := []any{}
	if ownerID != "" {
		query += ` WHERE created_by_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, ownerID, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory records: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		rec, err := scanInventoryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// ListBelowReorder lists records with quantity at or below reorder level.
func (r *InventoryRepo) ListBelowReorder(ownerID string) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventory_records
		WHERE reorder_level > 0 AND quantity <= reorder_level`
	args := []any{}
	if ownerID != "" {
		query += ` AND created_by_id = $1`
		args = append(args, ownerID)
	}
	query += ` ORDER BY quantity ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list below reorder: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		rec, err := scanInventoryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Update rewrites descriptive fields and thresholds.
func (r *InventoryRepo) Update(rec *entity.InventoryRecord) error {
	query := `
		UPDATE inventory_records
		SET unit = $2, cost = $3, category = $4, location = $5,
		    reorder_level = $6, safety_stock = $7, max_stock = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Unit, rec.Cost, rec.Category, rec.Location,
		rec.ReorderLevel, rec.SafetyStock, rec.MaxStock, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory record: %w", err)
	}
	return nil
}

// UpdateQuantity sets the absolute quantity. The schema's CHECK keeps it >= 0.
func (r *InventoryRepo) UpdateQuantity(id string, quantity int64) error {
	query := `UPDATE inventory_records SET quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update quantity: %w", err)
	}
	return nil
}

// Delete removes a record by ID.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory record: %w", err)
	}
	return nil
}
