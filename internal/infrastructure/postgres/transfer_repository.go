package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
	"github.com/sitestock/sitestock-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implements TransferRepository over PostgreSQL (usable with
// pool or tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository builds the adapter. Pass a pool or tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `
	id, transfer_no, from_location, to_location, requested_date, status, priority,
	from_user_id, to_user_id, created_by_id, vehicle_id, approved_by_id,
	driver_name, eta_minutes, signature, inventory_type, gst_in, state, state_code,
	created_at, updated_at`

func scanTransfer(row pgx.Row) (*entity.MaterialTransfer, error) {
	var t entity.MaterialTransfer
	err := row.Scan(
		&t.ID, &t.TransferNo, &t.FromLocation, &t.ToLocation, &t.RequestedDate,
		&t.Status, &t.Priority, &t.FromUserID, &t.ToUserID, &t.CreatedByID,
		&t.VehicleID, &t.ApprovedByID, &t.DriverName, &t.ETAMinutes, &t.Signature,
		&t.InventoryType, &t.GSTIn, &t.State, &t.StateCode, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateHeader persists a transfer header.
func (r *TransferRepo) CreateHeader(t *entity.MaterialTransfer) error {
	query := `
		INSERT INTO material_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.TransferNo, t.FromLocation, t.ToLocation, t.RequestedDate,
		t.Status, t.Priority, t.FromUserID, t.ToUserID, t.CreatedByID,
		t.VehicleID, t.ApprovedByID, t.DriverName, t.ETAMinutes, t.Signature,
		t.InventoryType, t.GSTIn, t.State, t.StateCode, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// CreateItem persists a line item under its parent transfer.
func (r *TransferRepo) CreateItem(item *entity.MaterialTransferItem) error {
	query := `
		INSERT INTO material_transfer_items
			(id, transfer_id, item_code, item_name, item_type, quantity, unit, hsn_code, notes, inventory_record_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransferID, item.ItemCode, item.ItemName, item.ItemType,
		item.Quantity, item.Unit, item.HSNCode, item.Notes, item.InventoryRecordID, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer item: %w", err)
	}
	return nil
}

// GetByID fetches a transfer header by ID. Nil when absent.
func (r *TransferRepo) GetByID(id string) (*entity.MaterialTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM material_transfers WHERE id = $1`
	t, err := scanTransfer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

// List lists all transfers, newest first.
func (r *TransferRepo) List(limit, offset int) ([]*entity.MaterialTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM material_transfers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(query, limit, offset)
}

// ListByCreator lists one creator's transfers, newest first.
func (r *TransferRepo) ListByCreator(createdByID string, limit, offset int) ([]*entity.MaterialTransfer, error) {
	query := `
		SELECT ` + transferColumns + ` FROM material_transfers
		WHERE created_by_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.listQuery(query, createdByID, limit, offset)
}

func (r *TransferRepo) listQuery(query string, args ...any) ([]*entity.MaterialTransfer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialTransfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update rewrites the mutable header fields.
func (r *TransferRepo) Update(t *entity.MaterialTransfer) error {
	query := `
		UPDATE material_transfers
		SET from_location = $2, to_location = $3, requested_date = $4, status = $5,
		    priority = $6, vehicle_id = $7, approved_by_id = $8, driver_name = $9,
		    eta_minutes = $10, signature = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.FromLocation, t.ToLocation, t.RequestedDate, t.Status,
		t.Priority, t.VehicleID, t.ApprovedByID, t.DriverName,
		t.ETAMinutes, t.Signature, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}

// Delete removes a transfer; items go with it via ON DELETE CASCADE.
func (r *TransferRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM material_transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return nil
}

// ListItems lists a transfer's line items in insertion order.
func (r *TransferRepo) ListItems(transferID string) ([]*entity.MaterialTransferItem, error) {
	query := `
		SELECT id, transfer_id, item_code, item_name, item_type, quantity, unit, hsn_code, notes, inventory_record_id, created_at
		FROM material_transfer_items WHERE transfer_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialTransferItem
	for rows.Next() {
		var it entity.MaterialTransferItem
		if err := rows.Scan(&it.ID, &it.TransferID, &it.ItemCode, &it.ItemName, &it.ItemType,
			&it.Quantity, &it.Unit, &it.HSNCode, &it.Notes, &it.InventoryRecordID, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetItem fetches one line item by ID. Nil when absent.
func (r *TransferRepo) GetItem(itemID string) (*entity.MaterialTransferItem, error) {
	query := `
		SELECT id, transfer_id, item_code, item_name, item_type, quantity, unit, hsn_code, notes, inventory_record_id, created_at
		FROM material_transfer_items WHERE id = $1`
	var it entity.MaterialTransferItem
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&it.ID, &it.TransferID, &it.ItemCode, &it.ItemName, &it.ItemType,
		&it.Quantity, &it.Unit, &it.HSNCode, &it.Notes, &it.InventoryRecordID, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer item: %w", err)
	}
	return &it, nil
}

// UpdateItem rewrites a line item's mutable fields.
func (r *TransferRepo) UpdateItem(item *entity.MaterialTransferItem) error {
	query := `
		UPDATE material_transfer_items
		SET quantity = $2, unit = $3, hsn_code = $4, notes = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.Unit, item.HSNCode, item.Notes,
	)
	if err != nil {
		return fmt.Errorf("update transfer item: %w", err)
	}
	return nil
}

// DeleteItem removes a line item by ID.
func (r *TransferRepo) DeleteItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM material_transfer_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete transfer item: %w", err)
	}
	return nil
}
