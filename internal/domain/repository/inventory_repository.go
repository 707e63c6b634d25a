package repository

import "github.com/sitestock/sitestock-api/internal/domain/entity"

// InventoryRepository is the persistence port for per-owner stock records.
// Used inside transactions to guarantee consistency of deductions.
type InventoryRepository interface {
	Create(record *entity.InventoryRecord) error
	GetByID(id string) (*entity.InventoryRecord, error)
	// GetByOwnerAndItem resolves the source record for a transfer line,
	// keyed by (owner, itemCode, itemName, itemType). Nil when absent.
	GetByOwnerAndItem(ownerID, itemCode, itemName, itemType string) (*entity.InventoryRecord, error)
	// GetByOwnerAndItemForUpdate is the same lookup with a row lock
	// (SELECT ... FOR UPDATE) for use inside the reconciliation transaction.
	GetByOwnerAndItemForUpdate(ownerID, itemCode, itemName, itemType string) (*entity.InventoryRecord, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.InventoryRecord, error)
	// ListBelowReorder returns records with quantity <= reorder level.
	// Empty ownerID means all owners.
	ListBelowReorder(ownerID string) ([]*entity.InventoryRecord, error)
	Update(record *entity.InventoryRecord) error
	UpdateQuantity(id string, quantity int64) error
	Delete(id string) error
}
