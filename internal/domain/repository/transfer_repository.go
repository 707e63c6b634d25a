package repository

import "github.com/sitestock/sitestock-api/internal/domain/entity"

// TransferRepository is the persistence port for material transfer headers
// and their line items. Items never exist without a parent header; deleting
// a header removes its items (FK cascade).
type TransferRepository interface {
	CreateHeader(t *entity.MaterialTransfer) error
	CreateItem(item *entity.MaterialTransferItem) error
	GetByID(id string) (*entity.MaterialTransfer, error)
	List(limit, offset int) ([]*entity.MaterialTransfer, error)
	ListByCreator(createdByID string, limit, offset int) ([]*entity.MaterialTransfer, error)
	Update(t *entity.MaterialTransfer) error
	Delete(id string) error

	ListItems(transferID string) ([]*entity.MaterialTransferItem, error)
	GetItem(itemID string) (*entity.MaterialTransferItem, error)
	UpdateItem(item *entity.MaterialTransferItem) error
	DeleteItem(itemID string) error
}
