package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/domain"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
	"github.com/sitestock/sitestock-api/internal/domain/repository"
)

// UseCase covers per-owner inventory record CRUD and stock adjustments.
type UseCase struct {
	repo repository.InventoryRepository
}

// NewUseCase builds the use case.
func NewUseCase(repo repository.InventoryRepository) *UseCase {
	return &UseCase{repo: repo}
}

// authorize applies the ownership policy for inventory records.
func authorize(actor dto.Actor, createdByID string) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	if actor.UserID != createdByID {
		return domain.ErrForbidden
	}
	return nil
}

// Create registers a new stock record owned by the caller.
func (uc *UseCase) Create(actor dto.Actor, in dto.CreateInventoryRecordRequest) (*dto.InventoryRecordResponse, error) {
	if in.ItemCode == "" {
		return nil, domain.Invalid("itemCode", "is required")
	}
	if !entity.ValidItemName(in.ItemName) {
		return nil, domain.Invalid("itemName", "unknown material "+in.ItemName)
	}
	if !entity.ValidItemType(in.Type) {
		return nil, domain.Invalid("type", "must be OLD or NEW")
	}
	if in.Quantity < 0 {
		return nil, domain.Invalid("quantity", "must not be negative")
	}
	existing, err := uc.repo.GetByOwnerAndItem(actor.UserID, in.ItemCode, in.ItemName, in.Type)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	rec := &entity.InventoryRecord{
		ID:           uuid.New().String(),
		CreatedByID:  actor.UserID,
		ItemCode:     in.ItemCode,
		ItemName:     in.ItemName,
		ItemType:     in.Type,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		Cost:         in.Cost,
		Category:     in.Category,
		Location:     in.Location,
		ReorderLevel: in.ReorderLevel,
		SafetyStock:  in.SafetyStock,
		MaxStock:     in.MaxStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(rec); err != nil {
		return nil, err
	}
	return toRecordResponse(rec), nil
}

// Get returns one record, ownership-checked.
func (uc *UseCase) Get(actor dto.Actor, id string) (*dto.InventoryRecordResponse, error) {
	rec, err := uc.getOwned(actor, id)
	if err != nil {
		return nil, err
	}
	return toRecordResponse(rec), nil
}

// List returns the caller's records; admins see everyone's when ownerID is
// empty, or a specific owner's when given.
func (uc *UseCase) List(actor dto.Actor, ownerID string, limit, offset int) (*dto.InventoryListResponse, error) {
	owner := actor.UserID
	if actor.Role == entity.RoleAdmin {
		owner = ownerID
	}
	list, err := uc.repo.ListByOwner(owner, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryRecordResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toRecordResponse(rec))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update changes descriptive fields and thresholds. Quantity is excluded:
// it only moves via AdjustStock or the transfer flow.
func (uc *UseCase) Update(actor dto.Actor, id string, in dto.UpdateInventoryRecordRequest) (*dto.InventoryRecordResponse, error) {
	rec, err := uc.getOwned(actor, id)
	if err != nil {
		return nil, err
	}
	if in.Unit != nil {
		rec.Unit = *in.Unit
	}
	if in.Cost != nil {
		rec.Cost = *in.Cost
	}
	if in.Category != nil {
		rec.Category = *in.Category
	}
	if in.Location != nil {
		rec.Location = *in.Location
	}
	if in.ReorderLevel != nil {
		rec.ReorderLevel = *in.ReorderLevel
	}
	if in.SafetyStock != nil {
		rec.SafetyStock = *in.SafetyStock
	}
	if in.MaxStock != nil {
		rec.MaxStock = *in.MaxStock
	}
	rec.UpdatedAt = time.Now()
	if err := uc.repo.Update(rec); err != nil {
		return nil, err
	}
	return toRecordResponse(rec), nil
}

// AdjustStock applies a signed delta to a record's quantity. Results below
// zero are rejected.
func (uc *UseCase) AdjustStock(actor dto.Actor, id string, in dto.AdjustStockRequest) (*dto.InventoryRecordResponse, error) {
	rec, err := uc.getOwned(actor, id)
	if err != nil {
		return nil, err
	}
	if in.Delta == 0 {
		return nil, domain.Invalid("delta", "must not be zero")
	}
	newQty := rec.Quantity + in.Delta
	if newQty < 0 {
		return nil, domain.ErrInsufficientStock
	}
	if err := uc.repo.UpdateQuantity(rec.ID, newQty); err != nil {
		return nil, err
	}
	rec.Quantity = newQty
	rec.UpdatedAt = time.Now()
	return toRecordResponse(rec), nil
}

// Delete removes a record.
func (uc *UseCase) Delete(actor dto.Actor, id string) error {
	if _, err := uc.getOwned(actor, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *UseCase) getOwned(actor dto.Actor, id string) (*entity.InventoryRecord, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if err := authorize(actor, rec.CreatedByID); err != nil {
		return nil, err
	}
	return rec, nil
}

func toRecordResponse(rec *entity.InventoryRecord) *dto.InventoryRecordResponse {
	if rec == nil {
		return nil
	}
	return &dto.InventoryRecordResponse{
		ID:           rec.ID,
		CreatedByID:  rec.CreatedByID,
		ItemCode:     rec.ItemCode,
		ItemName:     rec.ItemName,
		Type:         rec.ItemType,
		Quantity:     rec.Quantity,
		Unit:         rec.Unit,
		Cost:         rec.Cost,
		Category:     rec.Category,
		Location:     rec.Location,
		ReorderLevel: rec.ReorderLevel,
		SafetyStock:  rec.SafetyStock,
		MaxStock:     rec.MaxStock,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
