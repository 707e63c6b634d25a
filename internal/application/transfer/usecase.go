package transfer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/domain"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
	"github.com/sitestock/sitestock-api/internal/domain/repository"
	domaintransfer "github.com/sitestock/sitestock-api/internal/domain/transfer"
)

// UseCase covers transfer CRUD and the item sub-resource. Every operation is
// ownership-scoped: the acting user must be the transfer's creator unless
// they hold the admin role.
type UseCase struct {
	transferRepo repository.TransferRepository
	userRepo     repository.UserRepository
	vehicleRepo  repository.VehicleRepository
}

// NewUseCase builds the use case.
func NewUseCase(
	transferRepo repository.TransferRepository,
	userRepo repository.UserRepository,
	vehicleRepo repository.VehicleRepository,
) *UseCase {
	return &UseCase{
		transferRepo: transferRepo,
		userRepo:     userRepo,
		vehicleRepo:  vehicleRepo,
	}
}

// Authorize is the ownership policy shared by every transfer surface,
// documents included: the actor must be the creator unless they hold the
// admin role.
func Authorize(actor dto.Actor, createdByID string) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	if actor.UserID != createdByID {
		return domain.ErrForbidden
	}
	return nil
}

// getOwned fetches a transfer and applies the ownership policy before
// anything about it is revealed to the caller.
func (uc *UseCase) getOwned(actor dto.Actor, id string) (*entity.MaterialTransfer, error) {
	t, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := Authorize(actor, t.CreatedByID); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns one transfer with items and resolved references.
func (uc *UseCase) Get(actor dto.Actor, id string) (*dto.TransferResponse, error) {
	t, err := uc.getOwned(actor, id)
	if err != nil {
		return nil, err
	}
	return uc.assemble(t)
}

// List returns the caller's transfers; admins see everyone's.
func (uc *UseCase) List(actor dto.Actor, limit, offset int) (*dto.TransferListResponse, error) {
	var (
		list []*entity.MaterialTransfer
		err  error
	)
	if actor.Role == entity.RoleAdmin {
		list, err = uc.transferRepo.List(limit, offset)
	} else {
		list, err = uc.transferRepo.ListByCreator(actor.UserID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		resp, err := uc.assemble(t)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update applies metadata changes; status changes go through the transition
// table and invalid moves are rejected.
func (uc *UseCase) Update(actor dto.Actor, id string, in dto.UpdateTransferRequest) (*dto.TransferResponse, error) {
	t, err := uc.getOwned(actor, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil && *in.Status != t.Status {
		if !domaintransfer.ValidStatus(*in.Status) {
			return nil, domain.Invalid("status", "unknown status "+*in.Status)
		}
		if !domaintransfer.CanTransition(t.Status, *in.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, t.Status, *in.Status)
		}
		t.Status = *in.Status
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, domain.Invalid("priority", "unknown priority "+*in.Priority)
		}
		t.Priority = *in.Priority
	}
	if in.FromLocation != nil {
		t.FromLocation = *in.FromLocation
	}
	if in.ToLocation != nil {
		t.ToLocation = *in.ToLocation
	}
	if in.RequestedDate != nil {
		t.RequestedDate = *in.RequestedDate
	}
	if in.VehicleID != nil {
		if *in.VehicleID != "" {
			v, err := uc.vehicleRepo.GetByID(*in.VehicleID)
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, fmt.Errorf("%w: vehicleId %q", domain.ErrNotFound, *in.VehicleID)
			}
		}
		t.VehicleID = in.VehicleID
	}
	if in.ApprovedByID != nil {
		if *in.ApprovedByID != "" {
			u, err := uc.userRepo.GetByID(*in.ApprovedByID)
			if err != nil {
				return nil, err
			}
			if u == nil {
				return nil, fmt.Errorf("%w: approvedById %q", domain.ErrUserNotFound, *in.ApprovedByID)
			}
		}
		t.ApprovedByID = in.ApprovedByID
	}
	if in.DriverName != nil {
		t.DriverName = *in.DriverName
	}
	if in.ETAMinutes != nil {
		t.ETAMinutes = in.ETAMinutes
	}
	if in.Signature != nil {
		t.Signature = *in.Signature
	}
	t.UpdatedAt = time.Now()
	if err := uc.transferRepo.Update(t); err != nil {
		return nil, err
	}
	return uc.assemble(t)
}

// Delete removes a transfer and its items.
func (uc *UseCase) Delete(actor dto.Actor, id string) error {
	if _, err := uc.getOwned(actor, id); err != nil {
		return err
	}
	return uc.transferRepo.Delete(id)
}

// ListItems returns the line items of an owned transfer.
func (uc *UseCase) ListItems(actor dto.Actor, transferID string) ([]dto.TransferItemResponse, error) {
	if _, err := uc.getOwned(actor, transferID); err != nil {
		return nil, err
	}
	items, err := uc.transferRepo.ListItems(transferID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// AddItem appends a line item to an existing transfer. Stock is not touched:
// reconciliation happens only when the transfer is created.
func (uc *UseCase) AddItem(actor dto.Actor, transferID string, in dto.TransferItemRequest) (*dto.TransferItemResponse, error) {
	if _, err := uc.getOwned(actor, transferID); err != nil {
		return nil, err
	}
	if err := validateItems([]dto.TransferItemRequest{in}); err != nil {
		return nil, err
	}
	item := &entity.MaterialTransferItem{
		ID:         uuid.New().String(),
		TransferID: transferID,
		ItemCode:   in.ItemCode,
		ItemName:   in.ItemName,
		ItemType:   in.Type,
		Quantity:   in.Quantity,
		Unit:       in.Unit,
		HSNCode:    in.HSNCode,
		Notes:      in.Notes,
		CreatedAt:  time.Now(),
	}
	if err := uc.transferRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// getOwnedItem re-validates parent ownership before any item-level operation.
func (uc *UseCase) getOwnedItem(actor dto.Actor, transferID, itemID string) (*entity.MaterialTransferItem, error) {
	if _, err := uc.getOwned(actor, transferID); err != nil {
		return nil, err
	}
	item, err := uc.transferRepo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TransferID != transferID {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// UpdateItem changes the mutable fields of a line item.
func (uc *UseCase) UpdateItem(actor dto.Actor, transferID, itemID string, in dto.UpdateTransferItemRequest) (*dto.TransferItemResponse, error) {
	item, err := uc.getOwnedItem(actor, transferID, itemID)
	if err != nil {
		return nil, err
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.Invalid("quantity", "must be a positive integer")
		}
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	if in.HSNCode != nil {
		item.HSNCode = *in.HSNCode
	}
	if err := uc.transferRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// DeleteItem removes a line item from an owned transfer.
func (uc *UseCase) DeleteItem(actor dto.Actor, transferID, itemID string) error {
	if _, err := uc.getOwnedItem(actor, transferID, itemID); err != nil {
		return err
	}
	return uc.transferRepo.DeleteItem(itemID)
}

// assemble loads items and resolves vehicle/approver/creator for a header.
func (uc *UseCase) assemble(t *entity.MaterialTransfer) (*dto.TransferResponse, error) {
	items, err := uc.transferRepo.ListItems(t.ID)
	if err != nil {
		return nil, err
	}
	var vehicle *entity.Vehicle
	if t.VehicleID != nil && *t.VehicleID != "" {
		vehicle, _ = uc.vehicleRepo.GetByID(*t.VehicleID)
	}
	var approvedBy *entity.User
	if t.ApprovedByID != nil && *t.ApprovedByID != "" {
		approvedBy, _ = uc.userRepo.GetByID(*t.ApprovedByID)
	}
	creator, _ := uc.userRepo.GetByID(t.CreatedByID)
	return toTransferResponse(t, items, vehicle, approvedBy, creator), nil
}
