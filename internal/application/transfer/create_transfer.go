package transfer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/domain"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
	"github.com/sitestock/sitestock-api/internal/domain/repository"
	domaintransfer "github.com/sitestock/sitestock-api/internal/domain/transfer"
)

// CreateTransferUseCase runs the transfer reconciliation flow: validate the
// request, lock and deduct source inventory, and persist the header with its
// items in one transaction.
type CreateTransferUseCase struct {
	txRunner    TxRunner
	userRepo    repository.UserRepository
	vehicleRepo repository.VehicleRepository
	policy      StockPolicy
}

// NewCreateTransferUseCase builds the use case.
func NewCreateTransferUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	vehicleRepo repository.VehicleRepository,
	policy StockPolicy,
) *CreateTransferUseCase {
	return &CreateTransferUseCase{
		txRunner:    txRunner,
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		policy:      policy,
	}
}

// Create validates the request, resolves both parties, and inside one
// transaction deducts each line's quantity from the matching source record
// (row-locked) and inserts the header plus all items. Any failure rolls the
// whole thing back; no partial writes.
func (uc *CreateTransferUseCase) Create(ctx context.Context, actor dto.Actor, in dto.CreateTransferRequest) (*dto.CreateTransferResponse, error) {
	if in.FromUserID == "" {
		return nil, domain.Invalid("fromUserId", "is required")
	}
	if in.ToUserID == "" {
		return nil, domain.Invalid("toUserId", "is required")
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("items", "must contain at least one item")
	}
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.TransferStatusPending
	} else if !domaintransfer.ValidStatus(status) {
		return nil, domain.Invalid("status", "unknown status "+status)
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.TransferPriorityNormal
	} else if !entity.ValidPriority(priority) {
		return nil, domain.Invalid("priority", "unknown priority "+priority)
	}

	fromUser, err := uc.userRepo.GetByID(in.FromUserID)
	if err != nil {
		return nil, err
	}
	if fromUser == nil {
		return nil, fmt.Errorf("%w: fromUserId %q", domain.ErrUserNotFound, in.FromUserID)
	}
	toUser, err := uc.userRepo.GetByID(in.ToUserID)
	if err != nil {
		return nil, err
	}
	if toUser == nil {
		return nil, fmt.Errorf("%w: toUserId %q", domain.ErrUserNotFound, in.ToUserID)
	}

	var vehicle *entity.Vehicle
	if in.VehicleID != nil && *in.VehicleID != "" {
		vehicle, err = uc.vehicleRepo.GetByID(*in.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle == nil {
			return nil, fmt.Errorf("%w: vehicleId %q", domain.ErrNotFound, *in.VehicleID)
		}
	}
	var approvedBy *entity.User
	if in.ApprovedByID != nil && *in.ApprovedByID != "" {
		approvedBy, err = uc.userRepo.GetByID(*in.ApprovedByID)
		if err != nil {
			return nil, err
		}
		if approvedBy == nil {
			return nil, fmt.Errorf("%w: approvedById %q", domain.ErrUserNotFound, *in.ApprovedByID)
		}
	}

	// Resolve the creator up front: any directory failure aborts before the
	// transaction rather than degrading the response after commit.
	creator, err := uc.userRepo.GetByID(actor.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	requested := now
	if in.RequestedDate != nil {
		requested = *in.RequestedDate
	}
	transferNo := in.TransferID
	if transferNo == "" {
		transferNo = "MT-" + strings.ToUpper(uuid.New().String()[:8])
	}

	header := &entity.MaterialTransfer{
		ID:            uuid.New().String(),
		TransferNo:    transferNo,
		FromLocation:  in.FromLocation,
		ToLocation:    in.ToLocation,
		RequestedDate: requested,
		Status:        status,
		Priority:      priority,
		FromUserID:    in.FromUserID,
		ToUserID:      in.ToUserID,
		CreatedByID:   actor.UserID,
		VehicleID:     in.VehicleID,
		ApprovedByID:  in.ApprovedByID,
		DriverName:    in.DriverName,
		ETAMinutes:    in.ETAMinutes,
		InventoryType: in.InventoryType,
		GSTIn:         in.GSTIn,
		State:         in.State,
		StateCode:     in.StateCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	items := make([]*entity.MaterialTransferItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, &entity.MaterialTransferItem{
			ID:         uuid.New().String(),
			TransferID: header.ID,
			ItemCode:   it.ItemCode,
			ItemName:   it.ItemName,
			ItemType:   it.Type,
			Quantity:   it.Quantity,
			Unit:       it.Unit,
			HSNCode:    it.HSNCode,
			Notes:      it.Notes,
			CreatedAt:  now,
		})
	}

	// Deduction and inserts share one transaction; Commit only if every
	// line reconciles under the configured policy.
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		trRepo repository.TransferRepository,
	) error {
		for _, item := range items {
			// Row lock on the source record so two transfers drawing from
			// the same item serialize instead of racing.
			rec, err := invRepo.GetByOwnerAndItemForUpdate(in.FromUserID, item.ItemCode, item.ItemName, item.ItemType)
			if err != nil {
				return err
			}
			if rec == nil {
				if uc.policy == PolicyEnforce {
					return fmt.Errorf("%w: %s (%s/%s)", domain.ErrItemNotFound, item.ItemCode, item.ItemName, item.ItemType)
				}
				continue
			}
			if rec.Quantity < item.Quantity {
				if uc.policy == PolicyOff {
					continue
				}
				return fmt.Errorf("%w: %s has %d, requested %d", domain.ErrInsufficientStock, item.ItemCode, rec.Quantity, item.Quantity)
			}
			if err := invRepo.UpdateQuantity(rec.ID, rec.Quantity-item.Quantity); err != nil {
				return err
			}
			recID := rec.ID
			item.InventoryRecordID = &recID
		}
		if err := trRepo.CreateHeader(header); err != nil {
			return err
		}
		for _, item := range items {
			if err := trRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toTransferResponse(header, items, vehicle, approvedBy, creator)
	return &dto.CreateTransferResponse{
		Transfer:       *resp,
		ItemsProcessed: len(items),
	}, nil
}

// validateItems checks each line's required fields, naming the offending
// field by index.
func validateItems(items []dto.TransferItemRequest) error {
	for i, it := range items {
		if it.ItemCode == "" {
			return domain.Invalid(fmt.Sprintf("items[%d].itemCode", i), "is required")
		}
		if it.ItemName == "" {
			return domain.Invalid(fmt.Sprintf("items[%d].itemName", i), "is required")
		}
		if !entity.ValidItemName(it.ItemName) {
			return domain.Invalid(fmt.Sprintf("items[%d].itemName", i), "unknown material "+it.ItemName)
		}
		if !entity.ValidItemType(it.Type) {
			return domain.Invalid(fmt.Sprintf("items[%d].type", i), "must be OLD or NEW")
		}
		if it.Quantity <= 0 {
			return domain.Invalid(fmt.Sprintf("items[%d].quantity", i), "must be a positive integer")
		}
	}
	return nil
}
