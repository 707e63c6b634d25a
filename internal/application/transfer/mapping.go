package transfer

import (
	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
)

func toItemResponse(it *entity.MaterialTransferItem) *dto.TransferItemResponse {
	if it == nil {
		return nil
	}
	return &dto.TransferItemResponse{
		ID:                it.ID,
		TransferID:        it.TransferID,
		ItemCode:          it.ItemCode,
		ItemName:          it.ItemName,
		Type:              it.ItemType,
		Quantity:          it.Quantity,
		Unit:              it.Unit,
		HSNCode:           it.HSNCode,
		Notes:             it.Notes,
		InventoryRecordID: it.InventoryRecordID,
		CreatedAt:         it.CreatedAt,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
	}
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:             v.ID,
		RegistrationNo: v.RegistrationNo,
		Model:          v.Model,
		DriverName:     v.DriverName,
		CreatedAt:      v.CreatedAt,
	}
}

func toTransferResponse(
	t *entity.MaterialTransfer,
	items []*entity.MaterialTransferItem,
	vehicle *entity.Vehicle,
	approvedBy *entity.User,
	createdBy *entity.User,
) *dto.TransferResponse {
	itemDTOs := make([]dto.TransferItemResponse, 0, len(items))
	for _, it := range items {
		itemDTOs = append(itemDTOs, *toItemResponse(it))
	}
	return &dto.TransferResponse{
		ID:            t.ID,
		TransferID:    t.TransferNo,
		FromLocation:  t.FromLocation,
		ToLocation:    t.ToLocation,
		RequestedDate: t.RequestedDate,
		Status:        t.Status,
		Priority:      t.Priority,
		FromUserID:    t.FromUserID,
		ToUserID:      t.ToUserID,
		CreatedByID:   t.CreatedByID,
		DriverName:    t.DriverName,
		ETAMinutes:    t.ETAMinutes,
		Signature:     t.Signature,
		InventoryType: t.InventoryType,
		GSTIn:         t.GSTIn,
		State:         t.State,
		StateCode:     t.StateCode,
		Items:         itemDTOs,
		Vehicle:       toVehicleResponse(vehicle),
		ApprovedBy:    toUserResponse(approvedBy),
		CreatedBy:     toUserResponse(createdBy),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
