package document

import (
	"context"

	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/application/transfer"
	"github.com/sitestock/sitestock-api/internal/domain"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
	"github.com/sitestock/sitestock-api/internal/domain/repository"
)

// UseCase produces printable/exportable documents for a transfer.
type UseCase struct {
	transferRepo repository.TransferRepository
	userRepo     repository.UserRepository
	vehicleRepo  repository.VehicleRepository
	challan      ChallanGenerator
	manifest     ManifestBuilder
}

// NewUseCase builds the use case.
func NewUseCase(
	transferRepo repository.TransferRepository,
	userRepo repository.UserRepository,
	vehicleRepo repository.VehicleRepository,
	challan ChallanGenerator,
	manifest ManifestBuilder,
) *UseCase {
	return &UseCase{
		transferRepo: transferRepo,
		userRepo:     userRepo,
		vehicleRepo:  vehicleRepo,
		challan:      challan,
		manifest:     manifest,
	}
}

// ChallanPDF renders the delivery challan for an owned transfer.
func (uc *UseCase) ChallanPDF(ctx context.Context, actor dto.Actor, transferID string) ([]byte, error) {
	data, err := uc.load(actor, transferID)
	if err != nil {
		return nil, err
	}
	return uc.challan.GenerateChallanPDF(ctx, data)
}

// ManifestXML renders the dispatch manifest for an owned transfer.
func (uc *UseCase) ManifestXML(actor dto.Actor, transferID string) ([]byte, error) {
	data, err := uc.load(actor, transferID)
	if err != nil {
		return nil, err
	}
	return uc.manifest.BuildManifestXML(data)
}

// load fetches the transfer and its references, applying the same ownership
// policy as the CRUD surface.
func (uc *UseCase) load(actor dto.Actor, transferID string) (TransferDocumentData, error) {
	var data TransferDocumentData
	t, err := uc.transferRepo.GetByID(transferID)
	if err != nil {
		return data, err
	}
	if t == nil {
		return data, domain.ErrNotFound
	}
	if err := transfer.Authorize(actor, t.CreatedByID); err != nil {
		return data, err
	}
	items, err := uc.transferRepo.ListItems(t.ID)
	if err != nil {
		return data, err
	}
	fromUser, err := uc.userRepo.GetByID(t.FromUserID)
	if err != nil {
		return data, err
	}
	toUser, err := uc.userRepo.GetByID(t.ToUserID)
	if err != nil {
		return data, err
	}
	var vehicle *entity.Vehicle
	if t.VehicleID != nil && *t.VehicleID != "" {
		vehicle, err = uc.vehicleRepo.GetByID(*t.VehicleID)
		if err != nil {
			return data, err
		}
	}
	data = TransferDocumentData{
		Transfer: t,
		Items:    items,
		FromUser: fromUser,
		ToUser:   toUser,
		Vehicle:  vehicle,
	}
	return data, nil
}
