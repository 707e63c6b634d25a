package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/domain"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
	"github.com/sitestock/sitestock-api/internal/domain/repository"
)

// VehicleUseCase CRUD for dispatch vehicles.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase builds the use case.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create registers a vehicle.
func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if in.RegistrationNo == "" {
		return nil, domain.Invalid("registrationNo", "is required")
	}
	vehicle := &entity.Vehicle{
		ID:             uuid.New().String(),
		RegistrationNo: in.RegistrationNo,
		Model:          in.Model,
		DriverName:     in.DriverName,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// Get returns one vehicle.
func (uc *VehicleUseCase) Get(id string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	return toVehicleResponse(vehicle), nil
}

// List returns vehicles with pagination.
func (uc *VehicleUseCase) List(limit, offset int) (*dto.VehicleListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return &dto.VehicleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
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
