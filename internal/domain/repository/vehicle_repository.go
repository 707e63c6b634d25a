package repository

import "github.com/sitestock/sitestock-api/internal/domain/entity"

// VehicleRepository is the persistence port for dispatch vehicles.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	List(limit, offset int) ([]*entity.Vehicle, error)
}
