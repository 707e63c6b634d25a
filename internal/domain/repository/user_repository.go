package repository

import "github.com/sitestock/sitestock-api/internal/domain/entity"

// UserRepository is the persistence port for the user directory.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
