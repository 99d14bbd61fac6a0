package repository

import "github.com/seefirst/seefirst-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// GetByIdentifier busca por teléfono O email (login acepta ambos).
	GetByIdentifier(identifier string) (*entity.User, error)
	GetAdmin() (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	SetActive(id int64, active bool) error
	Delete(id int64) error
}
