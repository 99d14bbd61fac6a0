package repository

import "github.com/seefirst/seefirst-api/internal/domain/entity"

// PreviewRepository define el puerto de persistencia para Preview.
type PreviewRepository interface {
	Create(preview *entity.Preview) error
	GetByID(id int64) (*entity.Preview, error)
	List(limit, offset int) ([]*entity.Preview, error)
	UpdateStatus(id int64, status string) error
}
