package repository

import "github.com/seefirst/seefirst-api/internal/domain/entity"

// BannerRepository define el puerto de persistencia para Banner.
type BannerRepository interface {
	Create(banner *entity.Banner) error
	List() ([]*entity.Banner, error)
	GetByID(id int64) (*entity.Banner, error)
	Count() (int, error)
	Delete(id int64) error
}
