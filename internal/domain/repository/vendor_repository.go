package repository

import "github.com/seefirst/seefirst-api/internal/domain/entity"

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id int64) (*entity.Vendor, error)
	GetByUserID(userID int64) (*entity.Vendor, error)
	List(limit, offset int) ([]*entity.Vendor, error)
	Approve(id int64) error
}
