package repository

import "github.com/seefirst/seefirst-api/internal/domain/entity"

// Opciones de ordenamiento para listados de productos.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

// ProductFilter parámetros de listado: filtro por nombre de categoría,
// orden y paginación.
type ProductFilter struct {
	Category string
	Sort     string
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	Count(filter ProductFilter) (int, error)
	ListByVendor(vendorID int64) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
