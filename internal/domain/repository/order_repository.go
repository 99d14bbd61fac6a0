package repository

import "github.com/seefirst/seefirst-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order/OrderItem.
type OrderRepository interface {
	// CreateHeader inserta la cabecera y asigna order.ID.
	CreateHeader(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id int64) (*entity.Order, error)
	GetItems(orderID int64) ([]entity.OrderItem, error)
	List(limit, offset int) ([]*entity.Order, error)
	// ListItemsByVendor devuelve las líneas atribuidas a un vendedor
	// (snapshot vendor_id en order_items).
	ListItemsByVendor(vendorID int64) ([]entity.OrderItem, error)
	UpdateStatus(id int64, status string) error
}
