package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, customer_name, customer_phone, delivery_address, delivery_location,
	payment_method, COALESCE(bkash_trx_id, ''), subtotal, delivery_charge, total, status, created_at`

// CreateHeader inserta la cabecera del pedido y asigna order.ID.
func (r *OrderRepo) CreateHeader(order *entity.Order) error {
	query := `
		INSERT INTO new_orders (customer_name, customer_phone, delivery_address, delivery_location, payment_method, bkash_trx_id, subtotal, delivery_charge, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.CustomerName, order.CustomerPhone, order.DeliveryAddress, order.DeliveryLocation,
		order.PaymentMethod, nullIfEmpty(order.BkashTrxID), order.Subtotal, order.DeliveryCharge,
		order.Total, order.Status, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order header: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de pedido y asigna item.ID.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, vendor_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.VendorID,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido (sin líneas; usar GetItems).
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM new_orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerName, &o.CustomerPhone, &o.DeliveryAddress, &o.DeliveryLocation,
		&o.PaymentMethod, &o.BkashTrxID, &o.Subtotal, &o.DeliveryCharge, &o.Total, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItems devuelve las líneas de un pedido.
func (r *OrderRepo) GetItems(orderID int64) ([]entity.OrderItem, error) {
	query := `SELECT id, order_id, product_id, quantity, unit_price, vendor_id FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()
	return scanOrderItems(rows)
}

// List lista pedidos con paginación, más recientes primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM new_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerName, &o.CustomerPhone, &o.DeliveryAddress, &o.DeliveryLocation,
			&o.PaymentMethod, &o.BkashTrxID, &o.Subtotal, &o.DeliveryCharge, &o.Total, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListItemsByVendor devuelve las líneas con snapshot vendor_id del vendedor.
func (r *OrderRepo) ListItemsByVendor(vendorID int64) ([]entity.OrderItem, error) {
	query := `SELECT id, order_id, product_id, quantity, unit_price, vendor_id FROM order_items WHERE vendor_id = $1 ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list order items by vendor: %w", err)
	}
	defer rows.Close()
	return scanOrderItems(rows)
}

func scanOrderItems(rows pgx.Rows) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.VendorID); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateStatus cambia el estado de un pedido. La validación de la
// transición ocurre en el use case antes de llegar aquí.
func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE new_orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
