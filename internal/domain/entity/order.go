package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pedido. Máquina de estados validada:
// pending → confirmed | cancelled; confirmed → delivered | cancelled.
// delivered y cancelled son terminales.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ValidOrderTransition indica si el cambio de estado from → to está permitido.
func ValidOrderTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order es la cabecera de un pedido multi-línea (tabla new_orders).
// Subtotal, DeliveryCharge y Total se calculan en el servidor.
type Order struct {
	ID               int64
	CustomerName     string
	CustomerPhone    string
	DeliveryAddress  string
	DeliveryLocation string
	PaymentMethod    string
	BkashTrxID       string // id de transacción bKash, almacenado opaco
	Subtotal         decimal.Decimal
	DeliveryCharge   decimal.Decimal
	Total            decimal.Decimal
	Status           string
	CreatedAt        time.Time
	Items            []OrderItem
}

// OrderItem es una línea de pedido. UnitPrice y VendorID son snapshots
// congelados al crear el pedido: cambios posteriores del producto no los
// afectan. VendorID es nil cuando el producto no tiene vendedor.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	VendorID  *int64
}
