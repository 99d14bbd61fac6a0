package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido entrante. El precio unitario NO se toma
// del cliente: se congela desde el producto al crear el pedido.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest entrada para crear un pedido multi-línea.
type CreateOrderRequest struct {
	CustomerName     string             `json:"customer_name"`
	CustomerPhone    string             `json:"customer_phone"`
	DeliveryAddress  string             `json:"delivery_address"`
	DeliveryLocation string             `json:"delivery_location"`
	PaymentMethod    string             `json:"payment_method"`
	BkashTrxID       string             `json:"bkash_trx_id"`
	DeliveryCharge   decimal.Decimal    `json:"delivery_charge"`
	Items            []OrderItemRequest `json:"items"`
}

// OrderItemResponse línea de pedido con sus snapshots.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	VendorID  *int64          `json:"vendor_id,omitempty"`
}

// OrderResponse cabecera de pedido con líneas.
type OrderResponse struct {
	ID               int64               `json:"id"`
	CustomerName     string              `json:"customer_name"`
	CustomerPhone    string              `json:"customer_phone"`
	DeliveryAddress  string              `json:"delivery_address"`
	DeliveryLocation string              `json:"delivery_location"`
	PaymentMethod    string              `json:"payment_method"`
	BkashTrxID       string              `json:"bkash_trx_id,omitempty"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	DeliveryCharge   decimal.Decimal     `json:"delivery_charge"`
	Total            decimal.Decimal     `json:"total"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	Items            []OrderItemResponse `json:"items,omitempty"`
}

// UpdateStatusRequest cambio de estado (pedidos y visitas).
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
