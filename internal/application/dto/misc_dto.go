package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// BannerResponse salida de un banner promocional.
type BannerResponse struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
}

// CreatePreviewRequest agenda una visita de showroom.
type CreatePreviewRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	PreferredDate string `json:"preferred_date"`
	Products      string `json:"products"`
}

// PreviewResponse salida de una visita agendada.
type PreviewResponse struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Address       string    `json:"address"`
	PreferredDate string    `json:"preferred_date,omitempty"`
	Products      string    `json:"products,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// VendorDashboardResponse resumen para el panel del vendedor.
type VendorDashboardResponse struct {
	Vendor       VendorResponse      `json:"vendor"`
	IsApproved   bool                `json:"is_approved"`
	ProductCount int                 `json:"product_count"`
	OrderItems   []OrderItemResponse `json:"order_items"`
	TotalSales   decimal.Decimal     `json:"total_sales"`
}
