package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductInput campos de producto ya parseados del multipart (las imágenes
// llegan como nombres de archivo finales, guardadas por el handler).
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	OfferPrice  *decimal.Decimal
	Images      []string
	ColorImages map[string]string
	Category    string
	Colors      string
	Condition   string
	Quantity    int
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64             `json:"id"`
	VendorID    *int64            `json:"vendor_id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       decimal.Decimal   `json:"price"`
	OfferPrice  *decimal.Decimal  `json:"offer_price,omitempty"`
	Images      []string          `json:"images"`
	ColorImages map[string]string `json:"color_images,omitempty"`
	Category    string            `json:"category,omitempty"`
	Colors      string            `json:"colors,omitempty"`
	Condition   string            `json:"condition,omitempty"`
	Quantity    int               `json:"quantity"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Data        []ProductResponse `json:"data"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
}
