package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxProductImages es el máximo de imágenes aceptadas por lote de subida.
const MaxProductImages = 5

// Product pertenece a lo sumo a un Vendor (VendorID nil para productos
// legados o sembrados por admin). Images es una lista posicional: el orden
// de los nombres de archivo es el orden de despliegue. ColorImages mapea
// nombre de variante de color a su imagen representativa.
type Product struct {
	ID          int64
	VendorID    *int64
	Name        string
	Description string
	Price       decimal.Decimal
	OfferPrice  *decimal.Decimal // precio con descuento; nil = sin oferta
	Images      []string
	ColorImages map[string]string
	Category    string // referencia por nombre, no por id (denormalización aceptada)
	Colors      string
	Condition   string
	Quantity    int
	CreatedAt   time.Time
}

// EffectivePrice devuelve el precio vigente: OfferPrice si existe y es
// positivo, si no Price. Es el precio autoritativo que se congela en las
// líneas de pedido.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.OfferPrice != nil && p.OfferPrice.IsPositive() {
		return *p.OfferPrice
	}
	return p.Price
}
