package entity

import "time"

// Vendor es el perfil de tienda de un User con rol vendor (relación 1:1,
// user_id único). Nace con IsApproved=false: hasta que un admin lo apruebe
// no puede publicar ni mutar productos.
type Vendor struct {
	ID               int64
	UserID           int64
	StoreName        string
	StoreDescription string
	StoreLocation    string
	IsApproved       bool
	CreatedAt        time.Time
}
