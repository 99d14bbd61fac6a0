package entity

import "time"

// MaxBanners es el tope de banners promocionales activos.
const MaxBanners = 5

// Banner es una imagen promocional ordenada por fecha de creación.
type Banner struct {
	ID        int64
	Image     string
	CreatedAt time.Time
}
