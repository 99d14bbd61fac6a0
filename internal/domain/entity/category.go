package entity

// Category agrupa productos por nombre (único). Los productos guardan el
// nombre, no el id: renombrar una categoría huérfana sus productos
// históricos (denormalización aceptada).
type Category struct {
	ID    int64
	Name  string
	Image string // opcional
}
