package dto

// PageRequest paginación para listados (page empieza en 1).
type PageRequest struct {
	Page    int `query:"page"`
	PerPage int `query:"per_page"`
}

// DefaultPage aplica valores por defecto si Page/PerPage son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 || p.PerPage > 100 {
		p.PerPage = 10
	}
}

// Offset devuelve el offset SQL equivalente.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TotalPages calcula las páginas para un total de filas.
func (p PageRequest) TotalPages(total int) int {
	return (total + p.PerPage - 1) / p.PerPage
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
