package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrVendorNotFound      = errors.New("vendedor no encontrado")
	ErrPhoneAlreadyExists  = errors.New("el teléfono o email ya está registrado")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrForbidden           = errors.New("acceso denegado")
	ErrVendorNotApproved   = errors.New("vendedor pendiente de aprobación")
	ErrInvalidStatusChange = errors.New("transición de estado no permitida")
	ErrBannerLimitReached  = errors.New("límite de banners alcanzado")
	ErrTooManyImages       = errors.New("demasiadas imágenes en el lote")
)
