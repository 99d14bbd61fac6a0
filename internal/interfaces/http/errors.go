package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain"
)

// respondError mapea errores de dominio a la taxonomía HTTP. Un error no
// clasificado responde 500 con mensaje genérico: el detalle interno se
// registra, nunca viaja al cliente.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos requeridos faltantes o inválidos"})
	case errors.Is(err, domain.ErrTooManyImages):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TOO_MANY_IMAGES", Message: "máximo 5 imágenes por lote"})
	case errors.Is(err, domain.ErrInvalidStatusChange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "transición de estado no permitida"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrVendorNotApproved):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "VENDOR_PENDING_APPROVAL", Message: "tu cuenta de vendedor está pendiente de aprobación"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrVendorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrPhoneAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REGISTERED", Message: "el teléfono o email ya está registrado"})
	case errors.Is(err, domain.ErrBannerLimitReached):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BANNER_LIMIT", Message: "máximo 5 banners activos"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no clasificado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
