package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain"
)

// UserHandler administración de cuentas (solo admin).
type UserHandler struct {
	userUC *usecase.UserUseCase
}

// NewUserHandler construye el handler de administración de usuarios.
func NewUserHandler(userUC *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// List lista usuarios paginados.
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	users, err := h.userUC.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// SetActive activa o desactiva una cuenta. Desactivar corta el acceso en el
// siguiente request: la verificación relee la fila en cada token.
func (h *UserHandler) SetActive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.userUC.SetActive(id, in.IsActive); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": true})
}

// Delete elimina una cuenta.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.userUC.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
