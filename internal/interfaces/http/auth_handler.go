package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seefirst/seefirst-api/internal/application/auth"
	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
)

// AuthHandler expone registro y login por rol.
type AuthHandler struct {
	authUC *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(authUC *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register registra un usuario con rol user.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" || in.Password == "" {
		return respondError(c, domain.ErrInvalidInput)
	}
	user, err := h.authUC.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// RegisterVendor registra atómicamente el usuario y su perfil de tienda.
func (h *AuthHandler) RegisterVendor(c *fiber.Ctx) error {
	var in dto.VendorRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" ||
		in.Password == "" || strings.TrimSpace(in.StoreName) == "" {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.authUC.RegisterVendor(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login autentica a cualquier usuario activo por teléfono o email.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, "")
}

// VendorLogin autentica solo cuentas con rol vendor.
func (h *AuthHandler) VendorLogin(c *fiber.Ctx) error {
	return h.login(c, entity.RoleVendor)
}

// AdminLogin autentica al admin; en el primer login con las credenciales
// bootstrap la cuenta admin se crea sobre la marcha.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.authUC.AdminLogin(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) login(c *fiber.Ctx, requiredRole string) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if in.Identifier == "" || in.Password == "" {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.authUC.Login(in, requiredRole)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
