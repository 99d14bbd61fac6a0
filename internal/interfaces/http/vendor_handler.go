package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain"
)

// VendorHandler panel del vendedor autenticado y administración de vendedores.
type VendorHandler struct {
	vendorUC *usecase.VendorUseCase
}

// NewVendorHandler construye el handler de vendedores.
func NewVendorHandler(vendorUC *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{vendorUC: vendorUC}
}

// Dashboard devuelve el resumen del vendedor autenticado. Disponible aunque
// el vendedor esté pendiente de aprobación: el flag viaja en la respuesta.
func (h *VendorHandler) Dashboard(c *fiber.Ctx) error {
	vendor := GetVendor(c)
	resp, err := h.vendorUC.Dashboard(vendor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Orders lista las líneas de pedido atribuidas al vendedor autenticado.
func (h *VendorHandler) Orders(c *fiber.Ctx) error {
	vendor := GetVendor(c)
	items, err := h.vendorUC.OrderItems(vendor.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// List lista vendedores paginados (admin).
func (h *VendorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	vendors, err := h.vendorUC.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(vendors)
}

// Approve marca un vendedor como aprobado (admin).
func (h *VendorHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.vendorUC.Approve(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"approved": true})
}
