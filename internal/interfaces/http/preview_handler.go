package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain"
)

// PreviewHandler agenda pública de visitas al showroom y gestión admin.
type PreviewHandler struct {
	previewUC *usecase.PreviewUseCase
}

// NewPreviewHandler construye el handler de visitas.
func NewPreviewHandler(previewUC *usecase.PreviewUseCase) *PreviewHandler {
	return &PreviewHandler{previewUC: previewUC}
}

// Create agenda una visita (público, estado inicial pending).
func (h *PreviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.previewUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List lista visitas agendadas (admin).
func (h *PreviewHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	previews, err := h.previewUC.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(previews)
}

// UpdateStatus aplica una transición de estado de la visita (admin).
func (h *PreviewHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.previewUC.UpdateStatus(id, in.Status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": true})
}
