package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain"
)

// OrderHandler creación pública de pedidos y gestión admin.
type OrderHandler struct {
	orderUC *usecase.OrderUseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(orderUC *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// Create crea un pedido multi-línea. Entrada inválida responde 400; todo lo
// demás (producto inexistente incluido, que revierte la transacción) responde
// 500 genérico con la causa registrada, nunca expuesta.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.orderUC.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return respondError(c, err)
		}
		log.Error().Err(err).Msg("fallo al crear pedido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "ORDER_CREATION_FAILED",
			Message: "no se pudo crear el pedido",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List lista cabeceras de pedidos (admin).
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	orders, err := h.orderUC.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// Get devuelve un pedido con sus líneas (admin).
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.orderUC.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus aplica una transición de estado del pedido (admin).
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.orderUC.UpdateStatus(id, in.Status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": true})
}
