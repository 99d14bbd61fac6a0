package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/pkg/upload"
)

// BannerHandler listado público y gestión admin de banners (tope de 5).
type BannerHandler struct {
	bannerUC *usecase.BannerUseCase
	uploads  *upload.Store
}

// NewBannerHandler construye el handler de banners.
func NewBannerHandler(bannerUC *usecase.BannerUseCase, uploads *upload.Store) *BannerHandler {
	return &BannerHandler{bannerUC: bannerUC, uploads: uploads}
}

// List lista los banners activos.
func (h *BannerHandler) List(c *fiber.Ctx) error {
	banners, err := h.bannerUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(banners)
}

// Create sube un banner (multipart, campo "image"). Con el tope alcanzado
// responde 409 y el archivo recién escrito se elimina.
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	name, err := h.uploads.Save(f, fh.Filename)
	f.Close()
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.bannerUC.Create(name)
	if err != nil {
		h.uploads.Remove(name)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Delete elimina un banner y su imagen (best-effort).
func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	image, err := h.bannerUC.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	if image != "" {
		h.uploads.Remove(image)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
