package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/pkg/upload"
)

// CategoryHandler listado público y CRUD admin de categorías.
type CategoryHandler struct {
	categoryUC *usecase.CategoryUseCase
	uploads    *upload.Store
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(categoryUC *usecase.CategoryUseCase, uploads *upload.Store) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC, uploads: uploads}
}

// List lista todas las categorías.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// Create crea una categoría con imagen opcional (multipart, campo "image").
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	image, err := h.saveImage(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.categoryUC.Create(c.FormValue("name"), image)
	if err != nil {
		if image != "" {
			h.uploads.Remove(image)
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update renombra una categoría; imagen nueva reemplaza, ausente conserva.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	image, err := h.saveImage(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.categoryUC.Update(id, c.FormValue("name"), image)
	if err != nil {
		if image != "" {
			h.uploads.Remove(image)
		}
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete elimina una categoría y su imagen (best-effort).
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	image, err := h.categoryUC.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	if image != "" {
		h.uploads.Remove(image)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (h *CategoryHandler) saveImage(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil // imagen opcional
	}
	f, err := fh.Open()
	if err != nil {
		return "", domain.ErrInvalidInput
	}
	defer f.Close()
	return h.uploads.Save(f, fh.Filename)
}
