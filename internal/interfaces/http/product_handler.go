package http

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/pkg/upload"
)

// colorImagePrefix es el prefijo de campo multipart para imágenes por color:
// color_image_rojo lleva la imagen del color "rojo".
const colorImagePrefix = "color_image_"

// ProductHandler catálogo público y CRUD de productos para admin y vendedor.
type ProductHandler struct {
	productUC *usecase.ProductUseCase
	uploads   *upload.Store
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(productUC *usecase.ProductUseCase, uploads *upload.Store) *ProductHandler {
	return &ProductHandler{productUC: productUC, uploads: uploads}
}

// List lista el catálogo público con filtro por categoría, orden y paginación.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.productUC.List(page, c.Query("category"), c.Query("sort"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Get devuelve un producto por ID.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.productUC.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// VendorList lista los productos del vendedor autenticado (aprobado o no:
// un vendedor pendiente ve su inventario aunque no pueda mutarlo).
func (h *ProductHandler) VendorList(c *fiber.Ctx) error {
	vendor := GetVendor(c)
	products, err := h.productUC.ListByVendor(vendor.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// Create crea un producto. Ruta compartida: un admin (sin vendedor en Locals)
// crea productos de la casa; un vendedor crea los propios. La aprobación se
// verifica ANTES de persistir los archivos subidos para no dejar huérfanos
// en disco.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	vendor := GetVendor(c)
	if vendor != nil && !vendor.IsApproved {
		return respondError(c, domain.ErrVendorNotApproved)
	}
	return h.create(c, vendor)
}

// Update actualiza un producto. Admin alcanza cualquiera; vendedor solo los
// propios.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	vendor := GetVendor(c)
	if vendor != nil && !vendor.IsApproved {
		return respondError(c, domain.ErrVendorNotApproved)
	}
	return h.update(c, vendor)
}

// Delete elimina un producto (mismo alcance que Update).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	vendor := GetVendor(c)
	if vendor != nil && !vendor.IsApproved {
		return respondError(c, domain.ErrVendorNotApproved)
	}
	return h.delete(c, vendor)
}

func (h *ProductHandler) create(c *fiber.Ctx, vendor *entity.Vendor) error {
	in, saved, err := h.parseProductForm(c)
	if err != nil {
		h.cleanup(saved)
		return respondError(c, err)
	}
	resp, err := h.productUC.Create(vendor, in)
	if err != nil {
		h.cleanup(saved)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ProductHandler) update(c *fiber.Ctx, vendor *entity.Vendor) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	in, saved, err := h.parseProductForm(c)
	if err != nil {
		h.cleanup(saved)
		return respondError(c, err)
	}
	resp, err := h.productUC.Update(vendor, id, in)
	if err != nil {
		h.cleanup(saved)
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProductHandler) delete(c *fiber.Ctx, vendor *entity.Vendor) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	images, err := h.productUC.Delete(vendor, id)
	if err != nil {
		return respondError(c, err)
	}
	h.cleanup(images)
	return c.JSON(fiber.Map{"deleted": true})
}

// parseProductForm lee el multipart y persiste los archivos subidos. El tope
// de imágenes se verifica antes de escribir nada a disco. Devuelve los
// nombres ya guardados para que el caller los limpie si el use case falla.
func (h *ProductHandler) parseProductForm(c *fiber.Ctx) (dto.ProductInput, []string, error) {
	var in dto.ProductInput
	var saved []string

	in.Name = strings.TrimSpace(c.FormValue("name"))
	in.Description = c.FormValue("description")
	in.Category = c.FormValue("category")
	in.Colors = c.FormValue("colors")
	in.Condition = c.FormValue("condition")

	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return in, saved, domain.ErrInvalidInput
	}
	in.Price = price

	if raw := c.FormValue("offer_price"); raw != "" {
		offer, err := decimal.NewFromString(raw)
		if err != nil {
			return in, saved, domain.ErrInvalidInput
		}
		in.OfferPrice = &offer
	}
	if raw := c.FormValue("quantity"); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil || qty < 0 {
			return in, saved, domain.ErrInvalidInput
		}
		in.Quantity = qty
	}
	// Imágenes existentes que el cliente quiere conservar (update).
	if raw := c.FormValue("existing_images"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Images); err != nil {
			return in, saved, domain.ErrInvalidInput
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		return in, saved, nil // sin archivos: solo campos
	}
	files := form.File["images"]
	if len(in.Images)+len(files) > entity.MaxProductImages {
		return in, saved, domain.ErrTooManyImages
	}
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return in, saved, err
		}
		name, err := h.uploads.Save(f, fh.Filename)
		f.Close()
		if err != nil {
			return in, saved, err
		}
		saved = append(saved, name)
		in.Images = append(in.Images, name)
	}
	for field, fhs := range form.File {
		if !strings.HasPrefix(field, colorImagePrefix) || len(fhs) == 0 {
			continue
		}
		color := strings.TrimPrefix(field, colorImagePrefix)
		f, err := fhs[0].Open()
		if err != nil {
			return in, saved, err
		}
		name, err := h.uploads.Save(f, fhs[0].Filename)
		f.Close()
		if err != nil {
			return in, saved, err
		}
		saved = append(saved, name)
		if in.ColorImages == nil {
			in.ColorImages = make(map[string]string)
		}
		in.ColorImages[color] = name
	}
	return in, saved, nil
}

func (h *ProductHandler) cleanup(names []string) {
	for _, name := range names {
		h.uploads.Remove(name)
	}
}
