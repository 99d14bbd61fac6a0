package usecase

import (
	"time"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos con alcance por vendedor. El parámetro
// vendor es nil cuando actúa un admin (sin restricción de propiedad); un
// vendedor no aprobado no puede mutar aunque el gate lo haya dejado pasar.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// List lista productos con filtro por categoría, orden y paginación.
func (uc *ProductUseCase) List(page dto.PageRequest, category, sort string) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	filter := repository.ProductFilter{
		Category: category,
		Sort:     sort,
		Limit:    page.PerPage,
		Offset:   page.Offset(),
	}
	total, err := uc.productRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Data:        make([]dto.ProductResponse, 0, len(products)),
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Page,
	}
	for _, p := range products {
		resp.Data = append(resp.Data, *toProductResponse(p))
	}
	return resp, nil
}

// Get obtiene un producto por ID.
func (uc *ProductUseCase) Get(id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListByVendor lista los productos de un vendedor.
func (uc *ProductUseCase) ListByVendor(vendorID int64) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListByVendor(vendorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Create crea un producto. vendor nil = admin (producto sin vendedor).
// Un vendedor no aprobado recibe ErrVendorNotApproved sin que se cree fila.
func (uc *ProductUseCase) Create(vendor *entity.Vendor, in dto.ProductInput) (*dto.ProductResponse, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	if vendor != nil && !vendor.IsApproved {
		return nil, domain.ErrVendorNotApproved
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		OfferPrice:  in.OfferPrice,
		Images:      in.Images,
		ColorImages: in.ColorImages,
		Category:    in.Category,
		Colors:      in.Colors,
		Condition:   in.Condition,
		Quantity:    in.Quantity,
		CreatedAt:   time.Now(),
	}
	if vendor != nil {
		product.VendorID = &vendor.ID
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Un vendedor solo alcanza sus propias filas:
// producto ajeno o sin dueño responde ErrNotFound (no se revela existencia).
// Si in.Images viene vacío se conservan las imágenes actuales.
func (uc *ProductUseCase) Update(vendor *entity.Vendor, id int64, in dto.ProductInput) (*dto.ProductResponse, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	product, err := uc.ownedProduct(vendor, id)
	if err != nil {
		return nil, err
	}
	if vendor != nil && !vendor.IsApproved {
		return nil, domain.ErrVendorNotApproved
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.OfferPrice = in.OfferPrice
	if len(in.Images) > 0 {
		product.Images = in.Images
	}
	if in.ColorImages != nil {
		product.ColorImages = in.ColorImages
	}
	product.Category = in.Category
	product.Colors = in.Colors
	product.Condition = in.Condition
	product.Quantity = in.Quantity
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto (mismo alcance que Update) y devuelve los
// nombres de sus imágenes para la limpieza best-effort del handler.
func (uc *ProductUseCase) Delete(vendor *entity.Vendor, id int64) ([]string, error) {
	product, err := uc.ownedProduct(vendor, id)
	if err != nil {
		return nil, err
	}
	if vendor != nil && !vendor.IsApproved {
		return nil, domain.ErrVendorNotApproved
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return nil, err
	}
	return product.Images, nil
}

// ownedProduct carga el producto y aplica el alcance de propiedad del vendedor.
func (uc *ProductUseCase) ownedProduct(vendor *entity.Vendor, id int64) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if vendor != nil && (product.VendorID == nil || *product.VendorID != vendor.ID) {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func validateProductInput(in dto.ProductInput) error {
	if in.Name == "" || !in.Price.IsPositive() {
		return domain.ErrInvalidInput
	}
	if len(in.Images) > entity.MaxProductImages {
		return domain.ErrTooManyImages
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		OfferPrice:  p.OfferPrice,
		Images:      images,
		ColorImages: p.ColorImages,
		Category:    p.Category,
		Colors:      p.Colors,
		Condition:   p.Condition,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
	}
}
