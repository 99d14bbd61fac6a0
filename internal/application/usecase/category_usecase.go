package usecase

import (
	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías (solo admin muta).
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, Image: c.Image})
	}
	return out, nil
}

// Create crea una categoría. Nombre duplicado retorna ErrConflict.
func (uc *CategoryUseCase) Create(name, image string) (*dto.CategoryResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{Name: name, Image: image}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Image: category.Image}, nil
}

// Update renombra una categoría y opcionalmente reemplaza su imagen (image
// vacío conserva la actual). Los productos que referencian el nombre viejo
// quedan huérfanos de su categoría (denormalización aceptada).
func (uc *CategoryUseCase) Update(id int64, name, image string) (*dto.CategoryResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = name
	if image != "" {
		category.Image = image
	}
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Image: category.Image}, nil
}

// Delete elimina una categoría y devuelve el nombre de su imagen para la
// limpieza best-effort del handler.
func (uc *CategoryUseCase) Delete(id int64) (string, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if category == nil {
		return "", domain.ErrNotFound
	}
	if err := uc.categoryRepo.Delete(id); err != nil {
		return "", err
	}
	return category.Image, nil
}
