package usecase

import (
	"time"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

// BannerUseCase banners promocionales, con tope duro de 5.
type BannerUseCase struct {
	bannerRepo repository.BannerRepository
}

// NewBannerUseCase construye el caso de uso de banners.
func NewBannerUseCase(bannerRepo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{bannerRepo: bannerRepo}
}

// List lista los banners en orden.
func (uc *BannerUseCase) List() ([]dto.BannerResponse, error) {
	banners, err := uc.bannerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, dto.BannerResponse{ID: b.ID, Image: b.Image})
	}
	return out, nil
}

// Create agrega un banner. Con 5 banners existentes retorna ErrBannerLimitReached.
func (uc *BannerUseCase) Create(image string) (*dto.BannerResponse, error) {
	if image == "" {
		return nil, domain.ErrInvalidInput
	}
	count, err := uc.bannerRepo.Count()
	if err != nil {
		return nil, err
	}
	if count >= entity.MaxBanners {
		return nil, domain.ErrBannerLimitReached
	}
	banner := &entity.Banner{Image: image, CreatedAt: time.Now()}
	if err := uc.bannerRepo.Create(banner); err != nil {
		return nil, err
	}
	return &dto.BannerResponse{ID: banner.ID, Image: banner.Image}, nil
}

// Delete elimina un banner y devuelve el nombre de su imagen para la
// limpieza best-effort del handler.
func (uc *BannerUseCase) Delete(id int64) (string, error) {
	banner, err := uc.bannerRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if banner == nil {
		return "", domain.ErrNotFound
	}
	if err := uc.bannerRepo.Delete(id); err != nil {
		return "", err
	}
	return banner.Image, nil
}
