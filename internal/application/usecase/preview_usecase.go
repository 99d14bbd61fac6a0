package usecase

import (
	"strings"
	"time"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

// PreviewUseCase agenda de visitas al showroom.
type PreviewUseCase struct {
	previewRepo repository.PreviewRepository
}

// NewPreviewUseCase construye el caso de uso de visitas.
func NewPreviewUseCase(previewRepo repository.PreviewRepository) *PreviewUseCase {
	return &PreviewUseCase{previewRepo: previewRepo}
}

// Create agenda una visita con estado pending.
func (uc *PreviewUseCase) Create(in dto.CreatePreviewRequest) (*dto.PreviewResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.Address) == "" {
		return nil, domain.ErrInvalidInput
	}
	preview := &entity.Preview{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Address:       in.Address,
		PreferredDate: in.PreferredDate,
		Products:      in.Products,
		Status:        entity.PreviewStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := uc.previewRepo.Create(preview); err != nil {
		return nil, err
	}
	return toPreviewResponse(preview), nil
}

// List lista visitas paginadas.
func (uc *PreviewUseCase) List(page dto.PageRequest) ([]dto.PreviewResponse, error) {
	page.DefaultPage()
	previews, err := uc.previewRepo.List(page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.PreviewResponse, 0, len(previews))
	for _, p := range previews {
		out = append(out, *toPreviewResponse(p))
	}
	return out, nil
}

// UpdateStatus aplica una transición de la máquina de estados de la visita.
func (uc *PreviewUseCase) UpdateStatus(id int64, status string) error {
	preview, err := uc.previewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if preview == nil {
		return domain.ErrNotFound
	}
	if !entity.ValidPreviewTransition(preview.Status, status) {
		return domain.ErrInvalidStatusChange
	}
	return uc.previewRepo.UpdateStatus(id, status)
}

func toPreviewResponse(p *entity.Preview) *dto.PreviewResponse {
	return &dto.PreviewResponse{
		ID:            p.ID,
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,
		Address:       p.Address,
		PreferredDate: p.PreferredDate,
		Products:      p.Products,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}
