package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implementación del puerto BannerRepository sobre PostgreSQL (usable con pool o tx).
type BannerRepo struct {
	q Querier
}

// NewBannerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

// Create persiste un banner y asigna banner.ID.
func (r *BannerRepo) Create(banner *entity.Banner) error {
	query := `INSERT INTO banners (image, created_at) VALUES ($1, $2) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, banner.Image, banner.CreatedAt).Scan(&banner.ID)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// GetByID obtiene un banner por ID.
func (r *BannerRepo) GetByID(id int64) (*entity.Banner, error) {
	query := `SELECT id, image, created_at FROM banners WHERE id = $1`
	var b entity.Banner
	err := r.q.QueryRow(context.Background(), query, id).Scan(&b.ID, &b.Image, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return &b, nil
}

// List lista los banners en orden de creación.
func (r *BannerRepo) List() ([]*entity.Banner, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, image, created_at FROM banners ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Banner
	for rows.Next() {
		var b entity.Banner
		if err := rows.Scan(&b.ID, &b.Image, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Count devuelve el número de banners (para el tope de 5).
func (r *BannerRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM banners`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count banners: %w", err)
	}
	return n, nil
}

// Delete elimina un banner por ID.
func (r *BannerRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
