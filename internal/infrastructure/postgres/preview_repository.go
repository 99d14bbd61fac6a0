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

var _ repository.PreviewRepository = (*PreviewRepo)(nil)

// PreviewRepo implementación del puerto PreviewRepository sobre PostgreSQL (usable con pool o tx).
type PreviewRepo struct {
	q Querier
}

// NewPreviewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPreviewRepository(q Querier) *PreviewRepo {
	return &PreviewRepo{q: q}
}

const previewColumns = `id, customer_name, customer_phone, address, COALESCE(preferred_date, ''), COALESCE(products, ''), status, created_at`

// Create persiste una visita agendada y asigna preview.ID.
func (r *PreviewRepo) Create(preview *entity.Preview) error {
	query := `
		INSERT INTO previews (customer_name, customer_phone, address, preferred_date, products, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		preview.CustomerName, preview.CustomerPhone, preview.Address,
		nullIfEmpty(preview.PreferredDate), nullIfEmpty(preview.Products),
		preview.Status, preview.CreatedAt,
	).Scan(&preview.ID)
	if err != nil {
		return fmt.Errorf("insert preview: %w", err)
	}
	return nil
}

// GetByID obtiene una visita por ID.
func (r *PreviewRepo) GetByID(id int64) (*entity.Preview, error) {
	query := `SELECT ` + previewColumns + ` FROM previews WHERE id = $1`
	var p entity.Preview
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CustomerName, &p.CustomerPhone, &p.Address, &p.PreferredDate, &p.Products, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preview: %w", err)
	}
	return &p, nil
}

// List lista visitas con paginación, más recientes primero.
func (r *PreviewRepo) List(limit, offset int) ([]*entity.Preview, error) {
	query := `SELECT ` + previewColumns + ` FROM previews ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list previews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Preview
	for rows.Next() {
		var p entity.Preview
		if err := rows.Scan(&p.ID, &p.CustomerName, &p.CustomerPhone, &p.Address, &p.PreferredDate, &p.Products, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan preview: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una visita (transición validada en el use case).
func (r *PreviewRepo) UpdateStatus(id int64, status string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE previews SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update preview status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
