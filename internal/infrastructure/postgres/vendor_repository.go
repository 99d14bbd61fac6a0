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

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, user_id, store_name, COALESCE(store_description, ''), COALESCE(store_location, ''), is_approved, created_at`

// Create persiste un vendedor y asigna vendor.ID. user_id es único (1:1 con User).
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (user_id, store_name, store_description, store_location, is_approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		vendor.UserID, vendor.StoreName, nullIfEmpty(vendor.StoreDescription),
		nullIfEmpty(vendor.StoreLocation), vendor.IsApproved, vendor.CreatedAt,
	).Scan(&vendor.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID.
func (r *VendorRepo) GetByID(id int64) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get vendor by id")
}

// GetByUserID obtiene el vendedor ligado a un usuario (relación 1:1).
func (r *VendorRepo) GetByUserID(userID int64) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE user_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, userID), "get vendor by user id")
}

func (r *VendorRepo) scanOne(row pgx.Row, op string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := row.Scan(&v.ID, &v.UserID, &v.StoreName, &v.StoreDescription, &v.StoreLocation, &v.IsApproved, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &v, nil
}

// List lista vendedores con paginación, más recientes primero.
func (r *VendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.UserID, &v.StoreName, &v.StoreDescription, &v.StoreLocation, &v.IsApproved, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Approve marca un vendedor como aprobado. ErrVendorNotFound si el id no existe.
func (r *VendorRepo) Approve(id int64) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE vendors SET is_approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("approve vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVendorNotFound
	}
	return nil
}
