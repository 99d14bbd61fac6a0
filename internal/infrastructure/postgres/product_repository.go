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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, vendor_id, name, COALESCE(description, ''), price, offer_price,
	images, COALESCE(color_images, '{}'::jsonb), COALESCE(category, ''), COALESCE(colors, ''),
	COALESCE(condition, ''), quantity, created_at`

// Create persiste un producto y asigna product.ID.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (vendor_id, name, description, price, offer_price, images, color_images, category, colors, condition, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.VendorID, product.Name, nullIfEmpty(product.Description),
		product.Price, product.OfferPrice, product.Images, product.ColorImages,
		nullIfEmpty(product.Category), nullIfEmpty(product.Colors),
		nullIfEmpty(product.Condition), product.Quantity, product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.VendorID, &p.Name, &p.Description, &p.Price, &p.OfferPrice,
		&p.Images, &p.ColorImages, &p.Category, &p.Colors, &p.Condition, &p.Quantity, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// filterClause arma el WHERE/ORDER BY según el filtro. Los args empiezan en $1.
func filterClause(filter repository.ProductFilter) (where string, args []any) {
	if filter.Category != "" {
		where = ` WHERE category = $1`
		args = append(args, filter.Category)
	}
	return where, args
}

func sortClause(sort string) string {
	switch sort {
	case repository.SortPriceAsc:
		return ` ORDER BY price ASC`
	case repository.SortPriceDesc:
		return ` ORDER BY price DESC`
	case repository.SortNewest:
		return ` ORDER BY id DESC`
	default:
		return ` ORDER BY id`
	}
}

// List lista productos según filtro de categoría, orden y paginación.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + productColumns + ` FROM products` + where + sortClause(filter.Sort)
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Count cuenta productos bajo el mismo filtro (para total_pages).
func (r *ProductRepo) Count(filter repository.ProductFilter) (int, error) {
	where, args := filterClause(filter)
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// ListByVendor lista los productos de un vendedor.
func (r *ProductRepo) ListByVendor(vendorID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE vendor_id = $1 ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list products by vendor: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.VendorID, &p.Name, &p.Description, &p.Price, &p.OfferPrice,
			&p.Images, &p.ColorImages, &p.Category, &p.Colors, &p.Condition, &p.Quantity, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos mutables de un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, offer_price = $5,
			images = $6, color_images = $7, category = $8, colors = $9, condition = $10, quantity = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.Description), product.Price,
		product.OfferPrice, product.Images, product.ColorImages,
		nullIfEmpty(product.Category), nullIfEmpty(product.Colors),
		nullIfEmpty(product.Condition), product.Quantity,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
