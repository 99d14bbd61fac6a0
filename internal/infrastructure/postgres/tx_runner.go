package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seefirst/seefirst-api/internal/application/auth"
	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

// Ensure TxRunner implements auth.RegistrationTxRunner and usecase.OrderTxRunner.
var _ auth.RegistrationTxRunner = (*TxRunner)(nil)
var _ usecase.OrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con repos de usuarios y vendedores (registro
// atómico de vendedor: o se insertan User y Vendor, o ninguno).
func (r *TxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	vendorRepo repository.VendorRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewVendorRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder inicia una transacción con repos de pedidos y productos (creación
// de pedido multi-línea todo-o-nada).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
