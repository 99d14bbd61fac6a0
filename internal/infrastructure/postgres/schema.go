package postgres

import (
	"context"
	"fmt"
)

// El esquema creció generación sobre generación sin camino destructivo:
// cada tabla se crea con su definición completa actual, y cada columna
// introducida después de la definición original de su tabla se re-agrega
// con un ALTER TABLE cuyo error de columna duplicada se ignora. La misma
// rutina sirve para una base recién creada o una inicializada varias
// generaciones atrás.

var tableDefs = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL UNIQUE,
		email TEXT UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS vendors (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id),
		store_name TEXT NOT NULL,
		store_description TEXT,
		store_location TEXT,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		image TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(12,2) NOT NULL,
		images TEXT[] NOT NULL DEFAULT '{}',
		category TEXT,
		offer_price NUMERIC(12,2),
		colors TEXT,
		condition TEXT,
		quantity INTEGER NOT NULL DEFAULT 0,
		vendor_id BIGINT REFERENCES vendors(id),
		color_images JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS new_orders (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		delivery_address TEXT NOT NULL,
		delivery_location TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		bkash_trx_id TEXT,
		subtotal NUMERIC(12,2) NOT NULL,
		delivery_charge NUMERIC(12,2) NOT NULL,
		total NUMERIC(12,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES new_orders(id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL,
		unit_price NUMERIC(12,2) NOT NULL,
		vendor_id BIGINT REFERENCES vendors(id)
	)`,
	`CREATE TABLE IF NOT EXISTS banners (
		id BIGSERIAL PRIMARY KEY,
		image TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS previews (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		address TEXT NOT NULL,
		preferred_date TEXT,
		products TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// columnAddition es una columna agregada después de la definición original
// de su tabla. Se aplica siempre; columna ya existente = no-op.
type columnAddition struct {
	table      string
	column     string
	definition string
}

var columnAdditions = []columnAddition{
	{"categories", "image", "TEXT"},
	{"products", "offer_price", "NUMERIC(12,2)"},
	{"products", "colors", "TEXT"},
	{"products", "condition", "TEXT"},
	{"products", "quantity", "INTEGER NOT NULL DEFAULT 0"},
	{"products", "vendor_id", "BIGINT REFERENCES vendors(id)"},
	{"products", "color_images", "JSONB"},
	{"new_orders", "bkash_trx_id", "TEXT"},
}

// EnsureSchema garantiza que todas las tablas existan con su set de columnas
// completo. Idempotente: correrla dos veces produce el mismo esquema y
// ningún error. Cualquier error que no sea columna duplicada es fatal.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, ddl := range tableDefs {
		if _, err := q.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("crear tabla: %w", err)
		}
	}
	for _, add := range columnAdditions {
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", add.table, add.column, add.definition)
		if _, err := q.Exec(ctx, stmt); err != nil && !isDuplicateColumn(err) {
			return fmt.Errorf("agregar columna %s.%s: %w", add.table, add.column, err)
		}
	}
	return nil
}
