package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// isDuplicateColumn verifica si un error es columna duplicada (42701).
// El aplicador de esquema lo usa para que re-agregar una columna existente
// sea un no-op en vez de un error.
func isDuplicateColumn(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42701" // duplicate_column
}

// nullIfEmpty convierte "" en NULL para columnas opcionales.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
