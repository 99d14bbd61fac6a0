package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier registra cada Exec y permite inyectar errores por fragmento
// de SQL. Query/QueryRow no se usan en la evolución de esquema.
type fakeQuerier struct {
	executed []string
	errFor   map[string]error // fragmento de SQL → error a devolver
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.executed = append(f.executed, sql)
	for frag, err := range f.errFor {
		if strings.Contains(sql, frag) {
			return pgconn.CommandTag{}, err
		}
	}
	return pgconn.CommandTag{}, nil
}
func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func TestEnsureSchema_EjecutaTablasYColumnas(t *testing.T) {
	q := &fakeQuerier{}
	require.NoError(t, EnsureSchema(context.Background(), q))

	assert.Len(t, q.executed, len(tableDefs)+len(columnAdditions),
		"cada tabla y cada columna incremental generan exactamente una sentencia")
	for i, ddl := range tableDefs {
		assert.Equal(t, ddl, q.executed[i], "las tablas van primero, en orden de dependencias FK")
		assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS")
	}
	for _, stmt := range q.executed[len(tableDefs):] {
		assert.Contains(t, stmt, "ALTER TABLE")
		assert.Contains(t, stmt, "ADD COLUMN")
	}
}

func TestEnsureSchema_Idempotente(t *testing.T) {
	// Segunda corrida: todas las columnas ya existen y el error 42701 se traga.
	q := &fakeQuerier{errFor: map[string]error{
		"ADD COLUMN": &pgconn.PgError{Code: "42701"},
	}}
	assert.NoError(t, EnsureSchema(context.Background(), q),
		"columna duplicada es el caso normal de una base ya migrada")
}

func TestEnsureSchema_OtroErrorDeColumnaEsFatal(t *testing.T) {
	q := &fakeQuerier{errFor: map[string]error{
		"ADD COLUMN vendor_id": &pgconn.PgError{Code: "42P01", Message: "relation does not exist"},
	}}
	err := EnsureSchema(context.Background(), q)
	require.Error(t, err, "solo la columna duplicada se ignora; el resto aborta")
	assert.Contains(t, err.Error(), "vendor_id")
}

func TestEnsureSchema_ErrorDeTablaAborta(t *testing.T) {
	q := &fakeQuerier{errFor: map[string]error{
		"CREATE TABLE IF NOT EXISTS products": errors.New("permiso denegado"),
	}}
	err := EnsureSchema(context.Background(), q)
	require.Error(t, err)
	// No se intentan los ALTER si una tabla falló.
	for _, stmt := range q.executed {
		assert.NotContains(t, stmt, "ALTER TABLE")
	}
}

func TestIsDuplicateColumn(t *testing.T) {
	assert.True(t, isDuplicateColumn(&pgconn.PgError{Code: "42701"}))
	assert.False(t, isDuplicateColumn(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isDuplicateColumn(errors.New("cualquier otro error")))
	assert.False(t, isDuplicateColumn(nil))
}
