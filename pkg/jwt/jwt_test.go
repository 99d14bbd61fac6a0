package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/seefirst/seefirst-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "seefirst-test"
)

func TestJWT_GenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "vendor", testIssuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID, "el user_id debe sobrevivir el round-trip")
	assert.Equal(t, "vendor", role, "el role debe sobrevivir el round-trip")
}

func TestJWT_TokenExpirado_Falla(t *testing.T) {
	// Ventana negativa: el token nace ya expirado.
	tok, err := pkgjwt.Generate(testSecret, 1, "user", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token expirado debe rechazarse")
}

func TestJWT_SecretIncorrecto_Falla(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "admin", testIssuer, 24)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "una firma con otro secret debe rechazarse")
}

func TestJWT_TokenMalformado_Falla(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestJWT_SecretVacio_Falla(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "user", testIssuer, 24)
	assert.Error(t, err, "no debe firmarse con secret vacío")

	_, _, err = pkgjwt.Parse("", "cualquier-cosa")
	assert.Error(t, err)
}
