package upload_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seefirst/seefirst-api/pkg/upload"
)

func TestSave_NombreOpacoConservaExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := upload.New(dir)
	require.NoError(t, err)

	name, err := store.Save(strings.NewReader("contenido"), "Foto Producto.JPG")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".jpg"), "la extensión se conserva normalizada: %s", name)
	assert.NotContains(t, name, "Foto", "el nombre original no se filtra al nombre final")

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))
}

func TestSave_NoDejaTemporales(t *testing.T) {
	dir := t.TempDir()
	store, err := upload.New(dir)
	require.NoError(t, err)

	_, err = store.Save(strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "tmp_"),
			"ningún temporal debe sobrevivir al rename final")
	}
}

func TestRemove_BestEffort(t *testing.T) {
	dir := t.TempDir()
	store, err := upload.New(dir)
	require.NoError(t, err)

	name, err := store.Save(strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	store.Remove(name)
	_, statErr := os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(statErr))

	// Borrar algo inexistente no entra en pánico ni falla.
	store.Remove("no-existe.png")
	store.Remove("")
}

func TestNew_CreaElDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "uploads")
	store, err := upload.New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
