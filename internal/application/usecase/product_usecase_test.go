package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
)

func newProductUC() (*usecase.ProductUseCase, *memProductRepo) {
	products := &memProductRepo{products: map[int64]*entity.Product{}}
	return usecase.NewProductUseCase(products), products
}

func approvedVendor(id int64) *entity.Vendor {
	return &entity.Vendor{ID: id, UserID: id, IsApproved: true}
}

func validInput() dto.ProductInput {
	return dto.ProductInput{Name: "Silla", Price: dec("100"), Images: []string{"a.jpg"}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearProducto_VendedorNoAprobado_NoPersisteNada(t *testing.T) {
	uc, products := newProductUC()
	pending := &entity.Vendor{ID: 1, UserID: 1, IsApproved: false}

	_, err := uc.Create(pending, validInput())
	assert.ErrorIs(t, err, domain.ErrVendorNotApproved)
	assert.Empty(t, products.products, "el gate deja pasar al handler, pero la mutación no llega al repo")
}

func TestCrearProducto_VendedorAprobado_AsignaVendorID(t *testing.T) {
	uc, _ := newProductUC()

	resp, err := uc.Create(approvedVendor(3), validInput())
	require.NoError(t, err)
	require.NotNil(t, resp.VendorID)
	assert.Equal(t, int64(3), *resp.VendorID)
}

func TestCrearProducto_Admin_SinVendedor(t *testing.T) {
	uc, _ := newProductUC()

	resp, err := uc.Create(nil, validInput())
	require.NoError(t, err)
	assert.Nil(t, resp.VendorID, "producto de la casa: vendor_id nulo")
}

func TestCrearProducto_DemasiadasImagenes(t *testing.T) {
	uc, _ := newProductUC()
	in := validInput()
	in.Images = []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"}

	_, err := uc.Create(nil, in)
	assert.ErrorIs(t, err, domain.ErrTooManyImages)
}

func TestCrearProducto_EntradaInvalida(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(nil, dto.ProductInput{Name: "", Price: dec("100")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(nil, dto.ProductInput{Name: "Silla", Price: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio cero no es positivo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete — alcance de propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarProducto_AjenoRespondeNotFound(t *testing.T) {
	uc, products := newProductUC()
	otherVendor := int64(9)
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100"), VendorID: &otherVendor}

	_, err := uc.Update(approvedVendor(3), 1, validInput())
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto ajeno se responde como inexistente, sin revelar que existe")
}

func TestActualizarProducto_SinDuenoTambienNotFoundParaVendedor(t *testing.T) {
	uc, products := newProductUC()
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100")}

	_, err := uc.Update(approvedVendor(3), 1, validInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActualizarProducto_AdminAlcanzaCualquiera(t *testing.T) {
	uc, products := newProductUC()
	otherVendor := int64(9)
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100"), VendorID: &otherVendor}

	in := validInput()
	in.Name = "Silla nueva"
	resp, err := uc.Update(nil, 1, in)
	require.NoError(t, err)
	assert.Equal(t, "Silla nueva", resp.Name)
	require.NotNil(t, resp.VendorID)
	assert.Equal(t, otherVendor, *resp.VendorID, "el dueño original no cambia en un update de admin")
}

func TestActualizarProducto_ImagenesVacias_ConservaLasActuales(t *testing.T) {
	uc, products := newProductUC()
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100"), Images: []string{"vieja.jpg"}}

	in := validInput()
	in.Images = nil
	resp, err := uc.Update(nil, 1, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"vieja.jpg"}, resp.Images)
}

func TestEliminarProducto_DevuelveImagenesParaLimpieza(t *testing.T) {
	uc, products := newProductUC()
	vendorID := int64(3)
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100"),
		VendorID: &vendorID, Images: []string{"a.jpg", "b.jpg"}}

	images, err := uc.Delete(approvedVendor(3), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, images)
	assert.Empty(t, products.products)
}
