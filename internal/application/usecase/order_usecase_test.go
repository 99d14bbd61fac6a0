package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/application/usecase"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders     []*entity.Order
	items      []entity.OrderItem
	nextID     int64
	nextItemID int64
}

func (r *memOrderRepo) CreateHeader(o *entity.Order) error {
	r.nextID++
	o.ID = r.nextID
	clone := *o
	r.orders = append(r.orders, &clone)
	return nil
}
func (r *memOrderRepo) CreateItem(it *entity.OrderItem) error {
	r.nextItemID++
	it.ID = r.nextItemID
	r.items = append(r.items, *it)
	return nil
}
func (r *memOrderRepo) GetByID(id int64) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}
func (r *memOrderRepo) GetItems(orderID int64) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memOrderRepo) List(limit, offset int) ([]*entity.Order, error) { return r.orders, nil }
func (r *memOrderRepo) ListItemsByVendor(vendorID int64) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, it := range r.items {
		if it.VendorID != nil && *it.VendorID == vendorID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memOrderRepo) UpdateStatus(id int64, status string) error {
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type memProductRepo struct {
	products map[int64]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Count(f repository.ProductFilter) (int, error) { return 0, nil }
func (r *memProductRepo) ListByVendor(vendorID int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.VendorID != nil && *p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) Delete(id int64) error          { delete(r.products, id); return nil }

// fakeOrderTxRunner pasa los repos al callback tal cual: la aserción de
// atomicidad se hace sobre qué quedó escrito cuando el callback falla.
type fakeOrderTxRunner struct {
	orders   *memOrderRepo
	products *memProductRepo
}

func (r *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	return fn(r.orders, r.products)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newOrderUC() (*usecase.OrderUseCase, *memOrderRepo, *memProductRepo) {
	orders := &memOrderRepo{}
	products := &memProductRepo{products: map[int64]*entity.Product{}}
	uc := usecase.NewOrderUseCase(&fakeOrderTxRunner{orders: orders, products: products}, orders)
	return uc, orders, products
}

func validOrderRequest(items ...dto.OrderItemRequest) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		CustomerName:     "Carla",
		CustomerPhone:    "0173333333",
		DeliveryAddress:  "Calle 1 #2-3",
		DeliveryLocation: "dentro",
		PaymentMethod:    "cod",
		DeliveryCharge:   dec("40"),
		Items:            items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearPedido_CongelaPrecioYVendedor(t *testing.T) {
	uc, orders, products := newOrderUC()
	vendorID := int64(5)
	offer := dec("80")
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100"), OfferPrice: &offer, VendorID: &vendorID}
	products.products[2] = &entity.Product{ID: 2, Name: "Mesa", Price: dec("50")}

	resp, err := uc.Create(context.Background(), validOrderRequest(
		dto.OrderItemRequest{ProductID: 1, Quantity: 2},
		dto.OrderItemRequest{ProductID: 2, Quantity: 1},
	))
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	// Precio autoritativo: la oferta vigente, no el price base ni nada del cliente.
	assert.True(t, resp.Items[0].UnitPrice.Equal(dec("80")), "unit_price debe ser el offer_price vigente")
	require.NotNil(t, resp.Items[0].VendorID)
	assert.Equal(t, vendorID, *resp.Items[0].VendorID)
	assert.Nil(t, resp.Items[1].VendorID, "producto sin vendedor congela vendor_id nil")

	assert.True(t, resp.Subtotal.Equal(dec("210")), "subtotal = 80*2 + 50*1")
	assert.True(t, resp.Total.Equal(dec("250")), "total = subtotal + envío")
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Len(t, orders.items, 2)
}

func TestCrearPedido_SnapshotInmuneACambiosPosteriores(t *testing.T) {
	uc, orders, products := newOrderUC()
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100")}

	resp, err := uc.Create(context.Background(), validOrderRequest(
		dto.OrderItemRequest{ProductID: 1, Quantity: 1},
	))
	require.NoError(t, err)

	// El producto cambia de precio después del pedido.
	products.products[1].Price = dec("999")

	stored, err := orders.GetItems(resp.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].UnitPrice.Equal(dec("100")),
		"el snapshot del precio no debe moverse con el producto")
}

func TestCrearPedido_ProductoInexistente_NoEscribeNada(t *testing.T) {
	uc, orders, products := newOrderUC()
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100")}

	_, err := uc.Create(context.Background(), validOrderRequest(
		dto.OrderItemRequest{ProductID: 1, Quantity: 1},
		dto.OrderItemRequest{ProductID: 999, Quantity: 1},
	))
	require.Error(t, err)
	assert.Empty(t, orders.orders, "ni la cabecera debe insertarse si una línea no resuelve")
	assert.Empty(t, orders.items)
}

func TestCrearPedido_EntradaInvalida(t *testing.T) {
	uc, _, _ := newOrderUC()

	cases := []dto.CreateOrderRequest{
		{},
		validOrderRequest(), // sin líneas
		validOrderRequest(dto.OrderItemRequest{ProductID: 1, Quantity: 0}),
		validOrderRequest(dto.OrderItemRequest{ProductID: 0, Quantity: 1}),
	}
	neg := validOrderRequest(dto.OrderItemRequest{ProductID: 1, Quantity: 1})
	neg.DeliveryCharge = dec("-1")
	cases = append(cases, neg)

	for i, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarEstadoPedido_TransicionValida(t *testing.T) {
	uc, orders, products := newOrderUC()
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100")}
	resp, err := uc.Create(context.Background(), validOrderRequest(dto.OrderItemRequest{ProductID: 1, Quantity: 1}))
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(resp.ID, entity.OrderStatusConfirmed))
	stored, _ := orders.GetByID(resp.ID)
	assert.Equal(t, entity.OrderStatusConfirmed, stored.Status)
}

func TestActualizarEstadoPedido_TransicionInvalida(t *testing.T) {
	uc, _, products := newOrderUC()
	products.products[1] = &entity.Product{ID: 1, Name: "Silla", Price: dec("100")}
	resp, err := uc.Create(context.Background(), validOrderRequest(dto.OrderItemRequest{ProductID: 1, Quantity: 1}))
	require.NoError(t, err)

	err = uc.UpdateStatus(resp.ID, entity.OrderStatusDelivered)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusChange,
		"pending no puede saltar directo a delivered")
}

func TestActualizarEstadoPedido_NoExiste(t *testing.T) {
	uc, _, _ := newOrderUC()
	err := uc.UpdateStatus(404, entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
