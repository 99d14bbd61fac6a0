package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

// OrderTxRunner ejecuta la creación del pedido dentro de una transacción:
// cabecera y todas las líneas se insertan juntas o no se inserta nada.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// OrderUseCase creación atómica de pedidos multi-línea y gestión de estados.
type OrderUseCase struct {
	txRunner  OrderTxRunner
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(txRunner OrderTxRunner, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// Create valida y crea un pedido en una sola transacción. Por cada línea se
// resuelve el producto actual para congelar su vendor_id y su precio
// autoritativo (offer_price vigente o price; el precio del cliente no se
// acepta). Subtotal y total se recalculan en el servidor. Un producto
// inexistente o cualquier fallo de insert revierte el pedido completo:
// ningún pedido parcial es visible jamás.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.DeliveryAddress) == "" ||
		strings.TrimSpace(in.DeliveryLocation) == "" ||
		strings.TrimSpace(in.PaymentMethod) == "" ||
		len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.DeliveryCharge.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	order := &entity.Order{
		CustomerName:     in.CustomerName,
		CustomerPhone:    in.CustomerPhone,
		DeliveryAddress:  in.DeliveryAddress,
		DeliveryLocation: in.DeliveryLocation,
		PaymentMethod:    in.PaymentMethod,
		BkashTrxID:       in.BkashTrxID,
		DeliveryCharge:   in.DeliveryCharge,
		Status:           entity.OrderStatusPending,
		CreatedAt:        time.Now(),
	}

	err := uc.txRunner.RunOrder(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		subtotal := decimal.Zero
		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, line := range in.Items {
			product, err := productRepo.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound // producto inexistente: revierte todo el pedido
			}
			unitPrice := product.EffectivePrice()
			subtotal = subtotal.Add(unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, entity.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: unitPrice,
				VendorID:  product.VendorID, // snapshot; nil si el producto no tiene vendedor
			})
		}
		order.Subtotal = subtotal
		order.Total = subtotal.Add(order.DeliveryCharge)

		if err := orderRepo.CreateHeader(order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := orderRepo.CreateItem(&items[i]); err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, order.Items), nil
}

// Get devuelve la cabecera con sus líneas.
func (uc *OrderUseCase) Get(id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// List lista cabeceras de pedidos paginadas.
func (uc *OrderUseCase) List(page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.List(page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o, nil))
	}
	return out, nil
}

// UpdateStatus aplica una transición de la máquina de estados del pedido.
// Una transición no permitida retorna ErrInvalidStatusChange.
func (uc *OrderUseCase) UpdateStatus(id int64, status string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if !entity.ValidOrderTransition(order.Status, status) {
		return domain.ErrInvalidStatusChange
	}
	return uc.orderRepo.UpdateStatus(id, status)
}

func toOrderResponse(o *entity.Order, items []entity.OrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		DeliveryAddress:  o.DeliveryAddress,
		DeliveryLocation: o.DeliveryLocation,
		PaymentMethod:    o.PaymentMethod,
		BkashTrxID:       o.BkashTrxID,
		Subtotal:         o.Subtotal,
		DeliveryCharge:   o.DeliveryCharge,
		Total:            o.Total,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, toOrderItemResponse(it))
	}
	return resp
}

func toOrderItemResponse(it entity.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:        it.ID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		VendorID:  it.VendorID,
	}
}
