package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

// VendorUseCase panel del vendedor y administración de vendedores.
type VendorUseCase struct {
	vendorRepo  repository.VendorRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewVendorUseCase construye el caso de uso de vendedores.
func NewVendorUseCase(vendorRepo repository.VendorRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo, productRepo: productRepo, orderRepo: orderRepo}
}

// Dashboard arma el resumen del vendedor: perfil, flag de aprobación,
// conteo de productos y sus líneas de pedido (atribuidas por el snapshot
// vendor_id congelado al crear cada pedido).
func (uc *VendorUseCase) Dashboard(vendor *entity.Vendor) (*dto.VendorDashboardResponse, error) {
	products, err := uc.productRepo.ListByVendor(vendor.ID)
	if err != nil {
		return nil, err
	}
	items, err := uc.orderRepo.ListItemsByVendor(vendor.ID)
	if err != nil {
		return nil, err
	}
	totalSales := decimal.Zero
	itemsOut := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		totalSales = totalSales.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		itemsOut = append(itemsOut, toOrderItemResponse(it))
	}
	return &dto.VendorDashboardResponse{
		Vendor:       *toVendorResponse(vendor),
		IsApproved:   vendor.IsApproved,
		ProductCount: len(products),
		OrderItems:   itemsOut,
		TotalSales:   totalSales,
	}, nil
}

// OrderItems devuelve las líneas de pedido atribuidas al vendedor.
func (uc *VendorUseCase) OrderItems(vendorID int64) ([]dto.OrderItemResponse, error) {
	items, err := uc.orderRepo.ListItemsByVendor(vendorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toOrderItemResponse(it))
	}
	return out, nil
}

// List lista vendedores paginados (admin).
func (uc *VendorUseCase) List(page dto.PageRequest) ([]dto.VendorResponse, error) {
	page.DefaultPage()
	vendors, err := uc.vendorRepo.List(page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, *toVendorResponse(v))
	}
	return out, nil
}

// Approve marca un vendedor como aprobado (admin). ErrVendorNotFound si no existe.
func (uc *VendorUseCase) Approve(id int64) error {
	return uc.vendorRepo.Approve(id)
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:               v.ID,
		UserID:           v.UserID,
		StoreName:        v.StoreName,
		StoreDescription: v.StoreDescription,
		StoreLocation:    v.StoreLocation,
		IsApproved:       v.IsApproved,
		CreatedAt:        v.CreatedAt,
	}
}

// UserUseCase administración de cuentas (admin).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de administración de usuarios.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List lista usuarios paginados.
func (uc *UserUseCase) List(page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Phone:     u.Phone,
			Email:     u.Email,
			Role:      u.Role,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

// SetActive activa o desactiva una cuenta. Desactivar invalida el acceso en
// el siguiente request: el middleware re-lee la fila en cada verificación.
func (uc *UserUseCase) SetActive(id int64, active bool) error {
	return uc.userRepo.SetActive(id, active)
}

// Delete elimina la cuenta. Sin cascada: filas vendor/pedido dependientes
// quedan (inconsistencia aceptada).
func (uc *UserUseCase) Delete(id int64) error {
	return uc.userRepo.Delete(id)
}
