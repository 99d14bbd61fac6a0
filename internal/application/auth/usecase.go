package auth

import (
	"context"
	"time"

	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
	"github.com/seefirst/seefirst-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// BootstrapAdmin credenciales del primer admin: si no existe fila admin y el
// login coincide con éstas, el admin se crea en ese momento.
type BootstrapAdmin struct {
	Email    string
	Phone    string
	Password string
}

// RegistrationTxRunner ejecuta el registro de vendedor dentro de una
// transacción: User y Vendor se insertan juntos o no se inserta ninguno.
type RegistrationTxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		vendorRepo repository.VendorRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro, login por rol y
// registro atómico de vendedores.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	txRunner  RegistrationTxRunner
	jwtCfg    JWTConfig
	bootstrap BootstrapAdmin
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, txRunner RegistrationTxRunner, jwtCfg JWTConfig, bootstrap BootstrapAdmin) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, txRunner: txRunner, jwtCfg: jwtCfg, bootstrap: bootstrap}
}

// Register crea un usuario con rol user: hashea el password con bcrypt y
// persiste. Teléfono o email ya registrado retorna ErrPhoneAlreadyExists.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica identifier (teléfono o email) y password, y emite el JWT.
// Usuario ausente, inactivo o con password incorrecto devuelven el mismo
// ErrInvalidCredentials. Si requiredRole no es vacío, el rol debe coincidir.
func (uc *AuthUseCase) Login(in dto.LoginRequest, requiredRole string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByIdentifier(in.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if requiredRole != "" && user.Role != requiredRole {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// AdminLogin como Login con rol admin, pero si todavía no existe ningún
// admin y las credenciales coinciden con las bootstrap de configuración,
// crea la fila admin en ese primer login.
func (uc *AuthUseCase) AdminLogin(in dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.userRepo.GetAdmin()
	if err != nil {
		return nil, err
	}
	if admin == nil {
		if uc.bootstrap.Email == "" || in.Identifier != uc.bootstrap.Email || in.Password != uc.bootstrap.Password {
			return nil, domain.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(uc.bootstrap.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user := &entity.User{
			Name:         "Admin",
			Phone:        uc.bootstrap.Phone,
			Email:        uc.bootstrap.Email,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			IsActive:     true,
			CreatedAt:    time.Now(),
		}
		if err := uc.userRepo.Create(user); err != nil {
			return nil, err
		}
	}
	return uc.Login(in, entity.RoleAdmin)
}

// RegisterVendor crea atómicamente el User (rol vendor) y su Vendor ligado
// con is_approved=false. Si cualquiera de los dos inserts falla, la
// transacción completa se revierte: nunca queda un User o Vendor huérfano.
func (uc *AuthUseCase) RegisterVendor(ctx context.Context, in dto.VendorRegisterRequest) (*dto.VendorRegisterResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleVendor,
		IsActive:     true,
		CreatedAt:    now,
	}
	vendor := &entity.Vendor{
		StoreName:        in.StoreName,
		StoreDescription: in.StoreDescription,
		StoreLocation:    in.StoreLocation,
		IsApproved:       false,
		CreatedAt:        now,
	}
	err = uc.txRunner.Run(ctx, func(userRepo repository.UserRepository, vendorRepo repository.VendorRepository) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		vendor.UserID = user.ID
		return vendorRepo.Create(vendor)
	})
	if err != nil {
		return nil, err
	}
	return &dto.VendorRegisterResponse{
		User:   *toUserResponse(user),
		Vendor: *ToVendorResponse(vendor),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponse mapea la entidad al DTO público (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse { return toUserResponse(u) }

// ToVendorResponse mapea la entidad Vendor al DTO público.
func ToVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
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
