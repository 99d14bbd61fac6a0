package dto

import "time"

// RegisterRequest entrada para registro de usuario (password en texto, se hashea en use case).
type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VendorRegisterRequest entrada para registro de vendedor: crea User (rol
// vendor) y Vendor ligado en una sola transacción.
type VendorRegisterRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	StoreName        string `json:"store_name"`
	StoreDescription string `json:"store_description"`
	StoreLocation    string `json:"store_location"`
}

// LoginRequest entrada para login. Identifier acepta teléfono o email.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse salida con token JWT y el principal resuelto.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// VendorResponse salida de un perfil de vendedor.
type VendorResponse struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	StoreName        string    `json:"store_name"`
	StoreDescription string    `json:"store_description,omitempty"`
	StoreLocation    string    `json:"store_location,omitempty"`
	IsApproved       bool      `json:"is_approved"`
	CreatedAt        time.Time `json:"created_at"`
}

// VendorRegisterResponse salida del registro de vendedor.
type VendorRegisterResponse struct {
	User   UserResponse   `json:"user"`
	Vendor VendorResponse `json:"vendor"`
}
