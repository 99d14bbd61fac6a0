package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seefirst/seefirst-api/internal/application/dto"
	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
	"github.com/seefirst/seefirst-api/pkg/jwt"
)

// Locals keys para el principal y el vendedor en Fiber.
const (
	LocalPrincipal = "principal"
	LocalVendor    = "vendor"
)

// HeaderToken es el header de identidad: un único valor de token por
// request, sin prefijo Bearer (contrato de wire heredado de los clientes).
const HeaderToken = "x-access-token"

// RequireAuth valida el token de x-access-token y resuelve el principal.
// El rol NO se toma del payload del token: se re-lee de la base en cada
// request, así un downgrade de rol aplica de inmediato sin esperar la
// expiración. El token solo prueba identidad continuada, nunca autoridad.
func RequireAuth(jwtSecret string, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(HeaderToken)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header x-access-token requerido"})
		}
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
		if user == nil || !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "el usuario del token ya no existe o está inactivo"})
		}
		c.Locals(LocalPrincipal, user)
		return c.Next()
	}
}

// RequireRole rechaza con 403 si el rol (fresco, de la base) del principal
// no está entre los permitidos. Debe usarse DESPUÉS de RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetPrincipal(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticación requerida"})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente"})
	}
}

// RequireVendor construye sobre RequireRole(vendor): carga la fila Vendor
// del principal y rechaza con 403 si no existe. Un vendedor NO aprobado sí
// pasa al handler (con el vendedor en Locals): el chequeo de aprobación se
// difiere al cuerpo del handler para responder "pendiente de aprobación"
// en vez de un 403 seco. Todo handler mutador debe re-verificar IsApproved
// antes de comprometer una mutación.
func RequireVendor(vendorRepo repository.VendorRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetPrincipal(c)
		if user == nil || user.Role != entity.RoleVendor {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente"})
		}
		vendor, err := vendorRepo.GetByUserID(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
		if vendor == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "perfil de vendedor no encontrado"})
		}
		c.Locals(LocalVendor, vendor)
		return c.Next()
	}
}

// ResolveVendorScope prepara rutas compartidas entre admin y vendedor (las
// mutaciones de producto): un admin pasa sin vendedor en Locals (alcance
// global); un vendedor necesita su fila Vendor cargada (aprobado o no);
// cualquier otro rol recibe 403.
func ResolveVendorScope(vendorRepo repository.VendorRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetPrincipal(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticación requerida"})
		}
		switch user.Role {
		case entity.RoleAdmin:
			return c.Next()
		case entity.RoleVendor:
			vendor, err := vendorRepo.GetByUserID(user.ID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
			}
			if vendor == nil {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "perfil de vendedor no encontrado"})
			}
			c.Locals(LocalVendor, vendor)
			return c.Next()
		default:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente"})
		}
	}
}

// GetPrincipal devuelve el usuario autenticado del contexto (después de RequireAuth).
func GetPrincipal(c *fiber.Ctx) *entity.User {
	user, _ := c.Locals(LocalPrincipal).(*entity.User)
	return user
}

// GetVendor devuelve el vendedor del contexto (después de RequireVendor).
// Puede estar NO aprobado: el handler decide.
func GetVendor(c *fiber.Ctx) *entity.Vendor {
	vendor, _ := c.Locals(LocalVendor).(*entity.Vendor)
	return vendor
}
