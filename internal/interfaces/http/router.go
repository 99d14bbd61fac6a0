package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seefirst/seefirst-api/internal/domain/entity"
	"github.com/seefirst/seefirst-api/internal/domain/repository"
)

// Handlers agrupa los handlers que monta el router.
type Handlers struct {
	Auth     *AuthHandler
	Product  *ProductHandler
	Category *CategoryHandler
	Banner   *BannerHandler
	Order    *OrderHandler
	Preview  *PreviewHandler
	Vendor   *VendorHandler
	User     *UserHandler
}

// SetupRoutes monta la superficie HTTP completa bajo /api. Las cadenas de
// middleware componen de lo genérico a lo específico: token → principal
// fresco → rol → alcance de vendedor.
func SetupRoutes(app *fiber.App, h Handlers, jwtSecret string, userRepo repository.UserRepository, vendorRepo repository.VendorRepository) {
	authd := RequireAuth(jwtSecret, userRepo)
	adminOnly := RequireRole(entity.RoleAdmin)

	api := app.Group("/api")

	// Público: identidad.
	api.Post("/register", h.Auth.Register)
	api.Post("/login", h.Auth.Login)
	api.Post("/vendor/register", h.Auth.RegisterVendor)
	api.Post("/vendor/login", h.Auth.VendorLogin)
	api.Post("/admin/login", h.Auth.AdminLogin)

	// Público: catálogo, pedidos y visitas.
	api.Get("/products", h.Product.List)
	api.Get("/products/:id", h.Product.Get)
	api.Get("/categories", h.Category.List)
	api.Get("/banners", h.Banner.List)
	api.Post("/orders", h.Order.Create)
	api.Post("/previews", h.Preview.Create)

	// Mutaciones de producto: compartidas entre admin (alcance global) y
	// vendedor (alcance propio, aprobado).
	mutators := RequireRole(entity.RoleAdmin, entity.RoleVendor)
	scope := ResolveVendorScope(vendorRepo)
	api.Post("/products", authd, mutators, scope, h.Product.Create)
	api.Put("/products/:id", authd, mutators, scope, h.Product.Update)
	api.Delete("/products/:id", authd, mutators, scope, h.Product.Delete)

	// Panel del vendedor.
	vendor := api.Group("/vendor", authd, RequireVendor(vendorRepo))
	vendor.Get("/dashboard", h.Vendor.Dashboard)
	vendor.Get("/products", h.Product.VendorList)
	vendor.Get("/orders", h.Vendor.Orders)

	// Administración.
	admin := api.Group("/admin", authd, adminOnly)
	admin.Get("/vendors", h.Vendor.List)
	admin.Put("/vendors/:id/approve", h.Vendor.Approve)
	admin.Get("/users", h.User.List)
	admin.Put("/users/:id/status", h.User.SetActive)
	admin.Delete("/users/:id", h.User.Delete)
	admin.Post("/categories", h.Category.Create)
	admin.Put("/categories/:id", h.Category.Update)
	admin.Delete("/categories/:id", h.Category.Delete)
	admin.Post("/banners", h.Banner.Create)
	admin.Delete("/banners/:id", h.Banner.Delete)
	admin.Get("/orders", h.Order.List)
	admin.Get("/orders/:id", h.Order.Get)
	admin.Put("/orders/:id/status", h.Order.UpdateStatus)
	admin.Get("/previews", h.Preview.List)
	admin.Put("/previews/:id/status", h.Preview.UpdateStatus)
}
