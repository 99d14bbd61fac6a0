package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seefirst/seefirst-api/internal/domain/entity"
	apphttp "github.com/seefirst/seefirst-api/internal/interfaces/http"
	pkgjwt "github.com/seefirst/seefirst-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "seefirst-test"
)

type fakeUserRepo struct {
	users map[int64]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByIdentifier(identifier string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Phone == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetAdmin() (*entity.User, error) {
	for _, u := range f.users {
		if u.Role == entity.RoleAdmin {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) SetActive(id int64, active bool) error {
	if u, ok := f.users[id]; ok {
		u.IsActive = active
	}
	return nil
}
func (f *fakeUserRepo) Delete(id int64) error { delete(f.users, id); return nil }

type fakeVendorRepo struct {
	vendors map[int64]*entity.Vendor // por user_id
}

func (f *fakeVendorRepo) Create(v *entity.Vendor) error { f.vendors[v.UserID] = v; return nil }
func (f *fakeVendorRepo) GetByID(id int64) (*entity.Vendor, error) {
	for _, v := range f.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}
func (f *fakeVendorRepo) GetByUserID(userID int64) (*entity.Vendor, error) {
	return f.vendors[userID], nil
}
func (f *fakeVendorRepo) List(limit, offset int) ([]*entity.Vendor, error) { return nil, nil }
func (f *fakeVendorRepo) Approve(id int64) error {
	for _, v := range f.vendors {
		if v.ID == id {
			v.IsApproved = true
		}
	}
	return nil
}

// buildTestApp monta una ruta admin y una ruta de vendedor con la cadena
// completa: token → principal fresco → rol → alcance de vendedor.
func buildTestApp(users *fakeUserRepo, vendors *fakeVendorRepo) *fiber.App {
	app := fiber.New()
	app.Get("/admin-only",
		apphttp.RequireAuth(testJWTSecret, users),
		apphttp.RequireRole(entity.RoleAdmin),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetPrincipal(c).Role})
		},
	)
	app.Get("/vendor-area",
		apphttp.RequireAuth(testJWTSecret, users),
		apphttp.RequireVendor(vendors),
		func(c *fiber.Ctx) error {
			v := apphttp.GetVendor(c)
			return c.JSON(fiber.Map{"vendor_id": v.ID, "is_approved": v.IsApproved})
		},
	)
	return app
}

func tokenFor(t *testing.T, userID int64, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, 1)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("x-access-token", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func newFakes() (*fakeUserRepo, *fakeVendorRepo) {
	return &fakeUserRepo{users: map[int64]*entity.User{}},
		&fakeVendorRepo{vendors: map[int64]*entity.Vendor{}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAuth
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAuth_SinToken_Retorna401(t *testing.T) {
	users, vendors := newFakes()
	app := buildTestApp(users, vendors)

	resp := doRequest(t, app, "/admin-only", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestRequireAuth_TokenInvalido_Retorna401(t *testing.T) {
	users, vendors := newFakes()
	app := buildTestApp(users, vendors)

	resp := doRequest(t, app, "/admin-only", "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestRequireAuth_UsuarioBorrado_Retorna401(t *testing.T) {
	users, vendors := newFakes()
	app := buildTestApp(users, vendors)
	// Token válido pero el usuario ya no existe en la base.
	resp := doRequest(t, app, "/admin-only", tokenFor(t, 99, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USER_NOT_FOUND")
}

func TestRequireAuth_UsuarioDesactivado_Retorna401(t *testing.T) {
	users, vendors := newFakes()
	users.users[7] = &entity.User{ID: 7, Role: entity.RoleAdmin, IsActive: false}
	app := buildTestApp(users, vendors)

	resp := doRequest(t, app, "/admin-only", tokenFor(t, 7, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una cuenta desactivada pierde acceso en el siguiente request")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole — el rol manda desde la base, no desde el token
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccede(t *testing.T) {
	users, vendors := newFakes()
	users.users[1] = &entity.User{ID: 1, Role: entity.RoleAdmin, IsActive: true}
	app := buildTestApp(users, vendors)

	resp := doRequest(t, app, "/admin-only", tokenFor(t, 1, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolDegradadoEnBase_Retorna403(t *testing.T) {
	users, vendors := newFakes()
	// El token dice admin, pero la base ya dice user: manda la base.
	users.users[1] = &entity.User{ID: 1, Role: entity.RoleUser, IsActive: true}
	app := buildTestApp(users, vendors)

	resp := doRequest(t, app, "/admin-only", tokenFor(t, 1, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un downgrade de rol aplica de inmediato sin esperar la expiración del token")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireVendor — el no aprobado pasa, el sin perfil no
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireVendor_SinPerfil_Retorna403(t *testing.T) {
	users, vendors := newFakes()
	users.users[2] = &entity.User{ID: 2, Role: entity.RoleVendor, IsActive: true}
	app := buildTestApp(users, vendors)

	resp := doRequest(t, app, "/vendor-area", tokenFor(t, 2, entity.RoleVendor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireVendor_NoAprobadoPasaAlHandler(t *testing.T) {
	users, vendors := newFakes()
	users.users[2] = &entity.User{ID: 2, Role: entity.RoleVendor, IsActive: true}
	vendors.vendors[2] = &entity.Vendor{ID: 10, UserID: 2, IsApproved: false}
	app := buildTestApp(users, vendors)

	resp := doRequest(t, app, "/vendor-area", tokenFor(t, 2, entity.RoleVendor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el vendedor pendiente debe llegar al handler, no ser bloqueado por el gate")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["is_approved"])
	assert.Equal(t, float64(10), body["vendor_id"])
}

func TestRequireVendor_RolNoVendedor_Retorna403(t *testing.T) {
	users, vendors := newFakes()
	users.users[3] = &entity.User{ID: 3, Role: entity.RoleUser, IsActive: true}
	app := buildTestApp(users, vendors)

	resp := doRequest(t, app, "/vendor-area", tokenFor(t, 3, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
