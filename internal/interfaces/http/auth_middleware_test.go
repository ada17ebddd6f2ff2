package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdgomez/taller-api/internal/domain/entity"
	apphttp "github.com/jdgomez/taller-api/internal/interfaces/http"
	pkgjwt "github.com/jdgomez/taller-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-4000-800000000001"
	testIssuer    = "taller-api-test"
	testExpMin    = 60
)

// fakeUserRepo implementa repository.UserRepository en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func testUser(active bool) *entity.User {
	now := time.Now()
	return &entity.User{
		ID:        testUserID,
		Username:  "jdiaz",
		Email:     "jdiaz@taller.co",
		FullName:  "Julián Díaz",
		Role:      entity.RoleAdmin,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que expone el usuario actuante.
func buildTestApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		func(c *fiber.Ctx) error {
			u := apphttp.CurrentUser(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"username": u.Username,
				"role":     string(u.Role),
			})
		},
	)
	return app
}

// tokenFor genera un JWT de sesión para el usuario de prueba.
func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "jdiaz", role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido de usuario activo → HTTP 200 con el usuario cargado.
func TestAuthMiddleware_TokenValido_CargaUsuario(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(testUser(true)))
	resp := doRequest(t, app, tokenFor(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"usuario activo con token válido debe pasar")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "jdiaz", body["username"], "el usuario actuante debe venir del repositorio")
	assert.Equal(t, "admin", body["role"])
}

// Caso 2: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(testUser(true)))
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 3: token malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(testUser(true)))
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 4: esquema distinto de Bearer → HTTP 401.
func TestAuthMiddleware_EsquemaBasico_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(testUser(true)))
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token válido pero el usuario ya no existe → HTTP 401.
func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo()) // repo vacío
	resp := doRequest(t, app, tokenFor(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token de usuario borrado debe rechazarse")
}

// Caso 6: token válido pero el usuario está inactivo → HTTP 401.
func TestAuthMiddleware_UsuarioInactivo_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(testUser(false)))
	resp := doRequest(t, app, tokenFor(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"usuario desactivado no debe poder usar tokens emitidos antes")
}

// Caso 7: token expirado → HTTP 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(testUser(true)))
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "jdiaz", "admin", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
