package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretPrueba = "secreto-de-prueba"

func appConAuth(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida", NewAuthMiddleware(secretPrueba), func(c *fiber.Ctx) error {
		id, _ := UsuarioActual(c)
		return c.JSON(fiber.Map{"usuario_id": id.String(), "es_admin": EsAdmin(c)})
	})
	app.Get("/admin", NewAuthMiddleware(secretPrueba), NewAdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthMiddlewareTokenValido(t *testing.T) {
	app := appConAuth(t)

	usuario := &entities.Usuario{ID: uuid.New(), Rol: entities.RolUsuarioComun}
	token, err := FirmarToken(secretPrueba, usuario)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, usuario.ID.String(), body["usuario_id"])
	assert.Equal(t, false, body["es_admin"])
}

func TestAuthMiddlewareSinToken(t *testing.T) {
	app := appConAuth(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protegida", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareFirmaIncorrecta(t *testing.T) {
	app := appConAuth(t)

	usuario := &entities.Usuario{ID: uuid.New(), Rol: entities.RolUsuarioComun}
	token, err := FirmarToken("otro-secreto", usuario)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareTokenExpirado(t *testing.T) {
	app := appConAuth(t)

	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"rol": string(entities.RolUsuarioComun),
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iat": time.Now().Add(-25 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretPrueba))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// La marca "expirado" indica al cliente limpiar credenciales y volver al login
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["expirado"])
}

func TestAdminMiddleware(t *testing.T) {
	app := appConAuth(t)

	tests := []struct {
		name   string
		rol    entities.RolUsuario
		status int
	}{
		{name: "administrador accede", rol: entities.RolAdmin, status: fiber.StatusOK},
		{name: "usuario común recibe 403", rol: entities.RolUsuarioComun, status: fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := FirmarToken(secretPrueba, &entities.Usuario{ID: uuid.New(), Rol: tt.rol})
			require.NoError(t, err)

			req := httptest.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
