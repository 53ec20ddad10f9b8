package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claves bajo las que el middleware deja la identidad en el contexto de la
// petición
const (
	LocalUsuarioID = "usuario_id"
	LocalRol       = "rol"
)

const duracionToken = 24 * time.Hour

// FirmarToken crea un token HS256 de 24 horas para el usuario. Toda la firma
// y validación de tokens vive en este archivo; el resto de la aplicación solo
// ve la identidad en los locals de Fiber.
func FirmarToken(secret string, usuario *entities.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"sub": usuario.ID.String(),
		"rol": string(usuario.Rol),
		"exp": time.Now().Add(duracionToken).Unix(),
		"iat": time.Now().Unix(),
		"iss": "encuestas-api",
		"jti": uuid.NewString(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// parseToken valida el token y retorna el id de usuario y el rol
func parseToken(secret, tokenStr string) (uuid.UUID, entities.RolUsuario, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de firma inesperado")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, "", err
	}
	if !tok.Valid {
		return uuid.Nil, "", errors.New("token inválido")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", errors.New("claims inválidos")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, "", errors.New("token sin sujeto")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", err
	}

	rol := entities.RolUsuarioComun
	if r, ok := claims["rol"].(string); ok && entities.RolUsuario(r).IsValid() {
		rol = entities.RolUsuario(r)
	}

	return id, rol, nil
}

// NewAuthMiddleware valida el token Bearer y deja la identidad en los locals.
// Un token expirado responde 401 con la marca "expirado" para que el cliente
// limpie sus credenciales y redirija al login.
func NewAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "falta el token de autorización",
			})
		}

		id, rol, err := parseToken(secret, strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error":    "sesión expirada",
					"expirado": true,
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token inválido",
			})
		}

		c.Locals(LocalUsuarioID, id)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// NewAdminMiddleware exige rol de administrador sobre una ruta ya autenticada
func NewAdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol, _ := c.Locals(LocalRol).(entities.RolUsuario)
		if rol != entities.RolAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "se requiere rol de administrador",
			})
		}
		return c.Next()
	}
}

// UsuarioActual retorna la identidad dejada por el middleware de autenticación
func UsuarioActual(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocalUsuarioID).(uuid.UUID)
	return id, ok
}

// EsAdmin indica si la petición viene de un administrador
func EsAdmin(c *fiber.Ctx) bool {
	rol, _ := c.Locals(LocalRol).(entities.RolUsuario)
	return rol == entities.RolAdmin
}
