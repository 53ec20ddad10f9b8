package handlers

import (
	"github.com/cafeandino/encuestas-api/internal/application/usecases"
	"github.com/cafeandino/encuestas-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler maneja requisiciones de registro y sesión
type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
	jwtSecret   string
}

// NewAuthHandler crea una nueva instancia de AuthHandler
func NewAuthHandler(authUseCase *usecases.AuthUseCase, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtSecret:   jwtSecret,
	}
}

type registroRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registrar crea un usuario nuevo
// @Summary Registra un usuario
// @Description Crea un usuario con contraseña cifrada y rol estándar
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registroRequest true "Datos del usuario"
// @Success 201 {object} map[string]interface{} "Usuario creado"
// @Failure 400 {object} map[string]interface{} "Error de validación"
// @Failure 409 {object} map[string]interface{} "Email ya registrado"
// @Router /auth/register [post]
func (h *AuthHandler) Registrar(c *fiber.Ctx) error {
	var req registroRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}

	usuario, err := h.authUseCase.Registrar(req.Nombre, req.Email, req.Password)
	if err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Login verifica credenciales y emite un token
// @Summary Inicia sesión
// @Description Verifica credenciales y retorna un token de 24 horas
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credenciales"
// @Success 200 {object} map[string]interface{} "Token emitido"
// @Failure 403 {object} map[string]interface{} "Credenciales inválidas"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}

	usuario, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		return responderError(c, err)
	}

	token, err := middleware.FirmarToken(h.jwtSecret, usuario)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"usuario": usuario,
	})
}

// Me retorna el perfil del usuario autenticado
// @Summary Perfil propio
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Perfil"
// @Failure 404 {object} map[string]interface{} "Usuario no encontrado"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, ok := middleware.UsuarioActual(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "sesión no válida"})
	}

	usuario, err := h.authUseCase.GetUsuario(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(usuario)
}
