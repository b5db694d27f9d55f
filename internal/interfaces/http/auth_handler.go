package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andinosoft/erp-pyme/internal/application/auth"
	"github.com/andinosoft/erp-pyme/internal/application/dto"
)

// AuthHandler maneja login, refresh, logout y registro de usuarios.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email y password"
// @Success      200   {object}  dto.Respuesta
// @Failure      401   {object}  dto.Respuesta
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "sesión iniciada", out)
}

// Refresh godoc
// @Summary      Rotar refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refreshToken vigente"
// @Success      200   {object}  dto.Respuesta
// @Failure      401   {object}  dto.Respuesta
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.Refresh(c.Context(), in.RefreshToken)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "token renovado", out)
}

// Logout godoc
// @Summary      Cerrar sesión (invalida el refresh token)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refreshToken a invalidar"
// @Success      200   {object}  dto.Respuesta
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	if err := h.uc.Logout(c.Context(), in.RefreshToken); err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "sesión cerrada", nil)
}

// Register godoc
// @Summary      Crear usuario (solo admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, nombre, rol"
// @Success      201   {object}  dto.Respuesta
// @Failure      409   {object}  dto.Respuesta
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.RegisterUser(in)
	if err != nil {
		return errorDominio(c, err)
	}
	return created(c, "usuario creado", out)
}
