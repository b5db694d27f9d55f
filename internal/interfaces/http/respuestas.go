package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
	"github.com/andinosoft/erp-pyme/internal/domain"
)

// ok responde 200 con el sobre {success, message, data}.
func ok(c *fiber.Ctx, message string, data any) error {
	return c.JSON(dto.OK(message, data))
}

// created responde 201 con el sobre de éxito.
func created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(message, data))
}

// fallo responde un error con código explícito.
func fallo(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.Fallo(code, message))
}

// falloCuerpo respuesta estándar para cuerpos JSON que no parsean.
func falloCuerpo(c *fiber.Ctx) error {
	return fallo(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo de la petición inválido")
}

// errorDominio traduce errores de dominio a estados HTTP. Los 4xx se loguean
// en warn y cualquier otro error en error antes de responder 500.
func errorDominio(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		logWarn(c, err)
		return fallo(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		logWarn(c, err)
		return fallo(c, fiber.StatusBadRequest, "INSUFFICIENT_STOCK", "la operación dejaría el stock negativo")
	case errors.Is(err, domain.ErrUnauthorized):
		logWarn(c, err)
		return fallo(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		logWarn(c, err)
		return fallo(c, fiber.StatusForbidden, "FORBIDDEN", "permiso insuficiente")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		logWarn(c, err)
		return fallo(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrDuplicate):
		logWarn(c, err)
		return fallo(c, fiber.StatusConflict, "DUPLICATE", "ya existe un registro con esos datos")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		logWarn(c, err)
		return fallo(c, fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado")
	case errors.Is(err, domain.ErrConflict):
		logWarn(c, err)
		return fallo(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		logWarn(c, err)
		return fallo(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "demasiadas peticiones, intente más tarde")
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no manejado")
		return fallo(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
	}
}

func logWarn(c *fiber.Ctx, err error) {
	log.Warn().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("petición rechazada")
}
