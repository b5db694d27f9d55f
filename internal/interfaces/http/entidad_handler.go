package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
	"github.com/andinosoft/erp-pyme/internal/application/usecase"
)

// EntidadHandler maneja clientes y proveedores (entidades comerciales).
type EntidadHandler struct {
	uc *usecase.EntidadUseCase
}

func NewEntidadHandler(uc *usecase.EntidadUseCase) *EntidadHandler {
	return &EntidadHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear entidad comercial
// @Tags         entidades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntidadRequest  true  "tipoEntidad, tipoDocumento, numeroDocumento, razonSocial"
// @Success      201   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Failure      409   {object}  dto.Respuesta
// @Router       /api/entidades [post]
func (h *EntidadHandler) Crear(c *fiber.Ctx) error {
	var in dto.CreateEntidadRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return errorDominio(c, err)
	}
	return created(c, "entidad creada", out)
}

// GetByID godoc
// @Summary      Obtener entidad por ID
// @Tags         entidades
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la entidad"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/entidades/{id} [get]
func (h *EntidadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}

// Actualizar godoc
// @Summary      Actualizar entidad comercial
// @Tags         entidades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entidad"
// @Param        body  body  dto.UpdateEntidadRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Respuesta
// @Router       /api/entidades/{id} [put]
func (h *EntidadHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.UpdateEntidadRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "entidad actualizada", out)
}

// List godoc
// @Summary      Listar entidades activas
// @Tags         entidades
// @Security     Bearer
// @Produce      json
// @Param        tipoEntidad  query  string  false  "CLIENTE o PROVEEDOR (AMBOS aparece en los dos)"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/entidades [get]
func (h *EntidadHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fallo(c, fiber.StatusBadRequest, "VALIDATION", "parámetros de consulta inválidos")
	}
	out, err := h.uc.List(c.Query("tipoEntidad"), page)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}

// Eliminar godoc
// @Summary      Desactivar entidad (borrado lógico)
// @Tags         entidades
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la entidad"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/entidades/{id} [delete]
func (h *EntidadHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "entidad desactivada", nil)
}
