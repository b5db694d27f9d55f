package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
	"github.com/andinosoft/erp-pyme/internal/application/usecase"
)

// AlmacenHandler maneja el CRUD de almacenes (protegido).
type AlmacenHandler struct {
	uc *usecase.AlmacenUseCase
}

func NewAlmacenHandler(uc *usecase.AlmacenUseCase) *AlmacenHandler {
	return &AlmacenHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlmacenRequest  true  "codigo, nombre, direccion"
// @Success      201   {object}  dto.Respuesta
// @Router       /api/almacenes [post]
func (h *AlmacenHandler) Crear(c *fiber.Ctx) error {
	var in dto.CreateAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return errorDominio(c, err)
	}
	return created(c, "almacén creado", out)
}

// GetByID godoc
// @Summary      Obtener almacén por ID
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del almacén"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/almacenes/{id} [get]
func (h *AlmacenHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}

// Actualizar godoc
// @Summary      Actualizar almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del almacén"
// @Param        body  body  dto.UpdateAlmacenRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Respuesta
// @Router       /api/almacenes/{id} [put]
func (h *AlmacenHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.UpdateAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "almacén actualizado", out)
}

// List godoc
// @Summary      Listar almacenes
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Router       /api/almacenes [get]
func (h *AlmacenHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fallo(c, fiber.StatusBadRequest, "VALIDATION", "parámetros de consulta inválidos")
	}
	out, err := h.uc.List(page)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}
