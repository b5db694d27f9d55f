package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andinosoft/erp-pyme/internal/application/compras"
	"github.com/andinosoft/erp-pyme/internal/application/dto"
)

// CompraHandler maneja las órdenes de compra y su ciclo de estados (protegido).
type CompraHandler struct {
	uc *compras.CompraUseCase
}

func NewCompraHandler(uc *compras.CompraUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear orden de compra (nace Pendiente)
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompraRequest  true  "proveedorId, almacenId, items por código de producto"
// @Success      201   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/compras [post]
func (h *CompraHandler) Crear(c *fiber.Ctx) error {
	var in dto.CreateCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return errorDominio(c, err)
	}
	return created(c, "orden de compra creada", out)
}

// GetByID godoc
// @Summary      Obtener orden de compra con sus líneas
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/compras/{id} [get]
func (h *CompraHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Pendiente, Recibida o Cancelada"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/compras [get]
func (h *CompraHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fallo(c, fiber.StatusBadRequest, "VALIDATION", "parámetros de consulta inválidos")
	}
	out, err := h.uc.List(c.Context(), c.Query("estado"), page)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}

// Actualizar godoc
// @Summary      Editar orden de compra (solo Pendiente)
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la compra"
// @Param        body  body  dto.UpdateCompraRequest  true  "cabecera y líneas"
// @Success      200   {object}  dto.Respuesta
// @Failure      409   {object}  dto.Respuesta
// @Router       /api/compras/{id} [put]
func (h *CompraHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.UpdateCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "orden de compra actualizada", out)
}

// CambiarEstado godoc
// @Summary      Cambiar estado de la orden (Pendiente -> Recibida | Cancelada)
// @Description  Recibir genera los movimientos ENTRADA y actualiza costo promedio,
//
//	exactamente una vez. Una segunda recepción responde conflicto.
//
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la compra"
// @Param        body  body  dto.CambioEstadoCompraRequest  true  "estado destino"
// @Success      200   {object}  dto.Respuesta
// @Failure      409   {object}  dto.Respuesta
// @Router       /api/compras/{id}/estado [patch]
func (h *CompraHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambioEstadoCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	out, err := h.uc.CambiarEstado(c.Context(), c.Params("id"), in.Estado, GetUserID(c))
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "estado actualizado", out)
}

// Eliminar godoc
// @Summary      Eliminar orden de compra (solo Pendiente)
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {object}  dto.Respuesta
// @Failure      409  {object}  dto.Respuesta
// @Router       /api/compras/{id} [delete]
func (h *CompraHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "orden de compra eliminada", nil)
}
