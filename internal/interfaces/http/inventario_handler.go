package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
	"github.com/andinosoft/erp-pyme/internal/application/inventory"
)

// InventarioHandler maneja ajustes, kardex, stock, alertas y motivos (protegido).
type InventarioHandler struct {
	movimientos *inventory.MovimientoUseCase
	consultas   *inventory.ConsultaUseCase
	reportes    *inventory.ReporteUseCase
}

func NewInventarioHandler(
	movimientos *inventory.MovimientoUseCase,
	consultas *inventory.ConsultaUseCase,
	reportes *inventory.ReporteUseCase,
) *InventarioHandler {
	return &InventarioHandler{movimientos: movimientos, consultas: consultas, reportes: reportes}
}

// RegistrarAjuste godoc
// @Summary      Registrar ajuste manual de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AjusteRequest  true  "productId, warehouseId, cantidadAjuste con signo, reasonId o adjustmentReason"
// @Success      201   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/inventory/ajustes [post]
func (h *InventarioHandler) RegistrarAjuste(c *fiber.Ctx) error {
	var in dto.AjusteRequest
	if err := c.BodyParser(&in); err != nil {
		return falloCuerpo(c)
	}
	mov, err := h.movimientos.RegistrarAjuste(c.Context(), inventory.AjusteInput{
		ProductoID:    in.ProductoID,
		AlmacenID:     in.AlmacenID,
		Cantidad:      in.CantidadAjuste,
		MotivoID:      in.MotivoID,
		Motivo:        in.MotivoAjuste,
		Observaciones: in.Observaciones,
		UsuarioID:     GetUserID(c),
	})
	if err != nil {
		return errorDominio(c, err)
	}
	return created(c, "ajuste registrado", dto.MovimientoResponse{
		ID:            mov.ID,
		ProductoID:    mov.ProductoID,
		AlmacenID:     mov.AlmacenID,
		Tipo:          mov.Tipo,
		Cantidad:      mov.Cantidad,
		StockAnterior: mov.StockAnterior,
		StockNuevo:    mov.StockNuevo,
		Motivo:        mov.Motivo,
		DocumentoRef:  mov.DocumentoRef,
		Observaciones: mov.Observaciones,
		UsuarioID:     mov.UsuarioID,
		Fecha:         mov.Fecha,
	})
}

// Kardex godoc
// @Summary      Historial de movimientos (kardex)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId       query  string  false  "Filtrar por producto"
// @Param        warehouseId     query  string  false  "Filtrar por almacén"
// @Param        tipoMovimiento  query  string  false  "ENTRADA, SALIDA o AJUSTE"
// @Param        fechaDesde      query  string  false  "YYYY-MM-DD"
// @Param        fechaHasta      query  string  false  "YYYY-MM-DD (inclusive)"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/inventory/kardex [get]
func (h *InventarioHandler) Kardex(c *fiber.Ctx) error {
	var in dto.KardexRequest
	if err := c.QueryParser(&in); err != nil {
		return fallo(c, fiber.StatusBadRequest, "VALIDATION", "parámetros de consulta inválidos")
	}
	out, err := h.consultas.Kardex(c.Context(), in)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}

// Stock godoc
// @Summary      Existencias por producto y almacén con estado derivado
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        almacenId  query  string  false  "Filtrar por almacén"
// @Param        productId  query  string  false  "Filtrar por producto"
// @Param        estado     query  string  false  "NORMAL, BAJO o CRITICO"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/inventory/stock [get]
func (h *InventarioHandler) Stock(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.QueryParser(&in); err != nil {
		return fallo(c, fiber.StatusBadRequest, "VALIDATION", "parámetros de consulta inválidos")
	}
	out, err := h.consultas.Stock(c.Context(), in)
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}

// Alertas godoc
// @Summary      Productos en alerta de stock (CRITICO primero, luego BAJO)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        almacenId  query  string  false  "Filtrar por almacén"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/inventory/alertas [get]
func (h *InventarioHandler) Alertas(c *fiber.Ctx) error {
	out, err := h.consultas.Alertas(c.Context(), c.Query("almacenId"))
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}

// Motivos godoc
// @Summary      Catálogo de motivos de movimiento
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        tipo  query  string  false  "ENTRADA, SALIDA o AJUSTE (vacío = todos)"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/inventory/motivos [get]
func (h *InventarioHandler) Motivos(c *fiber.Ctx) error {
	out, err := h.consultas.Motivos(c.Context(), c.Query("tipo"))
	if err != nil {
		return errorDominio(c, err)
	}
	return ok(c, "", out)
}

// ReporteStock godoc
// @Summary      Reporte de existencias en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        almacenId  query  string  false  "Filtrar por almacén"
// @Success      200  {file}  binary
// @Router       /api/inventory/stock/reporte [get]
func (h *InventarioHandler) ReporteStock(c *fiber.Ctx) error {
	pdfBytes, err := h.reportes.ReporteStockPDF(c.Context(), c.Query("almacenId"))
	if err != nil {
		return errorDominio(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="stock-`+time.Now().Format("20060102")+`.pdf"`)
	return c.Send(pdfBytes)
}
