package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andinosoft/erp-pyme/internal/application/auth"
	"github.com/andinosoft/erp-pyme/internal/application/compras"
	"github.com/andinosoft/erp-pyme/internal/application/inventory"
	"github.com/andinosoft/erp-pyme/internal/application/usecase"
	"github.com/andinosoft/erp-pyme/internal/domain/permisos"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductoUC       *usecase.ProductoUseCase
	AlmacenUC        *usecase.AlmacenUseCase
	EntidadUC        *usecase.EntidadUseCase
	UsuarioUC        *usecase.UsuarioUseCase
	MovimientoUC     *inventory.MovimientoUseCase
	ConsultaUC       *inventory.ConsultaUseCase
	ReporteUC        *inventory.ReporteUseCase
	CompraUC         *compras.CompraUseCase
	JWTSecret        string
	LoginLimiter     Limiter // nil desactiva el límite
	EscrituraLimiter Limiter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con límite de tasa por IP)
	authGroup := api.Group("/auth", RateLimitMiddleware(deps.LoginLimiter))
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	escritura := RateLimitMiddleware(deps.EscrituraLimiter)

	// Registro de usuarios (solo admin)
	protected.Post("/auth/register",
		RequirePermission(permisos.UsuariosGestionar), escritura, authHandler.Register)

	// Usuarios (solo admin)
	usuarios := protected.Group("/usuarios", RequirePermission(permisos.UsuariosGestionar))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Put("/:id", escritura, usuarioHandler.Actualizar)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", RequirePermission(permisos.ProductosVer), productoHandler.List)
	productos.Get("/:id", RequirePermission(permisos.ProductosVer), productoHandler.GetByID)
	productos.Post("/", RequirePermission(permisos.ProductosGestionar), escritura, productoHandler.Crear)
	productos.Put("/:id", RequirePermission(permisos.ProductosGestionar), escritura, productoHandler.Actualizar)
	productos.Delete("/:id", RequirePermission(permisos.ProductosGestionar), escritura, productoHandler.Eliminar)

	// Almacenes (protegido)
	almacenes := protected.Group("/almacenes")
	almacenHandler := NewAlmacenHandler(deps.AlmacenUC)
	almacenes.Get("/", RequirePermission(permisos.InventarioVer), almacenHandler.List)
	almacenes.Get("/:id", RequirePermission(permisos.InventarioVer), almacenHandler.GetByID)
	almacenes.Post("/", RequirePermission(permisos.AlmacenesGestionar), escritura, almacenHandler.Crear)
	almacenes.Put("/:id", RequirePermission(permisos.AlmacenesGestionar), escritura, almacenHandler.Actualizar)

	// Inventario: ajustes, kardex, stock, alertas, motivos, reporte (protegido)
	invGroup := protected.Group("/inventory")
	inventarioHandler := NewInventarioHandler(deps.MovimientoUC, deps.ConsultaUC, deps.ReporteUC)
	invGroup.Post("/ajustes", RequirePermission(permisos.InventarioAjustar), escritura, inventarioHandler.RegistrarAjuste)
	invGroup.Get("/kardex", RequirePermission(permisos.InventarioVer), inventarioHandler.Kardex)
	invGroup.Get("/stock", RequirePermission(permisos.InventarioVer), inventarioHandler.Stock)
	invGroup.Get("/stock/reporte", RequirePermission(permisos.InventarioVer), inventarioHandler.ReporteStock)
	invGroup.Get("/alertas", RequirePermission(permisos.InventarioVer), inventarioHandler.Alertas)
	invGroup.Get("/motivos", RequirePermission(permisos.InventarioVer), inventarioHandler.Motivos)

	// Compras (protegido)
	comprasGroup := protected.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	comprasGroup.Get("/", RequirePermission(permisos.ComprasVer), compraHandler.List)
	comprasGroup.Get("/:id", RequirePermission(permisos.ComprasVer), compraHandler.GetByID)
	comprasGroup.Post("/", RequirePermission(permisos.ComprasGestionar), escritura, compraHandler.Crear)
	comprasGroup.Put("/:id", RequirePermission(permisos.ComprasGestionar), escritura, compraHandler.Actualizar)
	comprasGroup.Patch("/:id/estado", RequirePermission(permisos.ComprasRecibir), escritura, compraHandler.CambiarEstado)
	comprasGroup.Delete("/:id", RequirePermission(permisos.ComprasGestionar), escritura, compraHandler.Eliminar)

	// Entidades comerciales: clientes y proveedores (protegido)
	entidades := protected.Group("/entidades")
	entidadHandler := NewEntidadHandler(deps.EntidadUC)
	entidades.Get("/", RequirePermission(permisos.EntidadesVer), entidadHandler.List)
	entidades.Get("/:id", RequirePermission(permisos.EntidadesVer), entidadHandler.GetByID)
	entidades.Post("/", RequirePermission(permisos.EntidadesGestionar), escritura, entidadHandler.Crear)
	entidades.Put("/:id", RequirePermission(permisos.EntidadesGestionar), escritura, entidadHandler.Actualizar)
	entidades.Delete("/:id", RequirePermission(permisos.EntidadesGestionar), escritura, entidadHandler.Eliminar)
}
