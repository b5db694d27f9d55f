// Package permisos define el catálogo estático de permisos y su asignación
// por rol. El middleware HTTP consulta este catálogo con el rol del token,
// sin ir a la base de datos.
package permisos

import "github.com/andinosoft/erp-pyme/internal/domain/entity"

// Permisos del sistema.
const (
	InventarioVer      = "inventario.ver"
	InventarioAjustar  = "inventario.ajustar"
	ProductosVer       = "productos.ver"
	ProductosGestionar = "productos.gestionar"
	AlmacenesGestionar = "almacenes.gestionar"
	ComprasVer         = "compras.ver"
	ComprasGestionar   = "compras.gestionar"
	ComprasRecibir     = "compras.recibir"
	EntidadesVer       = "entidades.ver"
	EntidadesGestionar = "entidades.gestionar"
	UsuariosGestionar  = "usuarios.gestionar"
)

// catalogo asigna cada permiso a los roles que lo tienen.
var catalogo = map[string][]string{
	InventarioVer:      {entity.RolAdmin, entity.RolBodeguero, entity.RolVendedor},
	InventarioAjustar:  {entity.RolAdmin, entity.RolBodeguero},
	ProductosVer:       {entity.RolAdmin, entity.RolBodeguero, entity.RolVendedor},
	ProductosGestionar: {entity.RolAdmin},
	AlmacenesGestionar: {entity.RolAdmin},
	ComprasVer:         {entity.RolAdmin, entity.RolBodeguero, entity.RolVendedor},
	ComprasGestionar:   {entity.RolAdmin, entity.RolBodeguero},
	ComprasRecibir:     {entity.RolAdmin, entity.RolBodeguero},
	EntidadesVer:       {entity.RolAdmin, entity.RolBodeguero, entity.RolVendedor},
	EntidadesGestionar: {entity.RolAdmin, entity.RolVendedor},
	UsuariosGestionar:  {entity.RolAdmin},
}

// RolTiene indica si el rol cuenta con el permiso. Permisos desconocidos
// siempre se niegan.
func RolTiene(rol, permiso string) bool {
	for _, r := range catalogo[permiso] {
		if r == rol {
			return true
		}
	}
	return false
}
