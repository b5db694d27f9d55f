package entity

import "time"

// Almacen representa un almacén o bodega donde se guarda inventario.
type Almacen struct {
	ID        string
	Codigo    string // único
	Nombre    string
	Direccion string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
