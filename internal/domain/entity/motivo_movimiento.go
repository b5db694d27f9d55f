package entity

import "time"

// MotivoMovimiento es una entrada del catálogo de motivos permitidos por tipo
// de movimiento (ej. "MERMA" para AJUSTE, "COMPRA" para ENTRADA).
type MotivoMovimiento struct {
	ID          string
	Codigo      string // único
	Descripcion string
	Tipo        string // ENTRADA, SALIDA, AJUSTE
	Activo      bool
	CreatedAt   time.Time
}
