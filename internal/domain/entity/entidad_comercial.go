package entity

import "time"

// Tipos de entidad comercial.
const (
	EntidadCliente   = "CLIENTE"
	EntidadProveedor = "PROVEEDOR"
	EntidadAmbos     = "AMBOS"
)

// Tipos de documento de identidad.
const (
	DocumentoDNI = "DNI" // 8 dígitos exactos
	DocumentoRUC = "RUC" // 11 dígitos exactos
	DocumentoCE  = "CE"  // carné de extranjería, 9 a 12 dígitos
)

// EntidadComercial es un socio de negocio: puede actuar como cliente,
// proveedor o ambos. El par (TipoDocumento, NumeroDocumento) es único entre
// entidades activas; el borrado es lógico (Activo=false).
type EntidadComercial struct {
	ID              string
	TipoEntidad     string // CLIENTE, PROVEEDOR, AMBOS
	TipoDocumento   string // DNI, RUC, CE
	NumeroDocumento string
	RazonSocial     string
	NombreComercial string
	Email           string
	Telefono        string
	Direccion       string
	Activo          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TipoEntidadValido indica si el tipo pertenece al catálogo.
func TipoEntidadValido(tipo string) bool {
	switch tipo {
	case EntidadCliente, EntidadProveedor, EntidadAmbos:
		return true
	}
	return false
}

// EsProveedor indica si la entidad puede usarse como proveedor de una compra.
func (e *EntidadComercial) EsProveedor() bool {
	return e.TipoEntidad == EntidadProveedor || e.TipoEntidad == EntidadAmbos
}

// ValidarDocumento verifica tipo y formato del número de documento.
// Se valida de forma síncrona antes de tocar la base de datos.
func ValidarDocumento(tipo, numero string) bool {
	if !soloDigitos(numero) {
		return false
	}
	switch tipo {
	case DocumentoDNI:
		return len(numero) == 8
	case DocumentoRUC:
		return len(numero) == 11
	case DocumentoCE:
		return len(numero) >= 9 && len(numero) <= 12
	}
	return false
}

func soloDigitos(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
