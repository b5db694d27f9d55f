package dto

import "time"

// CreateEntidadRequest entrada para crear una entidad comercial.
type CreateEntidadRequest struct {
	TipoEntidad     string `json:"tipoEntidad"`     // CLIENTE, PROVEEDOR, AMBOS
	TipoDocumento   string `json:"tipoDocumento"`   // DNI, RUC, CE
	NumeroDocumento string `json:"numeroDocumento"`
	RazonSocial     string `json:"razonSocial"`
	NombreComercial string `json:"nombreComercial"`
	Email           string `json:"email"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"`
}

// UpdateEntidadRequest entrada para actualizar una entidad comercial.
// El documento no se cambia: una entidad con documento distinto es otra entidad.
type UpdateEntidadRequest struct {
	TipoEntidad     *string `json:"tipoEntidad"`
	RazonSocial     *string `json:"razonSocial"`
	NombreComercial *string `json:"nombreComercial"`
	Email           *string `json:"email"`
	Telefono        *string `json:"telefono"`
	Direccion       *string `json:"direccion"`
}

// EntidadResponse salida de una entidad comercial.
type EntidadResponse struct {
	ID              string    `json:"id"`
	TipoEntidad     string    `json:"tipoEntidad"`
	TipoDocumento   string    `json:"tipoDocumento"`
	NumeroDocumento string    `json:"numeroDocumento"`
	RazonSocial     string    `json:"razonSocial"`
	NombreComercial string    `json:"nombreComercial,omitempty"`
	Email           string    `json:"email,omitempty"`
	Telefono        string    `json:"telefono,omitempty"`
	Direccion       string    `json:"direccion,omitempty"`
	Activo          bool      `json:"activo"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// EntidadListResponse lista paginada de entidades.
type EntidadListResponse struct {
	Items []EntidadResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
