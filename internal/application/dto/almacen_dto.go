package dto

import "time"

// CreateAlmacenRequest entrada para crear un almacén.
type CreateAlmacenRequest struct {
	Codigo    string `json:"codigo"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

// UpdateAlmacenRequest entrada para actualizar un almacén.
type UpdateAlmacenRequest struct {
	Nombre    *string `json:"nombre"`
	Direccion *string `json:"direccion"`
	Activo    *bool   `json:"activo"`
}

// AlmacenResponse salida de un almacén.
type AlmacenResponse struct {
	ID        string    `json:"id"`
	Codigo    string    `json:"codigo"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AlmacenListResponse lista de almacenes.
type AlmacenListResponse struct {
	Items []AlmacenResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
