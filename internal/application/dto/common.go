package dto

// Respuesta es el sobre estándar de todas las respuestas de la API:
// {success, message, data|error}.
type Respuesta struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Data    any           `json:"data,omitempty"`
	Error   *ErrorDetalle `json:"error,omitempty"`
}

// ErrorDetalle cuerpo del error dentro del sobre.
type ErrorDetalle struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK construye un sobre de éxito.
func OK(message string, data any) Respuesta {
	return Respuesta{Success: true, Message: message, Data: data}
}

// Fallo construye un sobre de error.
func Fallo(code, message string) Respuesta {
	return Respuesta{Success: false, Message: message, Error: &ErrorDetalle{Code: code, Message: message}}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalizar aplica valores por defecto y topes.
func (p *PageRequest) Normalizar() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset calcula el desplazamiento SQL a partir de página y límite.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}
