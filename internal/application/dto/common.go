package dto

// Paginación (tamaño por defecto y máximo de página).
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest paginación para listados: page empieza en 1.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto y acota Limit a MaxPageSize.
func (p *PageRequest) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Page <= 0 {
		p.Page = 1
	}
}

// Offset desplazamiento SQL de la página (requiere Normalize).
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// NewPageResponse arma los metadatos a partir del request normalizado.
func NewPageResponse(p PageRequest, total int) PageResponse {
	return PageResponse{Page: p.Page, Limit: p.Limit, Total: total}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de un 422: Errors en orden de evaluación y, para formularios, Fields por campo.
type ValidationErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []string            `json:"errors,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}
