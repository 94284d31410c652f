package dto

// PageRequest límite para listados (ej. últimos movimientos).
type PageRequest struct {
	Limit int `query:"limit" validate:"min=0,max=100"`
}

// DefaultPage aplica el valor por defecto si Limit es cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 10
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}
