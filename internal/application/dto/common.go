package dto

// Estados del envelope de respuesta.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response es el envelope uniforme de todas las respuestas de la API:
// {status: "success"|"error", message, data?}.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK construye un envelope de éxito.
func OK(message string, data interface{}) Response {
	return Response{Status: StatusSuccess, Message: message, Data: data}
}

// Error construye un envelope de error (sin data: nunca se devuelven
// identificadores generados en un fallo).
func Error(message string) Response {
	return Response{Status: StatusError, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
