package dto

// PageRequest paginación de listados. Un PageRequest nil significa "sin paginar".
type PageRequest struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// Pages calcula ceil(count/limit).
func Pages(count, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}

// ErrorItem error de un campo: {value, msg, param, location}.
type ErrorItem struct {
	Value    any    `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
}

// ErrorResponse cuerpo de error HTTP para validación, not-found, conflictos y autenticación.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// MessageResponse respuesta genérica con un mensaje.
type MessageResponse struct {
	Msg string `json:"msg"`
}
