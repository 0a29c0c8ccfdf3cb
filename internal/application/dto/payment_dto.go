package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentResponse salida de un pago del libro.
type PaymentResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	StatusID     int             `json:"status_id"`
	Method       string          `json:"payment_method"`
	MethodID     int             `json:"payment_method_id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"` // YYYY-MM-DD
	Reference    string          `json:"reference"`
	IssuingName  string          `json:"issuing_name"`
	IssuingEmail string          `json:"issuing_email"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Rows  []PaymentResponse `json:"rows"`
	Count int               `json:"count"`
	Pages int               `json:"pages"`
}
