package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment registro del libro de pagos. Se expone solo para consulta.
type Payment struct {
	ID              string
	StatusID        int
	Status          PaymentStatus
	PaymentMethodID int
	Method          PaymentMethod
	Amount          decimal.Decimal // NUMERIC(10,2)
	Date            time.Time
	Reference       string
	IssuingName     string
	IssuingEmail    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// PaymentStatus estado de un pago (pendiente, pagado, anulado...).
type PaymentStatus struct {
	ID   int
	Name string
}

// PaymentMethod medio de pago (transferencia, tarjeta...).
type PaymentMethod struct {
	ID   int
	Name string
}
