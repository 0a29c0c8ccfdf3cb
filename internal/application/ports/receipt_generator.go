package ports

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// ReceiptGenerator genera el comprobante PDF de un pago.
type ReceiptGenerator interface {
	GeneratePaymentReceipt(ctx context.Context, payment *entity.Payment) ([]byte, error)
}
