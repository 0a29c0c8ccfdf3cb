package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

func TestGeneratePaymentReceipt(t *testing.T) {
	g := NewReceiptGenerator("Backoffice")
	pdf, err := g.GeneratePaymentReceipt(context.Background(), &entity.Payment{
		ID:          "3f0c1c1e-8f57-4bd6-9d1f-1f1b8d7f2a10",
		Status:      entity.PaymentStatus{ID: 2, Name: "pagado"},
		Method:      entity.PaymentMethod{ID: 1, Name: "transferencia"},
		Amount:      decimal.RequireFromString("1250000.5"),
		Date:        time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Reference:   "TRX-991",
		IssuingName: "Acme SpA",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "15.000,50", formatAmount(decimal.RequireFromString("15000.5")))
	assert.Equal(t, "999,00", formatAmount(decimal.NewFromInt(999)))
	assert.Equal(t, "1.000.000,00", formatAmount(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-1.500,25", formatAmount(decimal.RequireFromString("-1500.25")))
}
