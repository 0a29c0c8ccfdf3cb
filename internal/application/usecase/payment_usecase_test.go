package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

type fakeReceipts struct {
	got *entity.Payment
	err error
}

func (f *fakeReceipts) GeneratePaymentReceipt(_ context.Context, p *entity.Payment) ([]byte, error) {
	f.got = p
	return []byte("%PDF-fake"), f.err
}

func newPayments(t *testing.T) (*usecase.PaymentUseCase, *fakeReceipts) {
	t.Helper()
	store := memory.NewStore()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"pay-1", "pay-2", "pay-3"} {
		store.AddPayment(entity.Payment{
			ID:     id,
			Status: entity.PaymentStatus{ID: 1, Name: "pagado"},
			Method: entity.PaymentMethod{ID: 2, Name: "transferencia"},
			Amount: decimal.RequireFromString("15000.50"),
			Date:   base.AddDate(0, 0, i),
		})
	}
	receipts := &fakeReceipts{}
	return usecase.NewPaymentUseCase(store.Payments(), receipts), receipts
}

func TestPaymentList(t *testing.T) {
	uc, _ := newPayments(t)
	out, err := uc.List(context.Background(), &dto.PageRequest{Skip: 0, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, 2, out.Pages)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "pay-3", out.Rows[0].ID)
	assert.Equal(t, "2024-03-03", out.Rows[0].Date)
	assert.Equal(t, "transferencia", out.Rows[0].Method)
	assert.True(t, decimal.RequireFromString("15000.5").Equal(out.Rows[0].Amount))
}

func TestPaymentReceipt(t *testing.T) {
	ctx := context.Background()
	uc, receipts := newPayments(t)

	pdf, err := uc.Receipt(ctx, "pay-2")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	require.NotNil(t, receipts.got)
	assert.Equal(t, "pay-2", receipts.got.ID)

	_, err = uc.Receipt(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	receipts.err = errors.New("render")
	_, err = uc.Receipt(ctx, "pay-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
