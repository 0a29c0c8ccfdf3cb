package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// PaymentUseCase consulta del libro de pagos y emisión de comprobantes.
type PaymentUseCase struct {
	repo     repository.PaymentRepository
	receipts ports.ReceiptGenerator
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, receipts ports.ReceiptGenerator) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, receipts: receipts}
}

// List lista pagos por fecha descendente. page nil devuelve todos.
func (uc *PaymentUseCase) List(ctx context.Context, page *dto.PageRequest) (*dto.PaymentListResponse, error) {
	limit, offset := bounds(page)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		rows = append(rows, dto.NewPaymentResponse(p))
	}
	count := len(rows)
	if page != nil {
		if count, err = uc.repo.Count(ctx); err != nil {
			return nil, err
		}
	}
	return &dto.PaymentListResponse{Rows: rows, Count: count, Pages: pages(page, count)}, nil
}

// GetByID obtiene un pago.
func (uc *PaymentUseCase) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewPaymentResponse(p)
	return &out, nil
}

// Receipt genera el comprobante PDF de un pago.
func (uc *PaymentUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.receipts.GeneratePaymentReceipt(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generate receipt %s: %w", id, err)
	}
	return pdf, nil
}

func (uc *PaymentUseCase) find(ctx context.Context, id string) (*entity.Payment, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.IDNotFound(id)
	}
	return p, nil
}
