package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// PaymentRepository consulta del libro de pagos (solo lectura, excluye eliminados).
type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	// List ordena por fecha descendente; limit <= 0 devuelve todos.
	List(ctx context.Context, limit, offset int) ([]*entity.Payment, error)
	Count(ctx context.Context) (int, error)
}
