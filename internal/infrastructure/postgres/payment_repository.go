package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// amount NUMERIC se escanea a decimal.Decimal por el codec registrado en NewPool.
const paymentSelect = `
	SELECT p.id, p.status_id, s.name, p.payment_method_id, m.name, p.amount, p.date,
	       p.reference, p.issuing_name, p.issuing_email, p.created_at, p.updated_at, p.deleted_at
	  FROM payments p
	  JOIN payment_statuses s ON s.id = p.status_id
	  JOIN payment_methods m ON m.id = p.payment_method_id`

// PaymentRepo consulta del libro de pagos.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// GetByID obtiene un pago activo. Devuelve nil, nil si no existe.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	if !isUUID(id) {
		return nil, nil
	}
	p, err := scanPayment(r.q.QueryRow(ctx, paymentSelect+` WHERE p.id = $1 AND p.deleted_at IS NULL`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// List devuelve pagos activos por fecha descendente.
func (r *PaymentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	lim, off := pageArgs(limit, offset)
	rows, err := r.q.Query(ctx, paymentSelect+`
		 WHERE p.deleted_at IS NULL
		 ORDER BY p.date DESC, p.id ASC
		 LIMIT $1 OFFSET $2`, lim, off)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count cuenta los pagos activos.
func (r *PaymentRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM payments WHERE deleted_at IS NULL`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return n, nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.StatusID, &p.Status.Name, &p.PaymentMethodID, &p.Method.Name, &p.Amount, &p.Date,
		&p.Reference, &p.IssuingName, &p.IssuingEmail, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status.ID = p.StatusID
	p.Method.ID = p.PaymentMethodID
	return &p, nil
}
