package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, company_id, name, email, password_hash, created_at, updated_at, deleted_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// El filtro de tenant es company_id IS NOT DISTINCT FROM $n: NULL = NULL para administradores.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.CompanyID, user.Name, user.Email, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt, user.DeletedAt,
	)
	if err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario dentro del alcance del tenant. Devuelve nil, nil si no existe o es de otro tenant.
func (r *UserRepo) GetByID(ctx context.Context, scope repository.TenantScope, id string, includeDeleted bool) (*entity.User, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `
		SELECT ` + userColumns + `
		  FROM users
		 WHERE id = $1
		   AND company_id IS NOT DISTINCT FROM $2
		   AND ($3 OR deleted_at IS NULL)`
	return r.one(ctx, "get user", query, id, scope.CompanyID, includeDeleted)
}

// FindByID obtiene un usuario activo sin filtro de tenant (guard de autorización).
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`
	return r.one(ctx, "find user", query, id)
}

// GetByEmail obtiene un usuario por email normalizado (cualquier company).
func (r *UserRepo) GetByEmail(ctx context.Context, email string, includeDeleted bool) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND ($2 OR deleted_at IS NULL)`
	return r.one(ctx, "get user by email", query, email, includeDeleted)
}

// Update actualiza nombre, email, hash y empresa.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		   SET company_id = $2, name = $3, email = $4, password_hash = $5, updated_at = $6
		 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		user.ID, user.CompanyID, user.Name, user.Email, user.PasswordHash, user.UpdatedAt,
	)
	if err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los usuarios activos del tenant ordenados por nombre.
func (r *UserRepo) List(ctx context.Context, scope repository.TenantScope, limit, offset int) ([]*entity.User, error) {
	lim, off := pageArgs(limit, offset)
	query := `
		SELECT ` + userColumns + `
		  FROM users
		 WHERE deleted_at IS NULL
		   AND company_id IS NOT DISTINCT FROM $1
		 ORDER BY name ASC, id ASC
		 LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, scope.CompanyID, lim, off)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Count cuenta los usuarios activos del tenant.
func (r *UserRepo) Count(ctx context.Context, scope repository.TenantScope) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM users WHERE deleted_at IS NULL AND company_id IS NOT DISTINCT FROM $1`,
		scope.CompanyID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// SoftDelete marca deleted_at. Un usuario ya eliminado responde domain.ErrNotFound.
func (r *UserRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE users SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore limpia deleted_at. Un usuario no eliminado responde domain.ErrNotDeleted.
func (r *UserRepo) Restore(ctx context.Context, id string) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE users SET deleted_at = NULL, updated_at = now() WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("restore user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotDeleted
	}
	return nil
}

func (r *UserRepo) one(ctx context.Context, op, query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
