package repository

import (
	"context"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las operaciones de los controladores reciben el TenantScope del actor.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, scope TenantScope, id string, includeDeleted bool) (*entity.User, error)
	// FindByID sin filtro de tenant, solo usuarios no eliminados (guard de autorización).
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail busca por email normalizado; includeDeleted para chequeos de unicidad.
	GetByEmail(ctx context.Context, email string, includeDeleted bool) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, scope TenantScope, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context, scope TenantScope) (int, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	Restore(ctx context.Context, id string) error
}

// RoleRepository lectura del grafo rol -> permisos de un usuario.
type RoleRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.Role, error)
}
