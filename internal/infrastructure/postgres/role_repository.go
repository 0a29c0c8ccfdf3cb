package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo lectura del grafo usuario -> roles -> permisos.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// ListByUser devuelve los roles del usuario con sus permisos, en una sola consulta.
func (r *RoleRepo) ListByUser(ctx context.Context, userID string) ([]entity.Role, error) {
	roles := make([]entity.Role, 0)
	if !isUUID(userID) {
		return roles, nil
	}
	query := `
		SELECT r.id, r.name, p.id, p.name
		  FROM user_roles ur
		  JOIN roles r ON r.id = ur.role_id
		  LEFT JOIN role_permissions rp ON rp.role_id = r.id
		  LEFT JOIN permissions p ON p.id = rp.permission_id
		 WHERE ur.user_id = $1
		 ORDER BY r.id, p.id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	index := map[int]int{}
	for rows.Next() {
		var (
			roleID   int
			roleName string
			permID   *int
			permName *string
		)
		if err := rows.Scan(&roleID, &roleName, &permID, &permName); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		i, ok := index[roleID]
		if !ok {
			roles = append(roles, entity.Role{ID: roleID, Name: roleName, Permissions: []entity.Permission{}})
			i = len(roles) - 1
			index[roleID] = i
		}
		if permID != nil && permName != nil {
			roles[i].Permissions = append(roles[i].Permissions, entity.Permission{ID: *permID, Name: *permName})
		}
	}
	return roles, rows.Err()
}
