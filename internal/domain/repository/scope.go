package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// TenantScope filtro de tenant aplicado a las consultas de usuarios.
// CompanyID nil = alcance de administrador (solo filas con company_id NULL).
type TenantScope struct {
	CompanyID *string
}

// ScopeOf construye el alcance del actor autenticado:
// administrador -> company_id IS NULL; usuario de empresa -> company_id = actor.CompanyID.
func ScopeOf(actor *entity.User) TenantScope {
	if actor == nil || actor.CompanyID == nil {
		return TenantScope{}
	}
	id := *actor.CompanyID
	return TenantScope{CompanyID: &id}
}

// IsAdmin indica si el alcance es el de administrador.
func (s TenantScope) IsAdmin() bool {
	return s.CompanyID == nil
}

// Matches compara con igualdad estricta, tratando NULL = NULL (IS NOT DISTINCT FROM).
func (s TenantScope) Matches(companyID *string) bool {
	if s.CompanyID == nil || companyID == nil {
		return s.CompanyID == nil && companyID == nil
	}
	return *s.CompanyID == *companyID
}
